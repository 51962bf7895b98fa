package imaging

import "image"

// EqualizeLocal applies contrast-limited adaptive histogram equalization to
// a gray plane. The plane is divided into a tiles x tiles grid; each tile
// gets its own equalization mapping built from a histogram whose bins are
// clipped at clipLimit times the uniform bin height, with the clipped mass
// redistributed evenly. Pixels are remapped by bilinear interpolation
// between the four nearest tile mappings, which avoids visible tile seams.
//
// Local equalization exposes document boundaries in unevenly lit frames
// where a global threshold or a single-pass edge detector finds nothing.
func EqualizeLocal(g *image.Gray, clipLimit float64, tiles int) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 || tiles < 1 {
		return out
	}
	if tiles > w {
		tiles = w
	}
	if tiles > h {
		tiles = h
	}

	tileW := (w + tiles - 1) / tiles
	tileH := (h + tiles - 1) / tiles

	// Per-tile clipped-histogram lookup tables.
	luts := make([][256]uint8, tiles*tiles)
	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			x0, y0 := tx*tileW, ty*tileH
			x1, y1 := x0+tileW, y0+tileH
			if x1 > w {
				x1 = w
			}
			if y1 > h {
				y1 = h
			}

			var hist [256]int
			for y := y0; y < y1; y++ {
				row := g.Pix[y*g.Stride+x0 : y*g.Stride+x1]
				for _, v := range row {
					hist[v]++
				}
			}
			n := (x1 - x0) * (y1 - y0)
			if n == 0 {
				continue
			}

			limit := int(clipLimit * float64(n) / 256)
			if limit < 1 {
				limit = 1
			}
			excess := 0
			for i := range hist {
				if hist[i] > limit {
					excess += hist[i] - limit
					hist[i] = limit
				}
			}
			share := excess / 256
			rem := excess % 256
			for i := range hist {
				hist[i] += share
				if i < rem {
					hist[i]++
				}
			}

			lut := &luts[ty*tiles+tx]
			cum := 0
			for i := 0; i < 256; i++ {
				cum += hist[i]
				lut[i] = uint8(cum * 255 / n)
			}
		}
	}

	// Bilinear interpolation between the four surrounding tile mappings.
	for y := 0; y < h; y++ {
		fy := (float64(y)-float64(tileH)/2 + 0.5) / float64(tileH)
		ty0 := int(fy)
		wy := fy - float64(ty0)
		if fy < 0 {
			ty0, wy = 0, 0
		}
		ty1 := ty0 + 1
		if ty1 >= tiles {
			ty1 = tiles - 1
			if ty0 >= tiles {
				ty0 = tiles - 1
			}
			if ty0 == ty1 {
				wy = 0
			}
		}

		for x := 0; x < w; x++ {
			fx := (float64(x)-float64(tileW)/2 + 0.5) / float64(tileW)
			tx0 := int(fx)
			wx := fx - float64(tx0)
			if fx < 0 {
				tx0, wx = 0, 0
			}
			tx1 := tx0 + 1
			if tx1 >= tiles {
				tx1 = tiles - 1
				if tx0 >= tiles {
					tx0 = tiles - 1
				}
				if tx0 == tx1 {
					wx = 0
				}
			}

			v := g.Pix[y*g.Stride+x]
			tl := float64(luts[ty0*tiles+tx0][v])
			tr := float64(luts[ty0*tiles+tx1][v])
			bl := float64(luts[ty1*tiles+tx0][v])
			br := float64(luts[ty1*tiles+tx1][v])
			top := tl + (tr-tl)*wx
			bot := bl + (br-bl)*wx
			out.Pix[y*out.Stride+x] = uint8(top + (bot-top)*wy + 0.5)
		}
	}
	return out
}
