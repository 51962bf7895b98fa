// Package detect locates the quadrilateral boundary of a physical document
// in a photograph.
//
// No single segmentation method survives the variety of lighting,
// backgrounds, and document colors seen in real captures. The pipeline
// therefore runs a bank of independent strategies (see GeneratorKind), each
// proposing binary masks from a different colorspace or transform. Every
// mask flows through the same extractor: external contours, polygon
// approximation at two tolerances, and geometric validation that admits only
// plausible quads.
//
// The strategies only decide which quads are proposed, never how they are
// judged. Judging is uniform: each accepted quad is scored by the average
// image gradient sampled along its four edges, because a genuine document
// edge shows a real brightness or color discontinuity while a thresholding
// artifact does not. The final selection weights that edge support by area
// ratio, so a large true boundary beats a small sharp false positive.
//
// A detection call is a pure function of its input image: single-threaded,
// no shared mutable state, bounded cost (a fixed number of masks, at most 20
// contours each at two tolerances). Callers needing visibility inject an
// Observer; the package itself never logs.
package detect
