// Package geometry provides the 2D polygon math used by document detection.
//
// All functions operate on slices of image.Point in pixel coordinates with
// the usual image convention: origin at the top-left, X increasing rightward,
// Y increasing downward. Polygons are treated as closed; the last vertex is
// implicitly connected back to the first.
//
// The package is pure computation with no image access, so it can be tested
// exhaustively on hand-built polygons.
package geometry
