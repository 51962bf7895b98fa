// Package imaging provides the pixel-level operations the document detection
// pipeline is built from.
//
// The central type is Working: an input image normalized to a bounded
// resolution together with a precomputed gradient-magnitude map. Everything
// downstream (mask generation, contour extraction, edge scoring) operates on
// a Working and never on the original image.
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward. Planes produced by this
// package always have their bounds at the origin.
//
// # Masks and Planes
//
// Single-channel data is represented as *image.Gray throughout. Binary masks
// use 0 for background and 255 for foreground. Functions in this package
// never mutate their inputs; every operation allocates its result.
//
// # Third-Party Kernels
//
// Blur, median filtering, and morphology delegate to the bild library;
// resampling delegates to disintegration/imaging; HSV and CIE-Lab
// conversions use go-colorful. Canny edge detection and local contrast
// equalization are implemented here directly since the surrounding
// ecosystem offers no gray-plane variants with controllable thresholds.
package imaging
