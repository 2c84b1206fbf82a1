// Package filter provides the single-channel raster filters used for
// shadow effects: Gaussian blur with cached kernels, padding, cropping
// and sub-pixel translation of coverage planes.
//
// Planes hold float32 coverage in [0, 1]. Blur uses the separable
// two-pass algorithm, O(w*h*k) for a kernel of size k.
package filter
