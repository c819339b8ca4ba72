// Package dtw aligns two numeric time series with dynamic time warping.
//
// Compute runs the exact algorithm over the full cost matrix, which is
// accurate but quadratic in the series lengths. ComputeFast runs the
// FastDTW approximation: it coarsens both series, aligns the coarse
// versions, and refines the result inside a narrow window around the
// projected warp path. For most series the fast result matches the exact
// one, and a larger search radius closes the gap when it does not.
//
// Both entry points return the distance between the series together with
// the warp path, the list of index pairs that align one series to the
// other. Computations that would need a cost matrix beyond the configured
// memory budget transparently switch to a sparse storage.
package dtw
