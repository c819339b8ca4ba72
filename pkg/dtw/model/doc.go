// Package model provides the data structures shared across the dtw packages.
// It defines the point distance metrics, the algorithm selector, and the
// warp path returned by an alignment.
package model
