// Package batch defines the input model for one analysis job: the immutable
// file descriptors that make up a batch and the contiguous chunks they are
// partitioned into for parallel processing.
package batch
