// Package rx connects a raw 8-bit I/Q source to the quarter-rate filter.
//
// A Receiver reads one raw block per call, deinterleaves it and returns the
// decimated baseband at a quarter of the source rate. Reads that come back
// short are logged and processed as they are; the samples that do not fill a
// whole decimation group are carried into the next call, so the output stream
// does not depend on how the source splits its data.
package rx
