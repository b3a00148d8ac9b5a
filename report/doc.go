// Package report serializes a graphsampler graph to a plain edge-list
// format: one `source,target,weight` line per edge, ASCII, source-major
// order, no header.
package report
