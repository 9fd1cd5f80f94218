// Package docs renders npm package metadata as a short markdown summary.
//
// The document is an ordered list of fragments; empty fragments are dropped
// and the rest are joined with newlines, so an absent field never leaves a
// dangling label behind.
package docs
