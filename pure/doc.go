// Package pure holds side-effect free operations over sequences (Go slices)
// and insertion-ordered Mappings.
//
// Inputs are never modified, with one documented exception: Extend and
// Defaults write into their target Mapping. Missing results are reported as
// Optional values rather than errors; broken contracts (unknown field names,
// mistyped keys, cyclic nesting) panic with a wrapped sentinel error.
package pure
