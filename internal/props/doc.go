// Package props implements the per-cell grid property registry at the
// heart of the deck processor.
//
// A Registry maps keyword names (e.g. "PORO", "SATNUM") to dense property
// arrays sized to the grid's cell count. The catalog of supportable
// keywords is fixed at construction; property instances are created
// lazily the first time a keyword is read, or explicitly when the deck
// mentions it. Instances created lazily are tagged auto-generated and are
// invisible to HasKeyword until the deck mentions the keyword, at which
// point they are promoted in place with a warning diagnostic.
//
// The registry assumes exclusive single-threaded access during case
// assembly; it performs no locking.
package props
