// Package config defines the format-agnostic model of a simulation case's
// input: the keyword catalog definitions loaded from manifests and the
// ordered operations of the deck itself. Format-specific loaders (see
// internal/hcl) translate their syntax into this model.
package config
