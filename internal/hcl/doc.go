// Package hcl implements the config.Loader interface for HCL input: it
// discovers and parses keyword catalog manifests and user deck files, then
// translates them into the format-agnostic config model.
package hcl
