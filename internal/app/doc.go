// Package app wires the deck processor together: it builds the isolated
// logger, loads the keyword catalogs and deck through a config.Loader,
// assembles the case registries, runs the deck, and writes the case
// report.
package app
