// Package cli implements the exemplars command tree with cobra. The root
// command generates exemplar folders from a manifest; plan, version and
// config are subcommands.
package cli
