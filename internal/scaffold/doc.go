// Package scaffold materializes exemplar folders. For every manifest
// descriptor it writes metadata.json, README.md and example.cs under
// <root>/<slug>, overwriting whatever is already there, then checks the
// written metadata and README and reports problems as warnings.
package scaffold
