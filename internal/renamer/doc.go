// Package renamer renames episode videos and their subtitles to the canonical
// names derived from a reconciled catalog.
//
// A run locates the files, classifies every name with the configured pattern,
// labels subtitle languages, reconciles the observations and plans one rename
// per file whose canonical name differs from its current name under a
// case-insensitive comparison. Renames never replace an existing file. A
// failure stops the run; renames already applied stay in place.
package renamer
