// Package mediafile locates video and subtitle files in a directory.
//
// Videos are recognized by the top-level MIME type registered for their
// extension; subtitles by a fixed extension set. Results are sorted and may be
// narrowed with base-name glob exclusions.
package mediafile
