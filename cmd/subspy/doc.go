// Package main implements the subspy command-line tool.
//
// The rename command reconciles a directory of TV episode videos with their
// subtitle files and renames both to one canonical naming template. The
// remaining commands work on subtitle documents: container conversion,
// Simplified/Traditional Chinese conversion, machine translation, timing
// shift and dual-language merging.
//
// Command results are written to stdout; logs go to stderr.
package main
