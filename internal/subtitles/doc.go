// Package subtitles loads, transforms and saves subtitle documents.
//
// Documents are read with charset detection and parsed with go-astisub, so
// SubRip, SubStation Alpha (ASS/SSA), WebVTT and TTML are supported. The
// package adds the operations the CLI needs on top of the parsed items:
// timing shifts, ASS style import, dual-language merging, advertisement
// removal and dialogue text extraction for translation. Writes go through
// fileutil.WriteAtomic so a failed save never truncates an existing file.
package subtitles
