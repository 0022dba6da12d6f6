// Package textutil reads subtitle text in unknown encodings and sanitizes
// names for filesystem use.
//
// ReadText sniffs the byte encoding with chardet, decodes to UTF-8 through the
// WHATWG encoding index and drops bytes that cannot be decoded, so callers
// always receive valid UTF-8.
package textutil
