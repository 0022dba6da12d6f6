// Package hanzi converts text between Simplified and Traditional Chinese and
// identifies which script a single Han character belongs to.
//
// Both features are backed by the OpenCC dictionaries. Conversion uses the
// phrase-aware Taiwan profiles (s2twp, tw2sp). Identification converts one
// rune at a time. A rune the s2t table rewrites only exists in Simplified and
// a rune the t2s table rewrites only exists in Traditional. Anything left
// unchanged by both is shared.
//
// The s2t table only yields its first candidate, so characters that are
// standard in both scripts but were merged into by simplification (干, 后,
// 里) look Simplified-only to it. A fixed list of those characters is treated
// as shared. The list covers common characters, not every merge in the
// dictionary, so rare merged characters still count as Simplified.
package hanzi
