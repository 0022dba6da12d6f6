package subtitles

import "github.com/asticode/go-astisub"

// MergeDual folds secondary into primary to build a dual-language track.
// A secondary cue overlapping a primary cue is appended below the first
// primary cue it overlaps; the rest are kept as standalone cues. It returns
// the number of secondary cues attached to primary cues.
func MergeDual(primary, secondary *Document) int {
	used := make([]bool, len(secondary.subs.Items))
	attached := 0
	for _, item := range primary.subs.Items {
		for j, other := range secondary.subs.Items {
			if used[j] || !overlaps(item, other) {
				continue
			}
			item.Lines = append(item.Lines, other.Lines...)
			used[j] = true
			attached++
		}
	}
	for j, other := range secondary.subs.Items {
		if !used[j] {
			primary.subs.Items = append(primary.subs.Items, other)
		}
	}
	primary.subs.Order()
	return attached
}

func overlaps(a, b *astisub.Item) bool {
	return b.StartAt < a.EndAt && b.EndAt > a.StartAt
}
