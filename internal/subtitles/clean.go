package subtitles

import (
	"regexp"
	"strings"

	"github.com/asticode/go-astisub"
)

var adPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)opensubtitles`),
	regexp.MustCompile(`(?i)subtitles? by`),
	regexp.MustCompile(`(?i)synced? and corrected`),
	regexp.MustCompile(`(?i)advertise (your|yours?) product`),
	regexp.MustCompile(`(?i)http(s)?://`),
	regexp.MustCompile(`(?i)\bwww\.`),
	regexp.MustCompile(`(?i)\bsubscene\b`),
	regexp.MustCompile(`(?i)\byts\b`),
	regexp.MustCompile(`(?i)\byify\b`),
	regexp.MustCompile(`字幕组|字幕組`),
}

// RemoveAdvertisements drops cues whose text looks like a release or site
// credit and returns how many were removed.
func (d *Document) RemoveAdvertisements() int {
	kept := d.subs.Items[:0]
	removed := 0
	for _, item := range d.subs.Items {
		if isAdvertisement(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	d.subs.Items = kept
	return removed
}

func isAdvertisement(item *astisub.Item) bool {
	payload := strings.TrimSpace(itemText(item))
	if payload == "" {
		return false
	}
	for _, pattern := range adPatterns {
		if pattern.MatchString(payload) {
			return true
		}
	}
	return false
}
