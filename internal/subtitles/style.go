package subtitles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/asticode/go-astisub"
)

// StyleMode selects how ImportStyles treats the existing styles.
type StyleMode string

const (
	// StyleReplace drops the existing styles.
	StyleReplace StyleMode = "replace"
	// StyleMerge keeps existing styles and overwrites same-named ones.
	StyleMerge StyleMode = "merge"
)

// ParseStyleMode validates a style mode name. Empty means StyleReplace.
func ParseStyleMode(value string) (StyleMode, error) {
	switch mode := StyleMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return StyleReplace, nil
	case StyleReplace, StyleMerge:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported style mode %q (expected replace or merge)", value)
	}
}

// StyleIDs returns the style names in the document, sorted.
func (d *Document) StyleIDs() []string {
	ids := make([]string, 0, len(d.subs.Styles))
	for id := range d.subs.Styles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ImportStyles applies the styles of src. Cues keep their style when a style
// of the same name survives and fall back to the default style otherwise.
func (d *Document) ImportStyles(src *Document, mode StyleMode) error {
	if len(src.subs.Styles) == 0 {
		return fmt.Errorf("style source %s defines no styles", src.Path)
	}
	styles := make(map[string]*astisub.Style, len(src.subs.Styles)+len(d.subs.Styles))
	if mode == StyleMerge {
		for id, style := range d.subs.Styles {
			styles[id] = style
		}
	}
	for id, style := range src.subs.Styles {
		styles[id] = style
	}
	d.subs.Styles = styles
	if d.subs.Metadata == nil && src.subs.Metadata != nil {
		meta := *src.subs.Metadata
		d.subs.Metadata = &meta
	}

	fallback := defaultStyle(styles)
	for _, item := range d.subs.Items {
		if item.Style != nil {
			if style, ok := styles[item.Style.ID]; ok {
				item.Style = style
				continue
			}
		}
		item.Style = fallback
	}
	return nil
}

func defaultStyle(styles map[string]*astisub.Style) *astisub.Style {
	if style, ok := styles["Default"]; ok {
		return style
	}
	ids := make([]string, 0, len(styles))
	for id := range styles {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)
	return styles[ids[0]]
}
