package hanzi

import (
	"fmt"

	"github.com/longbridgeapp/opencc"
)

// Mode selects the conversion direction.
type Mode string

const (
	ToTraditional Mode = "chs2cht"
	ToSimplified  Mode = "cht2chs"
)

// ParseMode validates a mode string.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ToTraditional, ToSimplified:
		return Mode(value), nil
	case "":
		return ToTraditional, nil
	default:
		return "", fmt.Errorf("conversion mode %q: expected %s or %s", value, ToTraditional, ToSimplified)
	}
}

func (m Mode) profile() string {
	if m == ToSimplified {
		return "tw2sp"
	}
	return "s2twp"
}

// Converter rewrites text into the other script.
type Converter struct {
	mode Mode
	cc   *opencc.OpenCC
}

// NewConverter loads the OpenCC profile for mode.
func NewConverter(mode Mode) (*Converter, error) {
	cc, err := opencc.New(mode.profile())
	if err != nil {
		return nil, fmt.Errorf("load opencc profile %s: %w", mode.profile(), err)
	}
	return &Converter{mode: mode, cc: cc}, nil
}

// Mode returns the configured direction.
func (c *Converter) Mode() Mode {
	return c.mode
}

// Convert returns text in the target script.
func (c *Converter) Convert(text string) (string, error) {
	out, err := c.cc.Convert(text)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", c.mode, err)
	}
	return out, nil
}
