package hanzi

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/longbridgeapp/opencc"
)

// Script classifies a single rune.
type Script int

const (
	NotHan Script = iota
	Shared
	SimplifiedOnly
	TraditionalOnly
)

func (s Script) String() string {
	switch s {
	case Shared:
		return "shared"
	case SimplifiedOnly:
		return "simplified"
	case TraditionalOnly:
		return "traditional"
	default:
		return "none"
	}
}

// Identifier classifies Han runes by script. It is safe for concurrent use.
type Identifier struct {
	s2t *opencc.OpenCC
	t2s *opencc.OpenCC

	mu    sync.Mutex
	cache map[rune]Script
}

// NewIdentifier loads the character-level OpenCC tables.
func NewIdentifier() (*Identifier, error) {
	s2t, err := opencc.New("s2t")
	if err != nil {
		return nil, fmt.Errorf("load opencc profile s2t: %w", err)
	}
	t2s, err := opencc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("load opencc profile t2s: %w", err)
	}
	return &Identifier{s2t: s2t, t2s: t2s, cache: make(map[rune]Script)}, nil
}

// Script returns the script of r.
func (id *Identifier) Script(r rune) Script {
	if !unicode.Is(unicode.Han, r) {
		return NotHan
	}
	id.mu.Lock()
	defer id.mu.Unlock()
	if s, ok := id.cache[r]; ok {
		return s
	}
	s := id.lookup(r)
	id.cache[r] = s
	return s
}

// mergedTraditional lists characters that simplification reused as the
// replacement for other characters while they remain standard Traditional
// characters in their own right. OpenCC's s2t table maps each of them to a
// different first candidate (干 to 幹, 后 to 後), so the conversion alone
// cannot tell them apart from Simplified-only forms.
var mergedTraditional = map[rune]struct{}{
	'干': {}, '后': {}, '里': {}, '台': {}, '范': {}, '松': {}, '余': {},
	'征': {}, '谷': {}, '丑': {}, '斗': {}, '仆': {}, '朴': {}, '云': {},
	'几': {}, '划': {}, '咸': {}, '尸': {}, '游': {}, '准': {}, '涂': {},
	'舍': {}, '姜': {}, '万': {}, '党': {}, '适': {}, '郁': {}, '腊': {},
	'蜡': {}, '据': {}, '霉': {}, '占': {}, '杰': {}, '并': {}, '采': {},
	'辟': {}, '凶': {}, '厘': {}, '于': {}, '愿': {}, '虫': {}, '夸': {},
	'坏': {}, '伙': {},
}

func (id *Identifier) lookup(r rune) Script {
	char := string(r)
	toTrad, err := id.s2t.Convert(char)
	if err == nil && toTrad != char {
		if _, ok := mergedTraditional[r]; ok {
			return Shared
		}
		return SimplifiedOnly
	}
	toSimp, err := id.t2s.Convert(char)
	if err == nil && toSimp != char {
		return TraditionalOnly
	}
	return Shared
}

// IsSimplifiedOnly reports whether r only exists in Simplified Chinese.
func (id *Identifier) IsSimplifiedOnly(r rune) bool {
	return id.Script(r) == SimplifiedOnly
}

// IsTraditionalOnly reports whether r only exists in Traditional Chinese.
func (id *Identifier) IsTraditionalOnly(r rune) bool {
	return id.Script(r) == TraditionalOnly
}
