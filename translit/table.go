package translit

import (
	"fmt"
	"strings"
)

// Mapping pairs a romanized token (one or two characters) with the Arabic
// character it spells.
type Mapping struct {
	Roman  string
	Arabic string
}

// Table is an immutable, ordered transliteration table. Digraphs are applied
// strictly before single-character entries: "s" and "h" both have entries of
// their own, so replacing them first would corrupt "sh" beyond recognition.
// Within each group the slice order is the application order, which keeps the
// substitution deterministic and reproducible.
type Table struct {
	digraphs []Mapping
	singles  []Mapping
}

// defaultDigraphs lists two-character Arabizi tokens. Apostrophe forms
// (3', 7', ...) are the emphatic/dotted variants of their digit.
var defaultDigraphs = []Mapping{
	{"sh", "ش"},
	{"th", "ث"},
	{"kh", "خ"},
	{"gh", "غ"},
	{"dh", "ذ"},
	{"aa", "ا"},
	{"ee", "ي"},
	{"oo", "و"},
	{"3'", "غ"},
	{"6'", "ظ"},
	{"7'", "خ"},
	{"9'", "ض"},
}

// defaultSingles lists single Latin letters and the digit stand-ins. Digits
// come first so the numbers Arabizi writers actually use win over any letter
// that happens to share a substring with them.
var defaultSingles = []Mapping{
	{"2", "ء"},
	{"3", "ع"},
	{"5", "خ"},
	{"6", "ط"},
	{"7", "ح"},
	{"8", "ق"},
	{"9", "ص"},
	{"a", "ا"},
	{"b", "ب"},
	{"c", "ك"},
	{"d", "د"},
	{"e", "ي"},
	{"f", "ف"},
	{"g", "ج"},
	{"h", "ه"},
	{"i", "ي"},
	{"j", "ج"},
	{"k", "ك"},
	{"l", "ل"},
	{"m", "م"},
	{"n", "ن"},
	{"o", "و"},
	{"p", "ب"},
	{"q", "ق"},
	{"r", "ر"},
	{"s", "س"},
	{"t", "ت"},
	{"u", "و"},
	{"v", "ف"},
	{"w", "و"},
	{"y", "ي"},
	{"z", "ز"},
}

// DefaultTable returns the built-in Arabizi table. The table is constructed
// once at package init and shared; it is never mutated.
func DefaultTable() *Table {
	return defaultTable
}

var defaultTable = mustNewTable(defaultDigraphs, defaultSingles)

// NewTable builds a table from explicit digraph and single-character entries.
// Keys must be unique across both groups, digraph keys must be exactly two
// characters and single keys exactly one.
func NewTable(digraphs, singles []Mapping) (*Table, error) {
	seen := make(map[string]bool, len(digraphs)+len(singles))

	for _, m := range digraphs {
		if len(m.Roman) != 2 {
			return nil, fmt.Errorf("digraph key %q must be two characters", m.Roman)
		}
		if seen[m.Roman] {
			return nil, fmt.Errorf("duplicate key %q", m.Roman)
		}
		seen[m.Roman] = true
	}

	for _, m := range singles {
		if len(m.Roman) != 1 {
			return nil, fmt.Errorf("single key %q must be one character", m.Roman)
		}
		if seen[m.Roman] {
			return nil, fmt.Errorf("duplicate key %q", m.Roman)
		}
		seen[m.Roman] = true
	}

	t := &Table{
		digraphs: make([]Mapping, len(digraphs)),
		singles:  make([]Mapping, len(singles)),
	}
	copy(t.digraphs, digraphs)
	copy(t.singles, singles)
	return t, nil
}

func mustNewTable(digraphs, singles []Mapping) *Table {
	t, err := NewTable(digraphs, singles)
	if err != nil {
		panic(err)
	}
	return t
}

// Apply substitutes every table entry in the input, digraphs first. The
// replacement is plain substring replacement, not regex. Arabic values never
// contain Latin keys, so an earlier substitution cannot be re-matched by a
// later one.
func (t *Table) Apply(input string) string {
	out := input
	for _, m := range t.digraphs {
		out = strings.ReplaceAll(out, m.Roman, m.Arabic)
	}
	for _, m := range t.singles {
		out = strings.ReplaceAll(out, m.Roman, m.Arabic)
	}
	return out
}

// TableStrategy transliterates with an ordered substitution table.
type TableStrategy struct {
	table *Table
}

// NewTableStrategy creates a strategy backed by the given table, or the
// default Arabizi table when table is nil.
func NewTableStrategy(table *Table) *TableStrategy {
	if table == nil {
		table = DefaultTable()
	}
	return &TableStrategy{table: table}
}

// Convert lowercases the input and applies the table. Lowercasing leaves
// Arabic script untouched (it has no case).
func (s *TableStrategy) Convert(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	return s.table.Apply(strings.ToLower(input)), nil
}

// Name implements Strategy.
func (s *TableStrategy) Name() string {
	return "table"
}

// Verify TableStrategy implements Strategy
var _ Strategy = (*TableStrategy)(nil)
