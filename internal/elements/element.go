package elements

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotFound indicates a lookup query matched no element.
var ErrNotFound = errors.New("elements: no such element")

// Category is the chemical family an element belongs to.
type Category string

const (
	AlkaliMetal     Category = "alkali-metal"
	AlkalineEarth   Category = "alkaline-earth"
	TransitionMetal Category = "transition-metal"
	PostTransition  Category = "post-transition"
	Metalloid       Category = "metalloid"
	Nonmetal        Category = "nonmetal"
	Halogen         Category = "halogen"
	NobleGas        Category = "noble-gas"
	Lanthanide      Category = "lanthanide"
	Actinide        Category = "actinide"
	UnknownCategory Category = "unknown"
)

// Phase is the standard-state phase of an element.
type Phase string

const (
	Solid        Phase = "solid"
	Liquid       Phase = "liquid"
	Gas          Phase = "gas"
	UnknownPhase Phase = "unknown"
)

// Element is one record of the periodic table. Records are immutable; the
// package hands out pointers into its internal table.
type Element struct {
	Number        int
	Symbol        string
	Name          string
	HebrewName    string
	HebrewSummary string
	Category      Category
	AtomicMass    string
	Phase         Phase
	Shells        []int
	GridX         int
	GridY         int
}

// Neutrons estimates the neutron count as round(mass) - Z. An unparseable
// mass yields 0, and negative estimates clamp to 0, so callers always get a
// usable particle count.
func (e *Element) Neutrons() int {
	m, err := strconv.ParseFloat(strings.TrimSpace(e.AtomicMass), 64)
	if err != nil {
		return 0
	}
	n := int(math.Round(m)) - e.Number
	if n < 0 {
		return 0
	}
	return n
}

// Electrons returns the total electron count across all shells.
func (e *Element) Electrons() int {
	total := 0
	for _, c := range e.Shells {
		total += c
	}
	return total
}

// Matches reports whether the element matches a search term: substring of the
// Hebrew name, case-insensitive substring of the English name or symbol, or
// substring of the decimal atomic number. The empty term matches everything.
func (e *Element) Matches(term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return true
	}
	return strings.Contains(e.HebrewName, t) ||
		strings.Contains(strings.ToLower(e.Name), t) ||
		strings.Contains(strings.ToLower(e.Symbol), t) ||
		strings.Contains(strconv.Itoa(e.Number), t)
}

func (e *Element) String() string {
	return fmt.Sprintf("%d %s (%s)", e.Number, e.Symbol, e.Name)
}

var (
	all      []*Element
	byNumber map[int]*Element
	bySymbol map[string]*Element
	byGrid   map[[2]int]*Element
)

func init() {
	all = make([]*Element, len(table))
	byNumber = make(map[int]*Element, len(table))
	bySymbol = make(map[string]*Element, len(table))
	byGrid = make(map[[2]int]*Element, len(table))
	for i := range table {
		el := &table[i]
		all[i] = el
		byNumber[el.Number] = el
		bySymbol[strings.ToLower(el.Symbol)] = el
		byGrid[[2]int{el.GridX, el.GridY}] = el
	}
}

// All returns every element in atomic-number order.
func All() []*Element {
	return all
}

// Count returns the number of elements in the table.
func Count() int {
	return len(table)
}

// First returns the lowest-numbered element (hydrogen), the default
// selection for every view.
func First() *Element {
	return all[0]
}

// Search returns the elements matching term, preserving table order.
// An empty term returns the full table.
func Search(term string) []*Element {
	if strings.TrimSpace(term) == "" {
		return all
	}
	var out []*Element
	for _, el := range all {
		if el.Matches(term) {
			out = append(out, el)
		}
	}
	return out
}

// ByNumber looks an element up by atomic number.
func ByNumber(n int) (*Element, error) {
	el, ok := byNumber[n]
	if !ok {
		return nil, fmt.Errorf("%w: number %d", ErrNotFound, n)
	}
	return el, nil
}

// BySymbol looks an element up by symbol, case-insensitively.
func BySymbol(sym string) (*Element, error) {
	el, ok := bySymbol[strings.ToLower(strings.TrimSpace(sym))]
	if !ok {
		return nil, fmt.Errorf("%w: symbol %q", ErrNotFound, sym)
	}
	return el, nil
}

// AtGrid returns the element occupying a periodic-grid cell, if any.
// Columns run 1..18; rows 1..7 are the main table, 9..10 the f-block.
func AtGrid(x, y int) (*Element, bool) {
	el, ok := byGrid[[2]int{x, y}]
	return el, ok
}

// Find resolves a free-form query: an atomic number, a symbol, an English
// name, or a Hebrew name.
func Find(query string) (*Element, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: empty query", ErrNotFound)
	}
	if n, err := strconv.Atoi(q); err == nil {
		return ByNumber(n)
	}
	if el, err := BySymbol(q); err == nil {
		return el, nil
	}
	for _, el := range all {
		if strings.EqualFold(el.Name, q) || el.HebrewName == q {
			return el, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, query)
}

// Categories returns the category tags in display order.
func Categories() []Category {
	return []Category{
		AlkaliMetal, AlkalineEarth, TransitionMetal, PostTransition,
		Metalloid, Nonmetal, Halogen, NobleGas, Lanthanide, Actinide,
		UnknownCategory,
	}
}

// HebrewLabel returns the Hebrew display name of a category.
func (c Category) HebrewLabel() string {
	switch c {
	case AlkaliMetal:
		return "מתכת אלקלית"
	case AlkalineEarth:
		return "מתכת אלקלית עפרורית"
	case TransitionMetal:
		return "מתכת מעבר"
	case PostTransition:
		return "מתכת לאחר מעבר"
	case Metalloid:
		return "מתכת למחצה"
	case Nonmetal:
		return "אל-מתכת"
	case Halogen:
		return "הלוגן"
	case NobleGas:
		return "גז אציל"
	case Lanthanide:
		return "לנתניד"
	case Actinide:
		return "אקטיניד"
	default:
		return "לא ידוע"
	}
}

// HebrewLabel returns the Hebrew display name of a phase.
func (p Phase) HebrewLabel() string {
	switch p {
	case Solid:
		return "מוצק"
	case Liquid:
		return "נוזל"
	case Gas:
		return "גז"
	default:
		return "לא ידוע"
	}
}
