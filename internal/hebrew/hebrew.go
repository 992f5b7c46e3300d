// Package hebrew reorders logical-order Hebrew text for terminals that draw
// strictly left to right, and provides cell-width helpers for mixed
// Hebrew/Latin strings.
//
// [Visual] implements the common two-level case of the Unicode bidi
// algorithm: a base direction, embedded runs of the opposite direction, and
// numbers that keep their internal digit order. Nested embeddings and
// explicit directional controls are not handled.
package hebrew

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/bidi"
)

// Contains reports whether s has at least one Hebrew letter.
func Contains(s string) bool {
	for _, r := range s {
		if (r >= 0x0590 && r <= 0x05FF) || (r >= 0xFB1D && r <= 0xFB4F) {
			return true
		}
	}
	return false
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Truncate cuts s down to at most max cells, appending an ellipsis when
// anything was dropped. Grapheme clusters are never split, so combining
// marks stay attached to their base letter.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if Width(s) <= max {
		return s
	}
	var b strings.Builder
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := g.Width()
		if w+cw > max-1 {
			break
		}
		b.WriteString(g.Str())
		w += cw
	}
	b.WriteString("…")
	return b.String()
}

type direction int

const (
	neutral direction = iota
	ltr
	rtl
	number
	separator  // . , : / between digits
	terminator // % and friends next to digits
)

type span struct {
	text string
	dir  direction
}

// Visual converts s from logical order to the order a left-to-right
// terminal must draw it in. Hebrew runs are reversed with brackets
// mirrored, Latin runs and numbers keep their internal order, and when the
// text leads with Hebrew the runs themselves are laid out right to left.
// Text without any Hebrew is returned unchanged.
func Visual(s string) string {
	if !Contains(s) {
		return s
	}

	spans := split(s)
	base := baseDirection(spans)
	resolve(spans, base)
	spans = merge(spans)

	if base == rtl {
		for i, j := 0, len(spans)-1; i < j; i, j = i+1, j-1 {
			spans[i], spans[j] = spans[j], spans[i]
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, sp := range spans {
		if sp.dir == rtl {
			b.WriteString(bidi.ReverseString(sp.text))
		} else {
			b.WriteString(sp.text)
		}
	}
	return b.String()
}

func classify(c bidi.Class) direction {
	switch c {
	case bidi.R, bidi.AL:
		return rtl
	case bidi.L:
		return ltr
	case bidi.EN, bidi.AN:
		return number
	case bidi.ES, bidi.CS:
		return separator
	case bidi.ET:
		return terminator
	default:
		return neutral
	}
}

// split cuts s into maximal runs of one direction class. Combining marks
// extend whatever run they follow.
func split(s string) []span {
	var spans []span
	cur := neutral
	start := 0
	started := false
	for i, r := range s {
		props, _ := bidi.LookupRune(r)
		if props.Class() == bidi.NSM && started {
			continue
		}
		d := classify(props.Class())
		if !started {
			cur = d
			started = true
			continue
		}
		if d != cur {
			spans = append(spans, span{s[start:i], cur})
			start = i
			cur = d
		}
	}
	if started {
		spans = append(spans, span{s[start:], cur})
	}
	return spans
}

// baseDirection picks the paragraph direction from the first strong
// character, defaulting to left-to-right.
func baseDirection(spans []span) direction {
	for _, sp := range spans {
		if sp.dir == ltr || sp.dir == rtl {
			return sp.dir
		}
	}
	return ltr
}

// resolve applies the weak and neutral rules in place: separators and
// terminators glue onto adjacent numbers, numbers after Latin text act as
// Latin, and remaining neutrals take the direction of matching neighbours
// or fall back to the base direction. For neutral resolution numbers count
// as right-to-left, per the bidi algorithm.
func resolve(spans []span, base direction) {
	for i, sp := range spans {
		if sp.dir == separator && i > 0 && i < len(spans)-1 &&
			spans[i-1].dir == number && spans[i+1].dir == number &&
			len([]rune(sp.text)) == 1 {
			spans[i].dir = number
		}
	}
	for i, sp := range spans {
		if sp.dir == terminator &&
			((i > 0 && spans[i-1].dir == number) ||
				(i < len(spans)-1 && spans[i+1].dir == number)) {
			spans[i].dir = number
		}
	}
	for i := range spans {
		if spans[i].dir == separator || spans[i].dir == terminator {
			spans[i].dir = neutral
		}
	}

	strong := neutral
	for i, sp := range spans {
		switch sp.dir {
		case ltr, rtl:
			strong = sp.dir
		case number:
			if strong == ltr {
				spans[i].dir = ltr
			}
		}
	}

	for i, sp := range spans {
		if sp.dir != neutral {
			continue
		}
		before := contextOf(spans, i, -1)
		after := contextOf(spans, i, +1)
		if before == after && before != neutral {
			spans[i].dir = before
		} else {
			spans[i].dir = base
		}
	}
}

// contextOf finds the nearest non-neutral direction from index i in the
// given step direction, with numbers counting as right-to-left.
func contextOf(spans []span, i, step int) direction {
	for j := i + step; j >= 0 && j < len(spans); j += step {
		switch spans[j].dir {
		case ltr:
			return ltr
		case rtl, number:
			return rtl
		}
	}
	return neutral
}

func merge(spans []span) []span {
	if len(spans) == 0 {
		return spans
	}
	out := spans[:1]
	for _, sp := range spans[1:] {
		last := &out[len(out)-1]
		if sp.dir == last.dir {
			last.text += sp.text
		} else {
			out = append(out, sp)
		}
	}
	return out
}
