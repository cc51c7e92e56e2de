// Package labels renders display names for ions, like ¹H₂¹⁶O⁺, and keeps
// a small CSV cache of computed labels keyed by canonical ion key.
package labels

import (
	"strconv"
	"strings"

	"github.com/mzgrid/interfere/pkg/core"
)

var (
	superscripts = map[rune]rune{
		'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
		'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	}
	subscripts = map[rune]rune{
		'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
		'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	}
)

const superPlus = "⁺"

func superscriptInt(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		b.WriteRune(superscripts[r])
	}
	return b.String()
}

func subscriptInt(n int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(n) {
		b.WriteRune(subscripts[r])
	}
	return b.String()
}

// Format renders one ion: mass-number superscript, element symbol and
// count subscript per distinct isotope, then one superscript plus per
// charge unit. Components are already in canonical order, so identical
// isotopes sit adjacent and collapse into counts.
func Format(ion core.Ion) string {
	var b strings.Builder
	comps := ion.Components
	for i := 0; i < len(comps); {
		iso := comps[i]
		j := i
		for j < len(comps) && comps[j] == iso {
			j++
		}
		b.WriteString(superscriptInt(iso.A))
		b.WriteString(iso.Element.Symbol)
		if count := j - i; count > 1 {
			b.WriteString(subscriptInt(count))
		}
		i = j
	}
	for c := 0; c < ion.Charge; c++ {
		b.WriteString(superPlus)
	}
	return b.String()
}

// ForIons formats rows without consulting any cache.
func ForIons(rows []core.Ion) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = Format(r)
	}
	return out
}
