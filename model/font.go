package model

// FontCount pairs a font with the number of characters using it
type FontCount struct {
	Font  Font
	Count int
}

// FontsByFrequency groups characters by font equality and returns the fonts
// ranked by descending frequency. Ties keep first-seen order. Pure function
// of its input.
func FontsByFrequency(chars []*Character) []FontCount {
	counts := make(map[Font]int, len(chars))
	order := make([]Font, 0, len(chars))
	for _, c := range chars {
		if _, seen := counts[c.Font]; !seen {
			order = append(order, c.Font)
		}
		counts[c.Font]++
	}

	ranked := make([]FontCount, 0, len(order))
	for _, f := range order {
		ranked = append(ranked, FontCount{Font: f, Count: counts[f]})
	}

	// Stable selection sort keeps first-seen order among equal counts.
	for i := 0; i < len(ranked); i++ {
		best := i
		for j := i + 1; j < len(ranked); j++ {
			if ranked[j].Count > ranked[best].Count {
				best = j
			}
		}
		if best != i {
			picked := ranked[best]
			copy(ranked[i+1:best+1], ranked[i:best])
			ranked[i] = picked
		}
	}
	return ranked
}

// DominantFont returns the most frequent font among the characters, used to
// pick a representative font for a word. Returns the zero Font for empty input.
func DominantFont(chars []*Character) Font {
	ranked := FontsByFrequency(chars)
	if len(ranked) == 0 {
		return Font{}
	}
	return ranked[0].Font
}
