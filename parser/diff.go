package parser

import "slices"

// FindWordDifference compares the component lists of two expressions that
// differ in length by at most one. It returns the 1-based inclusive range of
// the first divergence, extended across the run of identical names adjacent
// to it in the longer list (several consecutive components may share a name,
// making the exact edit position ambiguous). Returns (0, 0) when the lists
// match.
func FindWordDifference(oldExpr, newExpr *Expression) (int, int) {
	a := oldExpr.specs
	b := newExpr.specs

	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}

	i := 0
	for i < shorter && a[i].Content == b[i].Content {
		i++
	}

	if i == len(a) && i == len(b) {
		return 0, 0
	}

	longer := a
	if len(b) >= len(a) {
		longer = b
	}

	start := i + 1
	end := start
	for start > 1 && longer[start-2].Content == longer[i].Content {
		start--
	}
	for j := i + 1; j < len(longer) && longer[j].Content == longer[i].Content; j++ {
		end++
	}

	return start, end
}

// TestEditOperation checks that the step from oldExpr to newExpr changed
// exactly the component at the 1-based compIdx and nothing else: the implied
// size delta must be -1, 0 or +1, and with compIdx removed from the larger
// side (both sides when equal) the remaining component lists must match
// element for element.
func TestEditOperation(oldExpr, newExpr *Expression, compIdx int) bool {
	oldContents := contents(oldExpr.specs)
	newContents := contents(newExpr.specs)

	switch len(newContents) - len(oldContents) {
	case 1:
		newContents = withoutIndex(newContents, compIdx)
	case -1:
		oldContents = withoutIndex(oldContents, compIdx)
	case 0:
		oldContents = withoutIndex(oldContents, compIdx)
		newContents = withoutIndex(newContents, compIdx)
	default:
		return false
	}

	if oldContents == nil || newContents == nil {
		return false
	}

	return slices.Equal(oldContents, newContents)
}

func contents(specs []ComponentSpec) []string {
	out := make([]string, len(specs))
	for i := range specs {
		out[i] = specs[i].Content
	}

	return out
}

// withoutIndex removes the 1-based index from the list, nil when out of range.
func withoutIndex(list []string, index int) []string {
	if index < 1 || index > len(list) {
		return nil
	}

	out := make([]string, 0, len(list)-1)
	out = append(out, list[:index-1]...)
	out = append(out, list[index:]...)

	return out
}
