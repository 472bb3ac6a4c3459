package lz77

// CompressGreedy parses input left to right, emitting the first
// adequate match at each position (no lazy-match deferral) and
// advancing past it, or a literal and advancing by one.
func CompressGreedy(input []byte, opts Options) []Item {
	validate(opts)
	finder := newMatchFinder(opts)
	items := make([]Item, 0, len(input))
	pos := 0

	for pos < len(input) {
		item := finder.findBest(input, pos)
		items = append(items, item)

		if item.Kind == ItemMatch {
			// Every position this match skips over must still be
			// indexed so later matches can reach back into it.
			for remaining := item.Length - 1; remaining > 0; remaining-- {
				pos++
				finder.insert(input, pos)
			}
		}
		pos++
	}

	return items
}
