package lz77

import "math"

const costLiteral = 6

// costMatch prices a back-reference of the given length and offset. The
// base constant matches a literal's cost; length adds floor(log2(length)),
// and offset adds floor(log2(offset)) minus 3 when that is positive
// (short offsets are nearly free to represent relative to a literal).
func costMatch(length, offset int) int {
	cost := costLiteral + int(floorLog2(length))
	if extra := int(floorLog2(offset)) - 3; extra > 0 {
		cost += extra
	}
	return cost
}

func floorLog2(n int) uint {
	var bits uint
	for n > 1 {
		n >>= 1
		bits++
	}
	return bits
}

type dpEdge struct {
	moveLen int
	offset  int
	isMatch bool
}

// CompressOptimal parses input with a dynamic program over output
// position: at every position it weighs a literal against every
// hash-chain candidate match reachable from there, by the same cost
// function, and reconstructs the cheapest path once the table is full.
// Ties prefer the longer move, since that yields fewer items.
func CompressOptimal(input []byte, opts Options) []Item {
	validate(opts)
	n := len(input)
	if n == 0 {
		return nil
	}

	finder := newMatchFinder(opts)
	price := make([]int, n+1)
	edge := make([]dpEdge, n+1)
	for i := 1; i <= n; i++ {
		price[i] = math.MaxInt32
	}

	relax := func(target, cost, moveLen, offset int, isMatch bool) {
		if cost < price[target] || (cost == price[target] && moveLen > edge[target].moveLen) {
			price[target] = cost
			edge[target] = dpEdge{moveLen: moveLen, offset: offset, isMatch: isMatch}
		}
	}

	for i := 0; i < n; i++ {
		if price[i] == math.MaxInt32 {
			continue
		}
		relax(i+1, price[i]+costLiteral, 1, 0, false)

		for _, cand := range finder.findCandidates(input, i) {
			target := i + cand.Length
			relax(target, price[i]+costMatch(cand.Length, cand.Offset), cand.Length, cand.Offset, true)
		}
	}

	items := make([]Item, 0, n)
	for pos := n; pos > 0; {
		e := edge[pos]
		if e.isMatch {
			items = append(items, NewMatch(e.moveLen, e.offset))
		} else {
			items = append(items, NewLiteral(input[pos-e.moveLen]))
		}
		pos -= e.moveLen
	}

	for l, r := 0, len(items)-1; l < r; l, r = l+1, r-1 {
		items[l], items[r] = items[r], items[l]
	}

	return items
}
