/*
Package huffman implements canonical, length-limited Huffman coding with a
table-driven decoder fast path.

A HuffmanTable is the sorted (length, symbol) sequence of (symbol, code
length) pairs; it is the only information the decoder needs to
reconstruct the encoder's codes, because canonical codes are fully
determined by their lengths. Building the tree is the expensive,
transient part of encoding: a priority queue of leaves is combined
pairwise into an ordinary binary tree, walked once to assign code
lengths by depth, and then discarded — only the resulting table survives
into the bitstream.
*/
package huffman

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/ghalt/compresskit/internal/herr"
)

const (
	// MaxSymbols is the largest alphabet this package's wire format can
	// describe — large enough for a plain byte alphabet (256) plus the
	// extended literal/length alphabet an LZ77 front end might feed it
	// (up to 511 symbols).
	MaxSymbols = 512
	// maxSymbolsBits is the field width used both for the symbol count
	// in a chunk's table header and for each entry's symbol value.
	maxSymbolsBits = 9
	// MaxCodeLen bounds every code length this package will ever
	// produce or expect; it sizes the decoder's fast lookup tables.
	MaxCodeLen = 12
	// ChunkSizeBits is the width of the per-chunk symbol count field.
	ChunkSizeBits = 32
)

// Symbol is a Huffman alphabet member. The byte domain is 0-255; the
// extended domain (up to 511) accommodates an LZ77 literal/length
// alphabet layered on top of this package.
type Symbol uint16

// TableEntry pairs a symbol with its canonical code length.
type TableEntry struct {
	Symbol Symbol
	Length uint8
}

// Table is the canonical table: entries sorted by (Length ascending,
// Symbol ascending). It is the sole input needed to reconstruct codes on
// the decoding side.
type Table []TableEntry

type huffNode struct {
	freq        uint64
	minSym      Symbol
	left, right *huffNode
	isLeaf      bool
	symbol      Symbol
}

// nodeHeap is a min-heap on frequency, tie-broken by the smallest symbol
// contained in the subtree so that two builds over identical frequency
// histograms always produce bit-identical tables.
type nodeHeap []*huffNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].minSym < h[j].minSym
}
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*huffNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buildTable builds a canonical Huffman table from freq, a dense array
// indexed by symbol. Symbols with zero frequency are absent from the
// result. An alphabet too large to fit within MaxCodeLen is reported as
// herr.ErrTooManySymbols.
func buildTable(freq []uint64) (Table, error) {
	pq := make(nodeHeap, 0, len(freq))
	heap.Init(&pq)
	for s, f := range freq {
		if f > 0 {
			heap.Push(&pq, &huffNode{freq: f, minSym: Symbol(s), isLeaf: true, symbol: Symbol(s)})
		}
	}

	if pq.Len() == 0 {
		return nil, nil
	}

	for pq.Len() > 1 {
		left := heap.Pop(&pq).(*huffNode)
		right := heap.Pop(&pq).(*huffNode)
		minSym := left.minSym
		if right.minSym < minSym {
			minSym = right.minSym
		}
		heap.Push(&pq, &huffNode{freq: left.freq + right.freq, minSym: minSym, left: left, right: right})
	}

	root := heap.Pop(&pq).(*huffNode)

	table := make(Table, 0, len(freq))
	if root.isLeaf {
		// A single-symbol alphabet: the canonical rule would assign a
		// zero-length code, so pin it to one bit instead, per the
		// single-symbol edge case.
		table = append(table, TableEntry{Symbol: root.symbol, Length: 1})
	} else {
		collectLeaves(root, 0, &table)
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].Length != table[j].Length {
			return table[i].Length < table[j].Length
		}
		return table[i].Symbol < table[j].Symbol
	})

	if err := limitCodeLengths(table); err != nil {
		return nil, err
	}

	return table, nil
}

func collectLeaves(n *huffNode, depth uint8, table *Table) {
	if n.isLeaf {
		*table = append(*table, TableEntry{Symbol: n.symbol, Length: depth})
		return
	}
	collectLeaves(n.left, depth+1, table)
	collectLeaves(n.right, depth+1, table)
}

// limitCodeLengths enforces MaxCodeLen by clamping every length, then
// redistributing: deepest (least frequent) entries absorb extra depth
// until the Kraft sum fits the codeword space, and shallowest entries
// reclaim any leftover slack.
func limitCodeLengths(table Table) error {
	n := len(table)
	if n == 0 {
		return nil
	}
	if bitsNeeded(n-1) > MaxCodeLen {
		return fmt.Errorf("%w: %d symbols needs more than %d bits of code length", herr.ErrTooManySymbols, n, MaxCodeLen)
	}

	const kMax = (1 << MaxCodeLen) - 1
	var k int

	for i := range table {
		if int(table[i].Length) > MaxCodeLen {
			table[i].Length = MaxCodeLen
		}
		k += 1 << (MaxCodeLen - table[i].Length)
	}

	for i := n - 1; i >= 0; i-- {
		if k <= kMax {
			break
		}
		for int(table[i].Length) < MaxCodeLen {
			table[i].Length++
			k -= 1 << (MaxCodeLen - table[i].Length)
		}
	}

	for i := 0; i < n; i++ {
		for k+(1<<(MaxCodeLen-table[i].Length)) <= kMax {
			k += 1 << (MaxCodeLen - table[i].Length)
			table[i].Length--
		}
	}

	return nil
}

// bitsNeeded returns the number of bits required to represent values in
// [0, maxValue], i.e. ceil(log2(maxValue+1)), with a floor of 1.
func bitsNeeded(maxValue int) int {
	bits := 0
	for (1 << uint(bits)) <= maxValue {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	return bits
}

func depthFieldBits(maxDepth int) uint {
	if maxDepth <= 1 {
		return 1
	}
	return uint(bitsNeeded(maxDepth - 1))
}
