// Package bitset provides a fixed-width mutable bitset of NFA state
// indices, used inside NFA construction and simulation. nfa.Nfa keeps
// its bitsets in unexported fields and exposes no operation that
// mutates them after Build.
package bitset

import "math/bits"

const wordBits = 64

// BitSet is a fixed-size bit vector over [0, size). Operations between
// two BitSets require matching size. The zero value is not usable;
// construct one with New.
type BitSet struct {
	words []uint64
	size  int
}

// New returns a BitSet of the given size with every bit clear.
func New(size int) *BitSet {
	if size < 0 {
		panic("bitset: negative size")
	}
	return &BitSet{
		words: make([]uint64, wordCount(size)),
		size:  size,
	}
}

func wordCount(size int) int {
	return (size + wordBits - 1) / wordBits
}

// Size returns the declared size of b.
func (b *BitSet) Size() int {
	return b.size
}

func (b *BitSet) requireSameSize(other *BitSet) {
	if b.size != other.size {
		panic("bitset: size mismatch")
	}
}

// Set sets bit i. Panics if i is out of [0, Size()).
func (b *BitSet) Set(i int) {
	b.checkIndex(i)
	b.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Clear clears bit i. Panics if i is out of [0, Size()).
func (b *BitSet) Clear(i int) {
	b.checkIndex(i)
	b.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set. Panics if i is out of [0, Size()).
func (b *BitSet) Test(i int) bool {
	b.checkIndex(i)
	return b.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

func (b *BitSet) checkIndex(i int) {
	if i < 0 || i >= b.size {
		panic("bitset: index out of range")
	}
}

// ClearAll resets every bit to zero.
func (b *BitSet) ClearAll() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// IsEmpty reports whether every bit is clear.
func (b *BitSet) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// UnionInPlace sets b to the union of b and other. Bits above size are
// always zero in both operands, so no masking is needed even when size
// is not a multiple of the word width.
func (b *BitSet) UnionInPlace(other *BitSet) {
	b.requireSameSize(other)
	for i := range b.words {
		b.words[i] |= other.words[i]
	}
}

// IntersectsNonEmpty reports whether b and other share at least one
// set bit, without allocating or mutating either bitset.
func (b *BitSet) IntersectsNonEmpty(other *BitSet) bool {
	b.requireSameSize(other)
	for i := range b.words {
		if b.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// Copy returns an independent copy of b.
func (b *BitSet) Copy() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{words: words, size: b.size}
}

// CopyFrom overwrites b's bits with other's. Both must share size.
func (b *BitSet) CopyFrom(other *BitSet) {
	b.requireSameSize(other)
	copy(b.words, other.words)
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEach calls f once for every set bit, in ascending order.
func (b *BitSet) ForEach(f func(i int)) {
	for wi, w := range b.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			f(wi*wordBits + tz)
			w &= w - 1 // clear lowest set bit
		}
	}
}

// Equal reports whether b and other have exactly the same set bits.
func (b *BitSet) Equal(other *BitSet) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.words {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	return true
}
