// Package bloom provides detail-page deduplication using Bloom filters.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter remembers which detail pages have been visited.
// Fragments are ignored, so "gs_lparen_lk.html#fn165" and
// "gs_lparen_lk.html" are the same page.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected pages
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Visit records the page and reports whether it had been recorded before.
// False positives are possible; false negatives are not.
func (f *Filter) Visit(page string) bool {
	return f.f.TestAndAddString(Page(page))
}

// Seen reports whether the page might have been visited.
func (f *Filter) Seen(page string) bool {
	return f.f.TestString(Page(page))
}

// EstimatedCount returns the approximate number of pages in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Page strips the fragment from a detail reference.
func Page(ref string) string {
	if idx := strings.Index(ref, "#"); idx != -1 {
		return ref[:idx]
	}
	return ref
}
