// Package guides holds the guide catalog: named probe pairs stored as
// index-aligned collections. Index i across all four collections refers to the
// same guide for the lifetime of a run.
package guides

import (
	"bytes"

	"github.com/cespare/xxhash"
)

// Entry is the "full" view of one guide.
type Entry struct {
	Index     int
	Construct []byte
	Alias     []byte
	G1        []byte
	G2        []byte
}

// Catalog is built once and must not be modified after workers start
// reading it; it is then safe for concurrent use without locking.
type Catalog struct {
	construct [][]byte
	alias     [][]byte
	g1        [][]byte
	g2        [][]byte
}

// Len returns the number of guides.
func (c *Catalog) Len() int { return len(c.construct) }

// Add appends a guide. Probe sequences are uppercased so matching does not
// depend on the casing of the source.
func (c *Catalog) Add(construct, alias, g1, g2 []byte) {
	c.construct = append(c.construct, bytes.Clone(construct))
	c.alias = append(c.alias, bytes.Clone(alias))
	c.g1 = append(c.g1, bytes.ToUpper(g1))
	c.g2 = append(c.g2, bytes.ToUpper(g2))
}

// Entry returns guide i.
func (c *Catalog) Entry(i int) Entry {
	return Entry{
		Index:     i,
		Construct: c.construct[i],
		Alias:     c.alias[i],
		G1:        c.g1[i],
		G2:        c.g2[i],
	}
}

// Patterns visits (index, g1, g2) in catalog order.
func (c *Catalog) Patterns(fn func(i int, g1, g2 []byte)) {
	for i := range c.g1 {
		fn(i, c.g1[i], c.g2[i])
	}
}

// Entries visits every guide in catalog order, stopping at the first error.
func (c *Catalog) Entries(fn func(Entry) error) error {
	for i := range c.construct {
		if err := fn(c.Entry(i)); err != nil {
			return err
		}
	}
	return nil
}

// Duplicates groups indices whose (g1, g2) probe pair is identical. Groups
// are ordered by their first index; guides with a unique pair are omitted.
// Nothing is removed from the catalog.
func (c *Catalog) Duplicates() [][]int {
	buckets := make(map[uint64][]int, c.Len())
	var order []uint64
	key := make([]byte, 0, 64)
	for i := range c.g1 {
		key = append(key[:0], c.g1[i]...)
		key = append(key, 0)
		key = append(key, c.g2[i]...)
		h := xxhash.Sum64(key)
		if _, seen := buckets[h]; !seen {
			order = append(order, h)
		}
		buckets[h] = append(buckets[h], i)
	}

	var out [][]int
	for _, h := range order {
		idx := buckets[h]
		if len(idx) < 2 {
			continue
		}
		// split hash collisions into groups of truly equal pairs
		for len(idx) > 0 {
			first := idx[0]
			group := []int{first}
			var rest []int
			for _, j := range idx[1:] {
				if bytes.Equal(c.g1[j], c.g1[first]) && bytes.Equal(c.g2[j], c.g2[first]) {
					group = append(group, j)
				} else {
					rest = append(rest, j)
				}
			}
			if len(group) > 1 {
				out = append(out, group)
			}
			idx = rest
		}
	}
	return out
}
