// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

// Stats describes how the entries of a Map are spread over its
// buckets.
type Stats struct {
	Buckets int // fixed bucket count
	Used    int // buckets holding at least one entry
	Entries int
	Longest int // length of the longest chain
	// LoadFactor is Entries / Buckets. The Map never resizes, so this
	// can grow past 1.
	LoadFactor float64
}

// Stats walks the buckets of m and reports their occupancy.
func (m *Map[K, E]) Stats() Stats {
	st := Stats{Buckets: m.Buckets(), Entries: m.Len()}
	if m == nil {
		return st
	}
	for _, c := range m.buckets {
		if c == nil {
			continue
		}
		st.Used++
		st.Longest = max(st.Longest, c.len())
	}
	st.LoadFactor = float64(st.Entries) / float64(st.Buckets)
	return st
}
