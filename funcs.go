// Copyright (c) Arista Networks, Inc. 2023
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densemap

import (
	"fmt"
	"hash/maphash"
	"strings"

	"golang.org/x/exp/slices"
)

// String converts m to a string representation using K's and E's
// String functions.
func String[K fmt.Stringer, E fmt.Stringer](m *Map[K, E]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(elem E) string { return elem.String() },
	)
}

// String converts m to a string representation, formatting keys and
// elems with the fmt package.
func (m *Map[K, E]) String() string {
	return StringFunc(m,
		func(key K) string { return fmt.Sprint(key) },
		func(elem E) string { return fmt.Sprint(elem) },
	)
}

type strKE struct {
	k string
	e string
}

// StringFunc converts m to a string representation with the help of
// strK and strE functions to stringify m's keys and elems.
func StringFunc[K any, E any](m *Map[K, E],
	strK func(key K) string,
	strE func(elem E) string) string {
	if m == nil || m.Len() == 0 {
		return "densemap.Map[]"
	}
	strs := make([]strKE, m.Len())
	s := 0
	i := 0
	for it := m.Begin(); it.Ok(); it = it.Next() {
		ke := &strs[i]
		ke.k = strK(it.Key())
		ke.e = strE(it.Elem())
		s += len(ke.k) + len(ke.e)
		i++
	}
	slices.SortFunc(strs, func(a, b strKE) bool { return a.k < b.k })

	var b strings.Builder
	b.Grow(len("densemap.Map[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and elems
	b.WriteString("densemap.Map[")
	for i, ke := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ke.k)
		b.WriteByte(':')
		b.WriteString(ke.e)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal returns true if the same set of keys and elems are in m1 and
// m2. Elements are compared using ==.
func Equal[K any, E comparable](m1, m2 *Map[K, E]) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for it := m1.Begin(); it.Ok(); it = it.Next() {
		e2, ok := m2.Get(it.Key())
		if !ok || it.Elem() != e2 {
			return false
		}
	}
	return true
}

// EqualFunc returns true if the same set of keys and elems are in m1
// and m2. Elements are compared using eq.
func EqualFunc[K, E any](m1, m2 *Map[K, E], eq func(E, E) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for it := m1.Begin(); it.Ok(); it = it.Next() {
		e2, ok := m2.Get(it.Key())
		if !ok || !eq(it.Elem(), e2) {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy of m: same entries in the
// same storage order, same bucket count, sharing m's hash and equal
// functions and seed.
func (m *Map[K, E]) Clone() *Map[K, E] {
	if m == nil {
		return nil
	}
	return &Map[K, E]{
		nodes:   slices.Clone(m.nodes),
		buckets: slices.Clone(m.buckets),
		maxLoad: m.maxLoad,
		seed:    m.seed,
		hash:    m.hash,
		equal:   m.equal,
	}
}

// FindAs looks up a key-like value q of any type Q that the supplied
// hash and eq functions understand, without converting q to K. hash
// must agree with the Map's own hash function: eq(q, k) implies that
// hash and the Map's hash produce the same value for the Map's seed.
// Lookups through maphash.Bytes against a Map keyed through
// maphash.String satisfy this.
func FindAs[K, E, Q any](m *Map[K, E], q Q,
	hash func(maphash.Seed, Q) uint64,
	eq func(Q, K) bool) Iterator[K, E] {
	if m == nil || len(m.nodes) == 0 {
		return m.End()
	}
	h := hash(m.seed, q)
	for i := m.buckets[h&m.bucketMask()]; i != nilIdx; i = m.nodes[i].next {
		if eq(q, m.nodes[i].key) {
			return Iterator[K, E]{m: m, idx: int(i)}
		}
	}
	return m.End()
}

// GetAs is Get for a key-like value. See FindAs for the contract on
// hash and eq.
func GetAs[K, E, Q any](m *Map[K, E], q Q,
	hash func(maphash.Seed, Q) uint64,
	eq func(Q, K) bool) (E, bool) {
	if it := FindAs(m, q, hash, eq); it.Ok() {
		return it.Elem(), true
	}
	var zero E
	return zero, false
}

// ContainsAs is Contains for a key-like value. See FindAs for the
// contract on hash and eq.
func ContainsAs[K, E, Q any](m *Map[K, E], q Q,
	hash func(maphash.Seed, Q) uint64,
	eq func(Q, K) bool) bool {
	return FindAs(m, q, hash, eq).Ok()
}

// CountAs is Count for a key-like value. See FindAs for the contract
// on hash and eq.
func CountAs[K, E, Q any](m *Map[K, E], q Q,
	hash func(maphash.Seed, Q) uint64,
	eq func(Q, K) bool) int {
	if FindAs(m, q, hash, eq).Ok() {
		return 1
	}
	return 0
}

// DeleteAs is Delete for a key-like value, reporting whether an entry
// was removed. See FindAs for the contract on hash and eq.
func DeleteAs[K, E, Q any](m *Map[K, E], q Q,
	hash func(maphash.Seed, Q) uint64,
	eq func(Q, K) bool) bool {
	it := FindAs(m, q, hash, eq)
	if !it.Ok() {
		return false
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= hashWriting
	m.eraseAt(uint32(it.idx))
	m.done()
	return true
}
