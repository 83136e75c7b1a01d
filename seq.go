// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build go1.23

package densemap

import "iter"

// All returns an iterator over key-elem pairs from m in storage
// order.
func (m *Map[K, E]) All() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		for it := m.Begin(); it.Ok(); it = it.Next() {
			if !yield(it.Key(), it.Elem()) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in m in storage order.
func (m *Map[K, E]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := m.Begin(); it.Ok(); it = it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns an iterator over values in m in storage order.
func (m *Map[K, E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for it := m.Begin(); it.Ok(); it = it.Next() {
			if !yield(it.Elem()) {
				return
			}
		}
	}
}

// InsertSeq applies Insert to every pair of seq in order: pairs whose
// key is already present are skipped.
func (m *Map[K, E]) InsertSeq(seq iter.Seq2[K, E]) {
	for k, e := range seq {
		m.Insert(k, e)
	}
}
