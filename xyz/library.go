// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "iter"

// Library is a collection of named scene resources, kept in the
// order they were added. The meshes, materials, and lights of a [Scene]
// are libraries, so that drawing and export visit them in a fixed order.
type Library[V any] struct {
	names []string
	items []V
	index map[string]int
}

// Add adds v under the given name. Adding an existing name
// replaces its value and keeps its position.
func (lb *Library[V]) Add(name string, v V) {
	if i, ok := lb.index[name]; ok {
		lb.items[i] = v
		return
	}
	if lb.index == nil {
		lb.index = make(map[string]int)
	}
	lb.index[name] = len(lb.items)
	lb.names = append(lb.names, name)
	lb.items = append(lb.items, v)
}

// Get returns the value with the given name, and whether it exists.
func (lb *Library[V]) Get(name string) (V, bool) {
	if i, ok := lb.index[name]; ok {
		return lb.items[i], true
	}
	var zv V
	return zv, false
}

// Len returns the number of values.
func (lb *Library[V]) Len() int {
	return len(lb.items)
}

// Names returns a copy of the names, in order.
func (lb *Library[V]) Names() []string {
	return append([]string(nil), lb.names...)
}

// All iterates over the names and values, in order.
func (lb *Library[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i, v := range lb.items {
			if !yield(lb.names[i], v) {
				return
			}
		}
	}
}

// Reset removes all values.
func (lb *Library[V]) Reset() {
	lb.names = nil
	lb.items = nil
	lb.index = nil
}
