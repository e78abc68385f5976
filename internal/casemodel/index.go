// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package casemodel

// Index provides id based lookup over a model tree. Plan items and
// discretionary items resolve their definitions through it.
type Index struct {
	byID map[string]*Element
}

// NewIndex walks the tree rooted at root and indexes every element with a
// non-empty id. When two elements share an id the first one in depth-first
// order wins.
func NewIndex(root *Element) *Index {
	idx := &Index{byID: make(map[string]*Element)}
	idx.add(root)
	return idx
}

func (idx *Index) add(e *Element) {
	if e == nil {
		return
	}
	if e.ID != "" {
		if _, exists := idx.byID[e.ID]; !exists {
			idx.byID[e.ID] = e
		}
	}
	for _, child := range e.Children {
		idx.add(child)
	}
}

// Lookup returns the element with the given id.
func (idx *Index) Lookup(id string) (*Element, bool) {
	e, ok := idx.byID[id]
	return e, ok
}

// Len returns the number of indexed elements.
func (idx *Index) Len() int {
	return len(idx.byID)
}
