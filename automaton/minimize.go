package automaton

import (
	"github.com/coregx/regfa/internal/conv"
	"github.com/coregx/regfa/internal/stateset"
)

const noGroup = ^uint32(0)

// Simplify minimizes d in place.
//
// States are partitioned into accepting and non-accepting groups, which are
// split until every state of a group has successors in the same groups for
// every symbol. The groups become the new states, numbered breadth-first
// from the start state in alphabet order; groups unreachable from the start
// follow in order of their lowest original state. Minimizing a minimal DFA
// therefore returns an identical table.
func (d *DFA) Simplify() {
	if d.states == 0 {
		d.finish()
		return
	}
	group, count := d.refine()
	d.quotient(group, count)
	d.relabel()
	d.finish()
}

// refine returns the coarsest stable partition as a group id per state and
// the number of groups. Ids are assigned in first-seen order while scanning
// states in increasing order.
func (d *DFA) refine() ([]uint32, int) {
	n, k := d.states, d.index.len()

	group := make([]uint32, n)
	accepting := d.accept.Len()
	if accepting > 0 && accepting < n {
		for s := 0; s < n; s++ {
			if d.accept.Contains(uint32(s)) {
				group[s] = 1
			}
		}
	}
	group, count := firstSeen(group)

	next := make([]uint32, n)
	pairs := make(map[[2]uint32]uint32, n)
	for c := 0; c < k; {
		clear(pairs)
		for s := 0; s < n; s++ {
			key := [2]uint32{group[s], group[d.table[s*k+c]]}
			id, ok := pairs[key]
			if !ok {
				id = conv.IntToUint32(len(pairs))
				pairs[key] = id
			}
			next[s] = id
		}
		if len(pairs) > count {
			group, next = next, group
			count = len(pairs)
			c = 0
			continue
		}
		c++
	}
	return group, count
}

// firstSeen renumbers group ids in order of first appearance.
func firstSeen(group []uint32) ([]uint32, int) {
	remap := make(map[uint32]uint32)
	for s, g := range group {
		id, ok := remap[g]
		if !ok {
			id = conv.IntToUint32(len(remap))
			remap[g] = id
		}
		group[s] = id
	}
	return group, len(remap)
}

// quotient replaces d with the automaton over groups.
func (d *DFA) quotient(group []uint32, count int) {
	k := d.index.len()
	table := make([]StateID, count*k)
	var accept stateset.StateSet
	filled := make([]bool, count)
	for s := 0; s < d.states; s++ {
		g := group[s]
		if d.accept.Contains(uint32(s)) {
			accept.Insert(g)
		}
		if filled[g] {
			continue
		}
		filled[g] = true
		for c := 0; c < k; c++ {
			table[int(g)*k+c] = StateID(group[d.table[s*k+c]])
		}
	}
	d.states = count
	d.start = StateID(group[d.start])
	d.accept = accept
	d.table = table
}

// relabel renumbers states breadth-first from the start state.
func (d *DFA) relabel() {
	n, k := d.states, d.index.len()

	newID := make([]uint32, n)
	for i := range newID {
		newID[i] = noGroup
	}
	order := make([]StateID, 0, n)
	visit := func(s StateID) {
		if newID[s] == noGroup {
			newID[s] = conv.IntToUint32(len(order))
			order = append(order, s)
		}
	}

	visit(d.start)
	for head := 0; head < len(order); head++ {
		s := int(order[head])
		for c := 0; c < k; c++ {
			visit(d.table[s*k+c])
		}
	}
	for s := 0; s < n; s++ {
		visit(StateID(s))
	}

	table := make([]StateID, n*k)
	var accept stateset.StateSet
	for i, s := range order {
		if d.accept.Contains(uint32(s)) {
			accept.Insert(conv.IntToUint32(i))
		}
		for c := 0; c < k; c++ {
			table[i*k+c] = StateID(newID[d.table[int(s)*k+c]])
		}
	}
	d.start = 0
	d.accept = accept
	d.table = table
}
