package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/pqueue"
)

// node mirrors the shape of a grid cell: a total cost, a heuristic
// tie-breaker and the heap-owned index.
type node struct {
	id   int
	f, h float64
	idx  int
}

func (n *node) HeapIndex() int     { return n.idx }
func (n *node) SetHeapIndex(i int) { n.idx = i }

func byCost(a, b *node) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.h < b.h
}

func newNodes(n int) []*node {
	out := make([]*node, n)
	for i := range out {
		out[i] = &node{id: i, idx: -1}
	}
	return out
}

func TestHeap_RemoveFirstOrdersByCostThenHeuristic(t *testing.T) {
	h := pqueue.New[*node](8, byCost)
	items := []*node{
		{id: 0, f: 5, h: 1, idx: -1},
		{id: 1, f: 3, h: 2, idx: -1},
		{id: 2, f: 3, h: 1, idx: -1},
		{id: 3, f: 7, h: 0, idx: -1},
		{id: 4, f: 1, h: 9, idx: -1},
	}
	for _, it := range items {
		h.Add(it)
	}
	require.Equal(t, 5, h.Len())

	var got []int
	for h.Len() > 0 {
		got = append(got, h.RemoveFirst().id)
	}
	assert.Equal(t, []int{4, 2, 1, 0, 3}, got)
}

func TestHeap_ContainsTracksMembership(t *testing.T) {
	nodes := newNodes(3)
	h := pqueue.New[*node](3, byCost)
	for i, n := range nodes {
		n.f = float64(i)
	}

	assert.False(t, h.Contains(nodes[0]), "fresh item must not be reported")
	h.Add(nodes[0])
	h.Add(nodes[1])
	assert.True(t, h.Contains(nodes[0]))
	assert.True(t, h.Contains(nodes[1]))
	assert.False(t, h.Contains(nodes[2]))

	first := h.RemoveFirst()
	assert.Same(t, nodes[0], first)
	assert.False(t, h.Contains(nodes[0]), "removed item must not be reported")
	assert.Equal(t, -1, nodes[0].HeapIndex())

	// A stale index pointing at a slot now owned by someone else.
	nodes[2].SetHeapIndex(0)
	assert.False(t, h.Contains(nodes[2]))
}

func TestHeap_UpdateItemSiftsUp(t *testing.T) {
	nodes := newNodes(4)
	h := pqueue.New[*node](4, byCost)
	for i, n := range nodes {
		n.f = float64(10 + i)
		h.Add(n)
	}

	nodes[3].f = 1
	h.UpdateItem(nodes[3])
	assert.Same(t, nodes[3], h.Peek())
	assert.Same(t, nodes[3], h.RemoveFirst())
	assert.Same(t, nodes[0], h.RemoveFirst())
}

func TestHeap_UpdateItemIgnoresForeignItem(t *testing.T) {
	h := pqueue.New[*node](2, byCost)
	in := &node{f: 1, idx: -1}
	out := &node{f: 0, idx: -1}
	h.Add(in)
	h.UpdateItem(out)
	assert.Equal(t, 1, h.Len())
	assert.Same(t, in, h.Peek())
}

func TestHeap_Preconditions(t *testing.T) {
	h := pqueue.New[*node](1, byCost)
	assert.PanicsWithValue(t, pqueue.ErrEmpty, func() { h.RemoveFirst() })
	assert.PanicsWithValue(t, pqueue.ErrEmpty, func() { h.Peek() })

	h.Add(&node{idx: -1})
	assert.PanicsWithValue(t, pqueue.ErrCapacityExceeded, func() { h.Add(&node{idx: -1}) })

	assert.Panics(t, func() { pqueue.New[*node](1, nil) })
	assert.Panics(t, func() { pqueue.New[*node](-1, byCost) })
}

func TestHeap_Clear(t *testing.T) {
	nodes := newNodes(3)
	h := pqueue.New[*node](3, byCost)
	for _, n := range nodes {
		h.Add(n)
	}
	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 3, h.Cap())
	for _, n := range nodes {
		assert.False(t, h.Contains(n))
		assert.Equal(t, -1, n.HeapIndex())
	}
	h.Add(nodes[1])
	assert.True(t, h.Contains(nodes[1]))
}

// TestHeap_RandomInterleaving drives Add/RemoveFirst/UpdateItem with a
// fixed seed and checks every removal against a brute-force minimum and
// every Contains answer against a shadow set.
func TestHeap_RandomInterleaving(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(7))
	nodes := newNodes(n)
	h := pqueue.New[*node](n, byCost)
	live := make(map[*node]bool, n)

	for step := 0; step < 5000; step++ {
		switch op := rng.Intn(3); {
		case op == 0 && len(live) < n:
			cand := nodes[rng.Intn(n)]
			if live[cand] {
				continue
			}
			cand.f = float64(rng.Intn(50))
			cand.h = float64(rng.Intn(10))
			h.Add(cand)
			live[cand] = true
		case op == 1 && len(live) > 0:
			want := minOf(live)
			got := h.RemoveFirst()
			require.Equal(t, want.f, got.f, "step %d", step)
			require.Equal(t, want.h, got.h, "step %d", step)
			delete(live, got)
		case op == 2 && len(live) > 0:
			for it := range live {
				if it.f > 0 {
					it.f -= float64(1 + rng.Intn(int(it.f)))
					h.UpdateItem(it)
				}
				break
			}
		}

		require.Equal(t, len(live), h.Len())
		for _, it := range nodes {
			require.Equal(t, live[it], h.Contains(it), "step %d node %d", step, it.id)
		}
	}
}

func minOf(live map[*node]bool) *node {
	all := make([]*node, 0, len(live))
	for it := range live {
		all = append(all, it)
	}
	sort.Slice(all, func(i, j int) bool { return byCost(all[i], all[j]) })
	return all[0]
}
