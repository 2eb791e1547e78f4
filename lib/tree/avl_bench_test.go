package tree

import (
	randv2 "math/rand"
	"testing"
)

func makeBenchItems(n int) []*xItem {
	items := make([]*xItem, n)
	for i := range items {
		items[i] = &xItem{val: randv2.Int63()}
	}
	return items
}

func BenchmarkAVLTreeInsertUnique(b *testing.B) {
	items := makeBenchItems(b.N)
	tree := newXItemTree()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.InsertUnique(items[i])
	}
}

func BenchmarkAVLTreeInsertMulti(b *testing.B) {
	items := makeBenchItems(b.N)
	tree := newXItemTree()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.InsertMulti(items[i])
	}
}

func BenchmarkAVLTreeFind(b *testing.B) {
	const size = 1 << 16
	items := makeBenchItems(size)
	tree := newXItemTree()
	for _, e := range items {
		tree.InsertUnique(e)
	}
	probe := &xItem{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		probe.val = items[i&(size-1)].val
		tree.Find(probe)
	}
}

func BenchmarkAVLTreeErase(b *testing.B) {
	items := makeBenchItems(b.N)
	tree := newXItemTree()
	linked := items[:0]
	for _, e := range items {
		if tree.InsertUnique(e) {
			linked = append(linked, e)
		}
	}
	b.ResetTimer()
	for _, e := range linked {
		tree.Erase(e)
	}
}

func BenchmarkAVLTreeClear(b *testing.B) {
	items := makeBenchItems(b.N)
	tree := newXItemTree()
	for _, e := range items {
		tree.InsertMulti(e)
	}
	b.ResetTimer()
	tree.Clear(nil)
}
