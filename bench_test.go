package segtree

import (
	"math/rand"
	"testing"
)

func benchTree(b *testing.B, n int) *Tree[int, total, shift] {
	b.Helper()
	values := make([]int, n)
	r := rand.New(rand.NewSource(42))
	for i := range values {
		values[i] = r.Intn(1000)
	}
	tree, err := NewFromValues(Config[int, total, shift]{
		Agg: totalsAgg{},
		Ops: shiftOps{},
	}, values)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	return tree
}

func BenchmarkBuild(b *testing.B) {
	const n = 1 << 14
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	tree, err := New(Config[int, total, shift]{Agg: totalsAgg{}, Ops: shiftOps{}}, n)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tree.Build(values); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	const n = 1 << 14
	tree := benchTree(b, n)
	r := rand.New(rand.NewSource(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := r.Intn(n)
		hi := lo + r.Intn(n-lo)
		_ = tree.Query(lo, hi)
	}
}

func BenchmarkUpdate(b *testing.B) {
	const n = 1 << 14
	tree := benchTree(b, n)
	r := rand.New(rand.NewSource(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := r.Intn(n)
		hi := lo + r.Intn(n-lo)
		tree.Update(lo, hi, shift{Delta: 1})
	}
}

func BenchmarkInterleaved(b *testing.B) {
	const n = 1 << 14
	tree := benchTree(b, n)
	r := rand.New(rand.NewSource(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := r.Intn(n)
		hi := lo + r.Intn(n-lo)
		if i%2 == 0 {
			tree.Update(lo, hi, shift{Delta: 1})
		} else {
			_ = tree.Query(lo, hi)
		}
	}
}
