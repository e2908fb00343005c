package dimension

import (
	"testing"

	"github.com/hupe1980/unitgo/baseunit"
	"github.com/hupe1980/unitgo/rational"
)

func benchVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = Pow(baseunit.ID(i+1), rational.MustNew(int64(i+1), 2))
	}
	return v
}

func BenchmarkMerge(b *testing.B) {
	x := benchVector(6)
	y := benchVector(6)
	b.ReportAllocs()

	var sink Vector
	for i := 0; i < b.N; i++ {
		sink = Canonicalize(Merge(x, y, rational.Add))
	}
	_ = sink
}

func BenchmarkCanonicalize(b *testing.B) {
	v := Concat(benchVector(4), NegateAll(benchVector(4)))
	b.ReportAllocs()

	var sink Vector
	for i := 0; i < b.N; i++ {
		sink = Canonicalize(v)
	}
	_ = sink
}

func BenchmarkRaise(b *testing.B) {
	v := benchVector(6)
	power := rational.MustNew(2, 3)
	b.ReportAllocs()

	var sink Vector
	for i := 0; i < b.N; i++ {
		sink = Canonicalize(Raise(v, power))
	}
	_ = sink
}
