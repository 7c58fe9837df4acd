package relax_test

import (
	"testing"

	"github.com/arnesville/fdplan/factref"
	"github.com/arnesville/fdplan/fixtures"
	"github.com/arnesville/fdplan/relax"
)

// BenchmarkHMax measures h^max evaluation on a 200-variable precondition
// chain with random branching noise.
func BenchmarkHMax(b *testing.B) {
	p := fixtures.RandomReachable(200, fixtures.WithSeed(1), fixtures.WithDensity(0.2))
	cr, err := factref.Build(p)
	if err != nil {
		b.Fatal(err)
	}
	e, err := relax.New(cr, relax.Max)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Evaluate(p.Initial); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHFF measures h^FF evaluation (propagation plus relaxed-plan
// extraction) on the same fixture.
func BenchmarkHFF(b *testing.B) {
	p := fixtures.RandomReachable(200, fixtures.WithSeed(1), fixtures.WithDensity(0.2))
	cr, err := factref.Build(p)
	if err != nil {
		b.Fatal(err)
	}
	e, err := relax.New(cr, relax.FF)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Evaluate(p.Initial); err != nil {
			b.Fatal(err)
		}
	}
}
