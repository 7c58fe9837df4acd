package lmcut_test

import (
	"testing"

	"github.com/arnesville/fdplan/factref"
	"github.com/arnesville/fdplan/fixtures"
	"github.com/arnesville/fdplan/lmcut"
)

// BenchmarkLMCut measures a from-scratch LM-Cut evaluation (h^max phase,
// goal-zone marking, cut extraction, repeated to convergence) on a
// 200-variable random-reachable fixture.
func BenchmarkLMCut(b *testing.B) {
	p := fixtures.RandomReachable(200, fixtures.WithSeed(1), fixtures.WithDensity(0.2))
	cr, err := factref.Build(p)
	if err != nil {
		b.Fatal(err)
	}
	e := lmcut.New(cr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Evaluate(p.Initial); err != nil {
			b.Fatal(err)
		}
	}
}
