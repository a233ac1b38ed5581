package searcher

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// DefaultExploration is the default exploration coefficient c.
const DefaultExploration = 0.3

// score is the UCB-style selection criterion for an edge: the visit-damped
// mean value plus a prior-biased exploration term driven by the visit count
// of the edge leading into the parent node (0 when the parent is the root).
func score(e *Edge, c float64) float64 {
	exploit := e.value / float64(1+e.visits)

	parentVisits := 0
	if pe := e.parent.parentEdge; pe != nil {
		parentVisits = pe.visits
	}
	explore := c * e.prior * math.Sqrt(float64(parentVisits)) / float64(1+e.visits)

	return exploit + explore
}

// softmax converts raw scores into a probability distribution. The maximum
// is subtracted before exponentiating for numerical stability, so every
// finite score maps to a strictly positive probability.
func softmax(scores []float64) []float64 {
	probs := make([]float64, len(scores))
	copy(probs, scores)

	floats.AddConst(-floats.Max(probs), probs)
	for i, v := range probs {
		probs[i] = math.Exp(v)
	}
	floats.Scale(1/floats.Sum(probs), probs)

	return probs
}

// sampleEdge draws one edge with probability proportional to the softmax of
// the edges' selection scores. Stochastic, not an arg-max.
func sampleEdge(edges []*Edge, c float64, rng *rand.Rand) *Edge {
	if len(edges) == 0 {
		panic("searcher: sampling from a node without children")
	}

	scores := make([]float64, len(edges))
	for i, e := range edges {
		scores[i] = score(e, c)
	}

	w := sampleuv.NewWeighted(softmax(scores), rng)
	i, ok := w.Take()
	if !ok {
		panic("searcher: weighted sampler returned no edge")
	}
	return edges[i]
}
