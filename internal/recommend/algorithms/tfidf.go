// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package algorithms

import (
	"math"
	"sort"

	"github.com/tomtom215/moodmatch/internal/catalog"
)

// Vector is a sparse term-weight vector keyed by vocabulary column.
type Vector map[int]float64

// Norm returns the Euclidean magnitude of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// IsZero reports whether v has no non-zero weight.
func (v Vector) IsZero() bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}

// Cosine returns the cosine similarity of a and b, or 0 when either has zero
// magnitude.
func Cosine(a, b Vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}

	var dot float64
	for col, w := range a {
		dot += w * b[col]
	}
	if dot == 0 {
		return 0
	}

	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}

// VectorSpace holds the TF-IDF model fitted to a catalog: the vocabulary,
// the smoothed IDF of each term and one L2-normalized vector per item.
// It is read-only after BuildVectorSpace and safe for concurrent use.
type VectorSpace struct {
	items   []catalog.Item
	terms   []string
	columns map[string]int
	idf     []float64
	vectors []Vector
}

// BuildVectorSpace fits a TF-IDF model over the descriptions of items.
//
// Weights are raw term counts scaled by the smoothed inverse document
// frequency ln((1+n)/(1+df)) + 1, and each item vector is L2-normalized.
func BuildVectorSpace(items []catalog.Item) *VectorSpace {
	vs := &VectorSpace{
		items:   append([]catalog.Item(nil), items...),
		columns: make(map[string]int),
	}

	docs := make([]map[string]int, len(items))
	df := make(map[string]int)
	for i := range items {
		counts := termCounts(Tokenize(items[i].Description))
		docs[i] = counts
		for term := range counts {
			df[term]++
		}
	}

	vs.terms = make([]string, 0, len(df))
	for term := range df {
		vs.terms = append(vs.terms, term)
	}
	sort.Strings(vs.terms)

	n := float64(len(items))
	vs.idf = make([]float64, len(vs.terms))
	for col, term := range vs.terms {
		vs.columns[term] = col
		vs.idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vs.vectors = make([]Vector, len(items))
	for i, counts := range docs {
		vs.vectors[i] = vs.weigh(counts)
	}

	return vs
}

// Project maps text onto the fitted vocabulary. Terms outside the vocabulary
// are ignored, so an empty or all-stop-word query yields a zero vector. The
// model is never refitted.
func (vs *VectorSpace) Project(text string) Vector {
	return vs.weigh(termCounts(Tokenize(text)))
}

// weigh converts term counts into an L2-normalized TF-IDF vector.
func (vs *VectorSpace) weigh(counts map[string]int) Vector {
	v := make(Vector, len(counts))
	for term, count := range counts {
		col, ok := vs.columns[term]
		if !ok {
			continue
		}
		v[col] = float64(count) * vs.idf[col]
	}

	if norm := v.Norm(); norm > 0 {
		for col := range v {
			v[col] /= norm
		}
	}
	return v
}

// Len returns the number of item vectors.
func (vs *VectorSpace) Len() int {
	return len(vs.vectors)
}

// VocabularySize returns the number of distinct terms.
func (vs *VectorSpace) VocabularySize() int {
	return len(vs.terms)
}

// Item returns the i-th item.
func (vs *VectorSpace) Item(i int) catalog.Item {
	return vs.items[i]
}

// Vector returns the TF-IDF vector of the i-th item. Callers must not modify it.
func (vs *VectorSpace) Vector(i int) Vector {
	return vs.vectors[i]
}

// Term returns the vocabulary term at col.
func (vs *VectorSpace) Term(col int) string {
	return vs.terms[col]
}

// IDF returns the inverse document frequency of term and whether the term is
// in the vocabulary.
func (vs *VectorSpace) IDF(term string) (float64, bool) {
	col, ok := vs.columns[term]
	if !ok {
		return 0, false
	}
	return vs.idf[col], true
}

// Terms returns the vocabulary in column order.
func (vs *VectorSpace) Terms() []string {
	out := make([]string, len(vs.terms))
	copy(out, vs.terms)
	return out
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}
