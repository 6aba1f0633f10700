// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

// Package lexicon maps mood labels to the descriptor keywords used to build
// recommendation queries.
//
// Resolution never fails: an unknown mood resolves to the fallback keywords,
// and chaos mode picks one keyword list uniformly at random from the whole
// lexicon regardless of the requested mood. Labels are kept in sorted order so
// a seeded RandomSource makes chaos draws reproducible.
//
// A Lexicon is immutable after construction and safe for concurrent use.
package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultFallback is returned for moods missing from the lexicon.
var DefaultFallback = []string{"popular", "trending", "recommended"}

// defaultMoods is the built-in mood table.
var defaultMoods = map[string][]string{
	"happy":     {"fun", "uplifting", "positive"},
	"sad":       {"comforting", "heartwarming", "emotional"},
	"stressed":  {"calm", "relaxing", "peaceful"},
	"chill":     {"chill", "lofi", "peaceful", "ambient"},
	"bored":     {"exciting", "adventure", "thrilling"},
	"romantic":  {"romantic", "love", "bonding"},
	"focused":   {"focus", "study", "deep"},
	"energetic": {"energetic", "upbeat", "dance"},
}

// ErrInvalidLexicon indicates an empty mood table, label, or keyword list.
var ErrInvalidLexicon = errors.New("invalid lexicon")

// Lexicon is an immutable mood → keywords table.
type Lexicon struct {
	labels   []string
	moods    map[string][]string
	fallback []string
}

// Resolution is the outcome of resolving a mood.
type Resolution struct {
	// Keywords is the keyword list to use. Never empty.
	Keywords []string

	// Mood is the label whose keywords were used, or "" for the fallback.
	Mood string

	// Matched reports whether the requested mood was found.
	Matched bool

	// Chaos reports whether the list was drawn at random.
	Chaos bool
}

// New builds a lexicon. The table needs at least one mood. Labels are
// normalized to trimmed lower case; keyword lists must contain at least one
// non-blank keyword. A nil or empty fallback uses DefaultFallback.
func New(moods map[string][]string, fallback []string) (*Lexicon, error) {
	if len(moods) == 0 {
		return nil, fmt.Errorf("%w: no moods defined", ErrInvalidLexicon)
	}

	l := &Lexicon{
		labels: make([]string, 0, len(moods)),
		moods:  make(map[string][]string, len(moods)),
	}

	for label, keywords := range moods {
		key := normalize(label)
		if key == "" {
			return nil, fmt.Errorf("%w: empty mood label", ErrInvalidLexicon)
		}
		if _, dup := l.moods[key]; dup {
			return nil, fmt.Errorf("%w: mood %q defined twice", ErrInvalidLexicon, key)
		}
		cleaned := cleanKeywords(keywords)
		if len(cleaned) == 0 {
			return nil, fmt.Errorf("%w: mood %q has no keywords", ErrInvalidLexicon, key)
		}
		l.moods[key] = cleaned
		l.labels = append(l.labels, key)
	}
	sort.Strings(l.labels)

	l.fallback = cleanKeywords(fallback)
	if len(l.fallback) == 0 {
		l.fallback = append([]string(nil), DefaultFallback...)
	}

	return l, nil
}

// Default returns the built-in lexicon.
func Default() *Lexicon {
	l, err := New(defaultMoods, DefaultFallback)
	if err != nil {
		panic(fmt.Sprintf("lexicon: built-in table invalid: %v", err))
	}
	return l
}

// Resolve returns the keywords for mood.
//
// With chaos set, one of the lexicon's lists is drawn uniformly from rng and
// the mood is ignored. Otherwise the mood is looked up and unknown moods get
// the fallback list. A nil rng uses the package source.
func (l *Lexicon) Resolve(mood string, chaos bool, rng RandomSource) Resolution {
	if chaos && len(l.labels) > 0 {
		if rng == nil {
			rng = defaultSource
		}
		label := l.labels[rng.Intn(len(l.labels))]
		return Resolution{
			Keywords: l.copyOf(label),
			Mood:     label,
			Matched:  true,
			Chaos:    true,
		}
	}

	key := normalize(mood)
	if _, ok := l.moods[key]; ok {
		return Resolution{Keywords: l.copyOf(key), Mood: key, Matched: true, Chaos: chaos}
	}

	return Resolution{Keywords: l.Fallback(), Chaos: chaos}
}

// Labels returns the mood labels in sorted order.
func (l *Lexicon) Labels() []string {
	out := make([]string, len(l.labels))
	copy(out, l.labels)
	return out
}

// Keywords returns the keyword list for a mood label.
func (l *Lexicon) Keywords(mood string) ([]string, bool) {
	key := normalize(mood)
	if _, ok := l.moods[key]; !ok {
		return nil, false
	}
	return l.copyOf(key), true
}

// Fallback returns the keywords used for unknown moods.
func (l *Lexicon) Fallback() []string {
	out := make([]string, len(l.fallback))
	copy(out, l.fallback)
	return out
}

// Lists returns every keyword list in label order.
func (l *Lexicon) Lists() [][]string {
	out := make([][]string, len(l.labels))
	for i, label := range l.labels {
		out[i] = l.copyOf(label)
	}
	return out
}

// Len returns the number of moods.
func (l *Lexicon) Len() int {
	return len(l.labels)
}

func (l *Lexicon) copyOf(label string) []string {
	src := l.moods[label]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cleanKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
