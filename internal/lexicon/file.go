// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package lexicon

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// fileSchema is the on-disk lexicon layout:
//
//	moods:
//	  happy: [fun, uplifting, positive]
//	  chill: [chill, lofi, peaceful, ambient]
//	fallback: [popular, trending, recommended]
type fileSchema struct {
	Moods    map[string][]string `koanf:"moods"`
	Fallback []string            `koanf:"fallback"`
}

// LoadFile reads a YAML lexicon.
func LoadFile(path string) (*Lexicon, error) {
	// "::" keeps mood labels containing dots intact.
	k := koanf.New("::")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load lexicon %s: %w", path, err)
	}

	var schema fileSchema
	if err := k.Unmarshal("", &schema); err != nil {
		return nil, fmt.Errorf("decode lexicon %s: %w", path, err)
	}
	if len(schema.Moods) == 0 {
		return nil, fmt.Errorf("%w: %s defines no moods", ErrInvalidLexicon, path)
	}

	return New(schema.Moods, schema.Fallback)
}
