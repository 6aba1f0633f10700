// Moodmatch - Mood-Aware Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmatch

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodmatch/internal/catalog"
	"github.com/tomtom215/moodmatch/internal/config"
	"github.com/tomtom215/moodmatch/internal/lexicon"
	"github.com/tomtom215/moodmatch/internal/metrics"
	"github.com/tomtom215/moodmatch/internal/recommend"
	"github.com/tomtom215/moodmatch/internal/recommend/algorithms"
	"github.com/tomtom215/moodmatch/internal/recommend/reranking"
)

// EngineComponents holds the loaded catalog and the wired engine.
type EngineComponents struct {
	Catalog *catalog.Catalog
	Lexicon *lexicon.Lexicon
	Engine  *recommend.Engine
}

// initEngine loads the catalog and lexicon and builds a ready engine.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*EngineComponents, error) {
	cat, err := catalog.Load(ctx, cfg.Catalog.LoadOptions())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	lex, err := loadLexicon(cfg.Lexicon.Path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	engineCfg, err := cfg.Recommend.EngineConfig()
	if err != nil {
		return nil, err
	}

	engine, err := recommend.NewEngine(engineCfg, lex, logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	vs := algorithms.BuildVectorSpace(cat.Items())
	engine.SetRanker(algorithms.NewCosineRanker(vs))
	registerRerankers(engine)

	metrics.SetCatalogSize(cat.Len(), vs.VocabularySize())

	logger.Info().
		Str("source", cfg.Catalog.Source).
		Int("items", cat.Len()).
		Int("terms", vs.VocabularySize()).
		Int("moods", lex.Len()).
		Str("mode", engineCfg.Mode.String()).
		Int("max_results", engineCfg.MaxResults).
		Msg("recommendation engine ready")

	return &EngineComponents{Catalog: cat, Lexicon: lex, Engine: engine}, nil
}

// loadLexicon reads the YAML lexicon at path, or returns the built-in table
// when path is empty.
func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	return lexicon.LoadFile(path)
}

// registerRerankers registers one reranker per mode.
func registerRerankers(engine *recommend.Engine) {
	engine.RegisterReranker(recommend.ModeStrict, reranking.NewCategoryDiversity())
	engine.RegisterReranker(recommend.ModeRaw, reranking.NewTopN())
}
