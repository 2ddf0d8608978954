package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/killallgit/secondlife-api/internal/models"
	"github.com/killallgit/secondlife-api/internal/services/summary"
	"github.com/killallgit/secondlife-api/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 4000},
		Summary: config.SummaryConfig{Provider: summary.ProviderGemini, Timeout: time.Second},
		Search:  config.SearchConfig{MaxConcurrency: 4},
		Client:  config.ClientConfig{APIBaseURL: "http://localhost:4000", MapsBrowserKey: "browser-key"},
	}
}

func TestBuildDependencies_Unconfigured(t *testing.T) {
	log := zerolog.Nop()
	deps, closers, err := buildDependencies(context.Background(), testConfig(), &log)
	require.NoError(t, err)
	assert.Empty(t, closers)

	_, err = deps.Searcher.Search(context.Background(), models.SearchQuery{Text: "94103", RadiusMeters: 7000})
	assert.ErrorIs(t, err, models.ErrNotConfigured)

	_, err = deps.Summarizer.Summarize(context.Background(), models.SummaryRequest{Name: "Thrift Town"})
	assert.ErrorIs(t, err, models.ErrNotConfigured)

	assert.Equal(t, "browser-key", deps.Client.MapsBrowserKey)
	assert.Equal(t, Version, deps.Build.Version)
	assert.Nil(t, deps.CacheStats)
}

func TestBuildDependencies_MemoryCache(t *testing.T) {
	cfg := testConfig()
	cfg.Cache = config.CacheConfig{Enabled: true, Backend: "memory", SearchTTL: time.Minute, MaxEntries: 10}

	log := zerolog.Nop()
	deps, closers, err := buildDependencies(context.Background(), cfg, &log)
	require.NoError(t, err)
	require.Len(t, closers, 1)
	require.NotNil(t, deps.CacheStats)
	assert.Equal(t, int64(0), deps.CacheStats.Stats().Entries)
	assert.NoError(t, closers[0]())
}

func TestBuildDependencies_UnknownProvider(t *testing.T) {
	cfg := testConfig()
	cfg.Summary.Provider = "openai"

	log := zerolog.Nop()
	_, _, err := buildDependencies(context.Background(), cfg, &log)
	assert.Error(t, err)
}

type stubGenerator struct {
	reply string
	err   error
}

func (s stubGenerator) Name() string { return "stub" }

func (s stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func TestVerifyGenerator(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, verifyGenerator(context.Background(), stubGenerator{reply: "Hello"}, time.Second, &out))
	assert.Equal(t, "stub: Hello\n", out.String())

	err := verifyGenerator(context.Background(), nil, time.Second, &out)
	assert.Error(t, err)
}
