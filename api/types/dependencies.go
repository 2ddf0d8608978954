package types

import (
	"github.com/killallgit/secondlife-api/internal/services/aggregator"
	"github.com/killallgit/secondlife-api/internal/services/cache"
	"github.com/killallgit/secondlife-api/internal/services/summary"
	"github.com/rs/zerolog"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Searcher   aggregator.Searcher
	Summarizer summary.Summarizer
	Client     ClientConfigResponse
	Build      VersionResponse
	CacheStats cache.StatsProvider
	Logger     *zerolog.Logger
}

// Log returns the configured logger or a no-op one
func (d *Dependencies) Log() *zerolog.Logger {
	if d == nil || d.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return d.Logger
}
