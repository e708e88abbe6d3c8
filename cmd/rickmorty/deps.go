package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kerbaras/rickmorty/pkg/config"
	"github.com/kerbaras/rickmorty/pkg/data"
	"github.com/kerbaras/rickmorty/pkg/i18n"
	"github.com/kerbaras/rickmorty/pkg/metrics"
	"github.com/kerbaras/rickmorty/pkg/services"
	"github.com/kerbaras/rickmorty/pkg/sources"
	"github.com/kerbaras/rickmorty/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// deps is everything a command needs, built once per process.
type deps struct {
	logger     *zap.Logger
	closeLog   func() error
	cache      *data.ResponseCache
	dict       *i18n.Dictionary
	lang       language.Tag
	controller *services.CharacterController
}

func newDeps(ctx context.Context, cfg config.Config) (*deps, error) {
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = utils.DefaultLogFile()
	}
	logger, closeLog, err := utils.NewLogger(cfg.Log.Level, logPath)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	cache, err := data.NewResponseCache()
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open response cache: %w", err)
	}

	dict, err := i18n.Load()
	if err != nil {
		cache.Close()
		closeLog()
		return nil, fmt.Errorf("load translations: %w", err)
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	if cfg.MetricsAddr != "" {
		metrics.Serve(ctx, cfg.MetricsAddr, reg, logger)
	}

	source := sources.NewRickAndMorty(sources.Config{
		Endpoint:   cfg.Endpoint,
		HTTPClient: utils.NewAPIClient(cfg.RequestTimeout, cfg.RateLimit, cfg.RateBurst),
		Timeout:    cfg.RequestTimeout,
		Cache:      cache,
		Metrics:    collector,
		Logger:     logger.Named("source"),
	})

	lang := dict.Match(preferredLanguage(cfg.Language))
	logger.Debug("resolved language",
		zap.String("configured", cfg.Language),
		zap.String("language", i18n.Code(lang)),
	)

	return &deps{
		logger:     logger,
		closeLog:   closeLog,
		cache:      cache,
		dict:       dict,
		lang:       lang,
		controller: services.NewCharacterController(source, dict, logger.Named("browser")),
	}, nil
}

func (d *deps) Close() {
	if err := d.cache.Close(); err != nil {
		d.logger.Warn("close response cache", zap.Error(err))
	}
	d.logger.Sync()
	d.closeLog()
}

// preferredLanguage falls back to the POSIX locale variables when nothing
// was configured.
func preferredLanguage(configured string) string {
	if configured != "" {
		return configured
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}
