package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/interview-coach/internal/ai/gemini"
	"github.com/spigell/interview-coach/internal/catalog"
	"github.com/spigell/interview-coach/internal/lexicon"
	"github.com/spigell/interview-coach/internal/logger"
	"github.com/spigell/interview-coach/internal/persona"
	"github.com/spigell/interview-coach/internal/randutil"
	"github.com/spigell/interview-coach/internal/secrets"
)

// deps are the components every command builds from the configuration.
type deps struct {
	config   *Config
	logger   *zap.Logger
	src      randutil.Source
	catalog  *catalog.Catalog
	personas *persona.Library
	lexicon  *lexicon.Lexicon
}

func loadDeps() *deps {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	src := randutil.Locked(randutil.New(config.Interview.Seed))

	cat := catalog.Default()
	if config.CatalogFile != "" {
		if cat, err = catalog.LoadFile(config.CatalogFile); err != nil {
			logger.Fatal("loading question catalog", zap.Error(err), zap.String("file", config.CatalogFile))
		}
	}

	lex := lexicon.Default()
	if config.LexiconFile != "" {
		if lex, err = lexicon.LoadFile(config.LexiconFile); err != nil {
			logger.Fatal("loading lexicon", zap.Error(err), zap.String("file", config.LexiconFile))
		}
	}

	personas := persona.Default(src)
	if config.PersonasFile != "" {
		if personas, err = persona.LoadFile(config.PersonasFile, src); err != nil {
			logger.Fatal("loading personas", zap.Error(err), zap.String("file", config.PersonasFile))
		}
	}

	logger.Debug("data loaded",
		zap.String("catalog_version", cat.Version()),
		zap.String("lexicon_version", lex.Version),
		zap.String("personas_version", personas.Version()),
	)

	return &deps{
		config:   config,
		logger:   logger,
		src:      src,
		catalog:  cat,
		personas: personas,
		lexicon:  lex,
	}
}

func newGenerator(ctx context.Context, cfg *AIConfig, log *zap.Logger) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:    "gemini api key",
		File:    cfg.Gemini.APIKeyFile,
		Value:   cfg.Gemini.APIKey,
		FileEnv: "GEMINI_API_KEY_FILE",
		Env:     "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithFields(log, logger.ProviderFields("gemini", cfg.Gemini.Model)...).
		With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
}
