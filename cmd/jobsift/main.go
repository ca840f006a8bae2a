package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift/internal/config"
	"github.com/jobsift/jobsift/internal/heuristic"
	"github.com/jobsift/jobsift/internal/intake"
	"github.com/jobsift/jobsift/internal/llm"
	"github.com/jobsift/jobsift/internal/source"
	"github.com/jobsift/jobsift/internal/store"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath string
		storePath  string
		backend    string
		baseURL    string
		apiKey     string
		models     string
		verbose    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config file")
	flag.StringVar(&storePath, "store", "", "Path to the JSON record store")
	flag.StringVar(&backend, "llm.backend", "", "Inference backend: generate or openai")
	flag.StringVar(&baseURL, "llm.base", "", "Inference service base URL")
	flag.StringVar(&apiKey, "llm.key", "", "API key for OpenAI-compatible servers")
	flag.StringVar(&models, "llm.models", "", "Comma-separated model candidates in priority order")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <input>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "input is a job posting URL, a .pdf or .txt file path, or pasted text.")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	var cfg config.Config
	if configPath != "" {
		if err := config.LoadFile(configPath, &cfg); err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config")
		}
	}
	// Flags win over the file, env fills remaining gaps, defaults close out.
	if storePath != "" {
		cfg.StorePath = storePath
	}
	if backend != "" {
		cfg.LLM.Backend = backend
	}
	if baseURL != "" {
		cfg.LLM.BaseURL = baseURL
	}
	if apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if models != "" {
		cfg.LLM.Models = config.SplitList(models)
	}
	if verbose {
		cfg.Verbose = true
	}
	config.ApplyEnv(&cfg)
	config.ApplyDefaults(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg, input); err != nil {
		if errors.Is(err, intake.ErrDuplicate) {
			log.Warn().Msg("similar job already exists, nothing stored")
			return
		}
		if errors.Is(err, source.ErrInsufficientContent) {
			log.Error().Msg("text content too short, provide more details")
			os.Exit(2)
		}
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg config.Config, input string) error {
	ctx := context.Background()

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	pipe := intake.New(
		&store.FileStore{Path: cfg.StorePath},
		&llm.Extractor{Provider: provider, Models: cfg.LLM.Models},
		heuristic.Strategy{},
	)

	acq := &source.Acquirer{Fetch: &source.FetchClient{}}
	raw, err := acq.Acquire(ctx, input)
	if err != nil {
		return err
	}
	log.Debug().Str("source_type", string(raw.Type)).Int("chars", len(raw.Text)).Msg("content acquired")

	rec, err := pipe.Submit(ctx, raw)
	if err != nil {
		return err
	}
	fmt.Printf("Added job: %s at %s\n", rec.Title, rec.Company)
	return nil
}

func newProvider(cfg config.Config) (llm.Provider, error) {
	switch cfg.LLM.Backend {
	case config.BackendGenerate:
		return &llm.GenerateClient{BaseURL: cfg.LLM.BaseURL}, nil
	case config.BackendOpenAI:
		return llm.NewChatProvider(cfg.LLM.BaseURL, cfg.LLM.APIKey), nil
	default:
		return nil, fmt.Errorf("unknown llm backend: %q", cfg.LLM.Backend)
	}
}
