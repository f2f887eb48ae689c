package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/notewise/docingest/internal/app"
	"github.com/notewise/docingest/internal/extract"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		outputPath  string
		extOverride string
		imageToPDF  bool
		listFormats bool
		configPath  string
		envFile     string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		studyAids   bool
		maxPages    int
		verbose     bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the document to ingest")
	flag.StringVar(&outputPath, "output", "", "Path to write the extracted text (stdout when empty)")
	flag.StringVar(&extOverride, "ext", "", "Override the file extension used for format dispatch")
	flag.BoolVar(&imageToPDF, "image-to-pdf", false, "Wrap the input image as a single-page PDF instead of extracting text")
	flag.BoolVar(&listFormats, "formats", false, "List supported formats and exit")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file")
	flag.StringVar(&envFile, "env", ".env", "Dotenv file to load before reading environment")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for study aid generation")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for study aid generation")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the OpenAI-compatible server")
	flag.BoolVar(&studyAids, "study.enable", false, "Generate study aids from the extracted text")
	flag.IntVar(&maxPages, "max.pages", 0, "Locally enforced PDF page limit (0 disables)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if listFormats {
		exts := make([]string, 0, len(extract.Formats))
		for ext := range extract.Formats {
			exts = append(exts, ext)
		}
		sort.Strings(exts)
		for _, ext := range exts {
			fmt.Printf(".%s\t%s\n", ext, extract.Formats[ext])
		}
		return
	}

	if err := app.LoadEnvFiles(envFile); err != nil {
		log.Warn().Err(err).Msg("env file load failed; continuing")
	}
	// Flag defaults were captured before the dotenv load; backfill anything
	// the file provided that no flag overrode.
	if llmBaseURL == "" {
		llmBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if llmModel == "" {
		llmModel = os.Getenv("LLM_MODEL")
	}
	if llmKey == "" {
		llmKey = os.Getenv("LLM_API_KEY")
	}

	cfg := app.Config{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		Extension:   extOverride,
		ImageToPDF:  imageToPDF,
		MaxPDFPages: maxPages,
		LLMBaseURL:  llmBaseURL,
		LLMModel:    llmModel,
		LLMAPIKey:   llmKey,
		StudyAids:   studyAids,
		Verbose:     verbose,
	}
	if configPath != "" {
		fc, err := app.LoadFileConfig(configPath, false)
		if err != nil {
			log.Fatal().Err(err).Msg("config load failed")
		}
		fc.Apply(&cfg)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.New(cfg).Run(context.Background()); err != nil {
		if kind := extract.KindOf(err); kind != extract.KindUnknown {
			log.Fatal().Str("kind", kind.String()).Msg(err.Error())
		}
		log.Fatal().Err(err).Msg("ingestion failed")
	}
}
