// Package app wires the ingestion pipeline together for the CLI: read the
// source, validate PDF page limits against the economy collaborator, extract
// bounded text, and optionally hand the text to study-aid generation.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/notewise/docingest/internal/extract"
	"github.com/notewise/docingest/internal/llm"
	"github.com/notewise/docingest/internal/pdfgen"
	"github.com/notewise/docingest/internal/quota"
	"github.com/notewise/docingest/internal/studygen"
)

// App runs one ingestion pass per invocation. It holds no state across runs.
type App struct {
	cfg Config

	// Economy is the quota collaborator consulted before PDF processing.
	Economy quota.Service
	// Generator produces study aids when configured; nil disables.
	Generator *studygen.Generator
}

// New builds an App from configuration. Standalone runs get an unlimited
// economy unless cfg.MaxPDFPages sets a local plan cap.
func New(cfg Config) *App {
	a := &App{cfg: cfg, Economy: quota.Unlimited{}}
	if cfg.MaxPDFPages > 0 {
		a.Economy = planEconomy{pages: cfg.MaxPDFPages}
	}
	if cfg.StudyAids && strings.TrimSpace(cfg.LLMModel) != "" {
		a.Generator = &studygen.Generator{
			Client: llm.NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMAPIKey),
			Model:  cfg.LLMModel,
		}
	}
	return a
}

// Run executes the configured operation: image wrapping or text extraction.
func (a *App) Run(ctx context.Context) error {
	if strings.TrimSpace(a.cfg.InputPath) == "" {
		return fmt.Errorf("no input path configured")
	}
	data, err := os.ReadFile(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if a.cfg.ImageToPDF {
		return a.wrapImage(data)
	}

	ext := a.cfg.Extension
	if ext == "" {
		ext = strings.TrimPrefix(filepath.Ext(a.cfg.InputPath), ".")
	}
	fileName := filepath.Base(a.cfg.InputPath)

	if strings.EqualFold(ext, "pdf") {
		if err := extract.ValidatePDFPageLimit(ctx, data, a.Economy); err != nil {
			return err
		}
	}

	// Extraction runs on its own goroutine; a cancelled context abandons
	// the buffered channel without leaking the worker.
	ch := extract.ExtractAsync(extract.Source{Data: data, Extension: ext, FileName: fileName})
	var out extract.Outcome
	select {
	case <-ctx.Done():
		return ctx.Err()
	case out = <-ch:
	}
	if out.Err != nil {
		return out.Err
	}
	if out.Result.Truncated {
		log.Warn().Str("file", fileName).Msg("content truncated at length cap")
	}
	log.Info().Str("file", fileName).Str("format", extract.DisplayName(ext)).
		Int("chars", len(out.Result.Text)).Msg("extracted text")

	if err := a.writeOutput(a.cfg.OutputPath, []byte(out.Result.Text)); err != nil {
		return err
	}

	if a.Generator != nil {
		aids, err := a.Generator.StudyAids(ctx, out.Result.Text)
		if err != nil {
			log.Warn().Err(err).Msg("study aid generation failed; extraction output kept")
			return nil
		}
		path := studyAidsPath(a.cfg.OutputPath)
		if err := a.writeOutput(path, []byte(aids)); err != nil {
			return err
		}
		log.Info().Str("out", path).Msg("wrote study aids")
	}
	return nil
}

func (a *App) wrapImage(data []byte) error {
	pdfBytes, err := pdfgen.FromImage(data)
	if err != nil {
		return fmt.Errorf("image to pdf: %w", err)
	}
	out := a.cfg.OutputPath
	if strings.TrimSpace(out) == "" {
		out = strings.TrimSuffix(a.cfg.InputPath, filepath.Ext(a.cfg.InputPath)) + ".pdf"
	}
	if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Info().Str("out", out).Msg("wrote single-page PDF")
	return nil
}

// writeOutput writes to path, or stdout when path is empty.
func (a *App) writeOutput(path string, b []byte) error {
	if strings.TrimSpace(path) == "" {
		_, err := os.Stdout.Write(append(b, '\n'))
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", path).Msg("wrote output")
	return nil
}

func studyAidsPath(outputPath string) string {
	if strings.TrimSpace(outputPath) == "" {
		return "study-aids.md"
	}
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + ".study.md"
}

// planEconomy enforces a fixed local page cap while always approving at the
// collaborator level; it stands in for the remote economy in CLI runs.
type planEconomy struct {
	pages int
}

func (p planEconomy) CanGenerateContent(context.Context, quota.Request) (quota.Decision, error) {
	return quota.Decision{CanProceed: true}, nil
}

func (p planEconomy) UserEconomy(context.Context) (*quota.UserEconomy, error) {
	return &quota.UserEconomy{PDFPageLimit: p.pages}, nil
}
