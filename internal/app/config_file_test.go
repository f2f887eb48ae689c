package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfig_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docingest.yaml")
	content := `
input: notes.docx
output: notes.txt
llm:
  base: http://localhost:8081/v1
  model: stub-model
study:
  enable: true
max:
  pages: 25
verbose: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.Input != "notes.docx" || fc.Output != "notes.txt" {
		t.Fatalf("unexpected paths: %+v", fc)
	}
	if fc.LLM.Model != "stub-model" || fc.LLM.BaseURL != "http://localhost:8081/v1" {
		t.Fatalf("unexpected llm section: %+v", fc.LLM)
	}
	if !fc.Study.Enable || fc.Max.Pages != 25 || !fc.Verbose {
		t.Fatalf("unexpected toggles: %+v", fc)
	}
}

func TestLoadFileConfig_OptionalMissing(t *testing.T) {
	fc, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	if err != nil {
		t.Fatalf("missing optional config must not error, got %v", err)
	}
	if fc != nil {
		t.Fatalf("expected nil config for missing file")
	}
}

func TestFileConfig_ApplyPreservesFlagPrecedence(t *testing.T) {
	fc := &FileConfig{Input: "from-file.txt", Output: "file-out.txt"}
	fc.LLM.Model = "file-model"
	fc.Max.Pages = 10

	cfg := Config{InputPath: "from-flag.txt", MaxPDFPages: 50}
	fc.Apply(&cfg)

	if cfg.InputPath != "from-flag.txt" {
		t.Fatalf("flag value must win, got %q", cfg.InputPath)
	}
	if cfg.OutputPath != "file-out.txt" {
		t.Fatalf("file value must fill empty fields, got %q", cfg.OutputPath)
	}
	if cfg.LLMModel != "file-model" {
		t.Fatalf("expected llm model from file, got %q", cfg.LLMModel)
	}
	if cfg.MaxPDFPages != 50 {
		t.Fatalf("flag page cap must win, got %d", cfg.MaxPDFPages)
	}
}
