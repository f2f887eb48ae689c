package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to the flag namespace.
type FileConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Ext    string `yaml:"ext"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`

	Study struct {
		Enable bool `yaml:"enable"`
	} `yaml:"study"`

	Max struct {
		Pages int `yaml:"pages"`
	} `yaml:"max"`

	Verbose bool `yaml:"verbose"`
}

// LoadFileConfig reads a YAML config file. A missing path is not an error
// when optional is true, so callers can probe default locations.
func LoadFileConfig(path string, optional bool) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filepath.Base(path), err)
	}
	return &fc, nil
}

// Apply copies the file values into cfg wherever cfg still has the zero
// value, preserving flag/env precedence over the file.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc == nil {
		return
	}
	if strings.TrimSpace(cfg.InputPath) == "" {
		cfg.InputPath = fc.Input
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		cfg.OutputPath = fc.Output
	}
	if strings.TrimSpace(cfg.Extension) == "" {
		cfg.Extension = fc.Ext
	}
	if strings.TrimSpace(cfg.LLMBaseURL) == "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if strings.TrimSpace(cfg.LLMModel) == "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if fc.Study.Enable {
		cfg.StudyAids = true
	}
	if cfg.MaxPDFPages == 0 {
		cfg.MaxPDFPages = fc.Max.Pages
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
