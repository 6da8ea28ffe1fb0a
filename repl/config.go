package repl

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultPrompt             = "postlisp> "
	defaultContinuationPrompt = "...> "
	defaultHistoryFile        = ".postlisp_history"
	configFileName            = ".postlisp.yml"
)

// Config controls the interactive session. The zero value is not useful; use
// DefaultConfig or LoadConfig.
type Config struct {
	Prompt             string
	ContinuationPrompt string
	// HistoryFile is resolved against the home directory when relative.
	// Empty disables history.
	HistoryFile string
	Color       bool
	MultiLine   bool
}

func DefaultConfig() Config {
	return Config{
		Prompt:             defaultPrompt,
		ContinuationPrompt: defaultContinuationPrompt,
		HistoryFile:        defaultHistoryFile,
	}
}

// configFile mirrors the YAML layout. Pointers tell absent keys from zero
// values so that absent keys keep their defaults.
type configFile struct {
	Prompt             *string `yaml:"prompt"`
	ContinuationPrompt *string `yaml:"continuation_prompt"`
	HistoryFile        *string `yaml:"history_file"`
	Color              *bool   `yaml:"color"`
	MultiLine          *bool   `yaml:"multiline"`
}

// ValidationError lists every problem found in a config file.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config: %s is invalid:", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfigPath is $HOME/.postlisp.yml, or empty if there is no home.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configFileName)
}

// LoadConfig reads a YAML config file on top of the defaults. A missing file
// is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()
	return decodeConfig(file, path)
}

func decodeConfig(r io.Reader, path string) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.ContinuationPrompt != nil {
		cfg.ContinuationPrompt = *raw.ContinuationPrompt
	}
	if raw.HistoryFile != nil {
		cfg.HistoryFile = *raw.HistoryFile
	}
	if raw.Color != nil {
		cfg.Color = *raw.Color
	}
	if raw.MultiLine != nil {
		cfg.MultiLine = *raw.MultiLine
	}
	if err := cfg.validate(path); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate(path string) error {
	errs := ValidationError{Path: path}
	if strings.TrimSpace(c.Prompt) == "" {
		errs.Issues = append(errs.Issues, "prompt must not be blank")
	}
	if strings.TrimSpace(c.ContinuationPrompt) == "" {
		errs.Issues = append(errs.Issues, "continuation_prompt must not be blank")
	}
	if strings.ContainsAny(c.Prompt+c.ContinuationPrompt, "\r\n") {
		errs.Issues = append(errs.Issues, "prompts must fit on one line")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// HistoryPath resolves HistoryFile, returning empty when history is off.
func (c Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.HistoryFile)
}
