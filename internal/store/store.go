package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openclaw/quota-tracker/internal/models"
	"github.com/openclaw/quota-tracker/internal/validation"
)

// ErrParse reports a quota document that exists but cannot be used: invalid
// JSON or a shape without the quotas mapping.
var ErrParse = errors.New("quota config parse error")

// Load reads and parses the quota document at path. A missing file is not an
// error: the built-in defaults are returned instead. A file that exists but
// does not parse never yields a partial or default config.
func Load(path string) (*models.QuotaConfig, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return models.DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read quota file: %w", err)
	}

	var cfg models.QuotaConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := validation.ValidateQuotaConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return &cfg, nil
}

// Init writes the default quota document to path if no file exists there,
// creating the parent directory as needed. It reports whether a file was
// created; an existing file is left untouched, so repeated calls never
// overwrite user edits.
func Init(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat quota file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create quota dir: %w", err)
		}
	}

	raw, err := json.MarshalIndent(models.DefaultConfig(), "", "  ")
	if err != nil {
		return false, fmt.Errorf("encode default config: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return false, fmt.Errorf("write quota file: %w", err)
	}

	return true, nil
}
