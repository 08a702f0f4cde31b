// Package config — .langsync.yaml configuration file support.
//
// When a .langsync.yaml file exists in the working directory it overrides
// the compiled-in defaults. Every field is optional; an empty file is
// equivalent to no file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SyncFileName is the config file name looked up in the working directory.
const SyncFileName = ".langsync.yaml"

// SyncFile is the top-level .langsync.yaml structure.
type SyncFile struct {
	// SourceLang is the source language code (default "en").
	SourceLang string `yaml:"source_lang,omitempty"`
	// UntranslatedPrefix marks entries that still need translation
	// (default "[EN] ").
	UntranslatedPrefix *string `yaml:"untranslated_prefix,omitempty"`
	// FilePrefix: "auto", "lang", "translation" or "l10n".
	FilePrefix string `yaml:"file_prefix,omitempty"`
	// Format: "auto", "elements" or "texts".
	Format string `yaml:"format,omitempty"`
	// Languages restricts the target-language set instead of discovering it
	// from directory contents.
	Languages []string `yaml:"languages,omitempty"`
}

// LoadSyncFile loads and validates .langsync.yaml from a directory.
// Returns nil when no config file exists.
func LoadSyncFile(dir string) (*SyncFile, error) {
	path := filepath.Join(dir, SyncFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var sf SyncFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	switch sf.FilePrefix {
	case "", PrefixAuto, "lang", "translation", "l10n":
	default:
		return nil, fmt.Errorf("%s: unknown file_prefix %q (valid: auto, lang, translation, l10n)", path, sf.FilePrefix)
	}

	switch sf.Format {
	case "", FormatAuto, "elements", "texts":
	default:
		return nil, fmt.Errorf("%s: unknown format %q (valid: auto, elements, texts)", path, sf.Format)
	}

	return &sf, nil
}

// apply copies the file's non-empty overrides onto a project.
func (sf *SyncFile) apply(p *Project) {
	if sf.SourceLang != "" {
		p.SourceLang = sf.SourceLang
	}
	if sf.UntranslatedPrefix != nil {
		p.UntranslatedPrefix = *sf.UntranslatedPrefix
	}
	if sf.FilePrefix != "" {
		p.FilePrefix = sf.FilePrefix
	}
	if sf.Format != "" {
		p.Format = sf.Format
	}
}
