// Package config implements auto-detection of translation project settings:
// the file-naming prefix in use, the source language file, and the set of
// target languages discovered in the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/XelaNull/langsync/langmeta"
)

// ErrNoSourceFile is returned when no recognizable source translation file
// exists under any supported prefix. Fatal for every command.
var ErrNoSourceFile = errors.New("could not find source translation file")

// Defaults for the configuration surface. Each can be overridden by a
// .langsync.yaml file in the working directory.
const (
	// DefaultSourceLang is the authoritative language all others sync from.
	DefaultSourceLang = "en"
	// DefaultUntranslatedPrefix marks entries that still need translation.
	DefaultUntranslatedPrefix = "[EN] "
	// PrefixAuto selects file-prefix auto-detection.
	PrefixAuto = "auto"
	// FormatAuto selects dialect auto-detection from the source file content.
	FormatAuto = "auto"
)

// Prefixes lists the supported file-naming prefixes in detection priority
// order: <prefix>_<code>.xml.
var Prefixes = []string{"lang", "translation", "l10n"}

// Language is one detected target language.
type Language struct {
	// Code is the lowercase two-letter language code from the file name.
	Code string
	// Name is the display name resolved via langmeta.
	Name string
}

// Project holds the resolved configuration for one working directory.
type Project struct {
	// Dir is the directory containing the translation files.
	Dir string
	// FilePrefix is the resolved naming prefix (lang, translation or l10n).
	FilePrefix string
	// SourceLang is the source language code.
	SourceLang string
	// UntranslatedPrefix marks not-yet-translated values.
	UntranslatedPrefix string
	// Format is the dialect override: "auto", "elements" or "texts".
	Format string
	// Languages are the discovered target languages, sorted by code.
	Languages []Language
}

// reLangFile matches <prefix>_<code>.xml for one prefix.
func reLangFile(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(prefix) + `_([a-z]{2})\.xml$`)
}

// Detect resolves the project configuration for a directory: defaults,
// .langsync.yaml overrides, file-prefix detection and target-language
// discovery. Returns ErrNoSourceFile when no source file can be located.
func Detect(dir string) (*Project, error) {
	p := &Project{
		Dir:                dir,
		FilePrefix:         PrefixAuto,
		SourceLang:         DefaultSourceLang,
		UntranslatedPrefix: DefaultUntranslatedPrefix,
		Format:             FormatAuto,
	}

	sf, err := LoadSyncFile(dir)
	if err != nil {
		return nil, err
	}
	if sf != nil {
		sf.apply(p)
	}

	if p.FilePrefix == PrefixAuto {
		prefix, err := detectFilePrefix(dir, p.SourceLang)
		if err != nil {
			return nil, err
		}
		p.FilePrefix = prefix
	}

	if sf != nil && len(sf.Languages) > 0 {
		for _, code := range sf.Languages {
			code = strings.ToLower(strings.TrimSpace(code))
			if code == "" || code == p.SourceLang {
				continue
			}
			p.Languages = append(p.Languages, Language{Code: code, Name: langmeta.Resolve(code)})
		}
	} else {
		p.Languages = discoverLanguages(dir, p.FilePrefix, p.SourceLang)
	}

	sort.Slice(p.Languages, func(i, j int) bool { return p.Languages[i].Code < p.Languages[j].Code })

	return p, nil
}

// detectFilePrefix probes for a source-language file under each prefix in
// priority order, then falls back to scanning the directory for any file
// matching a supported naming convention.
func detectFilePrefix(dir, sourceLang string) (string, error) {
	for _, prefix := range Prefixes {
		if fileExists(filepath.Join(dir, fmt.Sprintf("%s_%s.xml", prefix, sourceLang))) {
			return prefix, nil
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		for _, prefix := range Prefixes {
			if reLangFile(prefix).MatchString(entry.Name()) {
				return prefix, nil
			}
		}
	}

	return "", ErrNoSourceFile
}

// discoverLanguages scans the directory for target-language files under the
// resolved prefix, excluding the source language.
func discoverLanguages(dir, prefix, sourceLang string) []Language {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	pattern := reLangFile(prefix)
	var langs []Language
	for _, entry := range entries {
		m := pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		code := strings.ToLower(m[1])
		if code == sourceLang {
			continue
		}
		langs = append(langs, Language{Code: code, Name: langmeta.Resolve(code)})
	}
	return langs
}

// SourcePath returns the path of the source-language file.
func (p *Project) SourcePath() string {
	return filepath.Join(p.Dir, fmt.Sprintf("%s_%s.xml", p.FilePrefix, p.SourceLang))
}

// LangPath returns the path of a target language's file.
func (p *Project) LangPath(code string) string {
	return filepath.Join(p.Dir, fmt.Sprintf("%s_%s.xml", p.FilePrefix, code))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
