package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

const stubXML = `<elements>
		<e k="greeting" v="Hello" eh="8b1a9953" />
</elements>`

// ---------------------------------------------------------------------------
// Detection
// ---------------------------------------------------------------------------

func TestDetect_LangPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lang_en.xml", stubXML)
	writeFile(t, dir, "lang_de.xml", stubXML)
	writeFile(t, dir, "lang_fr.xml", stubXML)

	p, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if p.FilePrefix != "lang" {
		t.Errorf("FilePrefix = %q, want lang", p.FilePrefix)
	}
	if p.SourceLang != "en" || p.UntranslatedPrefix != "[EN] " {
		t.Errorf("defaults not applied: %+v", p)
	}

	// Source language excluded, remainder sorted by code.
	if len(p.Languages) != 2 {
		t.Fatalf("Languages = %v, want de and fr", p.Languages)
	}
	if p.Languages[0].Code != "de" || p.Languages[0].Name != "German" {
		t.Errorf("Languages[0] = %+v", p.Languages[0])
	}
	if p.Languages[1].Code != "fr" || p.Languages[1].Name != "French" {
		t.Errorf("Languages[1] = %+v", p.Languages[1])
	}

	if p.SourcePath() != filepath.Join(dir, "lang_en.xml") {
		t.Errorf("SourcePath = %q", p.SourcePath())
	}
	if p.LangPath("de") != filepath.Join(dir, "lang_de.xml") {
		t.Errorf("LangPath = %q", p.LangPath("de"))
	}
}

func TestDetect_PrefixPriority(t *testing.T) {
	// When several prefixes have a source file, the first in priority order
	// wins: lang > translation > l10n.
	dir := t.TempDir()
	writeFile(t, dir, "translation_en.xml", stubXML)
	writeFile(t, dir, "l10n_en.xml", stubXML)

	p, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if p.FilePrefix != "translation" {
		t.Errorf("FilePrefix = %q, want translation", p.FilePrefix)
	}
}

func TestDetect_FallbackScan(t *testing.T) {
	// No source-language file, but a target file reveals the prefix.
	dir := t.TempDir()
	writeFile(t, dir, "l10n_de.xml", stubXML)

	p, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if p.FilePrefix != "l10n" {
		t.Errorf("FilePrefix = %q, want l10n", p.FilePrefix)
	}
}

func TestDetect_NoSourceFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "unrelated.xml", stubXML)

	_, err := Detect(dir)
	if err != ErrNoSourceFile {
		t.Errorf("got %v, want ErrNoSourceFile", err)
	}
}

// ---------------------------------------------------------------------------
// .langsync.yaml
// ---------------------------------------------------------------------------

func TestDetect_SyncFileOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "translation_de.xml", stubXML)
	writeFile(t, dir, "translation_pl.xml", stubXML)
	writeFile(t, dir, SyncFileName, `
source_lang: de
untranslated_prefix: "[DE] "
file_prefix: translation
format: elements
`)

	p, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if p.SourceLang != "de" {
		t.Errorf("SourceLang = %q, want de", p.SourceLang)
	}
	if p.UntranslatedPrefix != "[DE] " {
		t.Errorf("UntranslatedPrefix = %q", p.UntranslatedPrefix)
	}
	if p.FilePrefix != "translation" || p.Format != "elements" {
		t.Errorf("overrides not applied: %+v", p)
	}
	// de is now the source language and must not appear as a target.
	if len(p.Languages) != 1 || p.Languages[0].Code != "pl" {
		t.Errorf("Languages = %v, want [pl]", p.Languages)
	}
}

func TestDetect_SyncFileLanguageList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lang_en.xml", stubXML)
	writeFile(t, dir, "lang_de.xml", stubXML)
	writeFile(t, dir, "lang_fr.xml", stubXML)
	writeFile(t, dir, SyncFileName, "languages: [fr]\n")

	p, err := Detect(dir)
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if len(p.Languages) != 1 || p.Languages[0].Code != "fr" {
		t.Errorf("Languages = %v, want [fr]", p.Languages)
	}
}

func TestLoadSyncFile_Missing(t *testing.T) {
	sf, err := LoadSyncFile(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSyncFile error: %v", err)
	}
	if sf != nil {
		t.Errorf("got %+v, want nil for absent file", sf)
	}
}

func TestLoadSyncFile_InvalidEnum(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SyncFileName, "format: po\n")

	if _, err := LoadSyncFile(dir); err == nil {
		t.Error("invalid format value accepted")
	}

	writeFile(t, dir, SyncFileName, "file_prefix: strings\n")
	if _, err := LoadSyncFile(dir); err == nil {
		t.Error("invalid file_prefix value accepted")
	}
}
