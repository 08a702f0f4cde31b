// Package xmlfile implements reading and patching of game localization XML
// files in the two supported entry dialects:
//
//	<e k="key" v="value" eh="hash" />   (elements — embedded source hashes)
//	<text name="key" text="value"/>     (texts — no hash support)
//
// Files are never re-serialized as a whole. Parse keeps the raw file text,
// and all mutations are expressed as textual patches (insert a new entry
// line, rewrite one entry's hash attribute) so that comments, formatting and
// unrecognized content survive byte-for-byte. Attribute values are kept in
// their escaped on-disk form end to end; nothing is unescaped on read or
// re-escaped on pass-through.
package xmlfile

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrUnknownDialect is returned when a source file contains neither dialect's
// entry marker. Callers must treat it as fatal for every command.
var ErrUnknownDialect = errors.New("could not detect XML format from source file")

// ---------------------------------------------------------------------------
// Dialect
// ---------------------------------------------------------------------------

// Dialect identifies the entry encoding of a translation file set.
type Dialect string

const (
	// DialectElements: <e k="" v="" eh=""/> entries with embedded source hashes.
	DialectElements Dialect = "elements"
	// DialectTexts: <text name="" text=""/> entries, no hash support.
	DialectTexts Dialect = "texts"
)

// SupportsHash reports whether entries of this dialect carry an embedded
// source hash. Staleness detection is undefined without it.
func (d Dialect) SupportsHash() bool { return d == DialectElements }

// ContainerTag returns the closing container element name used as the
// fallback insertion anchor.
func (d Dialect) ContainerTag() string {
	if d == DialectElements {
		return "elements"
	}
	return "texts"
}

// DetectDialect determines the entry dialect from a source file's content.
// Detection is done once, on the source file, and assumed uniform across the
// whole language set.
func DetectDialect(content string) (Dialect, error) {
	if strings.Contains(content, `<e k="`) {
		return DialectElements, nil
	}
	if strings.Contains(content, `<text name="`) {
		return DialectTexts, nil
	}
	return "", ErrUnknownDialect
}

// ---------------------------------------------------------------------------
// Data model
// ---------------------------------------------------------------------------

// Entry is a single key/value record. Value holds the escaped on-disk text.
// Hash is the embedded source fingerprint (elements dialect only; empty when
// absent). FormatTag reflects an optional tag="format" attribute.
type Entry struct {
	Key       string
	Value     string
	Hash      string
	FormatTag bool
}

// Table is the parsed representation of one translation file.
type Table struct {
	// Entries maps key to its entry. When a key appears more than once the
	// last occurrence wins for lookups.
	Entries map[string]Entry
	// OrderedKeys lists every entry occurrence in document order, including
	// repeats. The source table's order is canonical for insertion placement.
	OrderedKeys []string
	// Duplicates records one element per repeated occurrence of a key.
	Duplicates []string
	// Raw is the unmodified file text, retained for minimal-diff patching.
	Raw string
	// Dialect the table was parsed with.
	Dialect Dialect
}

// Entry match patterns. The elements pattern is deliberately conservative:
// it requires k and v first (in that order) and captures the attribute tail,
// from which eh and tag are extracted separately so they may appear in any
// order.
var (
	reElements = regexp.MustCompile(`<e k="([^"]+)" v="([^"]*)"([^>]*)\s*/>`)
	reTexts    = regexp.MustCompile(`<text name="([^"]+)" text="([^"]*)"\s*/>`)
	reHashAttr = regexp.MustCompile(`eh="([^"]*)"`)
)

// Parse extracts every well-formed entry occurrence from raw file text.
func Parse(content string, d Dialect) *Table {
	t := &Table{
		Entries: make(map[string]Entry),
		Raw:     content,
		Dialect: d,
	}

	pattern := reTexts
	if d == DialectElements {
		pattern = reElements
	}

	for _, m := range pattern.FindAllStringSubmatch(content, -1) {
		e := Entry{Key: m[1], Value: m[2]}
		if d == DialectElements {
			attrs := m[3]
			if hm := reHashAttr.FindStringSubmatch(attrs); hm != nil {
				e.Hash = hm[1]
			}
			e.FormatTag = strings.Contains(attrs, `tag="format"`)
		}

		if _, seen := t.Entries[e.Key]; seen {
			t.Duplicates = append(t.Duplicates, e.Key)
		}
		t.Entries[e.Key] = e
		t.OrderedKeys = append(t.OrderedKeys, e.Key)
	}

	return t
}

// ParseFile reads and parses a translation file.
func ParseFile(path string, d Dialect) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data), d), nil
}

// Has reports whether a key is present in the table.
func (t *Table) Has(key string) bool {
	_, ok := t.Entries[key]
	return ok
}

// Len returns the number of distinct keys.
func (t *Table) Len() int { return len(t.Entries) }

// ---------------------------------------------------------------------------
// Serialization
// ---------------------------------------------------------------------------

// FormatEntry renders a single entry line in the canonical attribute order
// for the dialect. The value must already be in escaped form; it is emitted
// untouched so that Parse(FormatEntry(...)) round-trips exactly.
func FormatEntry(key, value, hash string, formatTag bool, d Dialect) string {
	if d == DialectElements {
		if formatTag {
			return fmt.Sprintf(`<e k="%s" v="%s" eh="%s" tag="format"/>`, key, value, hash)
		}
		return fmt.Sprintf(`<e k="%s" v="%s" eh="%s" />`, key, value, hash)
	}
	return fmt.Sprintf(`<text name="%s" text="%s"/>`, key, value)
}

// EscapeXML escapes the four XML metacharacters in a value built from
// unescaped text. Values read from existing files are already escaped and
// must not be passed through here again.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return strings.ReplaceAll(s, `"`, "&quot;")
}

// ---------------------------------------------------------------------------
// Raw-text patching
// ---------------------------------------------------------------------------

// EntryPattern compiles a pattern matching one key's entry occurrence,
// capturing the value and the attribute tail (elements dialect).
func EntryPattern(key string, d Dialect) *regexp.Regexp {
	if d == DialectElements {
		return regexp.MustCompile(`<e k="` + regexp.QuoteMeta(key) + `" v="([^"]*)"([^>]*)\s*/>`)
	}
	return regexp.MustCompile(`<text name="` + regexp.QuoteMeta(key) + `" text="([^"]*)"\s*/>`)
}

// InsertPos computes the byte offset at which a new entry for key should be
// inserted into raw. The position is immediately after the nearest key that
// precedes it in sourceOrder and is present in the target, or just before
// the closing container tag when no such predecessor exists. Returns -1 when
// no anchor can be found at all.
func InsertPos(raw, key string, sourceOrder []string, present map[string]bool, d Dialect) int {
	idx := -1
	for i, k := range sourceOrder {
		if k == key {
			idx = i
			break
		}
	}

	for i := idx - 1; i >= 0; i-- {
		prev := sourceOrder[i]
		if !present[prev] {
			continue
		}
		if m := EntryPattern(prev, d).FindStringIndex(raw); m != nil {
			return m[1]
		}
	}

	if close := strings.Index(raw, "</"+d.ContainerTag()+">"); close != -1 {
		return close
	}
	return -1
}

var reStripHash = regexp.MustCompile(`\s*eh="[^"]*"`)

// RewriteHash rewrites the eh attribute of one key's entry in place, leaving
// its value untouched. The entry is normalized to the canonical attribute
// order (repeated rewrites are stable). Only meaningful for the elements
// dialect; raw is returned unchanged for texts.
func RewriteHash(raw, key, newHash string, d Dialect) string {
	if !d.SupportsHash() {
		return raw
	}
	return EntryPattern(key, d).ReplaceAllStringFunc(raw, func(match string) string {
		m := EntryPattern(key, d).FindStringSubmatch(match)
		if m == nil {
			return match
		}
		value, attrs := m[1], m[2]
		formatTag := strings.Contains(reStripHash.ReplaceAllString(attrs, ""), `tag="format"`)
		return FormatEntry(key, value, newHash, formatTag, d)
	})
}
