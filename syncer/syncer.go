// Package syncer reconciles target translation tables against the source
// table: it classifies every key (missing, stale, orphaned, up to date),
// inserts missing entries at source-ordered positions, and refreshes
// embedded provenance hashes.
//
// A target entry's hash always records the fingerprint of the source text it
// was translated from — never of its own value. Hash equality means
// "translated from the current source text"; inequality means stale.
// The syncer never deletes content, so a run over an already-synchronized
// file set is a no-op.
package syncer

import (
	"fmt"
	"strings"

	"github.com/XelaNull/langsync/fingerprint"
	"github.com/XelaNull/langsync/validate"
	"github.com/XelaNull/langsync/xmlfile"
)

// SourceHashes computes the current fingerprint of every source value.
// All targets in one run are compared against the same map.
func SourceHashes(source *xmlfile.Table) map[string]string {
	hashes := make(map[string]string, len(source.Entries))
	for key, e := range source.Entries {
		hashes[key] = fingerprint.Sum(e.Value)
	}
	return hashes
}

// hasPlaceholder reports whether a value still carries the untranslated
// placeholder prefix.
func hasPlaceholder(value, prefix string) bool {
	return prefix != "" && strings.HasPrefix(value, prefix)
}

// sourceKeys returns the source table's distinct keys in document order.
func sourceKeys(source *xmlfile.Table) []string {
	seen := make(map[string]bool, len(source.Entries))
	keys := make([]string, 0, len(source.Entries))
	for _, key := range source.OrderedKeys {
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}

// ---------------------------------------------------------------------------
// Classification
// ---------------------------------------------------------------------------

// Result is the three-way relationship between a source and a target table,
// as used by the sync operation.
type Result struct {
	// Missing keys exist in the source but not in the target (source order).
	Missing []string
	// Stale keys have a provenance hash that no longer matches the source
	// fingerprint. Placeholder values are never stale — they have not been
	// translated yet. Empty under a dialect without hash support.
	Stale []string
	// Orphaned keys exist in the target but not in the source. Reported,
	// never auto-removed.
	Orphaned []string
	// Duplicates are the target's repeated keys (one element per repeat).
	Duplicates []string
}

// Classify computes the sync-side relationship between source and target.
func Classify(source, target *xmlfile.Table, srcHashes map[string]string, prefix string) Result {
	var res Result

	for _, key := range sourceKeys(source) {
		e, ok := target.Entries[key]
		switch {
		case !ok:
			res.Missing = append(res.Missing, key)
		case target.Dialect.SupportsHash() &&
			e.Hash != srcHashes[key] &&
			!hasPlaceholder(e.Value, prefix):
			res.Stale = append(res.Stale, key)
		}
	}

	for _, key := range target.OrderedKeys {
		if !source.Has(key) {
			res.Orphaned = append(res.Orphaned, key)
		}
	}

	res.Duplicates = append(res.Duplicates, target.Duplicates...)
	return res
}

// ---------------------------------------------------------------------------
// Reporting-side classification
// ---------------------------------------------------------------------------

// StaleEntry describes one stale key with its hash transition.
type StaleEntry struct {
	Key     string
	OldHash string
	NewHash string
}

// UntranslatedEntry describes one untranslated key and why it was flagged.
type UntranslatedEntry struct {
	Key    string
	Reason string
}

// Breakdown is the per-key classification used by the read-only commands.
// Unlike Result, it separates untranslated entries (placeholder prefix or
// exact source match) from stale ones, and untranslated takes precedence.
type Breakdown struct {
	Translated   []string
	Missing      []string
	Stale        []StaleEntry
	Untranslated []UntranslatedEntry
	Duplicates   []string
	Orphaned     []string
}

// Inspect classifies every source key for reporting. An entry is
// untranslated when it carries the placeholder prefix, or when it is
// byte-identical to the source value and the source is neither a format-only
// string nor a recognized cognate. Staleness requires a recorded hash and is
// only computed for dialects with hash support.
func Inspect(source, target *xmlfile.Table, srcHashes map[string]string, prefix string) Breakdown {
	var b Breakdown

	for _, key := range sourceKeys(source) {
		src := source.Entries[key]
		e, ok := target.Entries[key]
		if !ok {
			b.Missing = append(b.Missing, key)
			continue
		}

		switch {
		case hasPlaceholder(e.Value, prefix):
			b.Untranslated = append(b.Untranslated, UntranslatedEntry{
				Key:    key,
				Reason: fmt.Sprintf("has %s prefix", strings.TrimSpace(prefix)),
			})
		case e.Value == src.Value && !validate.IsFormatOnly(src.Value) && !validate.IsCognate(src.Value):
			b.Untranslated = append(b.Untranslated, UntranslatedEntry{
				Key:    key,
				Reason: "exact match (not cognate)",
			})
		case target.Dialect.SupportsHash() && e.Hash != "" && e.Hash != srcHashes[key]:
			b.Stale = append(b.Stale, StaleEntry{Key: key, OldHash: e.Hash, NewHash: srcHashes[key]})
		default:
			b.Translated = append(b.Translated, key)
		}
	}

	for _, key := range target.OrderedKeys {
		if !source.Has(key) {
			b.Orphaned = append(b.Orphaned, key)
		}
	}

	b.Duplicates = append(b.Duplicates, target.Duplicates...)
	return b
}

// ---------------------------------------------------------------------------
// Mutation
// ---------------------------------------------------------------------------

// RefreshSourceHashes rewrites every source entry whose stored hash differs
// from the fingerprint of its own value, and returns the patched content and
// the number of entries updated. Run once per sync, strictly before any
// target is processed, so all targets observe the same refreshed hashes.
// No-op for dialects without hash support.
func RefreshSourceHashes(source *xmlfile.Table) (string, int) {
	content := source.Raw
	if !source.Dialect.SupportsHash() {
		return content, 0
	}

	updated := 0
	for _, key := range sourceKeys(source) {
		e := source.Entries[key]
		correct := fingerprint.Sum(e.Value)
		if e.Hash != correct {
			content = xmlfile.RewriteHash(content, key, correct, source.Dialect)
			updated++
		}
	}
	return content, updated
}

// Outcome is the result of syncing one target table.
type Outcome struct {
	Result
	// Content is the patched file body.
	Content string
	// Added is the number of entries inserted.
	Added int
}

// Sync reconciles a target table against the source and produces the
// updated file body. Missing keys are inserted as placeholder entries
// (prefix + source value, hashed with the source fingerprint) immediately
// after their nearest source-ordered predecessor present in the target.
// For hash-capable dialects the hashes of already-present, in-sync entries
// are refreshed to the current source fingerprint; genuinely stale values
// are left untouched so the stale flag persists until re-translation.
func Sync(source, target *xmlfile.Table, srcHashes map[string]string, prefix string) Outcome {
	out := Outcome{Result: Classify(source, target, srcHashes, prefix)}
	content := target.Raw

	present := make(map[string]bool, len(target.Entries))
	for key := range target.Entries {
		present[key] = true
	}

	missingSet := make(map[string]bool, len(out.Missing))
	for _, key := range out.Missing {
		missingSet[key] = true
	}
	staleSet := make(map[string]bool, len(out.Stale))
	for _, key := range out.Stale {
		staleSet[key] = true
	}

	srcOrder := sourceKeys(source)

	for _, key := range out.Missing {
		src := source.Entries[key]
		placeholder := prefix + src.Value
		entry := "\n\t\t" + xmlfile.FormatEntry(key, placeholder, srcHashes[key], false, target.Dialect)

		pos := xmlfile.InsertPos(content, key, srcOrder, present, target.Dialect)
		if pos == -1 {
			continue
		}
		content = content[:pos] + entry + content[pos:]
		present[key] = true
		out.Added++
	}

	if target.Dialect.SupportsHash() {
		for _, key := range srcOrder {
			e, ok := target.Entries[key]
			if !ok || missingSet[key] {
				continue
			}

			hasNoHash := e.Hash == ""
			isUntranslated := hasPlaceholder(e.Value, prefix)
			if !staleSet[key] || (hasNoHash && !isUntranslated) {
				content = xmlfile.RewriteHash(content, key, srcHashes[key], target.Dialect)
			}
		}
	}

	out.Content = content
	return out
}
