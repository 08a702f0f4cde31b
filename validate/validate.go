// Package validate provides stateless per-entry quality checks for
// translation values: printf-style format-specifier parity, empty values,
// leading/trailing whitespace, and the cognate/format-only heuristics used
// to suppress false "untranslated" positives.
//
// All checks are pure functions over a (source value, target value) pair and
// carry no file state, so the synchronizer can stay independent of them.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Kind classifies a validation issue.
type Kind string

const (
	// KindEmpty: the translation is the empty string.
	KindEmpty Kind = "empty"
	// KindWhitespace: the translation has leading or trailing whitespace.
	KindWhitespace Kind = "whitespace"
	// KindFormatCount: source and target have a different number of format specifiers.
	KindFormatCount Kind = "count"
	// KindFormatMismatch: a positional format specifier differs in type.
	KindFormatMismatch Kind = "mismatch"
)

// Issue describes a single validation defect for one key.
type Issue struct {
	Key     string
	Kind    Kind
	Message string
	// Expected and Found carry both specifier lists for format issues.
	Expected []string
	Found    []string
}

// IsFormat reports whether the issue is a format-specifier defect. These are
// severe: a mismatched specifier crashes the consuming application at
// substitution time.
func (i Issue) IsFormat() bool {
	return i.Kind == KindFormatCount || i.Kind == KindFormatMismatch
}

// ---------------------------------------------------------------------------
// Format specifiers
// ---------------------------------------------------------------------------

// reFormatSpec matches printf-style specifiers: %s, %d, %i, %.1f, %ld, etc.
// The space flag is deliberately excluded so that "40% success" is not read
// as a "% s" specifier — real specifiers have no space before the type letter.
var reFormatSpec = regexp.MustCompile(`%[-+0#]*(\d+)?(\.\d+)?(hh?|ll?|L|z|j|t)?[diouxXeEfFgGaAcspn]`)

// FormatSpecifiers extracts the format specifiers from a string, sorted for
// comparison.
func FormatSpecifiers(s string) []string {
	specs := reFormatSpec.FindAllString(s, -1)
	sort.Strings(specs)
	return specs
}

// CheckFormatSpecifiers compares format specifiers between a source and a
// target value. It returns nil when they agree.
func CheckFormatSpecifiers(sourceValue, targetValue, key string) *Issue {
	src := FormatSpecifiers(sourceValue)
	dst := FormatSpecifiers(targetValue)

	if len(src) != len(dst) {
		return &Issue{
			Key:      key,
			Kind:     KindFormatCount,
			Expected: src,
			Found:    dst,
			Message:  fmt.Sprintf("Expected %d format specifier(s), found %d", len(src), len(dst)),
		}
	}

	for i := range src {
		if src[i] != dst[i] {
			return &Issue{
				Key:      key,
				Kind:     KindFormatMismatch,
				Expected: src,
				Found:    dst,
				Message:  fmt.Sprintf("Format specifier mismatch: expected %q, found %q", src[i], dst[i]),
			}
		}
	}

	return nil
}

// ---------------------------------------------------------------------------
// Simple value checks
// ---------------------------------------------------------------------------

// IsEmpty reports whether a translation value is empty.
func IsEmpty(value string) bool { return value == "" }

// HasWhitespaceIssue reports leading or trailing whitespace.
func HasWhitespaceIssue(value string) bool {
	if value == "" {
		return false
	}
	return value != strings.TrimSpace(value)
}

// ---------------------------------------------------------------------------
// Format-only detection
// ---------------------------------------------------------------------------

var (
	reStripSpecs = regexp.MustCompile(`%[-+0-9]*\.?[0-9]*[sdfeEgGoxXuc%]`)
	reStripUnits = regexp.MustCompile(`(?i)\b(km|m|kg|l|h|s|ms|px|pcs)\b`)
	reStripPunct = regexp.MustCompile(`[:\s.,\-/()\[\]{}]+`)
)

// IsFormatOnly reports whether a string carries no translatable text: after
// stripping format specifiers, common unit tokens and punctuation, nothing
// remains. Strings like "%s %%", "%d km" and "%s:%s" are identical in every
// language.
func IsFormatOnly(value string) bool {
	if value == "" {
		return false
	}
	stripped := reStripSpecs.ReplaceAllString(value, "")
	stripped = reStripUnits.ReplaceAllString(stripped, "")
	stripped = reStripPunct.ReplaceAllString(stripped, "")
	return stripped == ""
}

// ---------------------------------------------------------------------------
// Cognate detection
// ---------------------------------------------------------------------------

// commonCognates are single-word technical/brand terms legitimately shared
// across languages.
var commonCognates = map[string]bool{
	"type": true, "total": true, "status": true, "agent": true, "normal": true,
	"ok": true, "info": true, "mode": true,
	"generator": true, "starter": true, "min": true, "max": true, "per": true,
	"vs": true, "hardcore": true,
	"obd": true, "ecu": true, "can": true, "dtc": true, "debug": true,
	"regional": true, "national": true,
	"original": true, "score": true, "principal": true, "ha": true, "pcs": true,
	"elite": true, "premium": true,
	"standard": true, "budget": true, "basic": true, "advanced": true,
	"pro": true, "master": true,
	"leasing": true, "spawning": true, "repo": true, "state": true,
	"misfire": true, "overheat": true,
	"runaway": true, "cutout": true, "workhorse": true, "integration": true,
	"vanilla": true,
	"item": true, "land": true, "thermostat": true,
	"description": true, "confirmation": true, "actions": true,
	"excellent": true, "finance": true, "finances": true,
	"acceptable": true, "stable": true, "ratio": true,
}

// commonPhrases are multi-word stock phrases shared across languages.
var commonPhrases = map[string]bool{
	"regional agent": true, "national agent": true, "local agent": true,
	"no": true, "yes": true, "si": true, "ja": true,
	"obd scanner": true, "service truck": true, "spawn lemon": true,
	"toggle debug": true,
	"reset cd": true,
}

var (
	reSymbolsOnly  = regexp.MustCompile(`^[#$@%&*()\[\]{}\-+:,./\d\s]+$`)
	reProperName   = regexp.MustCompile(`^-\s+[A-Z][a-z]+$`)
	reVsPhrase     = regexp.MustCompile(`(?i)^vs\s+`)
	reAllCapsLabel = regexp.MustCompile(`^[A-Z\s:]+$`)
	reCapsFiller   = regexp.MustCompile(`[:\s]`)
	reWordColon    = regexp.MustCompile(`^[A-Za-z]+:\s*$`)
	reMoneyAmount  = regexp.MustCompile(`^[+\-]?\$[\d,]+$`)
	reSetMoney     = regexp.MustCompile(`^Set \$\d+$`)
	reAdminLabel   = regexp.MustCompile(`(?i)^(Rel|Surge|Flat):`)
	reSideSuffix   = regexp.MustCompile(`\(L\)$|\(R\)$`)
	reIntegration  = regexp.MustCompile(`(?i)^[A-Z]{2,5}\s+Integration$`)
	reModelNumber  = regexp.MustCompile(`(?i)^[A-Z]+\s+[A-Z0-9\-]+`)
)

// IsCognate reports whether a value is likely a cognate or international
// term — legitimately identical across languages and therefore never flagged
// as untranslated. The checks form a prioritized sequence of structural
// patterns accumulated from real translation sets.
func IsCognate(value string) bool {
	if value == "" {
		return true
	}

	length := utf8.RuneCountInString(value)
	if length > 50 {
		return false
	}

	// 1. Very short (1-3 characters)
	if length <= 3 {
		return true
	}

	// 2. Only symbols, numbers and punctuation
	if reSymbolsOnly.MatchString(value) {
		return true
	}

	// 3. Proper names ("- Name")
	if reProperName.MatchString(value) {
		return true
	}

	// 4. Known single-word cognates and technical terms
	lower := strings.ToLower(strings.TrimSpace(value))
	if commonCognates[lower] {
		return true
	}

	// 5. Known multi-word international phrases
	if commonPhrases[lower] {
		return true
	}

	// 6. Phrases starting with "vs"
	if reVsPhrase.MatchString(value) {
		return true
	}

	// 7. All-caps labels
	if reAllCapsLabel.MatchString(value) && utf8.RuneCountInString(reCapsFiller.ReplaceAllString(value, "")) >= 2 {
		return true
	}

	// 8. Single word ending in a colon
	if reWordColon.MatchString(value) {
		return true
	}

	// 9. Money symbols with amounts
	if reMoneyAmount.MatchString(value) || reSetMoney.MatchString(value) {
		return true
	}

	// 10. Admin labels with abbreviations or side markers
	if reAdminLabel.MatchString(value) || reSideSuffix.MatchString(value) {
		return true
	}

	// 11. Mod integration names
	if reIntegration.MatchString(value) {
		return true
	}

	// 12. Vehicle model names with alphanumerics
	if reModelNumber.MatchString(value) && len(strings.Split(value, " ")) <= 4 {
		return true
	}

	return false
}

// ---------------------------------------------------------------------------
// Entry validation
// ---------------------------------------------------------------------------

// Entry validates a translation value against its source. Entries still
// carrying the untranslated placeholder prefix are skipped entirely — they
// are already known to need work, and re-flagging them would be noise.
func Entry(key, sourceValue, targetValue, untranslatedPrefix string) []Issue {
	var issues []Issue

	if untranslatedPrefix != "" && strings.HasPrefix(targetValue, untranslatedPrefix) {
		return issues
	}

	if IsEmpty(targetValue) {
		issues = append(issues, Issue{Key: key, Kind: KindEmpty, Message: "Empty translation value"})
	}

	if HasWhitespaceIssue(targetValue) {
		issues = append(issues, Issue{
			Key:     key,
			Kind:    KindWhitespace,
			Message: fmt.Sprintf("Whitespace issue: %q", truncate(targetValue, 20)+"..."),
		})
	}

	if fi := CheckFormatSpecifiers(sourceValue, targetValue, key); fi != nil {
		issues = append(issues, *fi)
	}

	return issues
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
