// langsync — hash-based translation synchronization tool for game
// localization XML files.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/XelaNull/langsync/config"
	"github.com/XelaNull/langsync/i18n"
	"github.com/XelaNull/langsync/syncer"
	"github.com/XelaNull/langsync/validate"
	"github.com/XelaNull/langsync/xmlfile"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

const heavyRule = "══════════════════════════════════════════════════════════════════════"

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var workDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "langsync",
		Short: "Keep per-language localization XML files in sync with the source language",
		Long: `langsync — hash-based translation synchronization tool.

Keeps a set of <prefix>_<code>.xml localization files consistent with one
authoritative source-language file. Every entry carries an embedded hash of
the source text it was translated from, so langsync can tell when the source
changed but a translation was not updated (stale detection).

Commands:
  sync      Add missing keys, update source hashes, report stale entries
  check     Report all issues, exit code 1 if missing keys exist
  status    Quick overview: translated/stale/missing per language
  report    Detailed breakdown by language with lists of problem keys
  validate  CI-friendly: minimal output, exit codes only

Supported file prefixes (auto-detected):
  lang_XX.xml, translation_XX.xml, l10n_XX.xml

Supported XML formats (auto-detected):
  <e k="key" v="value" eh="hash"/>    elements format — full hash tracking
  <text name="key" text="value"/>     texts format — key sync only`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&workDir, "dir", ".", "Directory containing the translation files")

	root.AddCommand(
		newSyncCmd(),
		newCheckCmd(),
		newStatusCmd(),
		newReportCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("langsync version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// Shared project loading
// ---------------------------------------------------------------------------

// env is the loaded working state every command starts from: the detected
// project, the parsed source table and the per-key source fingerprints.
type env struct {
	proj      *config.Project
	dialect   xmlfile.Dialect
	source    *xmlfile.Table
	srcHashes map[string]string
}

// loadEnv detects the project and parses the source file. Detection and
// parse failures are fatal for every command: the error is logged and the
// process exits non-zero.
func loadEnv() *env {
	proj, err := config.Detect(workDir)
	if err != nil {
		logError("%v", err)
		if err == config.ErrNoSourceFile {
			logError("Looking for: lang_%s.xml, translation_%s.xml, or l10n_%s.xml",
				proj0SourceLang(), proj0SourceLang(), proj0SourceLang())
		}
		os.Exit(1)
	}

	sourcePath := proj.SourcePath()
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		logError("Source file not found: %s", sourcePath)
		os.Exit(1)
	}
	content := string(data)

	var dialect xmlfile.Dialect
	switch proj.Format {
	case string(xmlfile.DialectElements):
		dialect = xmlfile.DialectElements
	case string(xmlfile.DialectTexts):
		dialect = xmlfile.DialectTexts
	default:
		dialect, err = xmlfile.DetectDialect(content)
		if err != nil {
			logError("%v", err)
			os.Exit(1)
		}
	}

	source := xmlfile.Parse(content, dialect)
	return &env{
		proj:      proj,
		dialect:   dialect,
		source:    source,
		srcHashes: syncer.SourceHashes(source),
	}
}

// proj0SourceLang returns the source language that detection would have
// used, for error messages printed before a project exists.
func proj0SourceLang() string {
	if sf, err := config.LoadSyncFile(workDir); err == nil && sf != nil && sf.SourceLang != "" {
		return sf.SourceLang
	}
	return config.DefaultSourceLang
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ---------------------------------------------------------------------------
// sync (mutating)
// ---------------------------------------------------------------------------

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Add missing keys, update source hashes, report stale entries",
		Long: `Synchronize all target language files with the source file.

Missing keys are inserted with an untranslated placeholder value and the
source fingerprint as their hash. Source hashes are refreshed first so all
targets are compared against the current source text. Running sync twice in
a row produces byte-identical files — it never deletes content and never
overwrites a stale translation.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSync()
		},
	}
}

func runSync() {
	fmt.Println(heavyRule)
	fmt.Printf("TRANSLATION SYNC v%s - Hash-Based Synchronization\n", version)
	fmt.Println(heavyRule)
	fmt.Println()

	e := loadEnv()
	proj, dialect := e.proj, e.dialect
	sourcePath := proj.SourcePath()

	// Step 1: refresh hashes in the source file so every target is compared
	// against the current source text.
	fmt.Println("[1/3] Updating hashes in source file...")

	if dialect.SupportsHash() {
		content, updated := syncer.RefreshSourceHashes(e.source)
		if updated > 0 {
			if err := os.WriteFile(sourcePath, []byte(content), 0644); err != nil {
				logError("Writing %s: %v", sourcePath, err)
				os.Exit(1)
			}
			fmt.Printf("      Updated %d hash(es) in %s\n", updated, sourcePath)
		} else {
			fmt.Printf("      All hashes current in %s\n", sourcePath)
		}
		// Re-parse so the table reflects the refreshed hashes.
		e.source = xmlfile.Parse(content, dialect)
		e.srcHashes = syncer.SourceHashes(e.source)
	} else {
		fmt.Println("      Skipped (hash embedding only supported for 'elements' format)")
	}

	fmt.Println()
	fmt.Printf("[2/3] Source: %s (%d keys)\n", sourcePath, e.source.Len())
	noHash := ""
	if !dialect.SupportsHash() {
		noHash = " (no hash support - stale detection unavailable)"
	}
	fmt.Printf("      Format: %s%s\n", dialect, noHash)
	fmt.Println()

	fmt.Println("[3/3] Syncing to target languages...")
	fmt.Println()

	for _, lang := range proj.Languages {
		langPath := proj.LangPath(lang.Code)
		if !fileExists(langPath) {
			fmt.Printf("  %-18s: FILE NOT FOUND - skipping\n", lang.Name)
			continue
		}

		target, err := xmlfile.ParseFile(langPath, dialect)
		if err != nil {
			logError("Reading %s: %v", langPath, err)
			continue
		}

		// Validate present translations before patching; these diagnostics
		// are advisory and never block the sync.
		var formatErrors, emptyValues, whitespaceIssues []validate.Issue
		for _, key := range e.source.OrderedKeys {
			tgt, ok := target.Entries[key]
			if !ok {
				continue
			}
			for _, issue := range validate.Entry(key, e.source.Entries[key].Value, tgt.Value, proj.UntranslatedPrefix) {
				switch {
				case issue.IsFormat():
					formatErrors = append(formatErrors, issue)
				case issue.Kind == validate.KindEmpty:
					emptyValues = append(emptyValues, issue)
				case issue.Kind == validate.KindWhitespace:
					whitespaceIssues = append(whitespaceIssues, issue)
				}
			}
		}

		out := syncer.Sync(e.source, target, e.srcHashes, proj.UntranslatedPrefix)
		if err := os.WriteFile(langPath, []byte(out.Content), 0644); err != nil {
			logError("Writing %s: %v", langPath, err)
			continue
		}

		printSyncLine(lang.Name, out, formatErrors, emptyValues, whitespaceIssues)
	}

	fmt.Println()
	fmt.Println(heavyRule)
	fmt.Println(i18n.T("SYNC COMPLETE"))
	fmt.Println()
	if dialect.SupportsHash() {
		fmt.Println("Hash-based tracking is now embedded in your XML files:")
		fmt.Println(`  - Source entries have eh="hash" showing current text hash`)
		fmt.Println(`  - Target entries have eh="hash" showing what they were translated from`)
		fmt.Println("  - When hashes don't match = translation is STALE (needs update)")
	} else {
		fmt.Println("Using 'texts' XML format (no hash embedding).")
		fmt.Println("Missing keys, duplicates, orphans, and format errors are detected.")
		fmt.Println("For stale detection, consider migrating to 'elements' format.")
	}
	fmt.Println()
	fmt.Printf("New entries have %q prefix - they need translation!\n", proj.UntranslatedPrefix)
	fmt.Println(heavyRule)
}

// printSyncLine renders one language's sync result with capped detail lists.
func printSyncLine(name string, out syncer.Outcome, formatErrors, emptyValues, whitespaceIssues []validate.Issue) {
	var issues []string
	if out.Added > 0 {
		issues = append(issues, fmt.Sprintf("+%d added", out.Added))
	}
	if len(out.Stale) > 0 {
		issues = append(issues, fmt.Sprintf("%d stale", len(out.Stale)))
	}
	if len(out.Duplicates) > 0 {
		issues = append(issues, fmt.Sprintf("%d duplicates", len(out.Duplicates)))
	}
	if len(out.Orphaned) > 0 {
		issues = append(issues, fmt.Sprintf("%d orphaned", len(out.Orphaned)))
	}
	if len(formatErrors) > 0 {
		issues = append(issues, fmt.Sprintf("%d FORMAT ERRORS", len(formatErrors)))
	}
	if len(emptyValues) > 0 {
		issues = append(issues, fmt.Sprintf("%d empty", len(emptyValues)))
	}
	if len(whitespaceIssues) > 0 {
		issues = append(issues, fmt.Sprintf("%d whitespace", len(whitespaceIssues)))
	}

	if len(issues) == 0 {
		fmt.Printf("  %-18s: ✓ OK\n", name)
		return
	}
	fmt.Printf("  %-18s: %s\n", name, strings.Join(issues, ", "))

	if len(formatErrors) > 0 {
		fmt.Println("    🔴 FORMAT SPECIFIER ERRORS (will crash game!):")
		for _, err := range capIssues(formatErrors, 5) {
			fmt.Printf("    💥 %s: %s\n", err.Key, err.Message)
		}
		if len(formatErrors) > 5 {
			fmt.Printf("    ... and %d more format errors\n", len(formatErrors)-5)
		}
	}

	if out.Added > 0 {
		for _, key := range capKeys(out.Missing, 3) {
			fmt.Printf("    + %s\n", key)
		}
		if len(out.Missing) > 3 {
			fmt.Printf("    ... and %d more\n", len(out.Missing)-3)
		}
	}

	printKeyList(out.Stale, "Stale (English changed):", "~")
	printKeyList(out.Duplicates, "Duplicates (same key appears twice - remove one!):", "!!")
	printKeyList(out.Orphaned, "Orphaned (not in English - can delete):", "x")

	if len(emptyValues) > 0 {
		fmt.Printf("    Empty values: %s\n", joinIssueKeys(emptyValues, 3))
	}
	if len(whitespaceIssues) > 0 {
		fmt.Printf("    Whitespace issues: %s\n", joinIssueKeys(whitespaceIssues, 3))
	}
}

// printKeyList prints a full list under a header when short, or a single
// truncated line when long.
func printKeyList(keys []string, header, marker string) {
	switch {
	case len(keys) == 0:
	case len(keys) <= 5:
		fmt.Printf("    %s\n", header)
		for _, key := range keys {
			fmt.Printf("    %s %s\n", marker, key)
		}
	default:
		label := strings.SplitN(header, " ", 2)[0]
		fmt.Printf("    %s: %s ... +%d more\n", label, strings.Join(keys[:3], ", "), len(keys)-3)
	}
}

func capKeys(keys []string, n int) []string {
	if len(keys) > n {
		return keys[:n]
	}
	return keys
}

func capIssues(issues []validate.Issue, n int) []validate.Issue {
	if len(issues) > n {
		return issues[:n]
	}
	return issues
}

func joinIssueKeys(issues []validate.Issue, n int) string {
	var keys []string
	for _, issue := range capIssues(issues, n) {
		keys = append(keys, issue.Key)
	}
	s := strings.Join(keys, ", ")
	if len(issues) > n {
		s += fmt.Sprintf(" ... +%d more", len(issues)-n)
	}
	return s
}

// ---------------------------------------------------------------------------
// check (read-only, exit 1 on missing/duplicate/orphan defects)
// ---------------------------------------------------------------------------

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report all issues, exit code 1 if missing keys exist",
		Long: `Verify that every target language file is in sync with the source.

Prints a per-language issue line and a tabular summary. Exits with status 1
when any language has missing keys, duplicate keys, orphaned keys, or a
missing file — stale and untranslated entries are reported but do not fail
the check.`,
		Run: func(cmd *cobra.Command, args []string) {
			runCheck()
		},
	}
}

// langSummary is one row of the check summary table. missing == -1 marks a
// language whose file was not found.
type langSummary struct {
	name         string
	total        int
	missing      int
	stale        int
	untranslated int
	duplicates   int
	orphaned     int
}

func runCheck() {
	fmt.Println(heavyRule)
	fmt.Printf("TRANSLATION CHECK v%s\n", version)
	fmt.Println(heavyRule)
	fmt.Println()

	e := loadEnv()
	proj := e.proj

	fmt.Printf("%s: %s (%d keys)\n\n", i18n.T("Source"), proj.SourcePath(), e.source.Len())

	hasProblems := false
	var summary []langSummary

	for _, lang := range proj.Languages {
		langPath := proj.LangPath(lang.Code)
		if !fileExists(langPath) {
			fmt.Printf("  %-18s: FILE NOT FOUND\n", lang.Name)
			hasProblems = true
			summary = append(summary, langSummary{name: lang.Name, missing: -1})
			continue
		}

		target, err := xmlfile.ParseFile(langPath, e.dialect)
		if err != nil {
			logError("Reading %s: %v", langPath, err)
			hasProblems = true
			summary = append(summary, langSummary{name: lang.Name, missing: -1})
			continue
		}

		b := syncer.Inspect(e.source, target, e.srcHashes, proj.UntranslatedPrefix)

		var issues []string
		if len(b.Missing) > 0 {
			issues = append(issues, fmt.Sprintf("%d MISSING", len(b.Missing)))
		}
		if len(b.Stale) > 0 {
			issues = append(issues, fmt.Sprintf("%d stale", len(b.Stale)))
		}
		if len(b.Untranslated) > 0 {
			issues = append(issues, fmt.Sprintf("%d untranslated", len(b.Untranslated)))
		}
		if len(b.Duplicates) > 0 {
			issues = append(issues, fmt.Sprintf("%d duplicates", len(b.Duplicates)))
		}
		if len(b.Orphaned) > 0 {
			issues = append(issues, fmt.Sprintf("%d orphaned", len(b.Orphaned)))
		}

		if len(issues) == 0 {
			fmt.Printf("  %-18s: ✓ OK (%d keys)\n", lang.Name, target.Len())
		} else {
			if len(b.Missing) > 0 || len(b.Duplicates) > 0 || len(b.Orphaned) > 0 {
				hasProblems = true
			}
			fmt.Printf("  %-18s: %s\n", lang.Name, strings.Join(issues, ", "))
		}

		summary = append(summary, langSummary{
			name:         lang.Name,
			total:        target.Len(),
			missing:      len(b.Missing),
			stale:        len(b.Stale),
			untranslated: len(b.Untranslated),
			duplicates:   len(b.Duplicates),
			orphaned:     len(b.Orphaned),
		})
	}

	thinRule := strings.Repeat("─", 98)
	fmt.Println()
	fmt.Println(thinRule)
	fmt.Println(i18n.T("SUMMARY:"))
	fmt.Println(thinRule)
	fmt.Println("Language            | Total  | Missing | Stale | Untranslated | Duplicates | Orphaned")
	fmt.Println(thinRule)

	for _, s := range summary {
		status := "  "
		if s.missing > 0 || s.duplicates > 0 || s.orphaned > 0 {
			status = "!!"
		}
		totalStr, missingStr := fmt.Sprintf("%6d", s.total), fmt.Sprintf("%7d", s.missing)
		if s.missing == -1 {
			totalStr, missingStr = fmt.Sprintf("%6s", "N/A"), fmt.Sprintf("%7s", "N/A")
		}
		fmt.Printf("%s%-18s | %s | %s | %5d | %12d | %10d | %8d\n",
			status, s.name, totalStr, missingStr, s.stale, s.untranslated, s.duplicates, s.orphaned)
	}

	fmt.Println(thinRule)
	fmt.Println()

	if hasProblems {
		totalMissing, totalDuplicates, totalOrphaned := 0, 0, 0
		for _, s := range summary {
			if s.missing > 0 {
				totalMissing += s.missing
			}
			totalDuplicates += s.duplicates
			totalOrphaned += s.orphaned
		}
		if totalMissing > 0 {
			fmt.Println("CRITICAL: Missing keys detected! Run 'langsync sync' to fix.")
		}
		if totalDuplicates > 0 {
			fmt.Printf("CRITICAL: %d duplicate keys found! Manually remove duplicate entries from XML files.\n", totalDuplicates)
		}
		if totalOrphaned > 0 {
			fmt.Printf("WARNING: %d orphaned keys found (in target but not in English). Safe to delete.\n", totalOrphaned)
		}
		os.Exit(1)
	}

	totalStale, totalUntranslated := 0, 0
	for _, s := range summary {
		totalStale += s.stale
		totalUntranslated += s.untranslated
	}
	if totalStale > 0 {
		fmt.Printf("Note: %d stale entries need re-translation (English text changed).\n", totalStale)
	}
	if totalUntranslated > 0 {
		fmt.Printf("Note: %d entries have %q prefix and need translation.\n", totalUntranslated, proj.UntranslatedPrefix)
	}
	if totalStale == 0 && totalUntranslated == 0 {
		fmt.Println(i18n.T("All translations are complete and up to date!"))
	}
}

// ---------------------------------------------------------------------------
// status (read-only, terse per-language counts)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Quick overview: translated/stale/missing per language",
		Run: func(cmd *cobra.Command, args []string) {
			runStatus()
		},
	}
}

func runStatus() {
	fmt.Println()
	fmt.Println(heavyRule)
	fmt.Printf("TRANSLATION STATUS v%s\n", version)
	fmt.Println(heavyRule)
	fmt.Println()

	e := loadEnv()
	proj := e.proj

	fmt.Printf("%s: %s (%d keys)\n", i18n.T("Source"), proj.SourcePath(), e.source.Len())
	hashLabel := " (hash-enabled)"
	if !e.dialect.SupportsHash() {
		hashLabel = " (no hash support)"
	}
	fmt.Printf("%s: %s%s\n", i18n.T("Format"), e.dialect, hashLabel)
	fmt.Println()

	thinRule := strings.Repeat("─", 90)
	fmt.Println("Language            | Translated |  Stale  | Untranslated | Missing | Dups | Orphaned")
	fmt.Println(thinRule)

	for _, lang := range proj.Languages {
		langPath := proj.LangPath(lang.Code)
		if !fileExists(langPath) {
			fmt.Printf("%-20s|    N/A     |   N/A   |     N/A      |   N/A   |  N/A |    N/A\n", lang.Name)
			continue
		}

		target, err := xmlfile.ParseFile(langPath, e.dialect)
		if err != nil {
			logError("Reading %s: %v", langPath, err)
			continue
		}

		b := syncer.Inspect(e.source, target, e.srcHashes, proj.UntranslatedPrefix)

		// Format errors are counted inline; placeholder entries are skipped
		// since they have not been translated yet.
		formatErrs := 0
		for key, src := range e.source.Entries {
			tgt, ok := target.Entries[key]
			if !ok {
				continue
			}
			if issue := validate.CheckFormatSpecifiers(src.Value, tgt.Value, key); issue != nil &&
				!strings.HasPrefix(tgt.Value, proj.UntranslatedPrefix) {
				formatErrs++
			}
		}

		fmtStr := ""
		if formatErrs > 0 {
			fmtStr = fmt.Sprintf(" 🔴%d", formatErrs)
		}
		fmt.Printf("%-20s| %10d | %7d | %12d | %7d | %4d | %8d%s\n",
			lang.Name, len(b.Translated), len(b.Stale), len(b.Untranslated),
			len(b.Missing), len(b.Duplicates), len(b.Orphaned), fmtStr)
	}

	fmt.Println(thinRule)
	fmt.Println("🔴 = Format specifier errors (CRITICAL - will crash game!)")
}

// ---------------------------------------------------------------------------
// report (read-only, detailed per-language listings)
// ---------------------------------------------------------------------------

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Detailed breakdown by language with lists of problem keys",
		Run: func(cmd *cobra.Command, args []string) {
			runReport()
		},
	}
}

func runReport() {
	fmt.Println(heavyRule)
	fmt.Printf("TRANSLATION DETAILED REPORT v%s\n", version)
	fmt.Println(heavyRule)
	fmt.Println()

	e := loadEnv()
	proj := e.proj

	fmt.Printf("%s: %s (%d keys)\n\n", i18n.T("Source"), proj.SourcePath(), e.source.Len())

	boldRule := strings.Repeat("━", 74)

	for _, lang := range proj.Languages {
		langPath := proj.LangPath(lang.Code)
		if !fileExists(langPath) {
			fmt.Printf("%s (%s): FILE NOT FOUND\n\n", lang.Name, strings.ToUpper(lang.Code))
			continue
		}

		target, err := xmlfile.ParseFile(langPath, e.dialect)
		if err != nil {
			logError("Reading %s: %v", langPath, err)
			continue
		}

		b := syncer.Inspect(e.source, target, e.srcHashes, proj.UntranslatedPrefix)

		fmt.Println(boldRule)
		fmt.Printf("%s (%s)\n", lang.Name, strings.ToUpper(lang.Code))
		fmt.Println(boldRule)
		fmt.Printf("  Translated:    %d\n", len(b.Translated))
		fmt.Printf("  Missing:       %d\n", len(b.Missing))
		fmt.Printf("  Stale:         %d\n", len(b.Stale))
		fmt.Printf("  Untranslated:  %d\n", len(b.Untranslated))
		fmt.Printf("  Duplicates:    %d\n", len(b.Duplicates))
		fmt.Printf("  Orphaned:      %d\n", len(b.Orphaned))

		if len(b.Missing) > 0 {
			fmt.Println("\n  ── MISSING KEYS ──")
			for _, key := range capKeys(b.Missing, 10) {
				fmt.Printf("    - %s\n", key)
			}
			printMore(len(b.Missing), 10)
		}

		if len(b.Stale) > 0 {
			fmt.Println("\n  ── STALE (English changed since translation) ──")
			for i, item := range b.Stale {
				if i == 10 {
					break
				}
				fmt.Printf("    ~ %s  (%s → %s)\n", item.Key, item.OldHash, item.NewHash)
			}
			printMore(len(b.Stale), 10)
		}

		if len(b.Untranslated) > 0 {
			if len(b.Untranslated) <= 10 {
				fmt.Println("\n  ── UNTRANSLATED ──")
			} else {
				fmt.Println("\n  ── UNTRANSLATED (showing first 10) ──")
			}
			for i, item := range b.Untranslated {
				if i == 10 {
					break
				}
				fmt.Printf("    ? %s  (%s)\n", item.Key, item.Reason)
			}
			printMore(len(b.Untranslated), 10)
		}

		if len(b.Duplicates) > 0 {
			if len(b.Duplicates) <= 10 {
				fmt.Println("\n  ── DUPLICATES (same key appears twice - remove one!) ──")
			} else {
				fmt.Println("\n  ── DUPLICATES (showing first 10) ──")
			}
			for _, key := range capKeys(b.Duplicates, 10) {
				fmt.Printf("    !! %s\n", key)
			}
			printMore(len(b.Duplicates), 10)
		}

		if len(b.Orphaned) > 0 {
			if len(b.Orphaned) <= 10 {
				fmt.Println("\n  ── ORPHANED (not in English - safe to delete) ──")
			} else {
				fmt.Println("\n  ── ORPHANED (showing first 10) ──")
			}
			for _, key := range capKeys(b.Orphaned, 10) {
				fmt.Printf("    x %s\n", key)
			}
			printMore(len(b.Orphaned), 10)
		}

		fmt.Println()
	}

	fmt.Println(heavyRule)
}

func printMore(total, shown int) {
	if total > shown {
		fmt.Printf("    ... and %d more\n", total-shown)
	}
}

// ---------------------------------------------------------------------------
// validate (CI-friendly: minimal output, exit codes only)
// ---------------------------------------------------------------------------

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "CI-friendly: minimal output, exit codes only",
		Long: `Validate that all target files exist and contain every source key.

Designed for unattended pipelines: prints a single OK/FAIL line and exits
non-zero the moment any target file is missing or any source key is absent
from a target.`,
		Run: func(cmd *cobra.Command, args []string) {
			runValidate()
		},
	}
}

func runValidate() {
	proj, err := config.Detect(workDir)
	if err != nil {
		fmt.Println(i18n.T("FAIL: No translation files found"))
		os.Exit(1)
	}

	sourcePath := proj.SourcePath()
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Println(i18n.T("FAIL: Source file not found"))
		os.Exit(1)
	}

	var dialect xmlfile.Dialect
	switch proj.Format {
	case string(xmlfile.DialectElements):
		dialect = xmlfile.DialectElements
	case string(xmlfile.DialectTexts):
		dialect = xmlfile.DialectTexts
	default:
		dialect, err = xmlfile.DetectDialect(string(data))
		if err != nil {
			logError("%v", err)
			os.Exit(1)
		}
	}

	source := xmlfile.Parse(string(data), dialect)

	hasProblems := false
	for _, lang := range proj.Languages {
		langPath := proj.LangPath(lang.Code)
		if !fileExists(langPath) {
			hasProblems = true
			break
		}

		target, err := xmlfile.ParseFile(langPath, dialect)
		if err != nil {
			hasProblems = true
			break
		}

		for key := range source.Entries {
			if !target.Has(key) {
				hasProblems = true
				break
			}
		}
		if hasProblems {
			break
		}
	}

	if hasProblems {
		fmt.Println(i18n.T("FAIL: Translation files out of sync"))
		os.Exit(1)
	}
	fmt.Println(i18n.T("OK: All translation files have required keys"))
}
