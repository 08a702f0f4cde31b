package xmlfile

import (
	"strings"
	"testing"
)

const elementsDoc = `<?xml version="1.0" encoding="utf-8"?>
<elements>
		<e k="greeting" v="Hello" eh="8b1a9953" />
		<e k="farewell" v="Goodbye" eh="6fc42223" />
		<e k="quoted" v="Say &quot;hi&quot; &amp; wave" eh="" />
		<e k="speed" v="%d km/h" eh="abcd1234" tag="format"/>
		<e k="nohash" v="Plain" />
</elements>`

const textsDoc = `<?xml version="1.0" encoding="utf-8"?>
<texts>
		<text name="greeting" text="Hello"/>
		<text name="farewell" text="Goodbye"/>
</texts>`

// ---------------------------------------------------------------------------
// Dialect detection
// ---------------------------------------------------------------------------

func TestDetectDialect_Elements(t *testing.T) {
	d, err := DetectDialect(elementsDoc)
	if err != nil {
		t.Fatalf("DetectDialect error: %v", err)
	}
	if d != DialectElements {
		t.Errorf("got %q, want %q", d, DialectElements)
	}
	if !d.SupportsHash() {
		t.Error("elements dialect should support hashes")
	}
}

func TestDetectDialect_Texts(t *testing.T) {
	d, err := DetectDialect(textsDoc)
	if err != nil {
		t.Fatalf("DetectDialect error: %v", err)
	}
	if d != DialectTexts {
		t.Errorf("got %q, want %q", d, DialectTexts)
	}
	if d.SupportsHash() {
		t.Error("texts dialect should not support hashes")
	}
}

func TestDetectDialect_Unknown(t *testing.T) {
	_, err := DetectDialect(`<?xml version="1.0"?><resources></resources>`)
	if err != ErrUnknownDialect {
		t.Errorf("got %v, want ErrUnknownDialect", err)
	}
}

// ---------------------------------------------------------------------------
// Parse tests
// ---------------------------------------------------------------------------

func TestParse_Elements(t *testing.T) {
	doc := `<elements>
		<e k="greeting" v="Hello" eh="8b1a9953" />
		<e k="quoted" v="Say &quot;hi&quot;" eh="" />
		<e k="speed" v="%d km/h" eh="abcd1234" tag="format"/>
		<e k="nohash" v="Plain" />
</elements>`

	tab := Parse(doc, DialectElements)
	if tab.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", tab.Len())
	}

	e := tab.Entries["greeting"]
	if e.Value != "Hello" || e.Hash != "8b1a9953" {
		t.Errorf("greeting: got value=%q hash=%q", e.Value, e.Hash)
	}

	// Escaped values are kept in their on-disk form.
	if v := tab.Entries["quoted"].Value; v != "Say &quot;hi&quot;" {
		t.Errorf("quoted: got %q, escaping must not be undone", v)
	}

	if !tab.Entries["speed"].FormatTag {
		t.Error("speed should carry the format tag")
	}
	if tab.Entries["nohash"].Hash != "" {
		t.Errorf("nohash: got hash %q, want empty", tab.Entries["nohash"].Hash)
	}

	want := []string{"greeting", "quoted", "speed", "nohash"}
	for i, key := range want {
		if tab.OrderedKeys[i] != key {
			t.Errorf("OrderedKeys[%d]: got %q, want %q", i, tab.OrderedKeys[i], key)
		}
	}
}

func TestParse_Texts(t *testing.T) {
	tab := Parse(textsDoc, DialectTexts)
	if tab.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", tab.Len())
	}
	if v := tab.Entries["greeting"].Value; v != "Hello" {
		t.Errorf("greeting: got %q", v)
	}
}

func TestParse_DuplicatesLastWins(t *testing.T) {
	doc := `<elements>
		<e k="dup" v="first" eh="aaaa" />
		<e k="other" v="x" eh="bbbb" />
		<e k="dup" v="second" eh="cccc" />
		<e k="dup" v="third" eh="dddd" />
</elements>`

	tab := Parse(doc, DialectElements)
	if tab.Len() != 2 {
		t.Fatalf("expected 2 distinct keys, got %d", tab.Len())
	}

	// One diagnostic per repeated occurrence.
	if len(tab.Duplicates) != 2 {
		t.Fatalf("expected 2 duplicate records, got %d: %v", len(tab.Duplicates), tab.Duplicates)
	}
	for _, key := range tab.Duplicates {
		if key != "dup" {
			t.Errorf("unexpected duplicate key %q", key)
		}
	}

	// Last occurrence wins for lookups.
	if v := tab.Entries["dup"].Value; v != "third" {
		t.Errorf("dup: got %q, want last occurrence %q", v, "third")
	}

	// OrderedKeys keeps every occurrence in document order.
	if len(tab.OrderedKeys) != 4 {
		t.Errorf("OrderedKeys: got %d occurrences, want 4", len(tab.OrderedKeys))
	}
}

// ---------------------------------------------------------------------------
// Serialization
// ---------------------------------------------------------------------------

func TestFormatEntry_RoundTrip(t *testing.T) {
	cases := []struct {
		key, value, hash string
		formatTag        bool
		dialect          Dialect
	}{
		{"greeting", "Hallo", "8b1a9953", false, DialectElements},
		{"speed", "%d km/h", "abcd1234", true, DialectElements},
		{"quoted", "Say &quot;hi&quot;", "11112222", false, DialectElements},
		{"greeting", "Hallo", "", false, DialectTexts},
	}

	for _, c := range cases {
		line := FormatEntry(c.key, c.value, c.hash, c.formatTag, c.dialect)
		tab := Parse(line, c.dialect)
		e, ok := tab.Entries[c.key]
		if !ok {
			t.Fatalf("round trip lost key %q in %q", c.key, line)
		}
		if e.Value != c.value {
			t.Errorf("%s: value %q -> %q", c.key, c.value, e.Value)
		}
		if c.dialect.SupportsHash() && e.Hash != c.hash {
			t.Errorf("%s: hash %q -> %q", c.key, c.hash, e.Hash)
		}
		if e.FormatTag != c.formatTag {
			t.Errorf("%s: formatTag %v -> %v", c.key, c.formatTag, e.FormatTag)
		}
	}
}

func TestEscapeXML(t *testing.T) {
	got := EscapeXML(`a & b < c > d "e"`)
	want := `a &amp; b &lt; c &gt; d &quot;e&quot;`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// Raw-text patching
// ---------------------------------------------------------------------------

func TestInsertPos_AfterPredecessor(t *testing.T) {
	raw := `<elements>
		<e k="a" v="A" eh="x" />
		<e k="c" v="C" eh="x" />
</elements>`
	sourceOrder := []string{"a", "b", "c"}
	present := map[string]bool{"a": true, "c": true}

	pos := InsertPos(raw, "b", sourceOrder, present, DialectElements)
	if pos == -1 {
		t.Fatal("no insert position found")
	}
	// Must land directly after a's entry, before c's.
	endOfA := strings.Index(raw, `eh="x" />`) + len(`eh="x" />`)
	if pos != endOfA {
		t.Errorf("got pos %d, want %d (end of predecessor entry)", pos, endOfA)
	}
}

func TestInsertPos_FallbackBeforeClose(t *testing.T) {
	raw := `<elements>
		<e k="z" v="Z" eh="x" />
</elements>`
	// "b" has no predecessor present in the target.
	pos := InsertPos(raw, "b", []string{"b", "z"}, map[string]bool{"z": true}, DialectElements)
	if pos != strings.Index(raw, "</elements>") {
		t.Errorf("got pos %d, want offset of </elements>", pos)
	}
}

func TestInsertPos_NoAnchor(t *testing.T) {
	pos := InsertPos("no container here", "b", []string{"b"}, map[string]bool{}, DialectElements)
	if pos != -1 {
		t.Errorf("got pos %d, want -1", pos)
	}
}

func TestRewriteHash(t *testing.T) {
	raw := `<elements>
		<e k="a" v="A" eh="old00000" />
		<e k="b" v="B" eh="keep0000" />
</elements>`

	out := RewriteHash(raw, "a", "new11111", DialectElements)
	if !strings.Contains(out, `<e k="a" v="A" eh="new11111" />`) {
		t.Errorf("hash not rewritten:\n%s", out)
	}
	if !strings.Contains(out, `eh="keep0000"`) {
		t.Error("unrelated entry was touched")
	}

	// Repeated rewrites are stable.
	if again := RewriteHash(out, "a", "new11111", DialectElements); again != out {
		t.Error("rewrite is not idempotent")
	}
}

func TestRewriteHash_PreservesFormatTag(t *testing.T) {
	raw := `<e k="speed" v="%d km/h" eh="old" tag="format"/>`
	out := RewriteHash(raw, "speed", "new12345", DialectElements)
	want := `<e k="speed" v="%d km/h" eh="new12345" tag="format"/>`
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRewriteHash_AddsMissingHash(t *testing.T) {
	raw := `<e k="plain" v="Plain" />`
	out := RewriteHash(raw, "plain", "abcd1234", DialectElements)
	if !strings.Contains(out, `eh="abcd1234"`) {
		t.Errorf("hash attribute not added: %q", out)
	}
}

func TestRewriteHash_TextsNoop(t *testing.T) {
	if out := RewriteHash(textsDoc, "greeting", "abcd1234", DialectTexts); out != textsDoc {
		t.Error("texts dialect must never be rewritten")
	}
}
