package main

import (
	"testing"

	"github.com/XelaNull/langsync/validate"
)

func TestCapKeys(t *testing.T) {
	keys := []string{"a", "b", "c", "d"}
	if got := capKeys(keys, 3); len(got) != 3 {
		t.Errorf("capKeys(4 keys, 3) returned %d keys", len(got))
	}
	if got := capKeys(keys, 10); len(got) != 4 {
		t.Errorf("capKeys(4 keys, 10) returned %d keys", len(got))
	}
}

func TestJoinIssueKeys(t *testing.T) {
	issues := []validate.Issue{
		{Key: "a"}, {Key: "b"}, {Key: "c"}, {Key: "d"}, {Key: "e"},
	}
	got := joinIssueKeys(issues, 3)
	want := "a, b, c ... +2 more"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = joinIssueKeys(issues[:2], 3)
	if got != "a, b" {
		t.Errorf("got %q, want %q", got, "a, b")
	}
}
