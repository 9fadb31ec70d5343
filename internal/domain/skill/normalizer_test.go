package skill

import "testing"

func TestNormalize_AliasHit(t *testing.T) {
	cases := map[string]string{
		"golang":     "Go",
		"  golang  ": "Go",
		"GOLANG":     "Go",
		"react.js":   "React",
		"reactjs":    "React",
		"k8s":        "Kubernetes",
		"postgres":   "PostgreSQL",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalize_UnknownPreservesCasing(t *testing.T) {
	if got := Normalize("  COBOL-85 "); got != "COBOL-85" {
		t.Fatalf("expected unknown skill preserved, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"golang", "Go", "react.js", "React", "COBOL-85", "", "  spaced out  "}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeList_DedupesCaseInsensitively(t *testing.T) {
	got := NormalizeList([]string{"React", "react.js"})
	if len(got) != 1 || got[0] != "React" {
		t.Fatalf("expected [React], got %v", got)
	}
}

func TestNormalizeList_PreservesFirstSeenOrder(t *testing.T) {
	got := NormalizeList([]string{"golang", "COBOL-85", "Go", "cobol-85", ""})
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
	if got[0] != "Go" || got[1] != "COBOL-85" {
		t.Fatalf("unexpected order/casing: %v", got)
	}
}

func TestRelatedSkills(t *testing.T) {
	children := RelatedSkills("js")
	if len(children) == 0 {
		t.Fatalf("expected children for JavaScript")
	}
	found := false
	for _, c := range children {
		if c == "React" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected React among JavaScript children, got %v", children)
	}
}

func TestRelatedSkills_NoChildren(t *testing.T) {
	if got := RelatedSkills("COBOL-85"); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
	if got := RelatedSkills("React"); len(got) == 0 {
		// React grants credit toward Next.js only; relation is directed.
		t.Fatalf("expected Next.js child for React, got %v", got)
	}
}

func TestRelatedSkills_Directed(t *testing.T) {
	for _, c := range RelatedSkills("React") {
		if c == "JavaScript" {
			t.Fatalf("child relation must not point back at the parent")
		}
	}
}
