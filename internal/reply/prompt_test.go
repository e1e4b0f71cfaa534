package reply

import (
	"strings"
	"testing"
)

func TestGuidanceFor_CaseInsensitive(t *testing.T) {
	want := GuidanceFor("twitter")
	for _, name := range []string{"Twitter", "TWITTER", " twitter "} {
		if got := GuidanceFor(name); got != want {
			t.Fatalf("GuidanceFor(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestGuidanceFor_UnknownFallsBackToGeneric(t *testing.T) {
	if got := GuidanceFor("Mastodon"); got != genericGuidance {
		t.Fatalf("expected generic guidance for unknown platform, got %q", got)
	}
}

func TestGuidanceFor_XAliasesTwitter(t *testing.T) {
	if GuidanceFor("x") != GuidanceFor("twitter") {
		t.Fatalf("expected x and twitter to share a tone profile")
	}
}

func TestBuildPrompt_ContainsContext(t *testing.T) {
	p := BuildPrompt("LinkedIn", "Published a new article on AI...")

	for _, want := range []string{
		"LinkedIn",
		"Published a new article on AI...",
		GuidanceFor("LinkedIn"),
		"Output ONLY the reply text.",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}
