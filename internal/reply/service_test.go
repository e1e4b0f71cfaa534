package reply

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/KevinUnadkat/social-media-reply/internal/ai"
)

type fakeProvider struct {
	last  []ai.Message
	reply string
	err   error
}

func (p *fakeProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	_ = ctx
	// copy to avoid mutations
	p.last = append([]ai.Message(nil), messages...)
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func TestGenerate_SendsPromptWithPost(t *testing.T) {
	prov := &fakeProvider{reply: "Congrats, that's a big milestone!"}
	svc := NewService(prov)

	got, err := svc.Generate(context.Background(), "LinkedIn", "Published a new article on AI...")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Congrats, that's a big milestone!" {
		t.Fatalf("unexpected reply: %q", got)
	}
	if len(prov.last) != 1 {
		t.Fatalf("expected 1 provider message, got %d", len(prov.last))
	}
	if prov.last[0].Role != "user" {
		t.Fatalf("unexpected role: %q", prov.last[0].Role)
	}
	if !strings.Contains(prov.last[0].Content, "Published a new article on AI...") {
		t.Fatalf("prompt does not embed the post text:\n%s", prov.last[0].Content)
	}
}

func TestGenerate_StripsSurroundingQuotes(t *testing.T) {
	prov := &fakeProvider{reply: "  \"Nice work, keep it up!\"  "}
	svc := NewService(prov)

	got, err := svc.Generate(context.Background(), "Twitter", "shipped it")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Nice work, keep it up!" {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestGenerate_NotConfigured(t *testing.T) {
	svc := NewService(nil)
	if svc.Available() {
		t.Fatalf("expected service without provider to be unavailable")
	}

	_, err := svc.Generate(context.Background(), "Twitter", "hello")
	var re *Error
	if !errors.As(err, &re) || re.Code != ErrorNotConfigured {
		t.Fatalf("expected NOT_CONFIGURED, got %v", err)
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	cause := errors.New("quota exceeded")
	svc := NewService(&fakeProvider{err: cause})

	_, err := svc.Generate(context.Background(), "Twitter", "hello")
	var re *Error
	if !errors.As(err, &re) || re.Code != ErrorUpstream {
		t.Fatalf("expected UPSTREAM_ERROR, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected error to wrap the provider cause")
	}
}

func TestGenerate_EmptyReplyIsNeverSuccess(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		svc := NewService(&fakeProvider{reply: raw})
		_, err := svc.Generate(context.Background(), "Twitter", "hello")
		var re *Error
		if !errors.As(err, &re) || re.Code != ErrorEmptyReply {
			t.Fatalf("reply %q: expected EMPTY_REPLY, got %v", raw, err)
		}
	}
}

func TestCleanReply(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`"quoted"`, "quoted"},
		{`'quoted'`, "quoted"},
		{"“curly”", "curly"},
		{"‘curly’", "curly"},
		{`  padded  `, "padded"},
		{`"mismatched'`, `"mismatched'`},
		{`say "hi" there`, `say "hi" there`},
		{`""`, `""`}, // nothing inside the quotes; leave it to the empty check
	}
	for _, tc := range cases {
		if got := cleanReply(tc.in); got != tc.want {
			t.Fatalf("cleanReply(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
