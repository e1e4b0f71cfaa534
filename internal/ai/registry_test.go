package ai

import (
	"context"
	"testing"
)

type staticProvider struct{ name string }

func (p *staticProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	_ = ctx
	_ = messages
	return p.name, nil
}

func TestRegistry_GetIsCaseInsensitive(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Gemini", func(ctx context.Context, model string) (Provider, error) {
		_ = ctx
		_ = model
		return &staticProvider{name: "gemini"}, nil
	})

	for _, name := range []string{"gemini", "GEMINI", " Gemini "} {
		p, err := reg.Get(context.Background(), name, "")
		if err != nil {
			t.Fatalf("get %q: %v", name, err)
		}
		if p == nil {
			t.Fatalf("get %q: nil provider", name)
		}
	}
}

func TestRegistry_UnknownProvider(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Get(context.Background(), "nope", ""); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestRegistry_FactoryReceivesModel(t *testing.T) {
	reg := NewRegistry()
	var gotModel string
	reg.Register("fake", func(ctx context.Context, model string) (Provider, error) {
		_ = ctx
		gotModel = model
		return &staticProvider{name: "fake"}, nil
	})

	if _, err := reg.Get(context.Background(), "fake", "m-1"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotModel != "m-1" {
		t.Fatalf("factory got model %q, want %q", gotModel, "m-1")
	}
}
