package reply

import (
	"context"
	"strings"

	"github.com/KevinUnadkat/social-media-reply/internal/ai"
)

// Service turns a platform + post into a single generated reply. It does not
// re-validate inputs (the API layer owns that) and makes exactly one provider
// call per invocation.
type Service struct {
	provider ai.Provider
}

// NewService accepts a nil provider: the service stays constructible but
// reports itself unavailable, so a missing API key degrades instead of
// crashing the process.
func NewService(provider ai.Provider) *Service {
	return &Service{provider: provider}
}

// Available reports whether a provider is wired. Used by /health and the
// proactive check on /reply.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

func (s *Service) Generate(ctx context.Context, platform, postText string) (string, error) {
	if !s.Available() {
		return "", newError(ErrorNotConfigured, "llm_not_configured", nil)
	}

	prompt := BuildPrompt(platform, postText)

	out, err := s.provider.Chat(ctx, []ai.Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", newError(ErrorUpstream, "llm_call_failed", err)
	}

	text := cleanReply(out)
	if text == "" {
		return "", newError(ErrorEmptyReply, "llm_empty_reply", nil)
	}
	return text, nil
}

var quotePairs = [][2]string{
	{`"`, `"`},
	{`'`, `'`},
	{"“", "”"},
	{"‘", "’"},
}

// cleanReply trims whitespace and strips one matching pair of surrounding
// quotes the model may have added despite instructions.
func cleanReply(s string) string {
	s = strings.TrimSpace(s)
	for _, p := range quotePairs {
		if len(s) > len(p[0])+len(p[1]) && strings.HasPrefix(s, p[0]) && strings.HasSuffix(s, p[1]) {
			s = strings.TrimSpace(s[len(p[0]) : len(s)-len(p[1])])
			break
		}
	}
	return s
}
