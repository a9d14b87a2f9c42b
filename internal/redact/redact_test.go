package redact

import (
	"errors"
	"strings"
	"testing"
)

func TestStringRedactsAPIKeys(t *testing.T) {
	t.Parallel()

	tests := []string{
		"request failed: api_key=AIzaSyD8kQhN7w2x9examplekey",
		"auth error: token: abcdef1234567890",
		`config: {"apiKey": "sk-verysecretvalue1234"}`,
	}

	for _, input := range tests {
		out := String(input)
		if !strings.Contains(out, RedactedKeyPlaceholder) {
			t.Errorf("String(%q): expected key redaction, got %q", input, out)
		}
	}
}

func TestStringRedactsPaths(t *testing.T) {
	t.Parallel()

	out := String("open /home/app/secrets/credentials.json: permission denied")
	if strings.Contains(out, "/home/app") {
		t.Errorf("Expected path redaction, got %q", out)
	}
	if !strings.Contains(out, RedactedPathPlaceholder) {
		t.Errorf("Expected path placeholder, got %q", out)
	}
}

func TestStringRedactsHosts(t *testing.T) {
	t.Parallel()

	out := String("dial tcp: lookup generativelanguage.googleapis.com:443 failed")
	if strings.Contains(out, "googleapis.com") {
		t.Errorf("Expected host redaction, got %q", out)
	}
	if !strings.Contains(out, RedactedHostPlaceholder) {
		t.Errorf("Expected host placeholder, got %q", out)
	}
}

func TestStringLeavesPlainTextAlone(t *testing.T) {
	t.Parallel()

	input := "question text is required"
	if out := String(input); out != input {
		t.Errorf("Expected %q unchanged, got %q", input, out)
	}

	if out := String(""); out != "" {
		t.Errorf("Expected empty string unchanged, got %q", out)
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	if out := Error(nil); out != "" {
		t.Errorf("Expected empty string for nil error, got %q", out)
	}

	err := errors.New("read /etc/scora/config.yaml failed")
	if out := Error(err); strings.Contains(out, "/etc/scora") {
		t.Errorf("Expected path redaction, got %q", out)
	}
}
