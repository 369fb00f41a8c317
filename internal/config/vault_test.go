package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseVersionValue(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		expected    int64
		expectError bool
	}{
		{name: "int64 value", input: int64(42), expected: 42},
		{name: "float64 value", input: float64(42.0), expected: 42},
		{name: "string value", input: "42", expected: 42},
		{name: "invalid string value", input: "not-a-number", expectError: true},
		{name: "unsupported type", input: []string{"42"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseVersionValue(tt.input, "test/path")

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got version %d", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected version %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestApplyGeminiKeyToConfig(t *testing.T) {
	config := &Config{}

	applyGeminiKeyToConfig(config, "test-gemini-key")

	if config.AI.APIKey != "test-gemini-key" {
		t.Errorf("global API key not applied: %q", config.AI.APIKey)
	}
	for name, got := range map[string]string{
		"feedback":  config.AI.Feedback.APIKey,
		"questions": config.AI.Questions.APIKey,
		"posting":   config.AI.Posting.APIKey,
	} {
		if got != "test-gemini-key" {
			t.Errorf("%s API key not applied: %q", name, got)
		}
	}
}

func TestApplyGeminiKeyToConfigWithExistingKeys(t *testing.T) {
	config := &Config{
		AI: AIConfig{
			Feedback: OperationAIConfig{APIKey: "existing-feedback-key"},
		},
	}

	applyGeminiKeyToConfig(config, "test-gemini-key")

	if config.AI.Feedback.APIKey != "existing-feedback-key" {
		t.Errorf("existing operation key was overwritten: %q", config.AI.Feedback.APIKey)
	}
	if config.AI.Questions.APIKey != "test-gemini-key" {
		t.Errorf("questions API key not applied: %q", config.AI.Questions.APIKey)
	}
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	config := &Config{}

	if err := ApplyVaultSecrets(config, nil); err != nil {
		t.Fatalf("unexpected error with vault disabled: %v", err)
	}
	if config.AI.APIKey != "" {
		t.Errorf("API key unexpectedly set: %q", config.AI.APIKey)
	}
}

func TestLoadConfigAppliesVaultSecrets(t *testing.T) {
	// Vault enabled without a token must surface through LoadConfig, which
	// proves secret loading runs during configuration load.
	t.Setenv("RECRUITFLOW_VAULT_ENABLED", "true")
	t.Setenv("RECRUITFLOW_VAULT_TOKEN", "")
	t.Setenv("RECRUITFLOW_VAULT_TOKENFILE", "")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error when vault is enabled without a token")
	}
	if !strings.Contains(err.Error(), "vault") {
		t.Errorf("error = %v, want vault secret failure", err)
	}
}

func TestResolveVaultToken(t *testing.T) {
	t.Run("token from config", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "direct-token"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "direct-token" {
			t.Errorf("expected direct-token, got %q", token)
		}
	})

	t.Run("token from file", func(t *testing.T) {
		dir := t.TempDir()
		tokenFile := filepath.Join(dir, "token")
		if err := os.WriteFile(tokenFile, []byte("  file-token\n"), 0600); err != nil {
			t.Fatal(err)
		}

		token, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "file-token" {
			t.Errorf("expected trimmed file-token, got %q", token)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		if _, err := resolveVaultToken(VaultConfig{}, nil); err == nil {
			t.Fatal("expected error for missing token")
		}
	})

	t.Run("missing token file", func(t *testing.T) {
		if _, err := resolveVaultToken(VaultConfig{TokenFile: "/nonexistent/token"}, nil); err == nil {
			t.Fatal("expected error for unreadable token file")
		}
	})
}
