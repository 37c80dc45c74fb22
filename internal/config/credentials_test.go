package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func writeKeyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "APP_key.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveAPIKeyFromFile(t *testing.T) {
	path := writeKeyFile(t, "# credentials\n\nGEMINI_API_KEY=\"file-key\"\n")
	t.Setenv("GEMINI_API_KEY", "env-key")

	// The file wins over the environment.
	assert.Equal(t, "file-key", ResolveAPIKey(path, "GEMINI_API_KEY"))
}

func TestResolveAPIKeyFileIgnoresOtherKeys(t *testing.T) {
	path := writeKeyFile(t, "OPENAI_API_KEY=other\n")
	t.Setenv("GEMINI_API_KEY", "env-key")

	assert.Equal(t, "env-key", ResolveAPIKey(path, "GEMINI_API_KEY"))
}

func TestResolveAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  env-key  ")

	assert.Equal(t, "env-key", ResolveAPIKey(filepath.Join(t.TempDir(), "missing.txt"), "GEMINI_API_KEY"))
}

func TestResolveAPIKeyNothingFound(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	// Stdin is not a terminal under go test, so the prompt is skipped.
	assert.Equal(t, "", ResolveAPIKey(filepath.Join(t.TempDir(), "missing.txt"), "GEMINI_API_KEY"))
}

func TestKeyFromFileStripsQuotes(t *testing.T) {
	path := writeKeyFile(t, "GEMINI_API_KEY='quoted-key'\n")

	assert.Equal(t, "quoted-key", keyFromFile(path, "GEMINI_API_KEY"))
}
