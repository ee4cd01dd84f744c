package config

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup. Equivalent to t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	os.Unsetenv("PORT")
	os.Unsetenv("OPENAI_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.OpenAIKey)
}

func TestLoadPortFromEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9999")

	cfg := Load()

	assert.Equal(t, 9999, cfg.Port)
}

func TestLoadKeyFromProcessEnv(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-env-test")

	cfg := Load()

	assert.Equal(t, "sk-env-test", cfg.OpenAIKey)
}

func TestLoadKeyFromEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENAI_API_KEY=sk-file-test\n"), 0o600)
	require.NoError(t, err)

	cfg := Load()

	assert.Equal(t, "sk-file-test", cfg.OpenAIKey)
}

// Env file takes precedence over an already-set process variable.
func TestEnvFileWinsOverProcessEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENAI_API_KEY=sk-from-file\n"), 0o600)
	require.NoError(t, err)

	cfg := Load()

	assert.Equal(t, "sk-from-file", cfg.OpenAIKey)
}

func TestLoadKeyFromUTF16EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	err := os.WriteFile(filepath.Join(dir, ".env"), utf16LEWithBOM("OPENAI_API_KEY=sk-utf16-test\n"), 0o600)
	require.NoError(t, err)

	cfg := Load()

	assert.Equal(t, "sk-utf16-test", cfg.OpenAIKey)
}

func TestLoadFallsBackToSecondFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("OTHER_VAR=1\n"), 0o600)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, ".env.local"), []byte("OPENAI_API_KEY=sk-local\n"), 0o600)
	require.NoError(t, err)

	cfg := Load()

	assert.Equal(t, "sk-local", cfg.OpenAIKey)
}

// utf16LEWithBOM encodes s as UTF-16 little-endian prefixed with a BOM,
// matching what Notepad historically wrote for "Unicode" files.
func utf16LEWithBOM(s string) []byte {
	codes := utf16.Encode([]rune(s))
	buf := make([]byte, 0, 2+len(codes)*2)
	buf = append(buf, 0xFF, 0xFE)
	for _, c := range codes {
		buf = append(buf, byte(c), byte(c>>8))
	}
	return buf
}
