/*
Package config loads process configuration from the environment.
The OpenAI credential is read from a local .env file in development
(try multiple text encodings, since Windows editors love saving
UTF-16) and from the hosting platform's environment store in
production. A missing credential is not fatal: the server still
serves pages, and AI routes fail with a clear error instead.
*/
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Config holds everything the process reads at startup. It is built once
// in main and handed to the server; nothing mutates it afterwards.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// OpenAIKey is the chat-completions credential. Empty means the
	// process runs with AI features disabled.
	OpenAIKey string
}

const apiKeyVar = "OPENAI_API_KEY"

// envFiles are the candidate credential sources, checked in order.
// .env is the local development convention and must stay gitignored.
var envFiles = []string{".env", ".env.local"}

// envEncodings are tried in sequence when reading an env file. UTF-8 first,
// then both UTF-16 byte orders.
var envEncodings = []encoding.Encoding{
	unicode.UTF8BOM,
	unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// Load reads configuration from env files and the process environment.
func Load() Config {
	key := ""
	for _, path := range envFiles {
		if key = keyFromEnvFile(path); key != "" {
			log.Info().Str("file", path).Msg("Loaded OpenAI credential from env file")
			break
		}
	}
	if key == "" {
		key = strings.TrimSpace(os.Getenv(apiKeyVar))
	}

	// Attempt to parse port from environment; fallback to 8080 if not set or invalid.
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 8080
	}

	return Config{Port: port, OpenAIKey: key}
}

// keyFromEnvFile reads one candidate file and tries each encoding until a
// decode both parses as dotenv syntax and yields a non-empty credential.
// Any failure just moves on; a broken or absent file never stops startup.
func keyFromEnvFile(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	for _, enc := range envEncodings {
		decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
		if err != nil {
			continue
		}
		vars, err := godotenv.UnmarshalBytes(decoded)
		if err != nil {
			continue
		}
		if key := strings.TrimSpace(vars[apiKeyVar]); key != "" {
			return key
		}
	}

	return ""
}
