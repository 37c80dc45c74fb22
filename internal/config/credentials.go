package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ResolveAPIKey finds the generation-service credential. Resolution order:
// key file, environment variable, interactive prompt (only when stdin is a
// terminal). First non-empty value wins. An empty result means the pipeline
// runs in degraded "no AI" mode.
func ResolveAPIKey(keyFile, envVar string) string {
	if key := keyFromFile(keyFile, envVar); key != "" {
		return key
	}
	if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
		return key
	}
	return keyFromPrompt(envVar)
}

// keyFromFile reads KEY=value lines, skipping blanks and comments. Quotes
// around the value are stripped.
func keyFromFile(path, name string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) != name {
			continue
		}

		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		if value != "" {
			return value
		}
	}

	return ""
}

func keyFromPrompt(name string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ""
	}

	fmt.Fprintf(os.Stderr, "%s: ", name)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(raw))
}
