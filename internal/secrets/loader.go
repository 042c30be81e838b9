// Package secrets resolves API keys from files, inline values and the environment.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotConfigured is returned when no source yields a secret.
var ErrNotConfigured = errors.New("secret is not configured")

// Source describes where a secret may come from. Sources are tried in the
// order File, Value, FileEnv, Env.
type Source struct {
	// Name appears in error messages.
	Name  string
	File  string
	Value string
	// FileEnv names an environment variable holding a path to the secret.
	FileEnv string
	// Env names an environment variable holding the secret itself.
	Env string
}

var lookupEnv = os.LookupEnv

// Load returns the first non-empty secret, trimmed.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if secret, err := fromFile(name, src.File); err != nil || secret != "" {
		return secret, err
	}
	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}
	if path, ok := env(src.FileEnv); ok {
		if secret, err := fromFile(name, path); err != nil || secret != "" {
			return secret, err
		}
	}
	if secret, ok := env(src.Env); ok {
		return secret, nil
	}

	return "", fmt.Errorf("%s: %w", name, ErrNotConfigured)
}

func fromFile(name, path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, path, err)
	}

	secret := strings.TrimSpace(string(data))
	if secret == "" {
		return "", fmt.Errorf("%s file %q is empty", name, path)
	}
	return secret, nil
}

func env(key string) (string, bool) {
	if key = strings.TrimSpace(key); key == "" {
		return "", false
	}
	v, ok := lookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
