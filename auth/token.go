package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LoadOrCreateToken implements the token lifecycle of §4.5: read the token
// at path if present and non-empty once trimmed; otherwise mint a fresh
// UUID-shaped token, create path's parent directory if needed, and persist
// it. The returned token is held by the caller for the process lifetime.
func LoadOrCreateToken(path string) (string, error) {
	if data, err := os.ReadFile(path); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			return token, nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("auth: reading token file %s: %w", path, err)
	}

	token := uuid.NewString()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("auth: creating token directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(token), 0o600); err != nil {
		return "", fmt.Errorf("auth: persisting token to %s: %w", path, err)
	}

	return token, nil
}
