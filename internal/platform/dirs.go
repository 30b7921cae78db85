package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the per-user directory for appName. It is not created.
func ConfigDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}
