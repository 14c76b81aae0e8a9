package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the fortuner home directory.
const HomeEnv = "FORTUNER_HOME"

// GetFortunerHome returns the fortuner home directory
// Priority order:
//  1. FORTUNER_HOME environment variable (if set)
//  2. .fortuner in the user's home directory
//  3. .fortuner in the current working directory (fallback)
//
// The directory is not created; callers that write into it do so.
func GetFortunerHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	if userHome, err := os.UserHomeDir(); err == nil && userHome != "" {
		return filepath.Join(userHome, ".fortuner"), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, ".fortuner"), nil
}
