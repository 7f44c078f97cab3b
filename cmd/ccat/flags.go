package main

import (
	"fmt"
	"os"
	"strings"
)

// validateFileArg checks a positional file argument before any work happens.
// With --rev the file is read from git history, so it need not exist on disk.
func validateFileArg(path, revision string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("file path is required")
	}

	if revision != "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return newCommandError("read file", path, err, "Check the path and try again.")
	}
	if info.IsDir() {
		return fmt.Errorf("path %s is a directory", path)
	}

	return nil
}
