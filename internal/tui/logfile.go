package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the default path of the wrench log file.
// If WRENCH_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.wrench/logs/wrench.log
func GetLogFilePath() string {
	if customPath := os.Getenv("WRENCH_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "wrench.log"
	}

	return filepath.Join(homeDir, ".wrench", "logs", "wrench.log")
}
