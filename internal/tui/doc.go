// Package tui provides the terminal user interface for wrench.
//
// It handles:
//   - Interactive prompts for credentials (using survey and bubbletea)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
