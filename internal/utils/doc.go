// Package utils holds small helpers shared by the CLI commands.
package utils
