// Package runtime provides the execution context for wrench commands.
//
// It wires the loaded configuration, the environment, the logger and the
// process capabilities that every tool runner needs.
package runtime
