// Package config loads wrench configuration.
//
// Values are layered, highest precedence first:
//   - WRENCH_* environment variables, then the same names in a .env file in the working directory
//   - the YAML file named by --config, or wrench.yaml in the working directory or repository root
//   - built-in defaults
//
// The .env file never modifies the process environment. Config.Env exposes the overlay
// so CI detection sees the same values.
//
// The result is validated before it is returned.
package config
