// Package config loads, merges, and validates the subsystem configuration.
//
// Three sources feed the final config: environment variables, command-line
// flags, and an optional JSON file named by the other two. Sources are merged
// field by field with the earliest non-zero value winning, so the effective
// priority is env > flags > JSON. Whatever remains unset is filled with
// platform defaults anchored on the user's data directory, then validated.
//
// [GetStructuredConfig] is the entry point.
package config
