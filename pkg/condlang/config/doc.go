/*
Package config loads condlang evaluator settings from YAML or JSON.

Config wraps a map[string]any with typed accessors that fall back to a
default on missing keys or type mismatches. Settings pulls out the keys the
condeval command understands:

	stack_size: 512        # value-stack bytes per evaluation
	max_depth: 128         # grammar nesting limit
	symbols_db: ./syms.db  # SQLite symbol store
	log_level: debug
	defines:               # list of names, or a map of name: value
	  - LINUX
	  - HAS_SSE2

Usage:

	settings, err := config.LoadSettings("condeval.yaml", config.Settings{StackSize: 256})
*/
package config
