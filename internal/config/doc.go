// Package config loads the editor configuration.
//
// Configuration is resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Overrides  │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← KESTREL_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/kestrel/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The file may be TOML or YAML, chosen by extension:
//
//	# ~/.config/kestrel/config.toml
//	[logging]
//	level = "debug"
//	file  = "/tmp/kestrel.log"
//
//	[cursor]
//	normal = "block"
//	insert = "bar"
//
// A missing default file is not an error; a missing file named with
// WithPath is. Load validates the merged result and reports every
// problem at once.
package config
