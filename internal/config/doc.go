// Package config handles configuration loading for bookdesk.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable
// expansion and validated before use.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from BOOKDESK_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/bookdesk/bookdesk.yaml
//  3. ~/.config/bookdesk/bookdesk.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	database:
//	  path: "${BOOKDESK_DB_PATH}"
//
// Unset variables expand to the empty string, which trips validation for
// required fields rather than silently pointing at a bad path.
package config
