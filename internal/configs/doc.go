// Package configs manages the prizm user configuration.
//
// Configuration lives at <user-config-dir>/prizm/config.toml (override the
// directory with PRIZM_CONFIG_DIR). It stores an install UUID generated on
// first init and the user's console defaults: log directory, terminal
// output, and color. The console library itself never reads configuration;
// the CLI loads it and passes the values through.
package configs
