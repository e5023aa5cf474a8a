// Package config handles the settings of the toke tool itself (which shell
// to use, colour mode, strictness, discovery names). It layers embedded
// defaults, the user settings file, TOKE_* environment variables and
// command-line overrides with koanf.
//
// The tokefile being run is not handled here; see package tokefile.
package config
