// Package tokefile locates, reads and validates tokefiles.
//
// A tokefile is parsed into a generic tree (TOML, or YAML for .yaml/.yml
// files) and converted once, up front, into a typed Document. All shape
// errors (missing targets table, a cmd that is not a string, a wildcard
// that is neither a string nor a list of strings) surface from Load, so
// later stages work on typed values only.
package tokefile
