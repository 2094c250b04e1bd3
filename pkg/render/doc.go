// Package render renders Go text templates with the Sprig function library and
// the naming helpers, over values loaded from YAML files and command-line overrides.
package render
