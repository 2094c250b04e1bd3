// Package cmd implements the cobra command tree for the cfctl CLI: DNS label
// naming helpers, template rendering, playbook cleanup and AWX inspection.
package cmd
