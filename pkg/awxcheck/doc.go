// Package awxcheck inspects an AWX installation for the Cloudflare workflow:
// whether the action labels exist, which labels and tags recent jobs carry
// and how the job template is configured for tags.
package awxcheck
