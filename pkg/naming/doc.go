// Package naming converts raw record names into DNS-label-safe names following
// the Cloudflare workflow naming conventions, and exposes the same transforms
// as Go template functions.
package naming
