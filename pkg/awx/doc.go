// Package awx implements a small read-only client for the AWX REST API
// (labels, jobs and job templates) and the job tag vocabulary used by the
// Cloudflare workflow.
package awx
