// Package formatter renders boards for clients.
//
// This package is organized into:
// - html.go: the message board page, with message text sanitized
// - json.go: the JSON envelope used by the API
package formatter
