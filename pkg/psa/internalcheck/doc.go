// Package internalcheck holds policy tests that inspect the source of the
// psa packages with golang.org/x/tools/go/packages.
//
// # Internal Use Only
//
// The package has no API. It exists so the checks run with go test ./...
// without becoming part of the public packages.
package internalcheck
