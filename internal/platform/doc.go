// Package platform provides cross-platform filesystem helpers: permission
// changes that are a no-op on Windows, and atomic file replacement used when
// rewriting settings and notes.
package platform
