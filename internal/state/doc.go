// Package state holds the process-wide values shared by request handlers.
//
// Both values are created once in main and handed to the HTTP layer
// explicitly. Nothing here is a package-level global, so tests can build
// as many independent instances as they need.
package state
