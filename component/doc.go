// Package component provides lifecycle management for the shared resources
// a client assembly owns.
//
// Resources are registered in dependency order, started in that order, and
// stopped in reverse. The registry tracks which components actually started
// so a partially failed startup can still shut down cleanly.
package component
