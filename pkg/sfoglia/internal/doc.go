// Package internal contains the core infrastructure for the sfoglia drawer
// framework: structured logging and the scheduler that drives timed phases of
// the open/close choreography. Types and functions in this package are not
// part of the public API.
package internal
