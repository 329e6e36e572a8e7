// Package api contains the HTTP handlers, wire models, and error
// mapping for the task tracker's REST surface.
package api
