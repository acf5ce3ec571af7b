// Package session models the courier's login state as an explicit domain
// object. The console serves a single courier role; the session carries the
// logged-in username plus a process-local identifier for log correlation.
//
// Persisting and restoring sessions is the job of a SessionStore adapter;
// this package only defines what a valid session is.
package session
