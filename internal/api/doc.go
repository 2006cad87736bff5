// Package api exposes the profile catalog over HTTP.
//
// The API is read-mostly: it lists and serves neutral profiles, converts
// them to slicer formats on the fly, and manages favorites. It is intended
// for local tools and web front ends, bound to localhost by default.
package api
