// Package server exposes the ranking pipeline over HTTP.
//
// Routes:
//
//	GET  /           welcome JSON with the route map
//	POST /rank       multipart CSV upload, returns the ranking as JSON
//	GET  /dashboard  minimal HTML form that posts to /rank
//
// The server is stateless: every /rank call carries its full problem.
// Requests are logged through zerolog; Run shuts down gracefully when
// its context is cancelled.
package server
