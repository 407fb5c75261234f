// Package http contains the demo application's HTTP handlers: a login
// endpoint that issues signed tokens and a protected index endpoint that
// reads the claims attached by the pipeline's auth middleware.
package http
