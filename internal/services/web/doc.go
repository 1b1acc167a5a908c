// Package web serves the GameTrade marketplace pages.
//
// It wires the page modules, static assets and health probe behind the
// shared request middleware and owns the HTTP server lifecycle.
package web
