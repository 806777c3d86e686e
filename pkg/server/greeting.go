// Package server implements the greeting server: a single catch-all HTTP
// handler bound to a fixed address.
package server

import (
	"net/http"
	"strconv"
)

const (
	// Greeting is the exact response body for every request.
	Greeting = "Hello from CI/CD demo app!\n"
	// ContentType is sent with every response.
	ContentType = "text/plain; charset=utf-8"
)

var (
	greeting      = []byte(Greeting)
	contentLength = strconv.Itoa(len(greeting))
)

// Handler returns the catch-all handler. Method, path, headers and body are
// never inspected.
func Handler() http.Handler {
	return http.HandlerFunc(serveGreeting)
}

func serveGreeting(w http.ResponseWriter, _ *http.Request) {
	h := w.Header()
	h.Set("Content-Type", ContentType)
	h.Set("Content-Length", contentLength)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(greeting)
}
