package api

import (
	"net/http"
	"strings"
)

// Package-qualified service names.
const (
	AuthServiceName     = "flightlog.v1.AuthService"
	ProfileServiceName  = "flightlog.v1.ProfileService"
	CategoryServiceName = "flightlog.v1.CategoryService"
	FlightServiceName   = "flightlog.v1.FlightService"
	ExportServiceName   = "flightlog.v1.ExportService"
)

// procedure returns the full procedure path of method on service.
func procedure(service, method string) string {
	return "/" + service + "/" + method
}

// route mounts the per-procedure handlers under the service prefix, the way
// generated Connect code does.
func route(service string, handlers map[string]http.Handler) (string, http.Handler) {
	prefix := "/" + service + "/"
	return prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok || !strings.HasPrefix(r.URL.Path, prefix) {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// baseURL trims a trailing slash so procedure paths join cleanly.
func baseURL(u string) string {
	return strings.TrimRight(u, "/")
}
