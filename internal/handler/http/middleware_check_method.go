// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// chi answers 405 when a path matches but the method does not. The relay
// answers 404 instead, so that probing with other methods does not reveal
// which paths exist. Requests whose method is in fact registered for the
// exact path are handed back to the router.
//
// Only exact patterns are compared; wildcard segments are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if routeHandlesMethod(router.Routes(), r.URL.Path, r.Method) {
			router.ServeHTTP(w, r)
			return
		}

		http.NotFound(w, r)
	}
}

func routeHandlesMethod(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
