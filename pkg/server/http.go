package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

// router serves the managed directory with the no-cache and CORS headers
// on every response and one log line per GET on out.
func (s *DevServer) router(out io.Writer) *mux.Router {
	router := mux.NewRouter()

	router.Use(noCacheHeaders)
	router.Use(logRequests(out))

	router.PathPrefix("/").Handler(http.FileServer(s.Manager.FileSystem()))

	return router
}

// noCacheHeaders forces clients to refetch on every request and allows
// cross-origin access. Applied to every response, regardless of method.
func noCacheHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		h.Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

// logRequests writes one line per GET with the raw request path,
// query string included.
func logRequests(out io.Writer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				fmt.Fprintf(out, "Request: %s\n", r.RequestURI)
			}
			next.ServeHTTP(w, r)
		})
	}
}
