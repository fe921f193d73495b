package http

import (
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler mounts pprof under prefix when enabled, e.g. "/debug"
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, chimw.Profiler())
	r.Get(prefix, func(w stdhttp.ResponseWriter, req *stdhttp.Request) { h.ServeHTTP(w, req) })
	r.Get(prefix+"/*", func(w stdhttp.ResponseWriter, req *stdhttp.Request) { h.ServeHTTP(w, req) })
}
