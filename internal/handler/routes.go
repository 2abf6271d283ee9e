package handler

import "net/http"

// Routes bundles the handlers the API router needs.
type Routes struct {
	Base     *Handler
	Projects *ProjectHandler
	Contacts *ContactHandler
}

// NewRouter registers every API route and wraps the mux in the middleware
// chain: request id → logging → panic recovery → security headers → CORS.
func NewRouter(rt Routes) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", rt.Base.Health)

	mux.HandleFunc("GET /api/projects", rt.Projects.List)
	mux.HandleFunc("GET /api/projects/{id}", rt.Projects.Get)

	mux.HandleFunc("POST /api/contact", rt.Contacts.Submit)
	mux.HandleFunc("GET /api/contact", rt.Contacts.List)

	// Catch-all: unknown paths and unsupported methods on known paths.
	mux.HandleFunc("/", NotFound)

	var h http.Handler = mux
	h = rt.Base.CORS(h)
	h = SecurityHeaders(h)
	h = Recoverer(h)
	h = RequestLogger(h)
	h = RequestID(h)
	return h
}
