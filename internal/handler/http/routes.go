package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	userPath      = "/api/user"
	userLoginPath = "/api/user/login"
	notesPath     = "/api/note"
	notePath      = "/api/note/{id}"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post(userPath, h.signup)
		r.Post(userLoginPath, h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get(notesPath, h.listNotes)
		r.Post(notesPath, h.createNote)
		r.Put(notePath, h.updateNote)
		r.Delete(notePath, h.deleteNote)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
