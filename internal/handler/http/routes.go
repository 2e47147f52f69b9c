package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
	})

	// routes guarded by the token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/todos", h.createTodo)
		r.Get("/api/todos/{id}", h.getTodo)
		r.Patch("/api/todos/{id}", h.updateTodo)
		r.Delete("/api/todos/{id}", h.deleteTodo)
		r.Get("/api/todos/users/{id}", h.getUserTodos)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
