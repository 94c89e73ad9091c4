package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"pizzada/internal/auth"
	"pizzada/internal/dashboard"
	"pizzada/internal/event"
	"pizzada/internal/flavor"
	"pizzada/internal/order"
)

const apiVersion = "1.0.0"

type Controllers struct {
	Auth      *auth.Controller
	Flavor    *flavor.Controller
	Event     *event.Controller
	Order     *order.Controller
	Dashboard *dashboard.Controller
}

func NewRouter(ctrl Controllers, authMw *auth.Middleware, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"api":     "pizzada",
			"version": apiVersion,
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", ctrl.Auth.HandleRegister)
		r.Post("/login", ctrl.Auth.HandleLogin)
		r.With(authMw.RequireUser).Get("/me", ctrl.Auth.HandleMe)
	})

	r.Route("/sabores", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireUser)
			r.Get("/", ctrl.Flavor.HandleList)
			r.Get("/{id}", ctrl.Flavor.HandleGet)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireAdmin)
			r.Post("/", ctrl.Flavor.HandleCreate)
			r.Put("/{id}", ctrl.Flavor.HandleUpdate)
			r.Delete("/{id}", ctrl.Flavor.HandleDelete)
		})
	})

	r.Route("/eventos", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireUser)
			r.Get("/", ctrl.Event.HandleList)
			r.Get("/ativo", ctrl.Event.HandleGetAtivo)
			r.Get("/{id}", ctrl.Event.HandleGet)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireAdmin)
			r.Post("/", ctrl.Event.HandleCreate)
			r.Put("/{id}", ctrl.Event.HandleUpdate)
			r.Delete("/{id}", ctrl.Event.HandleDelete)
			r.Get("/{id}/resumo", ctrl.Dashboard.HandleResumo)
		})
	})

	r.Route("/pedidos", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireUser)
			r.Post("/", ctrl.Order.HandleCreate)
			r.Get("/meus", ctrl.Order.HandleListMine)
			r.Get("/{id}", ctrl.Order.HandleGet)
			// A regra dono-ou-admin fica no serviço.
			r.Delete("/{id}", ctrl.Order.HandleDelete)
		})
		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireAdmin)
			r.Get("/", ctrl.Order.HandleList)
			r.Put("/{id}", ctrl.Order.HandleUpdateStatus)
		})
	})

	r.With(authMw.RequireAdmin).Get("/dashboard/eventos/{id}", ctrl.Dashboard.HandleEstatisticas)

	return r
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
