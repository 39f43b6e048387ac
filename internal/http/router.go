package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bolsofacil/api/internal/auth"
	"github.com/bolsofacil/api/internal/http/bill"
	"github.com/bolsofacil/api/internal/http/feed"
	"github.com/bolsofacil/api/internal/http/importcsv"
	"github.com/bolsofacil/api/internal/http/summary"
	"github.com/bolsofacil/api/internal/http/transaction"
)

type Config struct {
	JWTSecret      string
	AllowedOrigins []string
}

func New(
	cfg Config,
	billsV1 *bill.Handler,
	transactionsV1 *transaction.Handler,
	feedV1 *feed.Handler,
	summaryV1 *summary.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(cfg.JWTSecret))

		r.Route("/bills", func(r chi.Router) {
			billsV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/feed", func(r chi.Router) {
			feedV1.Routes(r)
		})

		r.Route("/summary", func(r chi.Router) {
			summaryV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
