package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/tienda/docs"
	productshandlers "github.com/GlebRadaev/tienda/internal/handlers/products"
	reportshandlers "github.com/GlebRadaev/tienda/internal/handlers/reports"
	saleshandlers "github.com/GlebRadaev/tienda/internal/handlers/sales"
	tenanthandlers "github.com/GlebRadaev/tienda/internal/handlers/tenant"
	"github.com/GlebRadaev/tienda/internal/service"
	"github.com/GlebRadaev/tienda/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type SalesHandler interface {
	Settle(w http.ResponseWriter, r *http.Request)
}

type TenantHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type ReportsHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
	GetArchive(w http.ResponseWriter, r *http.Request)
}

type ProductsHandler interface {
	GetProduct(w http.ResponseWriter, r *http.Request)
	Restock(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SalesHandler    SalesHandler
	TenantHandler   TenantHandler
	ReportsHandler  ReportsHandler
	ProductsHandler ProductsHandler
	authMiddleware  func(http.Handler) http.Handler
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		SalesHandler:    saleshandlers.New(s.SettlementService),
		TenantHandler:   tenanthandlers.New(s.SettlementService),
		ReportsHandler:  reportshandlers.New(s.FiscalService),
		ProductsHandler: productshandlers.New(s.InventoryService),
		authMiddleware:  auth.Middleware(jwtService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(h.authMiddleware)

		r.Post("/sales", h.SalesHandler.Settle)
		r.Get("/tenant/balance", h.TenantHandler.GetBalance)
		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly", h.ReportsHandler.GetMonthly)
			r.Get("/archive", h.ReportsHandler.GetArchive)
		})
		r.Route("/products/{id}", func(r chi.Router) {
			r.Get("/", h.ProductsHandler.GetProduct)
			r.Post("/restock", h.ProductsHandler.Restock)
		})
	})

	return r
}
