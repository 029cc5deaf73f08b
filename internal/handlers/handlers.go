package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mkaledin/escrowd/docs"
	"github.com/mkaledin/escrowd/internal/domain"
	adminhandlers "github.com/mkaledin/escrowd/internal/handlers/admin"
	authhandlers "github.com/mkaledin/escrowd/internal/handlers/auth"
	escrowhandlers "github.com/mkaledin/escrowd/internal/handlers/escrow"
	"github.com/mkaledin/escrowd/internal/service"
	"github.com/mkaledin/escrowd/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type EscrowHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	ConfirmDeposit(w http.ResponseWriter, r *http.Request)
	MarkDelivered(w http.ResponseWriter, r *http.Request)
	ConfirmDelivery(w http.ResponseWriter, r *http.Request)
	PaymentMethods(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	CreateEscrow(w http.ResponseWriter, r *http.Request)
	ListEscrows(w http.ResponseWriter, r *http.Request)
	EscrowDetails(w http.ResponseWriter, r *http.Request)
	ConfirmDeposit(w http.ResponseWriter, r *http.Request)
	ReleaseFunds(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	EscrowHandler EscrowHandler
	AdminHandler  AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		EscrowHandler: escrowhandlers.New(s.EscrowService),
		AdminHandler:  adminhandlers.New(s.AdminEscrows, s.AdminUsers),
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
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/payment-methods", h.EscrowHandler.PaymentMethods)
			r.Route("/escrows", func(r chi.Router) {
				r.Post("/", h.EscrowHandler.Create)
				r.Get("/", h.EscrowHandler.ListMine)
				r.Route("/{escrowID}", func(r chi.Router) {
					r.Post("/mark-paid", h.EscrowHandler.MarkPaid)
					r.Post("/confirm-deposit", h.EscrowHandler.ConfirmDeposit)
					r.Post("/mark-delivered", h.EscrowHandler.MarkDelivered)
					r.Post("/confirm-delivery", h.EscrowHandler.ConfirmDelivery)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(domain.AdminRole))

				r.Get("/users", h.AdminHandler.ListUsers)
				r.Route("/escrows", func(r chi.Router) {
					r.Post("/", h.AdminHandler.CreateEscrow)
					r.Get("/", h.AdminHandler.ListEscrows)
					r.Route("/{escrowID}", func(r chi.Router) {
						r.Get("/", h.AdminHandler.EscrowDetails)
						r.Post("/confirm-deposit", h.AdminHandler.ConfirmDeposit)
						r.Post("/release", h.AdminHandler.ReleaseFunds)
					})
				})
			})
		})
	})

	return r
}
