package service

import (
	"github.com/mkaledin/escrowd/internal/config"
	"github.com/mkaledin/escrowd/internal/handlers/admin"
	"github.com/mkaledin/escrowd/internal/handlers/auth"
	"github.com/mkaledin/escrowd/internal/handlers/escrow"

	pkgauth "github.com/mkaledin/escrowd/pkg/auth"

	"github.com/mkaledin/escrowd/internal/repo"
	authservice "github.com/mkaledin/escrowd/internal/service/authservice"
	escrowservice "github.com/mkaledin/escrowd/internal/service/escrowservice"
)

type Services struct {
	AuthService   auth.Service
	EscrowService escrow.Service
	AdminEscrows  admin.EscrowService
	AdminUsers    admin.UserService

	// Escrow is the concrete transition engine, exposed for the
	// deposit watcher which applies transitions outside HTTP.
	Escrow *escrowservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	escrowService := escrowservice.New(repo.EscrowRepo, cfg.SystemSellerID)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		EscrowService: escrowService,
		AdminEscrows:  escrowService,
		AdminUsers:    authService,
		Escrow:        escrowService,
	}
}
