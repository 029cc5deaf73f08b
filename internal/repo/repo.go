package repo

import (
	"github.com/mkaledin/escrowd/internal/pg"
	escrowrepo "github.com/mkaledin/escrowd/internal/repo/escrow-repo"
	userrepo "github.com/mkaledin/escrowd/internal/repo/user-repo"
	"github.com/mkaledin/escrowd/internal/service/authservice"
	"github.com/mkaledin/escrowd/internal/service/escrowservice"
)

type Repositories struct {
	UserRepo   authservice.Repo
	EscrowRepo escrowservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	escrowRepo := escrowrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:   userRepo,
		EscrowRepo: escrowRepo,
	}
}
