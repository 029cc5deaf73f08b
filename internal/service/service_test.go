package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkaledin/escrowd/internal/config"
	"github.com/mkaledin/escrowd/internal/repo"
	"github.com/mkaledin/escrowd/internal/service/authservice"
	"github.com/mkaledin/escrowd/internal/service/escrowservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockEscrowRepo := escrowservice.NewMockRepo(ctrl)

	repos := &repo.Repositories{
		UserRepo:   mockUserRepo,
		EscrowRepo: mockEscrowRepo,
	}

	services := New(repos, &config.Config{SystemSellerID: 1})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.EscrowService)
	assert.NotNil(t, services.AdminEscrows)
	assert.NotNil(t, services.AdminUsers)
	assert.NotNil(t, services.Escrow)
}
