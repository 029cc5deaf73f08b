package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkaledin/escrowd/internal/domain"
	"github.com/mkaledin/escrowd/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestService_Register(t *testing.T) {
	service, repo, hashService, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		role        string
		prepareMock func()
		wantErr     error
		wantPlain   bool
	}{
		{
			name: "Buyer registered",
			role: domain.BuyerRole,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashed", nil)
				repo.EXPECT().
					Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, "New User", user.Name)
						assert.Equal(t, "hashed", user.PasswordHash)
						assert.Equal(t, domain.BuyerRole, user.Role)
						user.ID = 1
						return user, nil
					})
			},
		},
		{
			name:        "Unknown role rejected",
			role:        "superuser",
			prepareMock: func() {},
			wantErr:     domain.ErrValidation,
		},
		{
			name: "Email already taken",
			role: domain.SellerRole,
			prepareMock: func() {
				repo.EXPECT().
					FindByEmail(ctx, "new@example.com").
					Return(&domain.User{ID: 7, Email: "new@example.com"}, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "Lookup failure",
			role: domain.BuyerRole,
			prepareMock: func() {
				repo.EXPECT().
					FindByEmail(ctx, "new@example.com").
					Return(nil, errors.New("database error"))
			},
			wantPlain: true,
		},
		{
			name: "Hashing failure",
			role: domain.BuyerRole,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("", errors.New("hash error"))
			},
			wantPlain: true,
		},
		{
			name: "Create failure",
			role: domain.BuyerRole,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashed", nil)
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantPlain: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(ctx, "New User", "new@example.com", "password123", tt.role)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantPlain:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	service, repo, hashService, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		wantErr     error
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				repo.EXPECT().
					FindByEmail(ctx, "buyer@example.com").
					Return(&domain.User{ID: 1, Email: "buyer@example.com", PasswordHash: "hashed", Role: domain.BuyerRole}, nil)
				hashService.EXPECT().ComparePassword("hashed", "password123").Return(true)
			},
		},
		{
			name: "Unknown email",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(nil, nil)
			},
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				repo.EXPECT().
					FindByEmail(ctx, "buyer@example.com").
					Return(&domain.User{ID: 1, PasswordHash: "hashed"}, nil)
				hashService.EXPECT().ComparePassword("hashed", "password123").Return(false)
			},
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name: "Lookup failure hides as unauthenticated",
			prepareMock: func() {
				repo.EXPECT().
					FindByEmail(ctx, "buyer@example.com").
					Return(nil, errors.New("database error"))
			},
			wantErr: domain.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(ctx, "buyer@example.com", "password123")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}

func TestService_GenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	t.Run("Token generated", func(t *testing.T) {
		jwtService.EXPECT().
			GenerateJWT(1, domain.BuyerRole, gomock.Any()).
			Return("some-jwt-token", nil)

		token, err := service.GenerateToken(1, domain.BuyerRole)
		assert.NoError(t, err)
		assert.Equal(t, "some-jwt-token", token)
	})

	t.Run("Generation failure", func(t *testing.T) {
		jwtService.EXPECT().
			GenerateJWT(1, domain.BuyerRole, gomock.Any()).
			Return("", errors.New("token generation error"))

		token, err := service.GenerateToken(1, domain.BuyerRole)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestService_ListUsers(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Admin lists users", func(t *testing.T) {
		repo.EXPECT().
			List(ctx).
			Return([]domain.User{{ID: 1}, {ID: 2}}, nil)

		users, err := service.ListUsers(ctx, domain.Actor{ID: 99, Role: domain.AdminRole})
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("Buyer is refused", func(t *testing.T) {
		_, err := service.ListUsers(ctx, domain.Actor{ID: 10, Role: domain.BuyerRole})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Database error", func(t *testing.T) {
		repo.EXPECT().List(ctx).Return(nil, errors.New("database error"))

		_, err := service.ListUsers(ctx, domain.Actor{ID: 99, Role: domain.AdminRole})
		assert.Error(t, err)
	})
}
