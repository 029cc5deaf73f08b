package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkaledin/escrowd/internal/domain"
	"github.com/mkaledin/escrowd/internal/dto"
	escrowservice "github.com/mkaledin/escrowd/internal/service/escrowservice"
	pkgauth "github.com/mkaledin/escrowd/pkg/auth"
	"github.com/mkaledin/escrowd/pkg/utils"
)

var adminActor = domain.Actor{ID: 99, Role: domain.AdminRole}

func NewMock(t *testing.T) (*AdminHandler, *MockEscrowService, *MockUserService) {
	ctrl := gomock.NewController(t)
	escrowService := NewMockEscrowService(ctrl)
	userService := NewMockUserService(ctrl)
	handler := New(escrowService, userService)
	defer ctrl.Finish()
	return handler, escrowService, userService
}

func newRequest(method, target, body, escrowID string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, adminActor.ID)
	ctx = context.WithValue(ctx, pkgauth.RoleKey, adminActor.Role)
	if escrowID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("escrowID", escrowID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestCreateEscrowHandler(t *testing.T) {
	handler, escrowService, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Escrow created for named parties",
			body: `{"buyer_id":10,"seller_id":20,"amount":150.5,"description":"vintage camera"}`,
			prepareMock: func() {
				escrowService.EXPECT().
					Create(gomock.Any(), domain.EscrowCreate{BuyerID: 10, SellerID: 20, Amount: 150.5, Description: "vintage camera"}, adminActor).
					Return(&domain.Escrow{ID: 1, BuyerID: 10, SellerID: 20, Status: domain.PendingDepositStatus}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Unknown party",
			body: `{"buyer_id":10,"seller_id":404,"amount":100,"description":"lens"}`,
			prepareMock: func() {
				escrowService.EXPECT().
					Create(gomock.Any(), gomock.Any(), adminActor).
					Return(nil, domain.ErrReferential)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/admin/escrows", tt.body, "")
			rr := httptest.NewRecorder()

			handler.CreateEscrow(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestListEscrowsHandler(t *testing.T) {
	handler, escrowService, _ := NewMock(t)

	escrowService.EXPECT().
		ListAll(gomock.Any(), adminActor).
		Return([]domain.EscrowWithParties{
			{
				Escrow: domain.Escrow{ID: 1, BuyerID: 10, SellerID: 20, Status: domain.FundedStatus},
				Buyer:  domain.PartySummary{ID: 10, Name: "Buyer"},
				Seller: domain.PartySummary{ID: 20, Name: "Seller"},
			},
		}, nil)

	req := newRequest("GET", "/api/admin/escrows", "", "")
	rr := httptest.NewRecorder()

	handler.ListEscrows(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.EscrowDetailsResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "Buyer", resp[0].Buyer.Name)
}

func TestEscrowDetailsHandler(t *testing.T) {
	handler, escrowService, _ := NewMock(t)

	t.Run("Details returned", func(t *testing.T) {
		escrowService.EXPECT().
			GetDetails(gomock.Any(), 42).
			Return(&domain.EscrowWithParties{
				Escrow: domain.Escrow{ID: 42, Status: domain.FundedStatus},
			}, nil)

		req := newRequest("GET", "/api/admin/escrows/42", "", "42")
		rr := httptest.NewRecorder()

		handler.EscrowDetails(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing escrow", func(t *testing.T) {
		escrowService.EXPECT().
			GetDetails(gomock.Any(), 42).
			Return(nil, domain.ErrNotFound)

		req := newRequest("GET", "/api/admin/escrows/42", "", "42")
		rr := httptest.NewRecorder()

		handler.EscrowDetails(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid escrow id", func(t *testing.T) {
		req := newRequest("GET", "/api/admin/escrows/abc", "", "abc")
		rr := httptest.NewRecorder()

		handler.EscrowDetails(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAdminConfirmDepositHandler(t *testing.T) {
	handler, escrowService, _ := NewMock(t)

	t.Run("Deposit confirmed", func(t *testing.T) {
		escrowService.EXPECT().
			Apply(gomock.Any(), escrowservice.ActionConfirmDeposit, 42, adminActor, gomock.Any()).
			Return(&domain.Escrow{ID: 42, Status: domain.FundedStatus}, nil)

		req := newRequest("POST", "/api/admin/escrows/42/confirm-deposit", "", "42")
		rr := httptest.NewRecorder()

		handler.ConfirmDeposit(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Wrong state", func(t *testing.T) {
		escrowService.EXPECT().
			Apply(gomock.Any(), escrowservice.ActionConfirmDeposit, 42, adminActor, gomock.Any()).
			Return(nil, &domain.PreconditionError{
				Action:   "confirm_deposit",
				Current:  domain.CompletedStatus,
				Required: []string{domain.DepositPendingStatus},
			})

		req := newRequest("POST", "/api/admin/escrows/42/confirm-deposit", "", "42")
		rr := httptest.NewRecorder()

		handler.ConfirmDeposit(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestReleaseFundsHandler(t *testing.T) {
	handler, escrowService, _ := NewMock(t)

	t.Run("Release with note", func(t *testing.T) {
		escrowService.EXPECT().
			Apply(gomock.Any(), escrowservice.ActionReleaseFunds, 42, adminActor, &escrowservice.ApplyOptions{ReleaseNote: "dispute settled"}).
			Return(&domain.Escrow{ID: 42, Status: domain.CompletedStatus}, nil)

		req := newRequest("POST", "/api/admin/escrows/42/release", `{"note":"dispute settled"}`, "42")
		rr := httptest.NewRecorder()

		handler.ReleaseFunds(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Release without body", func(t *testing.T) {
		escrowService.EXPECT().
			Apply(gomock.Any(), escrowservice.ActionReleaseFunds, 42, adminActor, &escrowservice.ApplyOptions{}).
			Return(&domain.Escrow{ID: 42, Status: domain.CompletedStatus}, nil)

		req := newRequest("POST", "/api/admin/escrows/42/release", "", "42")
		rr := httptest.NewRecorder()

		handler.ReleaseFunds(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestListUsersHandler(t *testing.T) {
	handler, _, userService := NewMock(t)

	userService.EXPECT().
		ListUsers(gomock.Any(), adminActor).
		Return([]domain.User{
			{ID: 1, Name: "Buyer", Email: "buyer@example.com", Role: "buyer", CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)},
		}, nil)

	req := newRequest("GET", "/api/admin/users", "", "")
	rr := httptest.NewRecorder()

	handler.ListUsers(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.UserResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "buyer@example.com", resp[0].Email)
}
