package escrowrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkaledin/escrowd/internal/domain"
	"github.com/mkaledin/escrowd/internal/pg"
)

var escrowRowColumns = []string{
	"id", "buyer_id", "seller_id", "amount", "description", "payment_method", "status", "created_at",
	"deposit_requested_at", "deposit_confirmed_at", "delivered_at", "buyer_confirmed_at",
	"released_at", "released_by", "release_note",
}

func escrowRow(e *domain.Escrow) *pgxmock.Rows {
	return pgxmock.NewRows(escrowRowColumns).AddRow(
		e.ID, e.BuyerID, e.SellerID, e.Amount, e.Description, e.PaymentMethod, e.Status, e.CreatedAt,
		e.DepositRequestedAt, e.DepositConfirmedAt, e.DeliveredAt, e.BuyerConfirmedAt,
		e.ReleasedAt, e.ReleasedBy, e.ReleaseNote,
	)
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)

	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	repo := New(mockDB, txManager)
	return repo, mockDB
}

func sampleEscrow(status string) *domain.Escrow {
	return &domain.Escrow{
		ID:            42,
		BuyerID:       1,
		SellerID:      2,
		Amount:        150.50,
		Description:   "vintage camera",
		PaymentMethod: "card",
		Status:        status,
		CreatedAt:     time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        INSERT INTO escrows (buyer_id, seller_id, amount, description, payment_method, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + escrowColumns

	fields := domain.EscrowCreate{
		BuyerID:       1,
		SellerID:      2,
		Amount:        150.50,
		Description:   "vintage camera",
		PaymentMethod: "card",
		Status:        domain.PendingDepositStatus,
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   error
		expectPlain bool
		result      *domain.Escrow
	}{
		{
			name: "Escrow created",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 2, 150.50, "vintage camera", "card", domain.PendingDepositStatus).
					WillReturnRows(escrowRow(sampleEscrow(domain.PendingDepositStatus)))
			},
			result: sampleEscrow(domain.PendingDepositStatus),
		},
		{
			name: "Unknown party maps to referential error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 2, 150.50, "vintage camera", "card", domain.PendingDepositStatus).
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "escrows_seller_id_fkey"})
			},
			expectErr: domain.ErrReferential,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(1, 2, 150.50, "vintage camera", "card", domain.PendingDepositStatus).
					WillReturnError(errors.New("database error"))
			},
			expectPlain: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), fields)
			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
			case tt.expectPlain:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT ` + escrowColumns + `
        FROM escrows
        WHERE id = $1
    `

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Escrow
	}{
		{
			name: "Escrow found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(42).
					WillReturnRows(escrowRow(sampleEscrow(domain.FundedStatus)))
			},
			result: sampleEscrow(domain.FundedStatus),
		},
		{
			name: "Escrow missing yields nil, nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(42).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(42).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), 42)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ApplyTransition(t *testing.T) {
	repo, mock := NewMock(t)
	buyerID := 1
	releasedBy := 9
	note := "dispute settled"

	tests := []struct {
		name      string
		upd       domain.TransitionUpdate
		query     string
		args      []any
		mockSetup func(query string, args []any)
		expectErr bool
		result    *domain.Escrow
	}{
		{
			name: "Guarded mark paid wins",
			upd: domain.TransitionUpdate{
				NewStatus: domain.DepositPendingStatus,
				Expected:  []string{domain.PendingDepositStatus},
				Stamp:     "deposit_requested_at",
				BuyerID:   &buyerID,
			},
			query: `UPDATE escrows SET status = $1, deposit_requested_at = NOW() WHERE id = $2 AND status = ANY($3) AND buyer_id = $4 RETURNING ` + escrowColumns,
			args:  []any{domain.DepositPendingStatus, 42, []string{domain.PendingDepositStatus}, buyerID},
			mockSetup: func(query string, args []any) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(args...).
					WillReturnRows(escrowRow(sampleEscrow(domain.DepositPendingStatus)))
			},
			result: sampleEscrow(domain.DepositPendingStatus),
		},
		{
			name: "Release records who and why",
			upd: domain.TransitionUpdate{
				NewStatus:   domain.CompletedStatus,
				Expected:    []string{domain.ReleaseRequestedStatus, domain.FundedStatus},
				Stamp:       "released_at",
				ReleasedBy:  &releasedBy,
				ReleaseNote: &note,
			},
			query: `UPDATE escrows SET status = $1, released_at = NOW(), released_by = $2, release_note = $3 WHERE id = $4 AND status = ANY($5) RETURNING ` + escrowColumns,
			args:  []any{domain.CompletedStatus, releasedBy, note, 42, []string{domain.ReleaseRequestedStatus, domain.FundedStatus}},
			mockSetup: func(query string, args []any) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(args...).
					WillReturnRows(escrowRow(sampleEscrow(domain.CompletedStatus)))
			},
			result: sampleEscrow(domain.CompletedStatus),
		},
		{
			name: "No matching row yields nil, nil",
			upd: domain.TransitionUpdate{
				NewStatus: domain.DepositPendingStatus,
				Expected:  []string{domain.PendingDepositStatus},
				Stamp:     "deposit_requested_at",
				BuyerID:   &buyerID,
			},
			query: `UPDATE escrows SET status = $1, deposit_requested_at = NOW() WHERE id = $2 AND status = ANY($3) AND buyer_id = $4 RETURNING ` + escrowColumns,
			args:  []any{domain.DepositPendingStatus, 42, []string{domain.PendingDepositStatus}, buyerID},
			mockSetup: func(query string, args []any) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(args...).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			upd: domain.TransitionUpdate{
				NewStatus: domain.DepositPendingStatus,
				Expected:  []string{domain.PendingDepositStatus},
				Stamp:     "deposit_requested_at",
			},
			query: `UPDATE escrows SET status = $1, deposit_requested_at = NOW() WHERE id = $2 AND status = ANY($3) RETURNING ` + escrowColumns,
			args:  []any{domain.DepositPendingStatus, 42, []string{domain.PendingDepositStatus}},
			mockSetup: func(query string, args []any) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(args...).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.query, tt.args)
			result, err := repo.ApplyTransition(context.Background(), 42, tt.upd)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListForParticipant(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		role      string
		filter    domain.EscrowFilter
		query     string
		args      []any
		mockSetup func(query string, args []any)
		expectErr bool
		count     int
	}{
		{
			name: "Buyer side, no filter",
			role: domain.BuyerRole,
			query: `
        SELECT ` + escrowColumns + `
        FROM escrows
        WHERE buyer_id = $1 ORDER BY created_at DESC`,
			args: []any{1},
			mockSetup: func(query string, args []any) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(args...).
					WillReturnRows(escrowRow(sampleEscrow(domain.FundedStatus)))
			},
			count: 1,
		},
		{
			name:   "Seller side with status filter and paging",
			role:   domain.SellerRole,
			filter: domain.EscrowFilter{Status: domain.FundedStatus, Limit: 10, Offset: 20},
			query: `
        SELECT ` + escrowColumns + `
        FROM escrows
        WHERE seller_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
			args: []any{1, domain.FundedStatus, 10, 20},
			mockSetup: func(query string, args []any) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(args...).
					WillReturnRows(escrowRow(sampleEscrow(domain.FundedStatus)))
			},
			count: 1,
		},
		{
			name: "Database error",
			role: domain.BuyerRole,
			query: `
        SELECT ` + escrowColumns + `
        FROM escrows
        WHERE buyer_id = $1 ORDER BY created_at DESC`,
			args: []any{1},
			mockSetup: func(query string, args []any) {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs(args...).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.query, tt.args)
			result, err := repo.ListForParticipant(context.Background(), tt.role, 1, tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindAwaitingDeposit(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT ` + escrowColumns + `
        FROM escrows
        WHERE status = 'deposit_pending'
        ORDER BY created_at ASC
        LIMIT $1
    `

	t.Run("Escrows returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(100).
			WillReturnRows(escrowRow(sampleEscrow(domain.DepositPendingStatus)))

		result, err := repo.FindAwaitingDeposit(context.Background(), 100)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, domain.DepositPendingStatus, result[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(100).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindAwaitingDeposit(context.Background(), 100)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetWithParties(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT e.` + partyJoinColumns + `
        FROM escrows e
        LEFT JOIN users b ON e.buyer_id = b.id
        LEFT JOIN users s ON e.seller_id = s.id
        WHERE e.id = $1
    `

	e := sampleEscrow(domain.FundedStatus)
	rows := pgxmock.NewRows([]string{
		"id", "buyer_id", "seller_id", "amount", "description", "payment_method", "status", "created_at",
		"deposit_requested_at", "deposit_confirmed_at", "delivered_at", "buyer_confirmed_at",
		"released_at", "released_by", "release_note",
		"b_id", "b_name", "b_email", "b_role",
		"s_id", "s_name", "s_email", "s_role",
	}).AddRow(
		e.ID, e.BuyerID, e.SellerID, e.Amount, e.Description, e.PaymentMethod, e.Status, e.CreatedAt,
		e.DepositRequestedAt, e.DepositConfirmedAt, e.DeliveredAt, e.BuyerConfirmedAt,
		e.ReleasedAt, e.ReleasedBy, e.ReleaseNote,
		1, "Buyer", "buyer@example.com", "buyer",
		2, "Seller", "seller@example.com", "seller",
	)

	t.Run("Details returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(42).
			WillReturnRows(rows)

		result, err := repo.GetWithParties(context.Background(), 42)
		assert.NoError(t, err)
		assert.Equal(t, *e, result.Escrow)
		assert.Equal(t, domain.PartySummary{ID: 1, Name: "Buyer", Email: "buyer@example.com", Role: "buyer"}, result.Buyer)
		assert.Equal(t, domain.PartySummary{ID: 2, Name: "Seller", Email: "seller@example.com", Role: "seller"}, result.Seller)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Escrow missing yields nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(42).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.GetWithParties(context.Background(), 42)
		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListPaymentMethods(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
        SELECT code, label, details
        FROM payment_methods
        WHERE active = TRUE
        ORDER BY id ASC
    `

	t.Run("Methods listed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"code", "label", "details"}).
			AddRow("card", "Bank card", "Visa or MasterCard").
			AddRow("wire", "Wire transfer", "SWIFT")
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

		result, err := repo.ListPaymentMethods(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []domain.PaymentMethod{
			{Code: "card", Label: "Bank card", Details: "Visa or MasterCard"},
			{Code: "wire", Label: "Wire transfer", Details: "SWIFT"},
		}, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(errors.New("database error"))

		_, err := repo.ListPaymentMethods(context.Background())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
