package escrowrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/mkaledin/escrowd/internal/domain"
	"github.com/mkaledin/escrowd/internal/pg"
)

const fkViolationCode = "23503"

const escrowColumns = `id, buyer_id, seller_id, amount, description, payment_method, status, created_at,
        deposit_requested_at, deposit_confirmed_at, delivered_at, buyer_confirmed_at,
        released_at, released_by, release_note`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanEscrow(row pgx.Row) (*domain.Escrow, error) {
	var e domain.Escrow
	err := row.Scan(
		&e.ID, &e.BuyerID, &e.SellerID, &e.Amount, &e.Description, &e.PaymentMethod, &e.Status, &e.CreatedAt,
		&e.DepositRequestedAt, &e.DepositConfirmedAt, &e.DeliveredAt, &e.BuyerConfirmedAt,
		&e.ReleasedAt, &e.ReleasedBy, &e.ReleaseNote,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(ctx context.Context, fields domain.EscrowCreate) (*domain.Escrow, error) {
	query := `
        INSERT INTO escrows (buyer_id, seller_id, amount, description, payment_method, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + escrowColumns
	var escrow *domain.Escrow
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			fields.BuyerID, fields.SellerID, fields.Amount, fields.Description, fields.PaymentMethod, fields.Status)
		var err error
		escrow, err = scanEscrow(row)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolationCode {
			return nil, domain.ErrReferential
		}
		zap.L().Error("can't create escrow", zap.Error(err))
		return nil, err
	}
	return escrow, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Escrow, error) {
	query := `
        SELECT ` + escrowColumns + `
        FROM escrows
        WHERE id = $1
    `
	escrow, err := scanEscrow(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find escrow", zap.Error(err))
		return nil, err
	}
	return escrow, nil
}

// ApplyTransition is the single atomic guarded update behind every
// state transition: it writes the new status and the transition's
// stamp only if the row still holds one of the expected statuses and,
// when a party guard is set, belongs to that party. A nil escrow with
// a nil error means no row matched; callers diagnose that with a
// follow-up GetByID. Deliberately not wrapped in a transaction: the
// one statement is the concurrency-control primitive.
func (r *Repository) ApplyTransition(ctx context.Context, id int, upd domain.TransitionUpdate) (*domain.Escrow, error) {
	query := `UPDATE escrows SET status = $1, ` + upd.Stamp + ` = NOW()`
	args := []any{upd.NewStatus}

	if upd.ReleasedBy != nil {
		args = append(args, *upd.ReleasedBy)
		query += fmt.Sprintf(", released_by = $%d", len(args))
	}
	if upd.ReleaseNote != nil {
		args = append(args, *upd.ReleaseNote)
		query += fmt.Sprintf(", release_note = $%d", len(args))
	}

	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))
	args = append(args, upd.Expected)
	query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	if upd.BuyerID != nil {
		args = append(args, *upd.BuyerID)
		query += fmt.Sprintf(" AND buyer_id = $%d", len(args))
	}
	if upd.SellerID != nil {
		args = append(args, *upd.SellerID)
		query += fmt.Sprintf(" AND seller_id = $%d", len(args))
	}
	query += " RETURNING " + escrowColumns

	escrow, err := scanEscrow(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't apply transition", zap.Error(err))
		return nil, err
	}
	return escrow, nil
}

// ListForParticipant returns the actor's escrows: the buyer side for
// buyers, the seller side for sellers.
func (r *Repository) ListForParticipant(ctx context.Context, role string, userID int, filter domain.EscrowFilter) ([]domain.Escrow, error) {
	column := "buyer_id"
	if role == domain.SellerRole {
		column = "seller_id"
	}
	query := `
        SELECT ` + escrowColumns + `
        FROM escrows
        WHERE ` + column + ` = $1`
	args := []any{userID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get escrows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var escrows []domain.Escrow
	for rows.Next() {
		escrow, err := scanEscrow(rows)
		if err != nil {
			zap.L().Error("can't scan escrow row", zap.Error(err))
			return nil, err
		}
		escrows = append(escrows, *escrow)
	}
	return escrows, rows.Err()
}

func (r *Repository) GetWithParties(ctx context.Context, id int) (*domain.EscrowWithParties, error) {
	query := `
        SELECT e.` + partyJoinColumns + `
        FROM escrows e
        LEFT JOIN users b ON e.buyer_id = b.id
        LEFT JOIN users s ON e.seller_id = s.id
        WHERE e.id = $1
    `
	item, err := scanEscrowWithParties(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get escrow details", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) ListAllWithParties(ctx context.Context) ([]domain.EscrowWithParties, error) {
	query := `
        SELECT e.` + partyJoinColumns + `
        FROM escrows e
        LEFT JOIN users b ON e.buyer_id = b.id
        LEFT JOIN users s ON e.seller_id = s.id
        ORDER BY e.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list escrows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.EscrowWithParties
	for rows.Next() {
		item, err := scanEscrowWithParties(rows)
		if err != nil {
			zap.L().Error("can't scan escrow row", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// FindAwaitingDeposit feeds the deposit watcher: oldest escrows first
// so a stuck deposit does not starve the rest of the queue.
func (r *Repository) FindAwaitingDeposit(ctx context.Context, limit uint32) ([]domain.Escrow, error) {
	query := `
        SELECT ` + escrowColumns + `
        FROM escrows
        WHERE status = 'deposit_pending'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get escrows awaiting deposit", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var escrows []domain.Escrow
	for rows.Next() {
		escrow, err := scanEscrow(rows)
		if err != nil {
			zap.L().Error("can't scan escrow row", zap.Error(err))
			return nil, err
		}
		escrows = append(escrows, *escrow)
	}
	return escrows, rows.Err()
}

func (r *Repository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := `
        SELECT code, label, details
        FROM payment_methods
        WHERE active = TRUE
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list payment methods", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		var m domain.PaymentMethod
		if err := rows.Scan(&m.Code, &m.Label, &m.Details); err != nil {
			zap.L().Error("can't scan payment method row", zap.Error(err))
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

const partyJoinColumns = `id, e.buyer_id, e.seller_id, e.amount, e.description, e.payment_method, e.status, e.created_at,
        e.deposit_requested_at, e.deposit_confirmed_at, e.delivered_at, e.buyer_confirmed_at,
        e.released_at, e.released_by, e.release_note,
        b.id, b.name, b.email, b.role,
        s.id, s.name, s.email, s.role`

func scanEscrowWithParties(row pgx.Row) (*domain.EscrowWithParties, error) {
	var item domain.EscrowWithParties
	err := row.Scan(
		&item.ID, &item.BuyerID, &item.SellerID, &item.Amount, &item.Description, &item.PaymentMethod, &item.Status, &item.CreatedAt,
		&item.DepositRequestedAt, &item.DepositConfirmedAt, &item.DeliveredAt, &item.BuyerConfirmedAt,
		&item.ReleasedAt, &item.ReleasedBy, &item.ReleaseNote,
		&item.Buyer.ID, &item.Buyer.Name, &item.Buyer.Email, &item.Buyer.Role,
		&item.Seller.ID, &item.Seller.Name, &item.Seller.Email, &item.Seller.Role,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
