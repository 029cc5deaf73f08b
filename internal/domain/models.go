package domain

import "time"

const (
	// BuyerRole создаёт эскроу, подтверждает депозит и доставку;
	BuyerRole string = "buyer"
	// SellerRole отмечает доставку по своим эскроу;
	SellerRole string = "seller"
	// AdminRole создаёт эскроу напрямую, подтверждает депозит и высвобождает средства.
	AdminRole string = "admin"
)

const (
	// PendingDepositStatus эскроу создан, оплата ещё не заявлена;
	PendingDepositStatus string = "pending_deposit"
	// DepositPendingStatus покупатель заявил оплату, депозит не подтверждён;
	DepositPendingStatus string = "deposit_pending"
	// FundedStatus депозит подтверждён, средства удерживаются;
	FundedStatus string = "funded"
	// DeliveredStatus продавец отметил доставку;
	DeliveredStatus string = "delivered"
	// ReleaseRequestedStatus покупатель подтвердил доставку;
	ReleaseRequestedStatus string = "release_requested"
	// CompletedStatus средства высвобождены, терминальный статус.
	CompletedStatus string = "completed"
)

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Balance      float64   `db:"balance"`
	CreatedAt    time.Time `db:"created_at"`
}

// Actor is the authenticated identity performing an operation,
// as resolved by the auth middleware from the JWT claims.
type Actor struct {
	ID   int
	Role string
}

type Escrow struct {
	ID                 int        `db:"id"`
	BuyerID            int        `db:"buyer_id"`
	SellerID           int        `db:"seller_id"`
	Amount             float64    `db:"amount"`
	Description        string     `db:"description"`
	PaymentMethod      string     `db:"payment_method"`
	Status             string     `db:"status"`
	CreatedAt          time.Time  `db:"created_at"`
	DepositRequestedAt *time.Time `db:"deposit_requested_at"`
	DepositConfirmedAt *time.Time `db:"deposit_confirmed_at"`
	DeliveredAt        *time.Time `db:"delivered_at"`
	BuyerConfirmedAt   *time.Time `db:"buyer_confirmed_at"`
	ReleasedAt         *time.Time `db:"released_at"`
	ReleasedBy         *int       `db:"released_by"`
	ReleaseNote        *string    `db:"release_note"`
}

// PartySummary is the public profile slice exposed when escrows are
// joined with their participants. Never carries the password hash.
type PartySummary struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Role  string `db:"role" json:"role"`
}

type EscrowWithParties struct {
	Escrow
	Buyer  PartySummary
	Seller PartySummary
}

type PaymentMethod struct {
	Code    string `db:"code"`
	Label   string `db:"label"`
	Details string `db:"details"`
}

type EscrowCreate struct {
	BuyerID       int
	SellerID      int
	Amount        float64
	Description   string
	PaymentMethod string
	Status        string
}

// TransitionUpdate describes one guarded status update. Stamp names
// the timestamp column the transition sets; it always comes from the
// static transition table, never from caller input.
type TransitionUpdate struct {
	NewStatus   string
	Expected    []string
	Stamp       string
	BuyerID     *int
	SellerID    *int
	ReleasedBy  *int
	ReleaseNote *string
}

type EscrowFilter struct {
	Status string
	Limit  int
	Offset int
}
