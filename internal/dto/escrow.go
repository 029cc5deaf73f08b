package dto

import (
	"time"

	"github.com/mkaledin/escrowd/internal/domain"
)

type CreateEscrowRequestDTO struct {
	BuyerID       int     `json:"buyer_id,omitempty"`
	SellerID      int     `json:"seller_id,omitempty"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Description   string  `json:"description" validate:"required"`
	PaymentMethod string  `json:"payment_method"`
	CardNumber    string  `json:"card_number,omitempty"`
}

type ActionRequestDTO struct {
	Note string `json:"note,omitempty"`
}

type EscrowResponseDTO struct {
	ID                 int     `json:"id"`
	BuyerID            int     `json:"buyer_id"`
	SellerID           int     `json:"seller_id"`
	Amount             float64 `json:"amount"`
	Description        string  `json:"description"`
	PaymentMethod      string  `json:"payment_method,omitempty"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"created_at"`
	DepositRequestedAt string  `json:"deposit_requested_at,omitempty"`
	DepositConfirmedAt string  `json:"deposit_confirmed_at,omitempty"`
	DeliveredAt        string  `json:"delivered_at,omitempty"`
	BuyerConfirmedAt   string  `json:"buyer_confirmed_at,omitempty"`
	ReleasedAt         string  `json:"released_at,omitempty"`
	ReleasedBy         *int    `json:"released_by,omitempty"`
	ReleaseNote        string  `json:"release_note,omitempty"`
}

type EscrowDetailsResponseDTO struct {
	EscrowResponseDTO
	Buyer  domain.PartySummary `json:"buyer"`
	Seller domain.PartySummary `json:"seller"`
}

type PaymentMethodDTO struct {
	Code    string `json:"code"`
	Label   string `json:"label"`
	Details string `json:"details"`
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func NewEscrowResponse(e *domain.Escrow) EscrowResponseDTO {
	resp := EscrowResponseDTO{
		ID:                 e.ID,
		BuyerID:            e.BuyerID,
		SellerID:           e.SellerID,
		Amount:             e.Amount,
		Description:        e.Description,
		PaymentMethod:      e.PaymentMethod,
		Status:             e.Status,
		CreatedAt:          e.CreatedAt.Format(time.RFC3339),
		DepositRequestedAt: formatTime(e.DepositRequestedAt),
		DepositConfirmedAt: formatTime(e.DepositConfirmedAt),
		DeliveredAt:        formatTime(e.DeliveredAt),
		BuyerConfirmedAt:   formatTime(e.BuyerConfirmedAt),
		ReleasedAt:         formatTime(e.ReleasedAt),
		ReleasedBy:         e.ReleasedBy,
	}
	if e.ReleaseNote != nil {
		resp.ReleaseNote = *e.ReleaseNote
	}
	return resp
}

func NewEscrowDetailsResponse(item *domain.EscrowWithParties) EscrowDetailsResponseDTO {
	return EscrowDetailsResponseDTO{
		EscrowResponseDTO: NewEscrowResponse(&item.Escrow),
		Buyer:             item.Buyer,
		Seller:            item.Seller,
	}
}
