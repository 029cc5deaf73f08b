package escrow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkaledin/escrowd/internal/domain"
	"github.com/mkaledin/escrowd/internal/dto"
	escrowservice "github.com/mkaledin/escrowd/internal/service/escrowservice"
	pkgauth "github.com/mkaledin/escrowd/pkg/auth"
	"github.com/mkaledin/escrowd/pkg/utils"
	"github.com/mkaledin/escrowd/pkg/validate"
)

//go:generate mockgen -source=escrow.go -destination=escrow_mock.go -package=escrow

type Service interface {
	Create(ctx context.Context, fields domain.EscrowCreate, actor domain.Actor) (*domain.Escrow, error)
	Apply(ctx context.Context, action escrowservice.Action, escrowID int, actor domain.Actor, opts *escrowservice.ApplyOptions) (*domain.Escrow, error)
	ListMine(ctx context.Context, actor domain.Actor, filter domain.EscrowFilter) ([]domain.Escrow, error)
	PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

type EscrowHandler struct {
	escrowService Service
}

func New(escrowService Service) *EscrowHandler {
	return &EscrowHandler{
		escrowService: escrowService,
	}
}

func actorFrom(r *http.Request) domain.Actor {
	userID, role := pkgauth.ActorFromContext(r.Context())
	return domain.Actor{ID: userID, Role: role}
}

func escrowIDFrom(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "escrowID"))
	return id, err == nil && id > 0
}

// respondTransitionError maps the engine's error taxonomy onto HTTP.
// Wrong state is a 409 so callers can tell it apart from plain bad
// input; the precondition message already names the observed status.
func respondTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Escrow not found")
	case errors.Is(err, domain.ErrPrecondition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrReferential):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Store unavailable, retry later")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *EscrowHandler) apply(w http.ResponseWriter, r *http.Request, action escrowservice.Action) {
	escrowID, ok := escrowIDFrom(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid escrow id")
		return
	}

	var req dto.ActionRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
	}

	escrow, err := h.escrowService.Apply(r.Context(), action, escrowID, actorFrom(r), &escrowservice.ApplyOptions{
		ReleaseNote: req.Note,
	})
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEscrowResponse(escrow))
}

// Create godoc
//
//	@Summary		Create an escrow proposal
//	@Description	A buyer proposes an escrow; the seller defaults to the system placeholder until resolved.
//	@Tags			Escrows
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateEscrowRequestDTO	true	"Escrow fields"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.EscrowResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request or non-positive amount"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Role cannot create escrows"
//	@Failure		404	{object}	utils.Response	"Referenced user does not exist"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/escrows [post]
func (h *EscrowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEscrowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.PaymentMethod == "card" && !validate.IsLuna(req.CardNumber) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	escrow, err := h.escrowService.Create(r.Context(), domain.EscrowCreate{
		SellerID:      req.SellerID,
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
	}, actorFrom(r))
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewEscrowResponse(escrow))
}

// ListMine godoc
//
//	@Summary		List own escrows
//	@Description	Escrows where the authenticated user is the buyer or the seller, most recent first.
//	@Tags			Escrows
//	@Produce		json
//	@Param			status	query	string	false	"Filter by status"
//	@Param			limit	query	int		false	"Page size"
//	@Param			offset	query	int		false	"Page offset"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.EscrowResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/escrows [get]
func (h *EscrowHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	filter := domain.EscrowFilter{
		Status: r.URL.Query().Get("status"),
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	escrows, err := h.escrowService.ListMine(r.Context(), actorFrom(r), filter)
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	if len(escrows) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.EscrowResponseDTO, 0, len(escrows))
	for i := range escrows {
		response = append(response, dto.NewEscrowResponse(&escrows[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkPaid godoc
//
//	@Summary		Mark an escrow as paid
//	@Description	The buyer declares the deposit sent; moves pending_deposit to deposit_pending.
//	@Tags			Escrows
//	@Produce		json
//	@Param			escrowID	path	int	true	"Escrow ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EscrowResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the escrow's buyer"
//	@Failure		404	{object}	utils.Response	"Escrow not found"
//	@Failure		409	{object}	utils.Response	"Escrow is not pending_deposit"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/escrows/{escrowID}/mark-paid [post]
func (h *EscrowHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, escrowservice.ActionMarkPaid)
}

// ConfirmDeposit godoc
//
//	@Summary		Confirm the deposit
//	@Description	The buyer (or an admin) confirms the deposit arrived; moves deposit_pending to funded.
//	@Tags			Escrows
//	@Produce		json
//	@Param			escrowID	path	int	true	"Escrow ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EscrowResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the escrow's buyer"
//	@Failure		404	{object}	utils.Response	"Escrow not found"
//	@Failure		409	{object}	utils.Response	"Escrow is not deposit_pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/escrows/{escrowID}/confirm-deposit [post]
func (h *EscrowHandler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, escrowservice.ActionConfirmDeposit)
}

// MarkDelivered godoc
//
//	@Summary		Mark an escrow as delivered
//	@Description	The seller declares delivery; moves funded to delivered.
//	@Tags			Escrows
//	@Produce		json
//	@Param			escrowID	path	int	true	"Escrow ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EscrowResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the escrow's seller"
//	@Failure		404	{object}	utils.Response	"Escrow not found"
//	@Failure		409	{object}	utils.Response	"Escrow is not funded"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/escrows/{escrowID}/mark-delivered [post]
func (h *EscrowHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, escrowservice.ActionMarkDelivered)
}

// ConfirmDelivery godoc
//
//	@Summary		Confirm delivery
//	@Description	The buyer confirms delivery; moves delivered to release_requested.
//	@Tags			Escrows
//	@Produce		json
//	@Param			escrowID	path	int	true	"Escrow ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EscrowResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the escrow's buyer"
//	@Failure		404	{object}	utils.Response	"Escrow not found"
//	@Failure		409	{object}	utils.Response	"Escrow is not delivered"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/escrows/{escrowID}/confirm-delivery [post]
func (h *EscrowHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, escrowservice.ActionConfirmDelivery)
}

// PaymentMethods godoc
//
//	@Summary		List active payment methods
//	@Tags			Escrows
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.PaymentMethodDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payment-methods [get]
func (h *EscrowHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.escrowService.PaymentMethods(r.Context())
	if err != nil {
		respondTransitionError(w, err)
		return
	}

	response := make([]dto.PaymentMethodDTO, 0, len(methods))
	for _, m := range methods {
		response = append(response, dto.PaymentMethodDTO(m))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
