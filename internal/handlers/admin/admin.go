package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkaledin/escrowd/internal/domain"
	"github.com/mkaledin/escrowd/internal/dto"
	escrowservice "github.com/mkaledin/escrowd/internal/service/escrowservice"
	pkgauth "github.com/mkaledin/escrowd/pkg/auth"
	"github.com/mkaledin/escrowd/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=admin

type EscrowService interface {
	Create(ctx context.Context, fields domain.EscrowCreate, actor domain.Actor) (*domain.Escrow, error)
	Apply(ctx context.Context, action escrowservice.Action, escrowID int, actor domain.Actor, opts *escrowservice.ApplyOptions) (*domain.Escrow, error)
	GetDetails(ctx context.Context, escrowID int) (*domain.EscrowWithParties, error)
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.EscrowWithParties, error)
}

type UserService interface {
	ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
}

type AdminHandler struct {
	escrowService EscrowService
	userService   UserService
}

func New(escrowService EscrowService, userService UserService) *AdminHandler {
	return &AdminHandler{
		escrowService: escrowService,
		userService:   userService,
	}
}

func actorFrom(r *http.Request) domain.Actor {
	userID, role := pkgauth.ActorFromContext(r.Context())
	return domain.Actor{ID: userID, Role: role}
}

func respondError(w http.ResponseWriter, err error) {
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

// CreateEscrow godoc
//
//	@Summary		Create an escrow directly
//	@Description	Admin creates an escrow between two existing users.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateEscrowRequestDTO	true	"Escrow fields including buyer_id and seller_id"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.EscrowResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin privileges required"
//	@Failure		404	{object}	utils.Response	"Buyer or seller does not exist"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/escrows [post]
func (h *AdminHandler) CreateEscrow(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEscrowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	escrow, err := h.escrowService.Create(r.Context(), domain.EscrowCreate{
		BuyerID:       req.BuyerID,
		SellerID:      req.SellerID,
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
	}, actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewEscrowResponse(escrow))
}

// ListEscrows godoc
//
//	@Summary		List all escrows
//	@Description	Every escrow with joined buyer/seller summaries, most recent first.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.EscrowDetailsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin privileges required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/escrows [get]
func (h *AdminHandler) ListEscrows(w http.ResponseWriter, r *http.Request) {
	items, err := h.escrowService.ListAll(r.Context(), actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}

	response := make([]dto.EscrowDetailsResponseDTO, 0, len(items))
	for i := range items {
		response = append(response, dto.NewEscrowDetailsResponse(&items[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// EscrowDetails godoc
//
//	@Summary		Escrow details
//	@Description	One escrow joined with its parties' public profiles.
//	@Tags			Admin
//	@Produce		json
//	@Param			escrowID	path	int	true	"Escrow ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EscrowDetailsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin privileges required"
//	@Failure		404	{object}	utils.Response	"Escrow not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/escrows/{escrowID} [get]
func (h *AdminHandler) EscrowDetails(w http.ResponseWriter, r *http.Request) {
	escrowID, err := strconv.Atoi(chi.URLParam(r, "escrowID"))
	if err != nil || escrowID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid escrow id")
		return
	}

	item, err := h.escrowService.GetDetails(r.Context(), escrowID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEscrowDetailsResponse(item))
}

// ConfirmDeposit godoc
//
//	@Summary		Confirm a deposit as admin
//	@Description	Moves deposit_pending to funded without the buyer guard.
//	@Tags			Admin
//	@Produce		json
//	@Param			escrowID	path	int	true	"Escrow ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EscrowResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin privileges required"
//	@Failure		404	{object}	utils.Response	"Escrow not found"
//	@Failure		409	{object}	utils.Response	"Escrow is not deposit_pending"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/escrows/{escrowID}/confirm-deposit [post]
func (h *AdminHandler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, escrowservice.ActionConfirmDeposit)
}

// ReleaseFunds godoc
//
//	@Summary		Release escrowed funds
//	@Description	Admin completes the escrow from release_requested or funded, recording who released and why. Status change only; no balance movement.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			escrowID	path	int					true	"Escrow ID"
//	@Param			request		body	dto.ActionRequestDTO	false	"Optional release note"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EscrowResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin privileges required"
//	@Failure		404	{object}	utils.Response	"Escrow not found"
//	@Failure		409	{object}	utils.Response	"Escrow is not ready for release"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/escrows/{escrowID}/release [post]
func (h *AdminHandler) ReleaseFunds(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, escrowservice.ActionReleaseFunds)
}

func (h *AdminHandler) apply(w http.ResponseWriter, r *http.Request, action escrowservice.Action) {
	escrowID, err := strconv.Atoi(chi.URLParam(r, "escrowID"))
	if err != nil || escrowID <= 0 {
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
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEscrowResponse(escrow))
}

// ListUsers godoc
//
//	@Summary		List all users
//	@Description	Admin-only listing of registered users, most recent first.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin privileges required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context(), actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}

	response := make([]dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		response = append(response, dto.UserResponseDTO{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			Balance:   user.Balance,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
