package escrowservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mkaledin/escrowd/internal/domain"
)

//go:generate mockgen -source=escrowservice.go -destination=escrowservice_mock.go -package=escrowservice

// storeTimeout bounds every store call issued by the service; the
// pool's own dial/read timeouts sit below it.
const storeTimeout = 3 * time.Second

type Repo interface {
	Create(ctx context.Context, fields domain.EscrowCreate) (*domain.Escrow, error)
	GetByID(ctx context.Context, id int) (*domain.Escrow, error)
	ApplyTransition(ctx context.Context, id int, upd domain.TransitionUpdate) (*domain.Escrow, error)
	ListForParticipant(ctx context.Context, role string, userID int, filter domain.EscrowFilter) ([]domain.Escrow, error)
	GetWithParties(ctx context.Context, id int) (*domain.EscrowWithParties, error)
	ListAllWithParties(ctx context.Context) ([]domain.EscrowWithParties, error)
	FindAwaitingDeposit(ctx context.Context, limit uint32) ([]domain.Escrow, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

type Service struct {
	repo           Repo
	systemSellerID int
}

func New(repo Repo, systemSellerID int) *Service {
	return &Service{
		repo:           repo,
		systemSellerID: systemSellerID,
	}
}

// ApplyOptions carries action-specific extras; today only the release
// note recorded by release_funds.
type ApplyOptions struct {
	ReleaseNote string
}

// Apply runs one state transition for the authenticated actor. The
// transition table decides who may do what; the store's guarded update
// decides whether the escrow is still in the required state. When two
// calls race on the same transition, the single conditional UPDATE
// lets exactly one of them through.
func (s *Service) Apply(ctx context.Context, action Action, escrowID int, actor domain.Actor, opts *ApplyOptions) (*domain.Escrow, error) {
	tr, ok := transitions[action]
	if !ok {
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrValidation, action)
	}
	if !tr.allowsRole(actor.Role) {
		return nil, fmt.Errorf("%w: role %q cannot %s", domain.ErrForbidden, actor.Role, action)
	}

	upd := domain.TransitionUpdate{
		NewStatus: tr.to,
		Expected:  tr.from,
		Stamp:     tr.stamp,
	}
	if actor.Role != domain.AdminRole {
		switch tr.guard {
		case guardBuyer:
			upd.BuyerID = &actor.ID
		case guardSeller:
			upd.SellerID = &actor.ID
		}
	}
	if tr.release {
		upd.ReleasedBy = &actor.ID
		if opts != nil && opts.ReleaseNote != "" {
			upd.ReleaseNote = &opts.ReleaseNote
		}
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	escrow, err := s.repo.ApplyTransition(ctx, escrowID, upd)
	if err != nil {
		return nil, storeErr(err)
	}
	if escrow == nil {
		return nil, s.diagnose(ctx, action, escrowID)
	}

	zap.L().Info("escrow transition applied",
		zap.Int("escrowID", escrow.ID),
		zap.String("action", string(action)),
		zap.String("status", escrow.Status),
		zap.Int("actorID", actor.ID),
	)
	return escrow, nil
}

// diagnose turns a no-match guarded update into a precise error: the
// row either does not exist, or exists in a state (or under a party)
// that fails the action's precondition. The update itself cannot tell
// the two apart; only this follow-up read can.
func (s *Service) diagnose(ctx context.Context, action Action, escrowID int) error {
	current, err := s.repo.GetByID(ctx, escrowID)
	if err != nil {
		return storeErr(err)
	}
	if current == nil {
		return domain.ErrNotFound
	}
	return &domain.PreconditionError{
		Action:   string(action),
		Current:  current.Status,
		Required: transitions[action].from,
	}
}

func (s *Service) Create(ctx context.Context, fields domain.EscrowCreate, actor domain.Actor) (*domain.Escrow, error) {
	if fields.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if fields.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}

	switch actor.Role {
	case domain.BuyerRole:
		fields.BuyerID = actor.ID
		if fields.SellerID == 0 {
			fields.SellerID = s.systemSellerID
		}
	case domain.AdminRole:
		if fields.BuyerID == 0 || fields.SellerID == 0 {
			return nil, fmt.Errorf("%w: buyer_id and seller_id are required", domain.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: role %q cannot create escrows", domain.ErrForbidden, actor.Role)
	}
	fields.Status = domain.PendingDepositStatus

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	escrow, err := s.repo.Create(ctx, fields)
	if err != nil {
		if errors.Is(err, domain.ErrReferential) {
			return nil, err
		}
		return nil, storeErr(err)
	}

	zap.L().Info("escrow created",
		zap.Int("escrowID", escrow.ID),
		zap.Int("buyerID", escrow.BuyerID),
		zap.Int("sellerID", escrow.SellerID),
		zap.Float64("amount", escrow.Amount),
	)
	return escrow, nil
}

// GetDetails joins the escrow with its parties' public profiles. The
// handler layer decides who may see it; any admin may always call.
func (s *Service) GetDetails(ctx context.Context, escrowID int) (*domain.EscrowWithParties, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	item, err := s.repo.GetWithParties(ctx, escrowID)
	if err != nil {
		return nil, storeErr(err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *Service) ListMine(ctx context.Context, actor domain.Actor, filter domain.EscrowFilter) ([]domain.Escrow, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	escrows, err := s.repo.ListForParticipant(ctx, actor.Role, actor.ID, filter)
	if err != nil {
		return nil, storeErr(err)
	}
	return escrows, nil
}

func (s *Service) ListAll(ctx context.Context, actor domain.Actor) ([]domain.EscrowWithParties, error) {
	if actor.Role != domain.AdminRole {
		return nil, fmt.Errorf("%w: admin privileges required", domain.ErrForbidden)
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	items, err := s.repo.ListAllWithParties(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

func (s *Service) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	methods, err := s.repo.ListPaymentMethods(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return methods, nil
}

func storeErr(err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
