package depositwatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkaledin/escrowd/internal/config"
	"github.com/mkaledin/escrowd/internal/domain"
	escrowservice "github.com/mkaledin/escrowd/internal/service/escrowservice"
	"github.com/mkaledin/escrowd/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingEscrows sync.Map

//go:generate mockgen -source=depositwatch.go -destination=depositwatch_mock.go -package=depositwatch

// Repo is the slice of the escrow store the watcher reads from.
type Repo interface {
	FindAwaitingDeposit(ctx context.Context, limit uint32) ([]domain.Escrow, error)
}

// Engine applies transitions on behalf of the watcher. Satisfied by
// the escrow service so gateway confirmations go through the same
// guarded update as every other actor.
type Engine interface {
	Apply(ctx context.Context, action escrowservice.Action, escrowID int, actor domain.Actor, opts *escrowservice.ApplyOptions) (*domain.Escrow, error)
}

// Response is the payment gateway's deposit status payload.
type Response struct {
	EscrowID int     `json:"escrow_id"`
	Status   string  `json:"status"`
	Amount   float64 `json:"amount,omitempty"`
}

type Service struct {
	url            string
	escrowRepo     Repo
	engine         Engine
	client         clients.HTTPClientI
	actor          domain.Actor
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, escrowRepo Repo, engine Engine, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.GatewayAddress,
		escrowRepo: escrowRepo,
		engine:     engine,
		client:     client,
		actor: domain.Actor{
			ID:   cfg.WatcherAdminID,
			Role: domain.AdminRole,
		},
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Deposit watcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping deposit watcher")
			return
		case <-ticker.C:
			s.processEscrows(ctx)
		}
	}
}

func (s *Service) processEscrows(ctx context.Context) {
	escrows, err := s.escrowRepo.FindAwaitingDeposit(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch escrows awaiting deposit", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, escrow := range escrows {
		escrow := escrow

		if _, loaded := processingEscrows.LoadOrStore(escrow.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingEscrows.Delete(escrow.ID)
				return s.handleEscrow(ctx, escrow)
			})
			if err != nil {
				processingEscrows.Delete(escrow.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing escrows", zap.Error(err))
	}
}

func (s *Service) handleEscrow(ctx context.Context, escrow domain.Escrow) error {
	url := s.url + "/api/deposits/" + strconv.Itoa(escrow.ID)
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to check deposit for escrow %d after %d retries: %w", escrow.ID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(escrow, respHeaders, attempt)

			case http.StatusNoContent:
				zap.L().Warn("Deposit unknown to gateway, retrying", zap.Int("escrowID", escrow.ID), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("deposit for escrow %d unknown to gateway after %d retries", escrow.ID, maxRetries)

			case http.StatusOK:
				return s.processDeposit(ctx, escrow, respBody)

			default:
				zap.L().Error("Unexpected status code from gateway", zap.Int("status", statusCode), zap.Int("escrowID", escrow.ID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processDeposit(ctx context.Context, escrow domain.Escrow, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse gateway response: %w", err)
	}

	if response.EscrowID != escrow.ID {
		return fmt.Errorf("escrow id mismatch: expected %d, got %d", escrow.ID, response.EscrowID)
	}

	switch response.Status {
	case "confirmed":
		if _, err := s.engine.Apply(ctx, escrowservice.ActionConfirmDeposit, escrow.ID, s.actor, nil); err != nil {
			// A precondition failure means someone confirmed it first.
			if errors.Is(err, domain.ErrPrecondition) {
				zap.L().Info("Deposit already confirmed elsewhere", zap.Int("escrowID", escrow.ID))
				return nil
			}
			return fmt.Errorf("failed to confirm deposit for escrow %d: %w", escrow.ID, err)
		}
		zap.L().Info("Deposit confirmed by gateway", zap.Int("escrowID", escrow.ID), zap.Float64("amount", response.Amount))
	case "pending":
		zap.L().Info("Deposit still pending at gateway", zap.Int("escrowID", escrow.ID))
	default:
		zap.L().Warn("Unrecognized deposit status received", zap.Int("escrowID", escrow.ID), zap.String("status", response.Status))
	}
	return nil
}

func (s *Service) handleRateLimit(escrow domain.Escrow, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Gateway rate limit detected, retrying",
		zap.Int("escrowID", escrow.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
