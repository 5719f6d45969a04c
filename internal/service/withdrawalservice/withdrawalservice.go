package withdrawalservice

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/events"
	"go.uber.org/zap"
)

type Repo interface {
	FindAllWithCreators(ctx context.Context) ([]domain.Withdrawal, error)
	FindByID(ctx context.Context, id int) (*domain.Withdrawal, error)
	MarkPaid(ctx context.Context, id int, processedAt time.Time) error
}

var (
	ErrNotFound    = errors.New("withdrawal not found")
	ErrAlreadyPaid = errors.New("withdrawal already paid")
)

type Filter struct {
	Search string
	Status string
}

// Summary counts the whole set, before the filter is applied.
// TotalAmount sums net amounts over paid withdrawals only.
type Summary struct {
	Total       int
	Pending     int
	Paid        int
	TotalAmount float64
}

type Service struct {
	withdrawalRepo Repo
	publisher      events.Publisher
}

func New(withdrawalRepo Repo, publisher events.Publisher) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		publisher:      publisher,
	}
}

func (s *Service) ListWithdrawals(ctx context.Context, filter Filter) ([]domain.Withdrawal, Summary, error) {
	withdrawals, err := s.withdrawalRepo.FindAllWithCreators(ctx)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, Summary{}, err
	}

	summary := Summary{Total: len(withdrawals)}
	for _, wd := range withdrawals {
		// net_amount = amount - fee is owned by the store; a mismatch
		// means the books are off and the sum cannot be trusted.
		if math.Abs(wd.NetAmount-(wd.Amount-wd.Fee)) > 0.005 {
			zap.L().Warn("withdrawal net amount does not match amount minus fee",
				zap.Int("id", wd.ID),
				zap.Float64("amount", wd.Amount),
				zap.Float64("fee", wd.Fee),
				zap.Float64("net_amount", wd.NetAmount))
		}
		switch wd.Status {
		case domain.WithdrawalPending:
			summary.Pending++
		case domain.WithdrawalPaid:
			summary.Paid++
			summary.TotalAmount += wd.NetAmount
		}
	}

	return filterWithdrawals(withdrawals, filter), summary, nil
}

// filterWithdrawals matches the search term against the creator's legal
// and recipient names, intersected with an exact status match. "all"
// and an empty search are identity filters.
func filterWithdrawals(withdrawals []domain.Withdrawal, f Filter) []domain.Withdrawal {
	filtered := make([]domain.Withdrawal, 0, len(withdrawals))
	term := strings.ToLower(f.Search)
	for _, wd := range withdrawals {
		if f.Status != "" && f.Status != "all" && wd.Status != f.Status {
			continue
		}
		if term != "" {
			if wd.Creator == nil {
				continue
			}
			if !strings.Contains(strings.ToLower(wd.Creator.FullName), term) &&
				!strings.Contains(strings.ToLower(wd.Creator.RecipientName), term) {
				continue
			}
		}
		filtered = append(filtered, wd)
	}
	return filtered
}

// MarkPaid transitions pending to paid exactly once, stamping the
// processed timestamp in the same statement. Paying an already paid
// withdrawal is refused here; the store itself would happily run the
// update again.
func (s *Service) MarkPaid(ctx context.Context, id int) error {
	wd, err := s.withdrawalRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if wd == nil {
		return ErrNotFound
	}
	if wd.Status != domain.WithdrawalPending {
		return ErrAlreadyPaid
	}

	if err := s.withdrawalRepo.MarkPaid(ctx, id, time.Now()); err != nil {
		zap.L().Error("failed to mark withdrawal paid", zap.Error(err))
		return err
	}

	if s.publisher != nil {
		event := events.Event{
			Entity:     "withdrawal",
			EntityID:   id,
			Status:     domain.WithdrawalPaid,
			OccurredAt: time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			zap.L().Error("failed to publish withdrawal paid event", zap.Error(err))
		}
	}
	return nil
}
