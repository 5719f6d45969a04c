package userservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/events"
	"github.com/syahmibakri/karya-admin/pkg/mailer"
	"github.com/syahmibakri/karya-admin/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	FindAllWithCreators(ctx context.Context) ([]domain.User, error)
	FindCreatorByUserID(ctx context.Context, userID int) (*domain.Creator, error)
	FindUserEmail(ctx context.Context, userID int) (string, error)
	UpdateCreatorStatus(ctx context.Context, userID int, status string) error
}

var (
	ErrInvalidStatus    = errors.New("invalid creator status")
	ErrNotCreator       = errors.New("user has no creator profile")
	ErrBadPayoutAccount = errors.New("creator bank account fails validation")
)

const (
	TypeAll      = "all"
	TypeCreators = "creators"
	TypeRegular  = "regular"
)

type Filter struct {
	Search string
	Status string
	Type   string
}

// Summary counts the whole set, before the filter is applied.
type Summary struct {
	Total    int
	Creators int
	Regular  int
	Approved int
	Pending  int
	Rejected int
}

type Service struct {
	userRepo  Repo
	mail      mailer.Mailer
	publisher events.Publisher
}

func New(userRepo Repo, mail mailer.Mailer, publisher events.Publisher) *Service {
	return &Service{
		userRepo:  userRepo,
		mail:      mail,
		publisher: publisher,
	}
}

func (s *Service) ListUsers(ctx context.Context, filter Filter) ([]domain.User, Summary, error) {
	users, err := s.userRepo.FindAllWithCreators(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, Summary{}, err
	}

	summary := Summary{Total: len(users)}
	for _, u := range users {
		if u.Creator == nil {
			summary.Regular++
			continue
		}
		summary.Creators++
		switch u.Creator.Status {
		case domain.StatusApproved:
			summary.Approved++
		case domain.StatusRejected:
			summary.Rejected++
		case domain.StatusPending:
			summary.Pending++
		}
	}

	return filterUsers(users, filter), summary, nil
}

// filterUsers intersects the search term (matched against the user's
// own fields and the creator profile's legal name and identity number)
// with the account-type predicate and the creator-status match. "all"
// and an empty search are identity filters.
func filterUsers(users []domain.User, f Filter) []domain.User {
	filtered := make([]domain.User, 0, len(users))
	term := strings.ToLower(f.Search)
	for _, u := range users {
		if term != "" && !userMatches(u, term) {
			continue
		}
		switch f.Type {
		case TypeCreators:
			if u.Creator == nil {
				continue
			}
		case TypeRegular:
			if u.Creator != nil {
				continue
			}
		}
		if f.Status != "" && f.Status != "all" {
			if u.Creator == nil || u.Creator.Status != f.Status {
				continue
			}
		}
		filtered = append(filtered, u)
	}
	return filtered
}

func userMatches(u domain.User, term string) bool {
	if strings.Contains(strings.ToLower(u.Name), term) ||
		strings.Contains(strings.ToLower(u.Username), term) ||
		strings.Contains(strings.ToLower(u.Email), term) ||
		strings.Contains(strings.ToLower(u.PhoneNumber), term) {
		return true
	}
	if u.Creator == nil {
		return false
	}
	return strings.Contains(strings.ToLower(u.Creator.FullName), term) ||
		strings.Contains(strings.ToLower(u.Creator.ICNumber), term)
}

// UpdateCreatorStatus changes a creator application's status, keyed by
// the owning user. Approval additionally checks the payout account so a
// creator is never approved with an unpayable bank account on file.
func (s *Service) UpdateCreatorStatus(ctx context.Context, userID int, status string) error {
	switch status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
	default:
		return ErrInvalidStatus
	}

	creator, err := s.userRepo.FindCreatorByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if creator == nil {
		return ErrNotCreator
	}
	if status == domain.StatusApproved && !validate.IsPayoutAccount(creator.BankAccount) {
		return ErrBadPayoutAccount
	}

	if err := s.userRepo.UpdateCreatorStatus(ctx, userID, status); err != nil {
		zap.L().Error("failed to update creator status", zap.Error(err))
		return err
	}

	s.notifyDecision(ctx, userID, creator, status)

	if s.publisher != nil {
		event := events.Event{
			Entity:     "creator",
			EntityID:   userID,
			Status:     status,
			OccurredAt: time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			zap.L().Error("failed to publish creator status event", zap.Error(err))
		}
	}
	return nil
}

// notifyDecision emails the applicant about the outcome when SMTP is
// configured. A failed mail never fails the status change.
func (s *Service) notifyDecision(ctx context.Context, userID int, creator *domain.Creator, status string) {
	if s.mail == nil || status == domain.StatusPending {
		return
	}
	email, err := s.userRepo.FindUserEmail(ctx, userID)
	if err != nil || email == "" {
		return
	}

	subject := "Your creator application"
	var body string
	switch status {
	case domain.StatusApproved:
		body = fmt.Sprintf("Hi %s,\n\nYour creator application has been approved. You can now list products and request payouts.", creator.FullName)
	case domain.StatusRejected:
		body = fmt.Sprintf("Hi %s,\n\nYour creator application has been rejected. Please review your submitted details and apply again.", creator.FullName)
	}
	if err := s.mail.Send(email, subject, body); err != nil {
		zap.L().Error("failed to send decision email", zap.Error(err))
	}
}
