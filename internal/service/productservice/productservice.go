package productservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/events"
	"github.com/syahmibakri/karya-admin/pkg/filesign"
	"go.uber.org/zap"
)

type Repo interface {
	FindAllWithOwners(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

var (
	ErrInvalidStatus = errors.New("invalid product status")
	ErrNotFound      = errors.New("product not found")
	ErrNoFile        = errors.New("product has no file")
)

type Filter struct {
	Search string
	Status string
}

// Summary counts the whole set, before the filter is applied.
type Summary struct {
	Total    int
	Approved int
	Review   int
	Rejected int
}

type FileInfo struct {
	URL  string
	Kind filesign.Kind
}

type Service struct {
	productRepo Repo
	signer      *filesign.Signer
	publisher   events.Publisher
}

func New(productRepo Repo, signer *filesign.Signer, publisher events.Publisher) *Service {
	return &Service{
		productRepo: productRepo,
		signer:      signer,
		publisher:   publisher,
	}
}

func (s *Service) ListProducts(ctx context.Context, filter Filter) ([]domain.Product, Summary, error) {
	products, err := s.productRepo.FindAllWithOwners(ctx)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, Summary{}, err
	}

	summary := Summary{Total: len(products)}
	for _, p := range products {
		switch p.Status {
		case domain.StatusApproved:
			summary.Approved++
		case domain.StatusRejected:
			summary.Rejected++
		default:
			summary.Review++
		}
	}

	return filterProducts(products, filter), summary, nil
}

// filterProducts intersects a case-insensitive substring search over
// title, category and owner username with an exact status match.
// Status "all" and an empty search term are both identity filters.
func filterProducts(products []domain.Product, f Filter) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	term := strings.ToLower(f.Search)
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) &&
			!strings.Contains(strings.ToLower(p.OwnerUsername), term) {
			continue
		}
		if f.Status != "" && f.Status != "all" && p.Status != f.Status {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// UpdateStatus moves a product between review, approved and rejected,
// in any direction. Callers re-read the list afterwards instead of
// patching their local copy.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) error {
	switch status {
	case domain.StatusReview, domain.StatusApproved, domain.StatusRejected:
	default:
		return ErrInvalidStatus
	}

	if err := s.productRepo.UpdateStatus(ctx, id, status); err != nil {
		zap.L().Error("failed to update product status", zap.Error(err))
		return err
	}

	if s.publisher != nil {
		event := events.Event{
			Entity:     "product",
			EntityID:   id,
			Status:     status,
			OccurredAt: time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			zap.L().Error("failed to publish product status event", zap.Error(err))
		}
	}
	return nil
}

// FileURL resolves what the dashboard should show for a product's file:
// the preview kind and either the stored URL or, for private storage, a
// freshly minted time-limited signed URL. Signing failures surface to
// the caller, unlike query failures elsewhere.
func (s *Service) FileURL(ctx context.Context, id int) (*FileInfo, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if product.FileURL == "" {
		return nil, ErrNoFile
	}

	info := &FileInfo{
		URL:  product.FileURL,
		Kind: filesign.PreviewKind(product.FileURL),
	}
	if filesign.IsPrivate(product.FileURL) {
		signed, err := s.signer.SignedURL(product.FileURL, filesign.DefaultTTL)
		if err != nil {
			zap.L().Error("failed to sign file url", zap.Error(err))
			return nil, err
		}
		info.URL = signed
	}
	return info, nil
}
