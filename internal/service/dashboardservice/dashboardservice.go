package dashboardservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/syahmibakri/karya-admin/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type PurchaseRepo interface {
	FindPaid(ctx context.Context) ([]domain.Purchase, error)
	FindRecentPaid(ctx context.Context, limit int) ([]domain.Purchase, error)
}

type ProductRepo interface {
	FindActive(ctx context.Context) ([]domain.Product, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Product, error)
}

type WithdrawalRepo interface {
	FindPaid(ctx context.Context) ([]domain.Withdrawal, error)
}

type UserRepo interface {
	FindRecent(ctx context.Context, limit int) ([]domain.User, error)
	CountUsers(ctx context.Context) (int, error)
}

const (
	recentPurchaseCount = 5
	recentUserCount     = 3
	recentProductCount  = 3
	activityLimit       = 8
	chartDays           = 7
)

type Snapshot struct {
	Stats    domain.DashboardStats
	Chart    []domain.RevenuePoint
	Activity []domain.Activity
}

type Service struct {
	purchaseRepo   PurchaseRepo
	productRepo    ProductRepo
	withdrawalRepo WithdrawalRepo
	userRepo       UserRepo
}

func New(purchaseRepo PurchaseRepo, productRepo ProductRepo, withdrawalRepo WithdrawalRepo, userRepo UserRepo) *Service {
	return &Service{
		purchaseRepo:   purchaseRepo,
		productRepo:    productRepo,
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
	}
}

// GetSnapshot recomputes every dashboard figure from raw rows. Nothing
// derived is cached between calls. A failing query logs and contributes
// zeroes instead of failing the whole snapshot.
func (s *Service) GetSnapshot(ctx context.Context) *Snapshot {
	var (
		paidPurchases   []domain.Purchase
		activeProducts  []domain.Product
		paidWithdrawals []domain.Withdrawal
		recentPurchases []domain.Purchase
		recentUsers     []domain.User
		recentProducts  []domain.Product
		totalUsers      int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if paidPurchases, err = s.purchaseRepo.FindPaid(gctx); err != nil {
			zap.L().Error("dashboard: paid purchases unavailable", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if activeProducts, err = s.productRepo.FindActive(gctx); err != nil {
			zap.L().Error("dashboard: active products unavailable", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if paidWithdrawals, err = s.withdrawalRepo.FindPaid(gctx); err != nil {
			zap.L().Error("dashboard: paid withdrawals unavailable", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if recentPurchases, err = s.purchaseRepo.FindRecentPaid(gctx, recentPurchaseCount); err != nil {
			zap.L().Error("dashboard: recent purchases unavailable", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if recentUsers, err = s.userRepo.FindRecent(gctx, recentUserCount); err != nil {
			zap.L().Error("dashboard: recent users unavailable", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if recentProducts, err = s.productRepo.FindRecent(gctx, recentProductCount); err != nil {
			zap.L().Error("dashboard: recent products unavailable", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if totalUsers, err = s.userRepo.CountUsers(gctx); err != nil {
			zap.L().Error("dashboard: user count unavailable", zap.Error(err))
		}
		return nil
	})
	_ = g.Wait()

	now := time.Now()
	return &Snapshot{
		Stats:    computeStats(paidPurchases, activeProducts, paidWithdrawals, totalUsers),
		Chart:    revenueSeries(paidPurchases, now),
		Activity: buildActivity(recentPurchases, recentUsers, recentProducts, now),
	}
}

// computeStats holds the reconciliation model: "total revenue" is the
// sum of paid-out withdrawal net amounts, not gross sales. That naming
// comes from the product side and is kept as is. The balance is never
// clamped, a negative value means the books disagree and should show.
func computeStats(paidPurchases []domain.Purchase, activeProducts []domain.Product, paidWithdrawals []domain.Withdrawal, totalUsers int) domain.DashboardStats {
	var creatorEarnings float64
	for _, p := range paidPurchases {
		creatorEarnings += p.Amount
	}

	var totalRevenue float64
	for _, w := range paidWithdrawals {
		totalRevenue += w.NetAmount
	}

	approved := 0
	for _, p := range activeProducts {
		if p.Status == domain.StatusApproved {
			approved++
		}
	}

	return domain.DashboardStats{
		TotalRevenue:       totalRevenue,
		CreatorEarnings:    creatorEarnings,
		TotalWithdrawn:     totalRevenue,
		CompanyBalance:     creatorEarnings - totalRevenue,
		PendingWithdrawals: creatorEarnings - totalRevenue,
		ProductsSold:       len(paidPurchases),
		TotalUsers:         totalUsers,
		ActiveProducts:     approved,
	}
}

const dayKeyLayout = "2006-01-02"

// revenueSeries buckets paid purchase amounts by calendar day for the
// trailing week, today included, oldest day first. Always 7 points.
func revenueSeries(paidPurchases []domain.Purchase, now time.Time) []domain.RevenuePoint {
	points := make([]domain.RevenuePoint, 0, chartDays)
	for i := chartDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format(dayKeyLayout)

		var revenue float64
		for _, p := range paidPurchases {
			if p.CreatedAt.Format(dayKeyLayout) == key {
				revenue += p.Amount
			}
		}
		points = append(points, domain.RevenuePoint{
			Date:    day.Format("2 Jan"),
			Revenue: revenue,
		})
	}
	return points
}

// buildActivity merges recent purchases, signups and product creations
// into a single feed, newest first, capped at 8 entries.
func buildActivity(purchases []domain.Purchase, users []domain.User, products []domain.Product, now time.Time) []domain.Activity {
	activities := make([]domain.Activity, 0, len(purchases)+len(users)+len(products))

	for _, p := range purchases {
		buyer := p.BuyerName
		if buyer == "" {
			buyer = "Unknown User"
		}
		action := "Purchased a product"
		if p.ProductTitle != "" {
			action = "Purchased " + p.ProductTitle
		}
		activities = append(activities, domain.Activity{
			ID:        p.ID,
			Type:      domain.ActivityPurchase,
			User:      buyer,
			Username:  p.BuyerUsername,
			Action:    action,
			Time:      timeAgo(now, p.CreatedAt),
			Amount:    fmt.Sprintf("RM %.2f", p.Amount),
			Timestamp: p.CreatedAt,
		})
	}

	for _, u := range users {
		activities = append(activities, domain.Activity{
			ID:        u.ID,
			Type:      domain.ActivityUserJoined,
			User:      u.Name,
			Username:  u.Username,
			Action:    "Joined the platform",
			Time:      timeAgo(now, u.CreatedAt),
			Timestamp: u.CreatedAt,
		})
	}

	for _, p := range products {
		owner := p.OwnerUsername
		if owner == "" {
			owner = "Unknown"
		}
		activities = append(activities, domain.Activity{
			ID:        p.ID,
			Type:      domain.ActivityProductCreated,
			User:      owner,
			Action:    fmt.Sprintf("Created product %q", p.Title),
			Time:      timeAgo(now, p.CreatedAt),
			Timestamp: p.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > activityLimit {
		activities = activities[:activityLimit]
	}
	return activities
}

// timeAgo floors the elapsed time into the largest fitting unit. The
// unit word is always plural ("1 minutes ago"), matching what the
// dashboard has always shown.
func timeAgo(now, t time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return fmt.Sprintf("%d minutes ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hours ago", seconds/3600)
	default:
		return fmt.Sprintf("%d days ago", seconds/86400)
	}
}
