package purchaserepo

import (
	"context"

	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindPaid(ctx context.Context) ([]domain.Purchase, error) {
	query := `
        SELECT id, product_id, user_id, amount, status, created_at
        FROM purchases
        WHERE status = 'paid'
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get paid purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		err := rows.Scan(&p.ID, &p.ProductID, &p.UserID, &p.Amount, &p.Status, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// FindRecentPaid feeds the activity list: buyer and product labels come
// along with each purchase.
func (r *Repository) FindRecentPaid(ctx context.Context, limit int) ([]domain.Purchase, error) {
	query := `
        SELECT pu.id, pu.amount, pu.created_at, u.name, u.username, pr.title
        FROM purchases pu
        LEFT JOIN users u ON u.id = pu.user_id
        LEFT JOIN products pr ON pr.id = pu.product_id
        WHERE pu.status = 'paid'
        ORDER BY pu.created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get recent purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		var name, username, title *string
		err := rows.Scan(&p.ID, &p.Amount, &p.CreatedAt, &name, &username, &title)
		if err != nil {
			zap.L().Error("can't scan recent purchase row", zap.Error(err))
			return nil, err
		}
		if name != nil {
			p.BuyerName = *name
		}
		if username != nil {
			p.BuyerUsername = *username
		}
		if title != nil {
			p.ProductTitle = *title
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
