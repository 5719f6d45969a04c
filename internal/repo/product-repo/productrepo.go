package productrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

const productColumns = `p.id, p.owner_id, p.title, p.category, p.price, p.description,
               p.thumbnail_url, p.file_url, p.video_url, p.status, p.is_active, p.is_deleted, p.created_at`

// FindAllWithOwners returns every non-deleted product newest first with
// the owner's username attached. Joined query first, manual merge as
// the documented fallback.
func (r *Repository) FindAllWithOwners(ctx context.Context) ([]domain.Product, error) {
	products, err := r.findJoined(ctx)
	if err == nil {
		return products, nil
	}
	zap.L().Error("joined products query failed, merging manually", zap.Error(err))
	return r.findMerged(ctx)
}

func (r *Repository) findJoined(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `, u.username
        FROM products p
        LEFT JOIN users u ON u.id = p.owner_id
        WHERE p.is_deleted = false
        ORDER BY p.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var username *string
		err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Title, &p.Category, &p.Price, &p.Description,
			&p.ThumbnailURL, &p.FileURL, &p.VideoURL, &p.Status, &p.IsActive, &p.IsDeleted, &p.CreatedAt,
			&username,
		)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		if username != nil {
			p.OwnerUsername = *username
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *Repository) findMerged(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products p
        WHERE p.is_deleted = false
        ORDER BY p.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	ownerIDs := make(map[int]struct{})
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Title, &p.Category, &p.Price, &p.Description,
			&p.ThumbnailURL, &p.FileURL, &p.VideoURL, &p.Status, &p.IsActive, &p.IsDeleted, &p.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
		ownerIDs[p.OwnerID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ownerIDs) == 0 {
		return products, nil
	}

	ids := make([]int, 0, len(ownerIDs))
	for id := range ownerIDs {
		ids = append(ids, id)
	}
	usernames, err := r.findUsernames(ctx, ids)
	if err != nil {
		zap.L().Error("can't get product owners, listing products without them", zap.Error(err))
		return products, nil
	}
	for i := range products {
		products[i].OwnerUsername = usernames[products[i].OwnerID]
	}
	return products, nil
}

func (r *Repository) findUsernames(ctx context.Context, userIDs []int) (map[int]string, error) {
	rows, err := r.db.Query(ctx, "SELECT id, username FROM users WHERE id = ANY($1)", userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usernames := make(map[int]string, len(userIDs))
	for rows.Next() {
		var id int
		var username string
		if err := rows.Scan(&id, &username); err != nil {
			return nil, err
		}
		usernames[id] = username
	}
	return usernames, rows.Err()
}

// FindActive returns the is_active rows the dashboard counts approved
// products within.
func (r *Repository) FindActive(ctx context.Context) ([]domain.Product, error) {
	query := `
        SELECT id, status, is_active
        FROM products
        WHERE is_active = true AND is_deleted = false
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get active products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Status, &p.IsActive); err != nil {
			zap.L().Error("can't scan active product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `
        SELECT p.id, p.title, p.owner_id, p.created_at, u.username
        FROM products p
        LEFT JOIN users u ON u.id = p.owner_id
        ORDER BY p.created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get recent products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var username *string
		if err := rows.Scan(&p.ID, &p.Title, &p.OwnerID, &p.CreatedAt, &username); err != nil {
			zap.L().Error("can't scan recent product row", zap.Error(err))
			return nil, err
		}
		if username != nil {
			p.OwnerUsername = *username
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products p
        WHERE p.id = $1
    `
	var p domain.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Category, &p.Price, &p.Description,
		&p.ThumbnailURL, &p.FileURL, &p.VideoURL, &p.Status, &p.IsActive, &p.IsDeleted, &p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find product", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE products
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update product status", zap.Error(err))
		return err
	}
	return nil
}
