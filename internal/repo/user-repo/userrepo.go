package userrepo

import (
	"context"
	"time"

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

// FindAllWithCreators returns every user newest first, with the creator
// payout profile attached where one exists. The joined query is the
// primary path; if it errors (the relationship is declared outside this
// service and has broken before), the rows are merged manually instead.
func (r *Repository) FindAllWithCreators(ctx context.Context) ([]domain.User, error) {
	users, err := r.findJoined(ctx)
	if err == nil {
		return users, nil
	}
	zap.L().Error("joined users query failed, merging manually", zap.Error(err))
	return r.findMerged(ctx)
}

func (r *Repository) findJoined(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT u.id, u.name, u.username, u.email, u.phone_number, u.bio, u.created_at,
               c.id, c.user_id, c.full_name, c.ic_number, c.recipient_name,
               c.bank_name, c.bank_account, c.status, c.created_at
        FROM users u
        LEFT JOIN creators c ON c.user_id = u.id
        ORDER BY u.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var (
			cID, cUserID                                            *int
			cFullName, cICNumber, cRecipient, cBank, cAcct, cStatus *string
			cCreatedAt                                              *time.Time
		)
		err := rows.Scan(
			&user.ID, &user.Name, &user.Username, &user.Email, &user.PhoneNumber, &user.Bio, &user.CreatedAt,
			&cID, &cUserID, &cFullName, &cICNumber, &cRecipient, &cBank, &cAcct, &cStatus, &cCreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		if cID != nil {
			user.Creator = &domain.Creator{
				ID:            *cID,
				UserID:        *cUserID,
				FullName:      *cFullName,
				ICNumber:      *cICNumber,
				RecipientName: *cRecipient,
				BankName:      *cBank,
				BankAccount:   *cAcct,
				Status:        *cStatus,
				CreatedAt:     *cCreatedAt,
			}
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// findMerged is the documented fallback: two plain selects stitched
// together by user id.
func (r *Repository) findMerged(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, name, username, email, phone_number, bio, created_at
        FROM users
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	var userIDs []int
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Username, &user.Email, &user.PhoneNumber, &user.Bio, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
		userIDs = append(userIDs, user.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return users, nil
	}

	creators, err := r.findCreatorsByUserIDs(ctx, userIDs)
	if err != nil {
		// Users without profiles are still worth showing.
		zap.L().Error("can't get creator profiles, listing users without them", zap.Error(err))
		return users, nil
	}
	byUserID := make(map[int]*domain.Creator, len(creators))
	for i := range creators {
		byUserID[creators[i].UserID] = &creators[i]
	}
	for i := range users {
		users[i].Creator = byUserID[users[i].ID]
	}
	return users, nil
}

func (r *Repository) findCreatorsByUserIDs(ctx context.Context, userIDs []int) ([]domain.Creator, error) {
	query := `
        SELECT id, user_id, full_name, ic_number, recipient_name, bank_name, bank_account, status, created_at
        FROM creators
        WHERE user_id = ANY($1)
    `
	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creators []domain.Creator
	for rows.Next() {
		var c domain.Creator
		err := rows.Scan(&c.ID, &c.UserID, &c.FullName, &c.ICNumber, &c.RecipientName, &c.BankName, &c.BankAccount, &c.Status, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		creators = append(creators, c)
	}
	return creators, rows.Err()
}

func (r *Repository) FindRecent(ctx context.Context, limit int) ([]domain.User, error) {
	query := `
        SELECT id, name, username, created_at
        FROM users
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get recent users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Username, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan recent user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CountUsers is a count-only query, no row data crosses the wire.
func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindCreatorByUserID(ctx context.Context, userID int) (*domain.Creator, error) {
	query := `
        SELECT c.id, c.user_id, c.full_name, c.ic_number, c.recipient_name, c.bank_name, c.bank_account, c.status, c.created_at
        FROM creators c
        WHERE c.user_id = $1
    `
	var c domain.Creator
	err := r.db.QueryRow(ctx, query, userID).Scan(&c.ID, &c.UserID, &c.FullName, &c.ICNumber, &c.RecipientName, &c.BankName, &c.BankAccount, &c.Status, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find creator profile", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindUserEmail(ctx context.Context, userID int) (string, error) {
	var email string
	err := r.db.QueryRow(ctx, "SELECT email FROM users WHERE id = $1", userID).Scan(&email)
	if err != nil {
		zap.L().Error("can't find user email", zap.Error(err))
		return "", err
	}
	return email, nil
}

// UpdateCreatorStatus is keyed by user id, the creators table keeps a
// 1:1 foreign key to users.
func (r *Repository) UpdateCreatorStatus(ctx context.Context, userID int, status string) error {
	query := `
        UPDATE creators
        SET status = $1
        WHERE user_id = $2
    `
	_, err := r.db.Exec(ctx, query, status, userID)
	if err != nil {
		zap.L().Error("failed to update creator status", zap.Error(err))
		return err
	}
	return nil
}
