package staffrepo

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.Staff, error) {
	var staff domain.Staff
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash FROM staff WHERE login = $1", login).Scan(&staff.ID, &staff.Login, &staff.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find staff account", zap.Error(err))
		return nil, err
	}
	return &staff, nil
}

func (repo *Repository) Create(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
	query := `
		INSERT INTO staff (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, staff.Login, staff.PasswordHash).Scan(&staff.ID)
	if err != nil {
		zap.L().Error("can't save staff account", zap.Error(err))
		return nil, err
	}
	return staff, nil
}
