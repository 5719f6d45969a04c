package withdrawalrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindAllWithCreators(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
        SELECT w.id, w.creator_id, w.amount, w.fee, w.net_amount, w.status, w.requested_at, w.processed_at,
               c.full_name, c.recipient_name, c.bank_name, c.bank_account
        FROM withdrawals w
        JOIN creators c ON c.id = w.creator_id
        ORDER BY w.requested_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		var creator domain.Creator
		err := rows.Scan(
			&wd.ID, &wd.CreatorID, &wd.Amount, &wd.Fee, &wd.NetAmount, &wd.Status, &wd.RequestedAt, &wd.ProcessedAt,
			&creator.FullName, &creator.RecipientName, &creator.BankName, &creator.BankAccount,
		)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		creator.ID = wd.CreatorID
		wd.Creator = &creator
		withdrawals = append(withdrawals, wd)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) FindPaid(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, creator_id, amount, fee, net_amount, status, requested_at, processed_at
        FROM withdrawals
        WHERE status = 'paid'
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch paid withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.CreatorID, &wd.Amount, &wd.Fee, &wd.NetAmount, &wd.Status, &wd.RequestedAt, &wd.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan paid withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `
        SELECT id, creator_id, amount, fee, net_amount, status, requested_at, processed_at
        FROM withdrawals
        WHERE id = $1
    `
	var wd domain.Withdrawal
	err := r.db.QueryRow(ctx, query, id).Scan(&wd.ID, &wd.CreatorID, &wd.Amount, &wd.Fee, &wd.NetAmount, &wd.Status, &wd.RequestedAt, &wd.ProcessedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

// MarkPaid sets the status and the processed timestamp in one
// statement, there is no separate stamping step to compensate.
func (r *Repository) MarkPaid(ctx context.Context, id int, processedAt time.Time) error {
	query := `
        UPDATE withdrawals
        SET status = 'paid', processed_at = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, processedAt, id)
		if err != nil {
			zap.L().Error("failed to mark withdrawal paid", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
