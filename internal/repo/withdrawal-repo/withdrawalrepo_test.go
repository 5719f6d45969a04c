package withdrawalrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/pg"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func ptr[T any](v T) *T { return &v }

func TestRepository_FindAllWithCreators(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)
	now := time.Now()
	processed := now.Add(-time.Hour)

	columns := []string{
		"id", "creator_id", "amount", "fee", "net_amount", "status", "requested_at", "processed_at",
		"full_name", "recipient_name", "bank_name", "bank_account",
	}

	t.Run("Withdrawals carry creator payout details", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(2, 10, 200.0, 10.0, 190.0, "paid", now, ptr(processed),
				"Aina binti Zulkifli", "Aina Zulkifli", "Maybank", "112233445566").
			AddRow(1, 11, 100.0, 5.0, 95.0, "pending", now, (*time.Time)(nil),
				"Hafiz bin Rahman", "Hafiz Rahman", "CIMB", "4539578763621486")
		mock.ExpectQuery("JOIN creators c ON c.id = w.creator_id").
			WillReturnRows(rows)

		withdrawals, err := repo.FindAllWithCreators(ctx)

		assert.NoError(t, err)
		assert.Len(t, withdrawals, 2)
		assert.NotNil(t, withdrawals[0].Creator)
		assert.Equal(t, 10, withdrawals[0].Creator.ID)
		assert.Equal(t, "Maybank", withdrawals[0].Creator.BankName)
		assert.NotNil(t, withdrawals[0].ProcessedAt)
		assert.Nil(t, withdrawals[1].ProcessedAt)
		assert.Equal(t, "pending", withdrawals[1].Status)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("JOIN creators c ON c.id = w.creator_id").
			WillReturnError(errors.New("database error"))

		withdrawals, err := repo.FindAllWithCreators(ctx)

		assert.Error(t, err)
		assert.Nil(t, withdrawals)
	})
}

func TestRepository_FindPaid(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)
	now := time.Now()

	columns := []string{"id", "creator_id", "amount", "fee", "net_amount", "status", "requested_at", "processed_at"}

	t.Run("Paid withdrawals found", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(2, 10, 200.0, 10.0, 190.0, "paid", now, ptr(now))
		mock.ExpectQuery("WHERE status = 'paid'").
			WillReturnRows(rows)

		withdrawals, err := repo.FindPaid(ctx)

		assert.NoError(t, err)
		assert.Len(t, withdrawals, 1)
		assert.Equal(t, 190.0, withdrawals[0].NetAmount)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("WHERE status = 'paid'").
			WillReturnError(errors.New("database error"))

		withdrawals, err := repo.FindPaid(ctx)

		assert.Error(t, err)
		assert.Nil(t, withdrawals)
	})
}

func TestRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := NewMock(t)
	now := time.Now()

	columns := []string{"id", "creator_id", "amount", "fee", "net_amount", "status", "requested_at", "processed_at"}

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Withdrawal
	}{
		{
			name: "Withdrawal found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, 11, 100.0, 5.0, 95.0, "pending", now, (*time.Time)(nil))
				mock.ExpectQuery("WHERE id = \\$1").
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Withdrawal{
				ID: 1, CreatorID: 11, Amount: 100.0, Fee: 5.0, NetAmount: 95.0,
				Status: "pending", RequestedAt: now,
			},
		},
		{
			name: "Withdrawal not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery("WHERE id = \\$1").
					WithArgs(99).
					WillReturnRows(pgxmock.NewRows(columns))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery("WHERE id = \\$1").
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(ctx, tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_MarkPaid(t *testing.T) {
	ctx := context.Background()
	repo, mock, txManager := NewMock(t)
	processedAt := time.Now()

	t.Run("Update runs inside a transaction", func(t *testing.T) {
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		mock.ExpectExec("UPDATE withdrawals").
			WithArgs(processedAt, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkPaid(ctx, 1, processedAt)

		assert.NoError(t, err)
	})

	t.Run("Exec failure rolls the transaction back", func(t *testing.T) {
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		mock.ExpectExec("UPDATE withdrawals").
			WithArgs(processedAt, 1).
			WillReturnError(errors.New("database error"))

		err := repo.MarkPaid(ctx, 1, processedAt)

		assert.Error(t, err)
	})

	t.Run("Begin failure", func(t *testing.T) {
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("begin failed"))

		err := repo.MarkPaid(ctx, 1, processedAt)

		assert.Error(t, err)
	})
}
