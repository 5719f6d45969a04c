package userrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/syahmibakri/karya-admin/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func ptr[T any](v T) *T { return &v }

var userColumns = []string{
	"id", "name", "username", "email", "phone_number", "bio", "created_at",
	"c_id", "c_user_id", "full_name", "ic_number", "recipient_name",
	"bank_name", "bank_account", "status", "c_created_at",
}

func TestRepository_FindAllWithCreators(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Joined query attaches creator profiles", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow(2, "Aina Zulkifli", "ainaz", "aina@example.com", "0123456789", "Designer", now,
				ptr(10), ptr(2), ptr("Aina binti Zulkifli"), ptr("990101-10-1234"), ptr("Aina Zulkifli"),
				ptr("Maybank"), ptr("112233445566"), ptr("pending"), ptr(now)).
			AddRow(1, "Hafiz Rahman", "hafizr", "hafiz@example.com", "", "", now,
				(*int)(nil), (*int)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
				(*string)(nil), (*string)(nil), (*string)(nil), (*time.Time)(nil))
		mock.ExpectQuery("LEFT JOIN creators c ON c.user_id = u.id").
			WillReturnRows(rows)

		users, err := repo.FindAllWithCreators(ctx)

		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "ainaz", users[0].Username)
		assert.NotNil(t, users[0].Creator)
		assert.Equal(t, 10, users[0].Creator.ID)
		assert.Equal(t, "112233445566", users[0].Creator.BankAccount)
		assert.Equal(t, "pending", users[0].Creator.Status)
		assert.Nil(t, users[1].Creator)
	})

	t.Run("Joined query failure falls back to manual merge", func(t *testing.T) {
		mock.ExpectQuery("LEFT JOIN creators c ON c.user_id = u.id").
			WillReturnError(errors.New("relation broken"))
		mock.ExpectQuery("SELECT id, name, username, email, phone_number, bio, created_at").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username", "email", "phone_number", "bio", "created_at"}).
				AddRow(2, "Aina Zulkifli", "ainaz", "aina@example.com", "0123456789", "Designer", now).
				AddRow(1, "Hafiz Rahman", "hafizr", "hafiz@example.com", "", "", now))
		mock.ExpectQuery("FROM creators").
			WithArgs([]int{2, 1}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "full_name", "ic_number", "recipient_name", "bank_name", "bank_account", "status", "created_at"}).
				AddRow(10, 2, "Aina binti Zulkifli", "990101-10-1234", "Aina Zulkifli", "Maybank", "112233445566", "approved", now))

		users, err := repo.FindAllWithCreators(ctx)

		assert.NoError(t, err)
		assert.Len(t, users, 2)
		assert.NotNil(t, users[0].Creator)
		assert.Equal(t, "approved", users[0].Creator.Status)
		assert.Nil(t, users[1].Creator)
	})

	t.Run("Merge fallback lists users even without creator profiles", func(t *testing.T) {
		mock.ExpectQuery("LEFT JOIN creators c ON c.user_id = u.id").
			WillReturnError(errors.New("relation broken"))
		mock.ExpectQuery("SELECT id, name, username, email, phone_number, bio, created_at").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username", "email", "phone_number", "bio", "created_at"}).
				AddRow(1, "Hafiz Rahman", "hafizr", "hafiz@example.com", "", "", now))
		mock.ExpectQuery("FROM creators").
			WithArgs([]int{1}).
			WillReturnError(errors.New("database error"))

		users, err := repo.FindAllWithCreators(ctx)

		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Nil(t, users[0].Creator)
	})

	t.Run("Both paths fail", func(t *testing.T) {
		mock.ExpectQuery("LEFT JOIN creators c ON c.user_id = u.id").
			WillReturnError(errors.New("relation broken"))
		mock.ExpectQuery("SELECT id, name, username, email, phone_number, bio, created_at").
			WillReturnError(errors.New("database error"))

		users, err := repo.FindAllWithCreators(ctx)

		assert.Error(t, err)
		assert.Nil(t, users)
	})
}

func TestRepository_FindRecent(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Recent users found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "username", "created_at"}).
					AddRow(2, "Aina Zulkifli", "ainaz", now).
					AddRow(1, "Hafiz Rahman", "hafizr", now.Add(-time.Hour))
				mock.ExpectQuery("SELECT id, name, username, created_at").
					WithArgs(3).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT id, name, username, created_at").
					WithArgs(3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			users, err := repo.FindRecent(ctx, 3)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, users, tt.count)
			}
		})
	}
}

func TestRepository_CountUsers(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	t.Run("Count returned", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

		count, err := repo.CountUsers(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 42, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
			WillReturnError(errors.New("database error"))

		count, err := repo.CountUsers(ctx)

		assert.Error(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestRepository_FindCreatorByUserID(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Creator
	}{
		{
			name:   "Creator profile found",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "full_name", "ic_number", "recipient_name", "bank_name", "bank_account", "status", "created_at"}).
					AddRow(10, 2, "Aina binti Zulkifli", "990101-10-1234", "Aina Zulkifli", "Maybank", "112233445566", "pending", now)
				mock.ExpectQuery("FROM creators c").
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Creator{
				ID: 10, UserID: 2, FullName: "Aina binti Zulkifli", ICNumber: "990101-10-1234",
				RecipientName: "Aina Zulkifli", BankName: "Maybank", BankAccount: "112233445566",
				Status: "pending", CreatedAt: now,
			},
		},
		{
			name:   "No creator profile",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery("FROM creators c").
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "full_name", "ic_number", "recipient_name", "bank_name", "bank_account", "status", "created_at"}))
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery("FROM creators c").
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindCreatorByUserID(ctx, tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindUserEmail(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	t.Run("Email found", func(t *testing.T) {
		mock.ExpectQuery("SELECT email FROM users WHERE id = \\$1").
			WithArgs(2).
			WillReturnRows(pgxmock.NewRows([]string{"email"}).AddRow("aina@example.com"))

		email, err := repo.FindUserEmail(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, "aina@example.com", email)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT email FROM users WHERE id = \\$1").
			WithArgs(99).
			WillReturnError(errors.New("database error"))

		email, err := repo.FindUserEmail(ctx, 99)

		assert.Error(t, err)
		assert.Empty(t, email)
	})
}

func TestRepository_UpdateCreatorStatus(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	t.Run("Status updated", func(t *testing.T) {
		mock.ExpectExec("UPDATE creators").
			WithArgs("approved", 2).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateCreatorStatus(ctx, 2, "approved")

		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE creators").
			WithArgs("rejected", 2).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateCreatorStatus(ctx, 2, "rejected")

		assert.Error(t, err)
	})
}
