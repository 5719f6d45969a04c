package withdrawalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/events"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *events.MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	publisher := events.NewMockPublisher(ctrl)

	service := New(repo, publisher)
	defer ctrl.Finish()
	return service, repo, publisher
}

func testWithdrawals() []domain.Withdrawal {
	processed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return []domain.Withdrawal{
		{ID: 1, CreatorID: 3, Amount: 100, Fee: 5, NetAmount: 95, Status: domain.WithdrawalPending, Creator: &domain.Creator{
			FullName: "Aina binti Zulkifli", RecipientName: "Aina Zulkifli",
		}},
		{ID: 2, CreatorID: 4, Amount: 200, Fee: 10, NetAmount: 190, Status: domain.WithdrawalPaid, ProcessedAt: &processed, Creator: &domain.Creator{
			FullName: "Hafiz bin Omar", RecipientName: "Hafiz Omar",
		}},
		{ID: 3, CreatorID: 5, Amount: 50, Fee: 2.5, NetAmount: 47.5, Status: domain.WithdrawalPaid, ProcessedAt: &processed},
	}
}

func TestListWithdrawals(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		filter      Filter
		prepareMock func()
		expectedIDs []int
		expectedErr bool
	}{
		{
			name:   "no filter returns everything",
			filter: Filter{},
			prepareMock: func() {
				repo.EXPECT().FindAllWithCreators(ctx).Return(testWithdrawals(), nil)
			},
			expectedIDs: []int{1, 2, 3},
		},
		{
			name:   "status filter",
			filter: Filter{Status: domain.WithdrawalPaid},
			prepareMock: func() {
				repo.EXPECT().FindAllWithCreators(ctx).Return(testWithdrawals(), nil)
			},
			expectedIDs: []int{2, 3},
		},
		{
			name:   "search matches the recipient name",
			filter: Filter{Search: "hafiz omar"},
			prepareMock: func() {
				repo.EXPECT().FindAllWithCreators(ctx).Return(testWithdrawals(), nil)
			},
			expectedIDs: []int{2},
		},
		{
			name:   "search drops rows without creator details",
			filter: Filter{Search: "aina"},
			prepareMock: func() {
				repo.EXPECT().FindAllWithCreators(ctx).Return(testWithdrawals(), nil)
			},
			expectedIDs: []int{1},
		},
		{
			name:   "repo error propagates",
			filter: Filter{},
			prepareMock: func() {
				repo.EXPECT().FindAllWithCreators(ctx).Return(nil, errors.New("database error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			withdrawals, summary, err := service.ListWithdrawals(ctx, tt.filter)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			ids := make([]int, 0, len(withdrawals))
			for _, wd := range withdrawals {
				ids = append(ids, wd.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)

			// Summary covers the full set; TotalAmount sums paid net amounts.
			assert.Equal(t, Summary{Total: 3, Pending: 1, Paid: 2, TotalAmount: 237.5}, summary)
		})
	}
}

func TestMarkPaid(t *testing.T) {
	service, repo, publisher := NewMock(t)
	ctx := context.Background()
	processed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		id            int
		prepareMock   func()
		expectedError error
	}{
		{
			name: "pending withdrawal gets paid",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 1).Return(&domain.Withdrawal{
					ID: 1, Amount: 100, Fee: 5, NetAmount: 95, Status: domain.WithdrawalPending,
				}, nil)
				repo.EXPECT().MarkPaid(ctx, 1, gomock.Any()).Return(nil)
				publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "missing withdrawal",
			id:   404,
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 404).Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name: "paying twice is refused",
			id:   2,
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 2).Return(&domain.Withdrawal{
					ID: 2, Status: domain.WithdrawalPaid, ProcessedAt: &processed,
				}, nil)
			},
			expectedError: ErrAlreadyPaid,
		},
		{
			name: "lookup error propagates",
			id:   3,
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 3).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "update error propagates",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, 1).Return(&domain.Withdrawal{
					ID: 1, Status: domain.WithdrawalPending,
				}, nil)
				repo.EXPECT().MarkPaid(ctx, 1, gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.MarkPaid(ctx, tt.id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
