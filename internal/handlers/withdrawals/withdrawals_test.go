package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/dto"
	"github.com/syahmibakri/karya-admin/internal/service/withdrawalservice"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WithdrawalsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	processed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		check        func(t *testing.T, body dto.ListWithdrawalsResponseDTO)
	}{
		{
			name:   "Successful retrieval with creator details",
			target: "/api/admin/withdrawals",
			prepareMock: func() {
				service.EXPECT().ListWithdrawals(gomock.Any(), withdrawalservice.Filter{}).Return([]domain.Withdrawal{
					{ID: 1, CreatorID: 3, Amount: 100, Fee: 5, NetAmount: 95, Status: domain.WithdrawalPending, Creator: &domain.Creator{
						FullName: "Aina binti Zulkifli", RecipientName: "Aina Zulkifli", BankName: "Maybank", BankAccount: "1144052312",
					}},
					{ID: 2, CreatorID: 4, Amount: 200, Fee: 10, NetAmount: 190, Status: domain.WithdrawalPaid, ProcessedAt: &processed},
				}, withdrawalservice.Summary{Total: 2, Pending: 1, Paid: 1, TotalAmount: 190}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body dto.ListWithdrawalsResponseDTO) {
				assert.Len(t, body.Withdrawals, 2)
				assert.NotNil(t, body.Withdrawals[0].Creator)
				assert.Equal(t, "Maybank", body.Withdrawals[0].Creator.BankName)
				assert.Nil(t, body.Withdrawals[0].ProcessedAt)
				assert.Nil(t, body.Withdrawals[1].Creator)
				assert.NotNil(t, body.Withdrawals[1].ProcessedAt)
				assert.Equal(t, 190.0, body.Summary.TotalAmount)
			},
		},
		{
			name:   "Query params map to the filter",
			target: "/api/admin/withdrawals?search=aina&status=pending",
			prepareMock: func() {
				service.EXPECT().ListWithdrawals(gomock.Any(), withdrawalservice.Filter{
					Search: "aina", Status: "pending",
				}).Return([]domain.Withdrawal{}, withdrawalservice.Summary{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Internal server error",
			target: "/api/admin/withdrawals",
			prepareMock: func() {
				service.EXPECT().ListWithdrawals(gomock.Any(), withdrawalservice.Filter{}).Return(nil, withdrawalservice.Summary{}, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ListWithdrawals(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.check != nil {
				var body dto.ListWithdrawalsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				tt.check(t, body)
			}
		})
	}
}

func TestMarkPaidHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful payout",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().MarkPaid(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid withdrawal id",
			id:            "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid withdrawal id",
		},
		{
			name: "Withdrawal not found",
			id:   "404",
			prepareMock: func() {
				service.EXPECT().MarkPaid(gomock.Any(), 404).Return(withdrawalservice.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "withdrawal not found",
		},
		{
			name: "Already paid",
			id:   "2",
			prepareMock: func() {
				service.EXPECT().MarkPaid(gomock.Any(), 2).Return(withdrawalservice.ErrAlreadyPaid)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "withdrawal already paid",
		},
		{
			name: "Internal server error",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().MarkPaid(gomock.Any(), 3).Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/admin/withdrawals/"+tt.id+"/pay", nil)
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			handler.MarkPaid(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
