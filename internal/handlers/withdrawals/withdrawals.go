package withdrawals

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/dto"
	"github.com/syahmibakri/karya-admin/internal/service/withdrawalservice"
	"github.com/syahmibakri/karya-admin/pkg/utils"
)

type Service interface {
	ListWithdrawals(ctx context.Context, filter withdrawalservice.Filter) ([]domain.Withdrawal, withdrawalservice.Summary, error)
	MarkPaid(ctx context.Context, id int) error
}

type WithdrawalsHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalsHandler {
	return &WithdrawalsHandler{
		withdrawalService: withdrawalService,
	}
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawal requests
//	@Description	All withdrawal requests newest first with creator payout details, filtered by search term and status
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			search	query		string	false	"Substring matched against creator legal and recipient names"
//	@Param			status	query		string	false	"Status filter: all, pending or paid"
//	@Success		200		{object}	dto.ListWithdrawalsResponseDTO
//	@Failure		401		{object}	utils.Response	"Staff not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *WithdrawalsHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	filter := withdrawalservice.Filter{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	}

	withdrawals, summary, err := h.withdrawalService.ListWithdrawals(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	resp := dto.ListWithdrawalsResponseDTO{
		Withdrawals: make([]dto.WithdrawalDTO, len(withdrawals)),
		Summary: dto.WithdrawalsSummaryDTO{
			Total:       summary.Total,
			Pending:     summary.Pending,
			Paid:        summary.Paid,
			TotalAmount: summary.TotalAmount,
		},
	}
	for i, wd := range withdrawals {
		wdDTO := dto.WithdrawalDTO{
			ID:          wd.ID,
			CreatorID:   wd.CreatorID,
			Amount:      wd.Amount,
			Fee:         wd.Fee,
			NetAmount:   wd.NetAmount,
			Status:      wd.Status,
			RequestedAt: wd.RequestedAt,
			ProcessedAt: wd.ProcessedAt,
		}
		if wd.Creator != nil {
			wdDTO.Creator = &dto.WithdrawalCreatorDTO{
				FullName:      wd.Creator.FullName,
				RecipientName: wd.Creator.RecipientName,
				BankName:      wd.Creator.BankName,
				BankAccount:   wd.Creator.BankAccount,
			}
		}
		resp.Withdrawals[i] = wdDTO
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// MarkPaid godoc
//
//	@Summary		Pay out a withdrawal
//	@Description	Transition a pending withdrawal to paid, stamping the processed timestamp; already-paid withdrawals are refused
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int		true	"Withdrawal ID"
//	@Success		200	{string}	string	"Withdrawal paid"
//	@Failure		400	{object}	utils.Response	"Invalid withdrawal id"
//	@Failure		401	{object}	utils.Response	"Staff not authorized"
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal already paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/pay [post]
func (h *WithdrawalsHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	err = h.withdrawalService.MarkPaid(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrAlreadyPaid):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "withdrawal paid")
}
