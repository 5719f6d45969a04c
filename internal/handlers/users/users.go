package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/dto"
	"github.com/syahmibakri/karya-admin/internal/service/userservice"
	"github.com/syahmibakri/karya-admin/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context, filter userservice.Filter) ([]domain.User, userservice.Summary, error)
	UpdateCreatorStatus(ctx context.Context, userID int, status string) error
}

type UsersHandler struct {
	userService Service
}

func New(userService Service) *UsersHandler {
	return &UsersHandler{
		userService: userService,
	}
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	All users newest first with creator payout profiles, filtered by search term, creator status and account type
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			search	query		string	false	"Substring matched against name, username, email, phone, creator legal name and identity number"
//	@Param			status	query		string	false	"Creator status filter: all, pending, approved or rejected"
//	@Param			type	query		string	false	"Account type filter: all, creators or regular"
//	@Success		200		{object}	dto.ListUsersResponseDTO
//	@Failure		401		{object}	utils.Response	"Staff not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := userservice.Filter{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Type:   r.URL.Query().Get("type"),
	}

	users, summary, err := h.userService.ListUsers(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	resp := dto.ListUsersResponseDTO{
		Users: make([]dto.UserDTO, len(users)),
		Summary: dto.UsersSummaryDTO{
			Total:    summary.Total,
			Creators: summary.Creators,
			Regular:  summary.Regular,
			Approved: summary.Approved,
			Pending:  summary.Pending,
			Rejected: summary.Rejected,
		},
	}
	for i, u := range users {
		userDTO := dto.UserDTO{
			ID:          u.ID,
			Name:        u.Name,
			Username:    u.Username,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
			Bio:         u.Bio,
			CreatedAt:   u.CreatedAt,
		}
		if u.Creator != nil {
			userDTO.Creator = &dto.CreatorDTO{
				FullName:      u.Creator.FullName,
				ICNumber:      u.Creator.ICNumber,
				RecipientName: u.Creator.RecipientName,
				BankName:      u.Creator.BankName,
				BankAccount:   u.Creator.BankAccount,
				Status:        u.Creator.Status,
				CreatedAt:     u.Creator.CreatedAt,
			}
		}
		resp.Users[i] = userDTO
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateCreatorStatus godoc
//
//	@Summary		Update creator application status
//	@Description	Set a creator application to pending, approved or rejected, keyed by the owning user id
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"User ID"
//	@Param			request	body		dto.UpdateCreatorStatusRequestDTO	true	"New status"
//	@Success		200		{string}	string							"Status updated"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		401		{object}	utils.Response					"Staff not authorized"
//	@Failure		404		{object}	utils.Response					"No creator profile"
//	@Failure		422		{object}	utils.Response					"Payout account fails validation"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/users/{id}/creator-status [patch]
func (h *UsersHandler) UpdateCreatorStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req dto.UpdateCreatorStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.userService.UpdateCreatorStatus(r.Context(), userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, userservice.ErrNotCreator):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, userservice.ErrBadPayoutAccount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "status updated")
}
