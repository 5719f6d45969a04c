package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/syahmibakri/karya-admin/internal/dto"
	"github.com/syahmibakri/karya-admin/internal/notify"
	"github.com/syahmibakri/karya-admin/internal/service/dashboardservice"
	"github.com/syahmibakri/karya-admin/pkg/utils"
	"go.uber.org/zap"
)

type Service interface {
	GetSnapshot(ctx context.Context) *dashboardservice.Snapshot
}

type DashboardHandler struct {
	dashboardService Service
	broadcaster      *notify.Broadcaster
}

func New(dashboardService Service, broadcaster *notify.Broadcaster) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		broadcaster:      broadcaster,
	}
}

// GetDashboard godoc
//
//	@Summary		Get dashboard snapshot
//	@Description	Revenue reconciliation figures, 7-day revenue series and the recent activity feed, recomputed from current rows
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"Staff not authorized"
//	@Router			/api/admin/dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	snapshot := h.dashboardService.GetSnapshot(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, toResponse(snapshot))
}

// StreamDashboard godoc
//
//	@Summary		Stream dashboard snapshots
//	@Description	Server-sent events: an initial snapshot, then a fresh one after every change to a watched table
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		text/event-stream
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"Staff not authorized"
//	@Router			/api/admin/dashboard/stream [get]
func (h *DashboardHandler) StreamDashboard(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	signals, cancel := h.broadcaster.Subscribe()
	defer cancel()

	h.writeSnapshot(w, r.Context())
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-signals:
			// Full recompute on every signal; overlapping recomputes
			// are not sequenced, last response wins.
			h.writeSnapshot(w, r.Context())
			flusher.Flush()
		}
	}
}

func (h *DashboardHandler) writeSnapshot(w http.ResponseWriter, ctx context.Context) {
	snapshot := h.dashboardService.GetSnapshot(ctx)
	payload, err := json.Marshal(toResponse(snapshot))
	if err != nil {
		zap.L().Error("can't marshal dashboard snapshot", zap.Error(err))
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
}

func toResponse(s *dashboardservice.Snapshot) dto.DashboardResponseDTO {
	resp := dto.DashboardResponseDTO{
		Stats: dto.DashboardStatsDTO{
			TotalRevenue:       s.Stats.TotalRevenue,
			CreatorEarnings:    s.Stats.CreatorEarnings,
			TotalWithdrawn:     s.Stats.TotalWithdrawn,
			CompanyBalance:     s.Stats.CompanyBalance,
			PendingWithdrawals: s.Stats.PendingWithdrawals,
			ProductsSold:       s.Stats.ProductsSold,
			TotalUsers:         s.Stats.TotalUsers,
			ActiveProducts:     s.Stats.ActiveProducts,
		},
		Chart:          make([]dto.RevenuePointDTO, len(s.Chart)),
		RecentActivity: make([]dto.ActivityDTO, len(s.Activity)),
	}
	for i, p := range s.Chart {
		resp.Chart[i] = dto.RevenuePointDTO{Date: p.Date, Revenue: p.Revenue}
	}
	for i, a := range s.Activity {
		resp.RecentActivity[i] = dto.ActivityDTO{
			ID:        a.ID,
			Type:      a.Type,
			User:      a.User,
			Username:  a.Username,
			Action:    a.Action,
			Time:      a.Time,
			Amount:    a.Amount,
			Timestamp: a.Timestamp,
		}
	}
	return resp
}
