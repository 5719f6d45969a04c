package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/internal/dto"
	"github.com/syahmibakri/karya-admin/internal/service/productservice"
	"github.com/syahmibakri/karya-admin/pkg/utils"
)

type Service interface {
	ListProducts(ctx context.Context, filter productservice.Filter) ([]domain.Product, productservice.Summary, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	FileURL(ctx context.Context, id int) (*productservice.FileInfo, error)
}

type ProductsHandler struct {
	productService Service
}

func New(productService Service) *ProductsHandler {
	return &ProductsHandler{
		productService: productService,
	}
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	All non-deleted products newest first with owner usernames, filtered by search term and moderation status
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Param			search	query		string	false	"Substring matched against title, category and owner username"
//	@Param			status	query		string	false	"Moderation status filter: all, review, approved or rejected"
//	@Success		200		{object}	dto.ListProductsResponseDTO
//	@Failure		401		{object}	utils.Response	"Staff not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products [get]
func (h *ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := productservice.Filter{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	}

	products, summary, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	resp := dto.ListProductsResponseDTO{
		Products: make([]dto.ProductDTO, len(products)),
		Summary: dto.ProductsSummaryDTO{
			Total:    summary.Total,
			Approved: summary.Approved,
			Review:   summary.Review,
			Rejected: summary.Rejected,
		},
	}
	for i, p := range products {
		resp.Products[i] = dto.ProductDTO{
			ID:            p.ID,
			OwnerID:       p.OwnerID,
			OwnerUsername: p.OwnerUsername,
			Title:         p.Title,
			Category:      p.Category,
			Price:         p.Price,
			Description:   p.Description,
			ThumbnailURL:  p.ThumbnailURL,
			FileURL:       p.FileURL,
			VideoURL:      p.VideoURL,
			Status:        p.Status,
			IsActive:      p.IsActive,
			CreatedAt:     p.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateStatus godoc
//
//	@Summary		Update product moderation status
//	@Description	Set a product to review, approved or rejected, in any direction
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Product ID"
//	@Param			request	body		dto.UpdateProductStatusRequestDTO	true	"New status"
//	@Success		200		{string}	string							"Status updated"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		401		{object}	utils.Response					"Staff not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/products/{id}/status [patch]
func (h *ProductsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req dto.UpdateProductStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.productService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, productservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "status updated")
}

// GetFileURL godoc
//
//	@Summary		Resolve product file for preview
//	@Description	Returns the preview kind and a display URL; files in private storage get a signed URL valid for one hour
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	dto.ProductFileResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid product id"
//	@Failure		401	{object}	utils.Response	"Staff not authorized"
//	@Failure		404	{object}	utils.Response	"Product or file not found"
//	@Failure		502	{object}	utils.Response	"File access failed"
//	@Router			/api/admin/products/{id}/file-url [get]
func (h *ProductsHandler) GetFileURL(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	info, err := h.productService.FileURL(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, productservice.ErrNotFound), errors.Is(err, productservice.ErrNoFile):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusBadGateway, "File access failed: "+err.Error())
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductFileResponseDTO{
		URL:  info.URL,
		Kind: string(info.Kind),
	})
}
