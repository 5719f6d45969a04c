package dto

import "time"

type ProductDTO struct {
	ID            int       `json:"id" example:"42"`
	OwnerID       int       `json:"owner_id" example:"12"`
	OwnerUsername string    `json:"owner_username,omitempty" example:"aina.z"`
	Title         string    `json:"title" example:"Watercolor Brush Pack"`
	Category      string    `json:"category" example:"design"`
	Price         float64   `json:"price" example:"25"`
	Description   string    `json:"description,omitempty"`
	ThumbnailURL  string    `json:"thumbnail_url,omitempty"`
	FileURL       string    `json:"file_url,omitempty"`
	VideoURL      string    `json:"video_url,omitempty"`
	Status        string    `json:"status" example:"review"`
	IsActive      bool      `json:"is_active" example:"true"`
	CreatedAt     time.Time `json:"created_at"`
}

type ProductsSummaryDTO struct {
	Total    int `json:"total" example:"60"`
	Approved int `json:"approved" example:"40"`
	Review   int `json:"review" example:"15"`
	Rejected int `json:"rejected" example:"5"`
}

type ListProductsResponseDTO struct {
	Products []ProductDTO       `json:"products"`
	Summary  ProductsSummaryDTO `json:"summary"`
}

type UpdateProductStatusRequestDTO struct {
	Status string `json:"status" example:"approved"`
}

type ProductFileResponseDTO struct {
	URL  string `json:"url"`
	Kind string `json:"kind" example:"pdf"`
}
