package dto

import "time"

type CreatorDTO struct {
	FullName      string    `json:"full_name" example:"Aina binti Zulkifli"`
	ICNumber      string    `json:"ic_number" example:"950101-14-5678"`
	RecipientName string    `json:"recipient_name" example:"Aina Zulkifli"`
	BankName      string    `json:"bank_name" example:"Maybank"`
	BankAccount   string    `json:"bank_account" example:"1144052312"`
	Status        string    `json:"status" example:"pending"`
	CreatedAt     time.Time `json:"created_at"`
}

type UserDTO struct {
	ID          int         `json:"id" example:"12"`
	Name        string      `json:"name" example:"Aina Zulkifli"`
	Username    string      `json:"username" example:"aina.z"`
	Email       string      `json:"email" example:"aina@example.com"`
	PhoneNumber string      `json:"phone_number" example:"+60123456789"`
	Bio         string      `json:"bio,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	Creator     *CreatorDTO `json:"creator,omitempty"`
}

type UsersSummaryDTO struct {
	Total    int `json:"total" example:"120"`
	Creators int `json:"creators" example:"34"`
	Regular  int `json:"regular" example:"86"`
	Approved int `json:"approved" example:"20"`
	Pending  int `json:"pending" example:"10"`
	Rejected int `json:"rejected" example:"4"`
}

type ListUsersResponseDTO struct {
	Users   []UserDTO       `json:"users"`
	Summary UsersSummaryDTO `json:"summary"`
}

type UpdateCreatorStatusRequestDTO struct {
	Status string `json:"status" example:"approved"`
}
