package dto

import "time"

type WithdrawalCreatorDTO struct {
	FullName      string `json:"full_name" example:"Aina binti Zulkifli"`
	RecipientName string `json:"recipient_name" example:"Aina Zulkifli"`
	BankName      string `json:"bank_name" example:"Maybank"`
	BankAccount   string `json:"bank_account" example:"1144052312"`
}

type WithdrawalDTO struct {
	ID          int                   `json:"id" example:"7"`
	CreatorID   int                   `json:"creator_id" example:"3"`
	Amount      float64               `json:"amount" example:"100"`
	Fee         float64               `json:"fee" example:"5"`
	NetAmount   float64               `json:"net_amount" example:"95"`
	Status      string                `json:"status" example:"pending"`
	RequestedAt time.Time             `json:"requested_at"`
	ProcessedAt *time.Time            `json:"processed_at,omitempty"`
	Creator     *WithdrawalCreatorDTO `json:"creator,omitempty"`
}

type WithdrawalsSummaryDTO struct {
	Total       int     `json:"total" example:"12"`
	Pending     int     `json:"pending" example:"4"`
	Paid        int     `json:"paid" example:"8"`
	TotalAmount float64 `json:"total_amount" example:"1250.5"`
}

type ListWithdrawalsResponseDTO struct {
	Withdrawals []WithdrawalDTO       `json:"withdrawals"`
	Summary     WithdrawalsSummaryDTO `json:"summary"`
}
