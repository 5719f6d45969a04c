package domain

import "time"

// Moderation statuses. Products start in StatusReview, creator
// applications in StatusPending; staff move them to approved/rejected
// and may move them back.
const (
	StatusReview   = "review"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	WithdrawalPending = "pending"
	WithdrawalPaid    = "paid"

	PurchasePaid = "paid"
)

type Staff struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type User struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Username    string    `db:"username"`
	Email       string    `db:"email"`
	PhoneNumber string    `db:"phone_number"`
	Bio         string    `db:"bio"`
	CreatedAt   time.Time `db:"created_at"`

	// Creator is nil for regular users. Filled by the users list query
	// (join or manual merge), never persisted through this struct.
	Creator *Creator `db:"-"`
}

type Creator struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	FullName      string    `db:"full_name"`
	ICNumber      string    `db:"ic_number"`
	RecipientName string    `db:"recipient_name"`
	BankName      string    `db:"bank_name"`
	BankAccount   string    `db:"bank_account"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type Product struct {
	ID           int       `db:"id"`
	OwnerID      int       `db:"owner_id"`
	Title        string    `db:"title"`
	Category     string    `db:"category"`
	Price        float64   `db:"price"`
	Description  string    `db:"description"`
	ThumbnailURL string    `db:"thumbnail_url"`
	FileURL      string    `db:"file_url"`
	VideoURL     string    `db:"video_url"`
	Status       string    `db:"status"`
	IsActive     bool      `db:"is_active"`
	IsDeleted    bool      `db:"is_deleted"`
	CreatedAt    time.Time `db:"created_at"`

	OwnerUsername string `db:"-"`
}

type Purchase struct {
	ID        int       `db:"id"`
	ProductID int       `db:"product_id"`
	UserID    int       `db:"user_id"`
	Amount    float64   `db:"amount"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`

	BuyerName     string `db:"-"`
	BuyerUsername string `db:"-"`
	ProductTitle  string `db:"-"`
}

type Withdrawal struct {
	ID          int        `db:"id"`
	CreatorID   int        `db:"creator_id"`
	Amount      float64    `db:"amount"`
	Fee         float64    `db:"fee"`
	NetAmount   float64    `db:"net_amount"`
	Status      string     `db:"status"`
	RequestedAt time.Time  `db:"requested_at"`
	ProcessedAt *time.Time `db:"processed_at"`

	Creator *Creator `db:"-"`
}

// DashboardStats is recomputed from raw rows on every read; none of the
// derived figures are ever stored.
type DashboardStats struct {
	TotalRevenue       float64
	CreatorEarnings    float64
	TotalWithdrawn     float64
	CompanyBalance     float64
	PendingWithdrawals float64
	ProductsSold       int
	TotalUsers         int
	ActiveProducts     int
}

type RevenuePoint struct {
	Date    string
	Revenue float64
}

const (
	ActivityPurchase       = "purchase"
	ActivityUserJoined     = "user_joined"
	ActivityProductCreated = "product_created"
)

type Activity struct {
	ID        int
	Type      string
	User      string
	Username  string
	Action    string
	Time      string
	Amount    string
	Timestamp time.Time
}
