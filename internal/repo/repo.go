package repo

import (
	"github.com/syahmibakri/karya-admin/internal/pg"
	productrepo "github.com/syahmibakri/karya-admin/internal/repo/product-repo"
	purchaserepo "github.com/syahmibakri/karya-admin/internal/repo/purchase-repo"
	staffrepo "github.com/syahmibakri/karya-admin/internal/repo/staff-repo"
	userrepo "github.com/syahmibakri/karya-admin/internal/repo/user-repo"
	withdrawalrepo "github.com/syahmibakri/karya-admin/internal/repo/withdrawal-repo"
	"github.com/syahmibakri/karya-admin/internal/service/authservice"
	"github.com/syahmibakri/karya-admin/internal/service/dashboardservice"
	"github.com/syahmibakri/karya-admin/internal/service/productservice"
	"github.com/syahmibakri/karya-admin/internal/service/userservice"
	"github.com/syahmibakri/karya-admin/internal/service/withdrawalservice"
)

// Repositories exposes each concrete repository through the interface
// its consuming service declares. The dashboard reads the same tables
// through its own narrower views.
type Repositories struct {
	StaffRepo      authservice.Repo
	UserRepo       userservice.Repo
	ProductRepo    productservice.Repo
	WithdrawalRepo withdrawalservice.Repo

	DashboardPurchases   dashboardservice.PurchaseRepo
	DashboardProducts    dashboardservice.ProductRepo
	DashboardWithdrawals dashboardservice.WithdrawalRepo
	DashboardUsers       dashboardservice.UserRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	staffRepo := staffrepo.New(conn)
	userRepo := userrepo.New(conn)
	productRepo := productrepo.New(conn)
	purchaseRepo := purchaserepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn, txManager)

	return &Repositories{
		StaffRepo:      staffRepo,
		UserRepo:       userRepo,
		ProductRepo:    productRepo,
		WithdrawalRepo: withdrawalRepo,

		DashboardPurchases:   purchaseRepo,
		DashboardProducts:    productRepo,
		DashboardWithdrawals: withdrawalRepo,
		DashboardUsers:       userRepo,
	}
}
