package service

import (
	"github.com/syahmibakri/karya-admin/internal/events"
	"github.com/syahmibakri/karya-admin/internal/handlers/auth"
	"github.com/syahmibakri/karya-admin/internal/handlers/dashboard"
	"github.com/syahmibakri/karya-admin/internal/handlers/products"
	"github.com/syahmibakri/karya-admin/internal/handlers/users"
	"github.com/syahmibakri/karya-admin/internal/handlers/withdrawals"
	"github.com/syahmibakri/karya-admin/pkg/filesign"
	"github.com/syahmibakri/karya-admin/pkg/mailer"

	pkgauth "github.com/syahmibakri/karya-admin/pkg/auth"

	"github.com/syahmibakri/karya-admin/internal/repo"
	authservice "github.com/syahmibakri/karya-admin/internal/service/authservice"
	dashboardservice "github.com/syahmibakri/karya-admin/internal/service/dashboardservice"
	productservice "github.com/syahmibakri/karya-admin/internal/service/productservice"
	userservice "github.com/syahmibakri/karya-admin/internal/service/userservice"
	withdrawalservice "github.com/syahmibakri/karya-admin/internal/service/withdrawalservice"
)

type Services struct {
	AuthService       auth.Service
	DashboardService  dashboard.Service
	UserService       users.Service
	ProductService    products.Service
	WithdrawalService withdrawals.Service
}

func New(repo *repo.Repositories, signer *filesign.Signer, mail mailer.Mailer, publisher events.Publisher) *Services {
	authService := authservice.New(repo.StaffRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	dashboardService := dashboardservice.New(repo.DashboardPurchases, repo.DashboardProducts, repo.DashboardWithdrawals, repo.DashboardUsers)
	userService := userservice.New(repo.UserRepo, mail, publisher)
	productService := productservice.New(repo.ProductRepo, signer, publisher)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, publisher)

	return &Services{
		AuthService:       authService,
		DashboardService:  dashboardService,
		UserService:       userService,
		ProductService:    productService,
		WithdrawalService: withdrawalService,
	}
}
