package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syahmibakri/karya-admin/internal/events"
	"github.com/syahmibakri/karya-admin/internal/repo"
	"github.com/syahmibakri/karya-admin/internal/service/authservice"
	"github.com/syahmibakri/karya-admin/internal/service/dashboardservice"
	"github.com/syahmibakri/karya-admin/internal/service/productservice"
	"github.com/syahmibakri/karya-admin/internal/service/userservice"
	"github.com/syahmibakri/karya-admin/internal/service/withdrawalservice"
	"github.com/syahmibakri/karya-admin/pkg/filesign"
	"github.com/syahmibakri/karya-admin/pkg/mailer"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		StaffRepo:      authservice.NewMockRepo(ctrl),
		UserRepo:       userservice.NewMockRepo(ctrl),
		ProductRepo:    productservice.NewMockRepo(ctrl),
		WithdrawalRepo: withdrawalservice.NewMockRepo(ctrl),

		DashboardPurchases:   dashboardservice.NewMockPurchaseRepo(ctrl),
		DashboardProducts:    dashboardservice.NewMockProductRepo(ctrl),
		DashboardWithdrawals: dashboardservice.NewMockWithdrawalRepo(ctrl),
		DashboardUsers:       dashboardservice.NewMockUserRepo(ctrl),
	}

	signer := filesign.New("test-secret", "http://localhost:8080/files")
	services := New(repos, signer, mailer.NewMockMailer(ctrl), events.NewMockPublisher(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.DashboardService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.ProductService)
	assert.NotNil(t, services.WithdrawalService)
}
