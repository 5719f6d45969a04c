package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/syahmibakri/karya-admin/internal/pg"
	productrepo "github.com/syahmibakri/karya-admin/internal/repo/product-repo"
	purchaserepo "github.com/syahmibakri/karya-admin/internal/repo/purchase-repo"
	staffrepo "github.com/syahmibakri/karya-admin/internal/repo/staff-repo"
	userrepo "github.com/syahmibakri/karya-admin/internal/repo/user-repo"
	withdrawalrepo "github.com/syahmibakri/karya-admin/internal/repo/withdrawal-repo"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.StaffRepo)
	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.ProductRepo)
	assert.NotNil(t, repo.WithdrawalRepo)
	assert.NotNil(t, repo.DashboardPurchases)
	assert.NotNil(t, repo.DashboardProducts)
	assert.NotNil(t, repo.DashboardWithdrawals)
	assert.NotNil(t, repo.DashboardUsers)

	assert.IsType(t, &staffrepo.Repository{}, repo.StaffRepo)
	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &productrepo.Repository{}, repo.ProductRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.WithdrawalRepo)
	assert.IsType(t, &purchaserepo.Repository{}, repo.DashboardPurchases)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
