package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/syahmibakri/karya-admin/docs"
	authhandlers "github.com/syahmibakri/karya-admin/internal/handlers/auth"
	dashboardhandlers "github.com/syahmibakri/karya-admin/internal/handlers/dashboard"
	productshandlers "github.com/syahmibakri/karya-admin/internal/handlers/products"
	usershandlers "github.com/syahmibakri/karya-admin/internal/handlers/users"
	withdrawalshandlers "github.com/syahmibakri/karya-admin/internal/handlers/withdrawals"
	"github.com/syahmibakri/karya-admin/internal/notify"
	"github.com/syahmibakri/karya-admin/internal/service"
	"github.com/syahmibakri/karya-admin/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	StreamDashboard(w http.ResponseWriter, r *http.Request)
}

type UsersHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateCreatorStatus(w http.ResponseWriter, r *http.Request)
}

type ProductsHandler interface {
	ListProducts(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetFileURL(w http.ResponseWriter, r *http.Request)
}

type WithdrawalsHandler interface {
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	DashboardHandler   DashboardHandler
	UsersHandler       UsersHandler
	ProductsHandler    ProductsHandler
	WithdrawalsHandler WithdrawalsHandler
}

func New(s *service.Services, broadcaster *notify.Broadcaster) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		DashboardHandler:   dashboardhandlers.New(s.DashboardService, broadcaster),
		UsersHandler:       usershandlers.New(s.UserService),
		ProductsHandler:    productshandlers.New(s.ProductService),
		WithdrawalsHandler: withdrawalshandlers.New(s.WithdrawalService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.DashboardHandler.GetDashboard)
				r.Get("/stream", h.DashboardHandler.StreamDashboard)
			})
			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.UsersHandler.ListUsers)
				r.Patch("/{id}/creator-status", h.UsersHandler.UpdateCreatorStatus)
			})
			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.ProductsHandler.ListProducts)
				r.Patch("/{id}/status", h.ProductsHandler.UpdateStatus)
				r.Get("/{id}/file-url", h.ProductsHandler.GetFileURL)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.WithdrawalsHandler.ListWithdrawals)
				r.Post("/{id}/pay", h.WithdrawalsHandler.MarkPaid)
			})
		})
	})

	return r
}
