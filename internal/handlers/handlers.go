package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dkhamitov/helpmate/docs"
	adminhandlers "github.com/dkhamitov/helpmate/internal/handlers/admin"
	applicationhandlers "github.com/dkhamitov/helpmate/internal/handlers/applications"
	authhandlers "github.com/dkhamitov/helpmate/internal/handlers/auth"
	errandhandlers "github.com/dkhamitov/helpmate/internal/handlers/errands"
	geohandlers "github.com/dkhamitov/helpmate/internal/handlers/geo"
	helperhandlers "github.com/dkhamitov/helpmate/internal/handlers/helpers"
	wallethandlers "github.com/dkhamitov/helpmate/internal/handlers/wallet"
	"github.com/dkhamitov/helpmate/internal/service"
	"github.com/dkhamitov/helpmate/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ErrandHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	ListByErrand(w http.ResponseWriter, r *http.Request)
}

type GeoHandler interface {
	NearbyHelpers(w http.ResponseWriter, r *http.Request)
	NearbyErrands(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetSettlements(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type HelperHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateLocation(w http.ResponseWriter, r *http.Request)
	GoOnline(w http.ResponseWriter, r *http.Request)
	GoOffline(w http.ResponseWriter, r *http.Request)
	UpdateBankDetails(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	CompleteWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
	VerifyHelper(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ErrandHandler      ErrandHandler
	ApplicationHandler ApplicationHandler
	GeoHandler         GeoHandler
	WalletHandler      WalletHandler
	HelperHandler      HelperHandler
	AdminHandler       AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		ErrandHandler:      errandhandlers.New(s.ErrandService),
		ApplicationHandler: applicationhandlers.New(s.ApplicationService),
		GeoHandler:         geohandlers.New(s.GeoService),
		WalletHandler:      wallethandlers.New(s.WalletService),
		HelperHandler:      helperhandlers.New(s.HelperService),
		AdminHandler:       adminhandlers.New(s.WalletService, s.HelperService),
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
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/errands", func(r chi.Router) {
				r.With(auth.RequireRole(auth.RoleRequester)).Post("/", h.ErrandHandler.Create)
				r.Get("/mine", h.ErrandHandler.ListMine)
				r.Route("/{errandID}", func(r chi.Router) {
					r.Get("/", h.ErrandHandler.Get)
					r.Post("/start", h.ErrandHandler.Start)
					r.Post("/complete", h.ErrandHandler.Complete)
					r.Post("/cancel", h.ErrandHandler.Cancel)
					r.Route("/applications", func(r chi.Router) {
						r.With(auth.RequireRole(auth.RoleHelper)).Post("/", h.ApplicationHandler.Apply)
						r.Get("/", h.ApplicationHandler.ListByErrand)
						r.Post("/{applicationID}/accept", h.ApplicationHandler.Accept)
					})
				})
			})
			r.Post("/applications/{applicationID}/withdraw", h.ApplicationHandler.Withdraw)

			r.Route("/geo", func(r chi.Router) {
				r.Get("/helpers", h.GeoHandler.NearbyHelpers)
				r.Get("/errands", h.GeoHandler.NearbyErrands)
			})

			r.Route("/wallet", func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleHelper))
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Get("/settlements", h.WalletHandler.GetSettlements)
				r.Post("/withdrawals", h.WalletHandler.Withdraw)
				r.Get("/withdrawals", h.WalletHandler.GetWithdrawals)
			})

			r.Route("/helpers/me", func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleHelper))
				r.Get("/", h.HelperHandler.GetProfile)
				r.Put("/location", h.HelperHandler.UpdateLocation)
				r.Post("/online", h.HelperHandler.GoOnline)
				r.Post("/offline", h.HelperHandler.GoOffline)
				r.Put("/bank", h.HelperHandler.UpdateBankDetails)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleAdmin))
				r.Post("/withdrawals/{withdrawalID}/approve", h.AdminHandler.ApproveWithdrawal)
				r.Post("/withdrawals/{withdrawalID}/complete", h.AdminHandler.CompleteWithdrawal)
				r.Post("/withdrawals/{withdrawalID}/reject", h.AdminHandler.RejectWithdrawal)
				r.Post("/helpers/{helperID}/verify", h.AdminHandler.VerifyHelper)
			})
		})
	})

	return r
}
