package service

import (
	"time"

	"github.com/dkhamitov/helpmate/internal/config"
	"github.com/dkhamitov/helpmate/internal/notify"
	"github.com/dkhamitov/helpmate/internal/pg"
	"github.com/dkhamitov/helpmate/internal/repo"
	"github.com/dkhamitov/helpmate/internal/service/applicationservice"
	"github.com/dkhamitov/helpmate/internal/service/authservice"
	"github.com/dkhamitov/helpmate/internal/service/errandservice"
	"github.com/dkhamitov/helpmate/internal/service/geoservice"
	"github.com/dkhamitov/helpmate/internal/service/helperservice"
	"github.com/dkhamitov/helpmate/internal/service/walletservice"
)

type Services struct {
	AuthService        *authservice.Service
	HelperService      *helperservice.Service
	GeoService         *geoservice.Service
	ErrandService      *errandservice.Service
	ApplicationService *applicationservice.Service
	WalletService      *walletservice.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, notifier notify.Publisher) *Services {
	maturation := time.Duration(cfg.MaturationHours) * time.Hour

	errandSvc := errandservice.New(
		repos.ErrandRepo,
		repos.ApplicationRepo,
		repos.SettlementRepo,
		repos.HelperRepo,
		txManager,
		notifier,
		cfg.PlatformFeePct,
		maturation,
	)

	return &Services{
		AuthService:   authservice.New(repos.UserRepo, repos.HelperRepo, txManager),
		HelperService: helperservice.New(repos.HelperRepo),
		GeoService:    geoservice.New(repos.HelperRepo, repos.ErrandRepo, cfg.GeoStrategy, cfg.MaxRadiusKm, cfg.StaleMinutes),
		ErrandService: errandSvc,
		ApplicationService: applicationservice.New(
			repos.ApplicationRepo,
			repos.ErrandRepo,
			repos.HelperRepo,
			errandSvc,
			txManager,
			notifier,
		),
		WalletService: walletservice.New(
			repos.HelperRepo,
			repos.SettlementRepo,
			repos.WithdrawalRepo,
			txManager,
			notifier,
			cfg.MinWithdrawal,
		),
	}
}
