package repo

import (
	"github.com/dkhamitov/helpmate/internal/pg"
	applicationrepo "github.com/dkhamitov/helpmate/internal/repo/application-repo"
	errandrepo "github.com/dkhamitov/helpmate/internal/repo/errand-repo"
	helperrepo "github.com/dkhamitov/helpmate/internal/repo/helper-repo"
	settlementrepo "github.com/dkhamitov/helpmate/internal/repo/settlement-repo"
	userrepo "github.com/dkhamitov/helpmate/internal/repo/user-repo"
	withdrawalrepo "github.com/dkhamitov/helpmate/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	HelperRepo      *helperrepo.Repository
	ErrandRepo      *errandrepo.Repository
	ApplicationRepo *applicationrepo.Repository
	SettlementRepo  *settlementrepo.Repository
	WithdrawalRepo  *withdrawalrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		HelperRepo:      helperrepo.New(conn),
		ErrandRepo:      errandrepo.New(conn),
		ApplicationRepo: applicationrepo.New(conn),
		SettlementRepo:  settlementrepo.New(conn),
		WithdrawalRepo:  withdrawalrepo.New(conn),
	}
}
