package handlers

import (
	"github.com/jmoiron/sqlx"

	"tradepost/internal/auth"
	"tradepost/internal/repos"
	"tradepost/internal/services"
)

type Deps struct {
	AccountHandler *AccountHandler
	ProductHandler *ProductHandler
	CommonHandler  *CommonHandler
}

func NewDeps(db *sqlx.DB, tokens *auth.TokenService) *Deps {
	accountRepo := repos.NewAccountRepo(db)
	productRepo := repos.NewProductRepo(db)

	accountSvc := services.NewAccountService(accountRepo, tokens)
	productSvc := services.NewProductService(productRepo)
	catalogSvc := services.NewCatalogService(productRepo)

	return &Deps{
		AccountHandler: &AccountHandler{Accounts: accountSvc},
		ProductHandler: &ProductHandler{Products: productSvc, Catalog: catalogSvc},
		CommonHandler:  &CommonHandler{},
	}
}
