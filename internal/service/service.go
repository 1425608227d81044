package service

import (
	"time"

	"github.com/GlebRadaev/tienda/internal/handlers/products"
	"github.com/GlebRadaev/tienda/internal/handlers/reports"
	"github.com/GlebRadaev/tienda/internal/handlers/sales"
	"github.com/GlebRadaev/tienda/internal/handlers/tenant"
	"github.com/GlebRadaev/tienda/internal/pg"
	"github.com/GlebRadaev/tienda/internal/repo"
	"github.com/GlebRadaev/tienda/internal/service/fiscalservice"
	"github.com/GlebRadaev/tienda/internal/service/inventoryservice"
	"github.com/GlebRadaev/tienda/internal/service/settlementservice"
)

type SettlementService interface {
	sales.Service
	tenant.Service
}

type Services struct {
	SettlementService SettlementService
	FiscalService     reports.Service
	InventoryService  products.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, location *time.Location) *Services {
	settlementService := settlementservice.New(repo.TenantRepo, repo.ProductRepo, repo.SaleRepo, txManager)
	fiscalService := fiscalservice.New(repo.TenantRepo, repo.SaleRepo, repo.PurchaseRepo, repo.ReportRepo, location)
	inventoryService := inventoryservice.New(repo.ProductRepo)

	return &Services{
		SettlementService: settlementService,
		FiscalService:     fiscalService,
		InventoryService:  inventoryService,
	}
}
