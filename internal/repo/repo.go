package repo

import (
	"github.com/GlebRadaev/tienda/internal/closing"
	"github.com/GlebRadaev/tienda/internal/pg"
	"github.com/GlebRadaev/tienda/internal/repo/memory"
	productrepo "github.com/GlebRadaev/tienda/internal/repo/product-repo"
	purchaserepo "github.com/GlebRadaev/tienda/internal/repo/purchase-repo"
	reportrepo "github.com/GlebRadaev/tienda/internal/repo/report-repo"
	salerepo "github.com/GlebRadaev/tienda/internal/repo/sale-repo"
	tenantrepo "github.com/GlebRadaev/tienda/internal/repo/tenant-repo"
	"github.com/GlebRadaev/tienda/internal/service/fiscalservice"
	"github.com/GlebRadaev/tienda/internal/service/inventoryservice"
	"github.com/GlebRadaev/tienda/internal/service/settlementservice"
)

type TenantRepo interface {
	settlementservice.TenantRepo
	closing.TenantLister
}

type ProductRepo interface {
	settlementservice.ProductRepo
	inventoryservice.ProductRepo
}

type SaleRepo interface {
	settlementservice.SaleRepo
	fiscalservice.SaleRepo
}

type ReportRepo interface {
	fiscalservice.ArchiveRepo
	closing.ReportStore
}

type Repositories struct {
	TenantRepo   TenantRepo
	ProductRepo  ProductRepo
	SaleRepo     SaleRepo
	PurchaseRepo fiscalservice.PurchaseRepo
	ReportRepo   ReportRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TenantRepo:   tenantrepo.New(conn),
		ProductRepo:  productrepo.New(conn),
		SaleRepo:     salerepo.New(conn, txManager),
		PurchaseRepo: purchaserepo.New(conn),
		ReportRepo:   reportrepo.New(conn),
	}
}

// NewInMemory backs every repository with the same store; the store is
// also the TXManager to pass to the services.
func NewInMemory(store *memory.Store) *Repositories {
	return &Repositories{
		TenantRepo:   store.Tenants(),
		ProductRepo:  store.Products(),
		SaleRepo:     store.SalesRepo(),
		PurchaseRepo: store.Purchases(),
		ReportRepo:   store.Reports(),
	}
}
