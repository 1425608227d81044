package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionTrialing SubscriptionStatus = "TRIALING"
	SubscriptionPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
)

type SaleStatus string

const (
	SaleCompleted SaleStatus = "COMPLETED"
	// SaleVoid is reserved; settlement never produces it.
	SaleVoid SaleStatus = "VOID"
)

type PurchaseStatus string

const (
	PurchaseCompleted      PurchaseStatus = "COMPLETED"
	PurchasePendingPayment PurchaseStatus = "PENDING_PAYMENT"
	PurchaseCancelled      PurchaseStatus = "CANCELLED"
)

type Tenant struct {
	ID                 int                `db:"id"`
	Name               string             `db:"name"`
	WalletBalance      decimal.Decimal    `db:"wallet_balance"`
	CreditScore        int64              `db:"credit_score"`
	SubscriptionStatus SubscriptionStatus `db:"subscription_status"`
}

type Product struct {
	ID       int             `db:"id"`
	TenantID int             `db:"tenant_id"`
	SKU      string          `db:"sku"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	Cost     decimal.Decimal `db:"cost"`
	Stock    int             `db:"stock"`
}

type Sale struct {
	ID         int             `db:"id"`
	TenantID   int             `db:"tenant_id"`
	Total      decimal.Decimal `db:"total"`
	ItemsCount int             `db:"items_count"`
	Status     SaleStatus      `db:"status"`
	Date       time.Time       `db:"date"`
	Items      []SaleItem
}

type SaleItem struct {
	ID        int             `db:"id"`
	SaleID    int             `db:"sale_id"`
	ProductID int             `db:"product_id"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
}

type Purchase struct {
	ID       int             `db:"id"`
	TenantID int             `db:"tenant_id"`
	Total    decimal.Decimal `db:"total"`
	Tax      decimal.Decimal `db:"tax"`
	Status   PurchaseStatus  `db:"status"`
	Date     time.Time       `db:"date"`
}

// CartItem is one line of a point-of-sale cart. It lives only for the
// duration of a settlement and is never stored as-is.
type CartItem struct {
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
}

type SalesAggregate struct {
	Total decimal.Decimal
	Count int
}

type PurchasesAggregate struct {
	Total decimal.Decimal
	Tax   decimal.Decimal
}

type MonthlyTaxReport struct {
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	SalesNetasSinIVA  decimal.Decimal `json:"salesNetasSinIVA"`
	TotalIVACollected decimal.Decimal `json:"totalIVACollected"`
	TotalPurchases    decimal.Decimal `json:"totalPurchases"`
	TotalIVAPaid      decimal.Decimal `json:"totalIVAPaid"`
	IvaNeto           decimal.Decimal `json:"ivaNeto"`
	IvaCredito        decimal.Decimal `json:"ivaCredito"`
	AnticipoIR        decimal.Decimal `json:"anticipoIR"`
	ImiAlcaldia       decimal.Decimal `json:"imiAlcaldia"`
	TotalToPay        decimal.Decimal `json:"totalToPay"`
	VetSummary        string          `json:"vetSummary"`
}

// FiscalReportSnapshot is a MonthlyTaxReport archived after its period closed.
type FiscalReportSnapshot struct {
	ID          int       `db:"id"`
	TenantID    int       `db:"tenant_id"`
	Year        int       `db:"year"`
	Month       int       `db:"month"`
	Report      MonthlyTaxReport
	GeneratedAt time.Time `db:"generated_at"`
}
