package dto

import (
	"time"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/pkg/money"
)

type MonthlyTaxReportDTO struct {
	Month             int    `json:"month" example:"3"`
	Year              int    `json:"year" example:"2025"`
	TotalSales        string `json:"totalSales" example:"1150.00"`
	SalesNetasSinIVA  string `json:"salesNetasSinIVA" example:"1000.00"`
	TotalIVACollected string `json:"totalIVACollected" example:"150.00"`
	TotalPurchases    string `json:"totalPurchases" example:"0.00"`
	TotalIVAPaid      string `json:"totalIVAPaid" example:"0.00"`
	IvaNeto           string `json:"ivaNeto" example:"150.00"`
	IvaCredito        string `json:"ivaCredito" example:"0.00"`
	AnticipoIR        string `json:"anticipoIR" example:"10.00"`
	ImiAlcaldia       string `json:"imiAlcaldia" example:"10.00"`
	TotalToPay        string `json:"totalToPay" example:"170.00"`
	VetSummary        string `json:"vetSummary"`
}

func NewMonthlyTaxReport(r *domain.MonthlyTaxReport) MonthlyTaxReportDTO {
	return MonthlyTaxReportDTO{
		Month:             r.Month,
		Year:              r.Year,
		TotalSales:        money.Format(r.TotalSales),
		SalesNetasSinIVA:  money.Format(r.SalesNetasSinIVA),
		TotalIVACollected: money.Format(r.TotalIVACollected),
		TotalPurchases:    money.Format(r.TotalPurchases),
		TotalIVAPaid:      money.Format(r.TotalIVAPaid),
		IvaNeto:           money.Format(r.IvaNeto),
		IvaCredito:        money.Format(r.IvaCredito),
		AnticipoIR:        money.Format(r.AnticipoIR),
		ImiAlcaldia:       money.Format(r.ImiAlcaldia),
		TotalToPay:        money.Format(r.TotalToPay),
		VetSummary:        r.VetSummary,
	}
}

type ArchivedReportDTO struct {
	Year        int                 `json:"year" example:"2025"`
	Month       int                 `json:"month" example:"3"`
	GeneratedAt time.Time           `json:"generatedAt" example:"2025-04-01T00:05:00-06:00"`
	Report      MonthlyTaxReportDTO `json:"report"`
}
