package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/pkg/money"
)

type CartItemDTO struct {
	ProductID int             `json:"productId" validate:"required,gt=0" example:"7"`
	Quantity  int             `json:"quantity" validate:"required,gt=0,max=2147483647" example:"2"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"money" swaggertype:"string" example:"100.00"`
}

type SettleRequestDTO struct {
	Items []CartItemDTO `json:"items" validate:"required,min=1,max=500,dive"`
}

func (r SettleRequestDTO) CartItems() []domain.CartItem {
	items := make([]domain.CartItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return items
}

type SaleItemResponseDTO struct {
	ProductID int    `json:"productId" example:"7"`
	Quantity  int    `json:"quantity" example:"2"`
	UnitPrice string `json:"unitPrice" example:"100.00"`
}

type SaleResponseDTO struct {
	ID         int                   `json:"id" example:"42"`
	Total      string                `json:"total" example:"250.00"`
	ItemsCount int                   `json:"itemsCount" example:"3"`
	Status     string                `json:"status" example:"COMPLETED"`
	Date       time.Time             `json:"date" example:"2025-03-14T10:30:00-06:00"`
	Items      []SaleItemResponseDTO `json:"items"`
}

func NewSaleResponse(sale *domain.Sale) SaleResponseDTO {
	items := make([]SaleItemResponseDTO, len(sale.Items))
	for i, it := range sale.Items {
		items[i] = SaleItemResponseDTO{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: money.Format(it.UnitPrice),
		}
	}
	return SaleResponseDTO{
		ID:         sale.ID,
		Total:      money.Format(sale.Total),
		ItemsCount: sale.ItemsCount,
		Status:     string(sale.Status),
		Date:       sale.Date,
		Items:      items,
	}
}
