package dto

import (
	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/pkg/money"
)

type RestockRequestDTO struct {
	Quantity int `json:"quantity" validate:"required,gt=0" example:"24"`
}

type ProductResponseDTO struct {
	ID    int    `json:"id" example:"7"`
	SKU   string `json:"sku" example:"CAFE-500"`
	Name  string `json:"name" example:"Café molido 500g"`
	Price string `json:"price" example:"120.00"`
	Stock int    `json:"stock" example:"36"`
}

func NewProductResponse(p *domain.Product) ProductResponseDTO {
	return ProductResponseDTO{
		ID:    p.ID,
		SKU:   p.SKU,
		Name:  p.Name,
		Price: money.Format(p.Price),
		Stock: p.Stock,
	}
}
