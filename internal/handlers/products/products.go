package products

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/dto"
	"github.com/GlebRadaev/tienda/internal/handlers/httperr"
	"github.com/GlebRadaev/tienda/pkg/auth"
	"github.com/GlebRadaev/tienda/pkg/utils"
	"github.com/GlebRadaev/tienda/pkg/validate"
)

//go:generate mockgen -source=products.go -destination=mock_products.go -package=products

type Service interface {
	GetProduct(ctx context.Context, tenantID, productID int) (*domain.Product, error)
	Restock(ctx context.Context, tenantID, productID, quantity int) (*domain.Product, error)
}

type ProductsHandler struct {
	inventoryService Service
}

func New(inventoryService Service) *ProductsHandler {
	return &ProductsHandler{
		inventoryService: inventoryService,
	}
}

func productID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// GetProduct godoc
//
//	@Summary		Get a product
//	@Description	Current price and stock of one of the tenant's products.
//	@Tags			Products
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Product ID"
//	@Success		200	{object}	dto.ProductResponseDTO	"Product"
//	@Failure		400	{object}	utils.Response			"Malformed product ID"
//	@Failure		401	{object}	utils.Response			"Tenant not authorized"
//	@Failure		404	{object}	utils.Response			"Product not found"
//	@Router			/api/products/{id} [get]
func (h *ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := productID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.inventoryService.GetProduct(r.Context(), tenantID, id)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductResponse(product))
}

// Restock godoc
//
//	@Summary		Restock a product
//	@Description	Adds received units to the product's stock.
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Product ID"
//	@Param			request	body		dto.RestockRequestDTO	true	"Units received"
//	@Success		200		{object}	dto.ProductResponseDTO	"Product after restock"
//	@Failure		400		{object}	utils.Response			"Malformed request"
//	@Failure		401		{object}	utils.Response			"Tenant not authorized"
//	@Failure		404		{object}	utils.Response			"Product not found"
//	@Failure		422		{object}	utils.Response			"Invalid quantity"
//	@Router			/api/products/{id}/restock [post]
func (h *ProductsHandler) Restock(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := productID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.RestockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	product, err := h.inventoryService.Restock(r.Context(), tenantID, id, req.Quantity)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProductResponse(product))
}
