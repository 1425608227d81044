package sales

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/dto"
	"github.com/GlebRadaev/tienda/internal/handlers/httperr"
	"github.com/GlebRadaev/tienda/pkg/auth"
	"github.com/GlebRadaev/tienda/pkg/utils"
	"github.com/GlebRadaev/tienda/pkg/validate"
)

//go:generate mockgen -source=sales.go -destination=mock_sales.go -package=sales

type Service interface {
	Settle(ctx context.Context, tenantID int, items []domain.CartItem) (*domain.Sale, error)
}

type SalesHandler struct {
	settlementService Service
}

func New(settlementService Service) *SalesHandler {
	return &SalesHandler{
		settlementService: settlementService,
	}
}

// Settle godoc
//
//	@Summary		Settle a point-of-sale cart
//	@Description	Decrements stock for every cart line, books the sale and credits the tenant wallet and credit score in one transaction.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettleRequestDTO	true	"Cart"
//	@Success		201		{object}	dto.SaleResponseDTO		"Sale booked"
//	@Failure		400		{object}	utils.Response			"Malformed body"
//	@Failure		401		{object}	utils.Response			"Tenant not authorized"
//	@Failure		404		{object}	utils.Response			"Tenant or product not found"
//	@Failure		409		{object}	utils.Response			"Insufficient stock"
//	@Failure		422		{object}	utils.Response			"Invalid cart"
//	@Failure		503		{object}	utils.Response			"Transaction failed, safe to retry"
//	@Router			/api/sales [post]
func (h *SalesHandler) Settle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SettleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sale, err := h.settlementService.Settle(r.Context(), tenantID, req.CartItems())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSaleResponse(sale))
}
