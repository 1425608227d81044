package tenant

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/dto"
	"github.com/GlebRadaev/tienda/internal/handlers/httperr"
	"github.com/GlebRadaev/tienda/pkg/auth"
	"github.com/GlebRadaev/tienda/pkg/money"
	"github.com/GlebRadaev/tienda/pkg/utils"
)

//go:generate mockgen -source=tenant.go -destination=mock_tenant.go -package=tenant

type Service interface {
	Account(ctx context.Context, tenantID int) (*domain.Tenant, error)
}

type TenantHandler struct {
	settlementService Service
}

func New(settlementService Service) *TenantHandler {
	return &TenantHandler{
		settlementService: settlementService,
	}
}

// GetBalance godoc
//
//	@Summary		Get tenant wallet balance
//	@Description	Running total of settled sales revenue and the credit score earned from it.
//	@Tags			Tenant
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Wallet balance and credit score"
//	@Failure		401	{object}	utils.Response			"Tenant not authorized"
//	@Failure		404	{object}	utils.Response			"Tenant not found"
//	@Failure		503	{object}	utils.Response			"Storage unavailable"
//	@Router			/api/tenant/balance [get]
func (h *TenantHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tenant, err := h.settlementService.Account(r.Context(), tenantID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		WalletBalance: money.Format(tenant.WalletBalance),
		CreditScore:   tenant.CreditScore,
	})
}
