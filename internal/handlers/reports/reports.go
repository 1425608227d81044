package reports

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/tienda/internal/domain"
	"github.com/GlebRadaev/tienda/internal/dto"
	"github.com/GlebRadaev/tienda/internal/handlers/httperr"
	"github.com/GlebRadaev/tienda/pkg/auth"
	"github.com/GlebRadaev/tienda/pkg/utils"
)

//go:generate mockgen -source=reports.go -destination=mock_reports.go -package=reports

type Service interface {
	GenerateMonthlyReport(ctx context.Context, tenantID, month, year int) (*domain.MonthlyTaxReport, error)
	ListArchived(ctx context.Context, tenantID int) ([]domain.FiscalReportSnapshot, error)
}

type ReportsHandler struct {
	fiscalService Service
}

func New(fiscalService Service) *ReportsHandler {
	return &ReportsHandler{
		fiscalService: fiscalService,
	}
}

// GetMonthly godoc
//
//	@Summary		Monthly tax report
//	@Description	Computes IVA, IR advance and municipal tax for one calendar month from settled sales and purchases.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		int							true	"Month, 1-12"
//	@Param			year	query		int							true	"Year"
//	@Success		200		{object}	dto.MonthlyTaxReportDTO		"Tax report"
//	@Failure		400		{object}	utils.Response				"Missing or malformed period"
//	@Failure		401		{object}	utils.Response				"Tenant not authorized"
//	@Failure		404		{object}	utils.Response				"Tenant not found"
//	@Failure		422		{object}	utils.Response				"Month out of range"
//	@Failure		503		{object}	utils.Response				"Storage unavailable"
//	@Router			/api/reports/monthly [get]
func (h *ReportsHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "month must be a number")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "year must be a number")
		return
	}

	report, err := h.fiscalService.GenerateMonthlyReport(r.Context(), tenantID, month, year)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMonthlyTaxReport(report))
}

// GetArchive godoc
//
//	@Summary		Archived monthly reports
//	@Description	Reports frozen by the month-end closing job, newest first.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ArchivedReportDTO	"Archived reports"
//	@Success		204	"Nothing archived yet"
//	@Failure		401	{object}	utils.Response			"Tenant not authorized"
//	@Failure		503	{object}	utils.Response			"Storage unavailable"
//	@Router			/api/reports/archive [get]
func (h *ReportsHandler) GetArchive(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snapshots, err := h.fiscalService.ListArchived(r.Context(), tenantID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(snapshots) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.ArchivedReportDTO, len(snapshots))
	for i, s := range snapshots {
		response[i] = dto.ArchivedReportDTO{
			Year:        s.Year,
			Month:       s.Month,
			GeneratedAt: s.GeneratedAt,
			Report:      dto.NewMonthlyTaxReport(&s.Report),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
