package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/shoplite/backend/internal/application/report"
)

// ReportHandler handles the financial report API endpoints
type ReportHandler struct {
	BaseHandler
	agingService    *reportapp.AgingService
	snapshotService *reportapp.SnapshotService
	flowService     *reportapp.FlowService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(
	agingService *reportapp.AgingService,
	snapshotService *reportapp.SnapshotService,
	flowService *reportapp.FlowService,
) *ReportHandler {
	return &ReportHandler{
		agingService:    agingService,
		snapshotService: snapshotService,
		flowService:     flowService,
	}
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/payables/aging", h.GetPayablesAging)
		reports.GET("/payables/aging/detail", h.GetPayablesAgingDetail)
		reports.GET("/receivables/aging", h.GetReceivablesAging)
		reports.GET("/receivables/aging/detail", h.GetReceivablesAgingDetail)
		reports.GET("/balance-sheet", h.GetBalanceSheet)
		reports.GET("/cash-flow", h.GetCashFlow)
		reports.GET("/income-statement", h.GetIncomeStatement)
	}
}

// GetPayablesAging godoc
// @Summary      Get accounts payable aging
// @Description  Summarize open supplier balances by aging bucket
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        asOfDate query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param        supplierId query string false "Filter by supplier ID"
// @Param        agingBucket query string false "Filter by aging bucket label"
// @Param        onlyUnpaid query bool false "Drop settled records (default true)"
// @Param        page query int false "Page number"
// @Param        size query int false "Page size"
// @Success      200 {object} dto.Response{data=reportapp.AgingReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/payables/aging [get]
func (h *ReportHandler) GetPayablesAging(c *gin.Context) {
	var req reportapp.AgingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.agingService.PayablesAging(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetPayablesAgingDetail godoc
// @Summary      Get accounts payable aging detail
// @Description  List open purchases with their aging bucket classification
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        asOfDate query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param        supplierId query string false "Filter by supplier ID"
// @Param        agingBucket query string false "Filter by aging bucket label"
// @Param        onlyUnpaid query bool false "Drop settled records (default true)"
// @Param        page query int false "Page number"
// @Param        size query int false "Page size"
// @Success      200 {object} dto.Response{data=reportapp.AgingDetailReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/payables/aging/detail [get]
func (h *ReportHandler) GetPayablesAgingDetail(c *gin.Context) {
	var req reportapp.AgingDetailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.agingService.PayablesAgingDetail(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetReceivablesAging godoc
// @Summary      Get accounts receivable aging
// @Description  Summarize open customer balances by aging bucket
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        asOfDate query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param        customerId query string false "Filter by customer ID"
// @Param        agingBucket query string false "Filter by aging bucket label"
// @Param        onlyUnpaid query bool false "Drop settled records (default true)"
// @Param        page query int false "Page number"
// @Param        size query int false "Page size"
// @Success      200 {object} dto.Response{data=reportapp.AgingReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/receivables/aging [get]
func (h *ReportHandler) GetReceivablesAging(c *gin.Context) {
	var req reportapp.AgingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.agingService.ReceivablesAging(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetReceivablesAgingDetail godoc
// @Summary      Get accounts receivable aging detail
// @Description  List open orders with their aging bucket classification
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        asOfDate query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param        customerId query string false "Filter by customer ID"
// @Param        agingBucket query string false "Filter by aging bucket label"
// @Param        onlyUnpaid query bool false "Drop settled records (default true)"
// @Param        page query int false "Page number"
// @Param        size query int false "Page size"
// @Success      200 {object} dto.Response{data=reportapp.AgingDetailReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/receivables/aging/detail [get]
func (h *ReportHandler) GetReceivablesAgingDetail(c *gin.Context) {
	var req reportapp.AgingDetailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.agingService.ReceivablesAgingDetail(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetBalanceSheet godoc
// @Summary      Get balance sheet
// @Description  Point-in-time balance sheet at each requested period end
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        period query string false "Single period (YYYY-MM)"
// @Param        periods query string false "Comma-separated periods (YYYY-MM)"
// @Param        startDate query string false "Range start (YYYY-MM-DD)"
// @Param        endDate query string false "Range end (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=[]report.BalanceSheetRow}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/balance-sheet [get]
func (h *ReportHandler) GetBalanceSheet(c *gin.Context) {
	var req reportapp.PeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rows, err := h.snapshotService.BalanceSheet(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// GetCashFlow godoc
// @Summary      Get cash flow statement
// @Description  Cash inflow and outflow per period with a grand total row
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        period query string false "Single period (YYYY-MM)"
// @Param        periods query string false "Comma-separated periods (YYYY-MM)"
// @Param        startDate query string false "Range start (YYYY-MM-DD)"
// @Param        endDate query string false "Range end (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=[]report.CashFlowRow}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/cash-flow [get]
func (h *ReportHandler) GetCashFlow(c *gin.Context) {
	var req reportapp.PeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rows, err := h.flowService.CashFlow(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// GetIncomeStatement godoc
// @Summary      Get comprehensive income statement
// @Description  Revenue, cost and expense breakdown per period with a grand total row
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        period query string false "Single period (YYYY-MM)"
// @Param        periods query string false "Comma-separated periods (YYYY-MM)"
// @Param        startDate query string false "Range start (YYYY-MM-DD)"
// @Param        endDate query string false "Range end (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=[]report.IncomeStatementRow}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /reports/income-statement [get]
func (h *ReportHandler) GetIncomeStatement(c *gin.Context) {
	var req reportapp.PeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rows, err := h.flowService.IncomeStatement(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}
