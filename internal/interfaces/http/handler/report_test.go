package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	reportapp "github.com/shoplite/backend/internal/application/report"
	"github.com/shoplite/backend/internal/domain/report"
	"github.com/shoplite/backend/internal/interfaces/http/dto"
)

// fakeLedgerReader serves canned ledger aggregates for handler tests.
type fakeLedgerReader struct {
	sums      map[string]decimal.Decimal
	purchases []report.OpenItem
	orders    []report.OpenItem
}

func (f *fakeLedgerReader) Sum(_ context.Context, q report.Query, w report.Window) (decimal.Decimal, error) {
	return f.sums[q.Table+"|"+w.Label()], nil
}

func (f *fakeLedgerReader) SumThrough(_ context.Context, q report.Query, _ time.Time) (decimal.Decimal, error) {
	return f.sums[q.Table], nil
}

func (f *fakeLedgerReader) ExpenseByCategory(_ context.Context, _ report.Window) ([]report.CategoryAmount, error) {
	return nil, nil
}

func (f *fakeLedgerReader) OpenPurchases(_ context.Context, filter report.OpenItemFilter) ([]report.OpenItem, error) {
	return filterItems(f.purchases, filter), nil
}

func (f *fakeLedgerReader) OpenOrders(_ context.Context, filter report.OpenItemFilter) ([]report.OpenItem, error) {
	return filterItems(f.orders, filter), nil
}

func filterItems(items []report.OpenItem, filter report.OpenItemFilter) []report.OpenItem {
	out := make([]report.OpenItem, 0, len(items))
	for _, item := range items {
		if filter.PartyID != uuid.Nil && item.PartyID != filter.PartyID {
			continue
		}
		out = append(out, item)
	}
	return out
}

func newReportRouter(reader report.LedgerReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	h := NewReportHandler(
		reportapp.NewAgingService(reader, logger, reportapp.DefaultSummaryScheme, reportapp.DefaultDetailScheme),
		reportapp.NewSnapshotService(reader, logger),
		reportapp.NewFlowService(reader, logger),
	)
	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, path string) (int, dto.Response) {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	engine.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestReportHandler_PayablesAging(t *testing.T) {
	supplierID := uuid.New()
	reader := &fakeLedgerReader{
		purchases: []report.OpenItem{{
			ID:            uuid.New(),
			PartyID:       supplierID,
			PartyName:     "Alpha Trading",
			Date:          time.Now().AddDate(0, 0, -40),
			TotalAmount:   decimal.RequireFromString("1000.00"),
			SettledAmount: decimal.RequireFromString("400.00"),
		}},
	}
	engine := newReportRouter(reader)

	code, resp := doJSON(t, engine, "/api/v1/reports/payables/aging")

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	rows := data["rows"].([]interface{})
	require.Len(t, rows, 2)
	first := rows[0].(map[string]interface{})
	assert.Equal(t, "Alpha Trading", first["party_name"])
	assert.Equal(t, "600", first["balance"])
}

func TestReportHandler_PayablesAging_BadDate(t *testing.T) {
	engine := newReportRouter(&fakeLedgerReader{})

	code, resp := doJSON(t, engine, "/api/v1/reports/payables/aging?asOfDate=01-02-2025")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestReportHandler_ReceivablesAgingDetail_UnknownBucket(t *testing.T) {
	engine := newReportRouter(&fakeLedgerReader{})

	code, resp := doJSON(t, engine, "/api/v1/reports/receivables/aging/detail?agingBucket=0-15")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestReportHandler_CashFlow(t *testing.T) {
	reader := &fakeLedgerReader{
		sums: map[string]decimal.Decimal{
			"sales|2025-01":    decimal.RequireFromString("800.00"),
			"receipts|2025-01": decimal.RequireFromString("100.00"),
			"payments|2025-01": decimal.RequireFromString("400.00"),
			"expenses|2025-01": decimal.RequireFromString("300.00"),
		},
	}
	engine := newReportRouter(reader)

	code, resp := doJSON(t, engine, "/api/v1/reports/cash-flow?periods=2025-01")

	assert.Equal(t, http.StatusOK, code)
	rows := resp.Data.([]interface{})
	require.Len(t, rows, 2)
	jan := rows[0].(map[string]interface{})
	assert.Equal(t, "2025-01", jan["period"])
	assert.Equal(t, "900", jan["total_inflow"])
	assert.Equal(t, "700", jan["total_outflow"])
	assert.Equal(t, "200", jan["net_cash_flow"])
}

func TestReportHandler_CashFlow_BadPeriod(t *testing.T) {
	engine := newReportRouter(&fakeLedgerReader{})

	code, resp := doJSON(t, engine, "/api/v1/reports/cash-flow?periods=Jan-2025")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, dto.ErrCodeInvalidPeriod, resp.Error.Code)
}

func TestReportHandler_BalanceSheet(t *testing.T) {
	reader := &fakeLedgerReader{
		sums: map[string]decimal.Decimal{
			"sales":    decimal.RequireFromString("800.00"),
			"receipts": decimal.RequireFromString("100.00"),
			"payments": decimal.RequireFromString("400.00"),
			"expenses": decimal.RequireFromString("300.00"),
		},
	}
	engine := newReportRouter(reader)

	code, resp := doJSON(t, engine, "/api/v1/reports/balance-sheet?periods=2025-01")

	assert.Equal(t, http.StatusOK, code)
	rows := resp.Data.([]interface{})
	require.Len(t, rows, 2)
	jan := rows[0].(map[string]interface{})
	assert.Equal(t, "2025-01", jan["period"])
	assert.Equal(t, "200", jan["cash"])
}

func TestReportHandler_IncomeStatement(t *testing.T) {
	reader := &fakeLedgerReader{
		sums: map[string]decimal.Decimal{
			"sales|2025-01":     decimal.RequireFromString("800.00"),
			"orders|2025-01":    decimal.RequireFromString("500.00"),
			"purchases|2025-01": decimal.RequireFromString("1000.00"),
		},
	}
	engine := newReportRouter(reader)

	code, resp := doJSON(t, engine, "/api/v1/reports/income-statement?periods=2025-01")

	assert.Equal(t, http.StatusOK, code)
	rows := resp.Data.([]interface{})
	require.Len(t, rows, 2)
	jan := rows[0].(map[string]interface{})
	assert.Equal(t, "1300", jan["total_revenue"])
	assert.Equal(t, "300", jan["gross_profit"])
}
