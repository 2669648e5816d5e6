package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/shoplite/backend/internal/application/ledger"
)

// LedgerHandler handles the raw ledger listing API endpoints
type LedgerHandler struct {
	BaseHandler
	queryService *ledgerapp.QueryService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(queryService *ledgerapp.QueryService) *LedgerHandler {
	return &LedgerHandler{queryService: queryService}
}

// RegisterRoutes registers all ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	purchases := rg.Group("/purchases")
	{
		purchases.GET("", h.ListPurchases)
		purchases.GET("/:id", h.GetPurchase)
		purchases.GET("/:id/payments", h.ListPayments)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/receipts", h.ListReceipts)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.ListExpenses)
		expenses.GET("/categories", h.ListExpenseCategories)
	}

	rg.GET("/sales", h.ListSales)
}

// ListPurchases godoc
// @Summary      List purchases
// @Description  List purchase ledger records, voided ones included
// @Tags         ledgers
// @Accept       json
// @Produce      json
// @Param        period query string false "Accounting period (YYYY-MM)"
// @Param        supplierId query string false "Filter by supplier ID"
// @Param        recordStatus query string false "Filter by record status" Enums(ACTIVE, VOIDED)
// @Param        status query string false "Filter by settlement status" Enums(PENDING, PARTIAL, PAID)
// @Param        page query int false "Page number"
// @Param        pageSize query int false "Page size"
// @Success      200 {object} dto.Response{data=[]PurchaseResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /purchases [get]
func (h *LedgerHandler) ListPurchases(c *gin.Context) {
	var req ledgerapp.PurchaseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	purchases, total, err := h.queryService.ListPurchases(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toPurchaseResponses(purchases), total, normalizedPage(req.Page), normalizedPageSize(req.PageSize))
}

// GetPurchase godoc
// @Summary      Get a purchase
// @Tags         ledgers
// @Accept       json
// @Produce      json
// @Param        id path string true "Purchase ID"
// @Success      200 {object} dto.Response{data=PurchaseResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /purchases/{id} [get]
func (h *LedgerHandler) GetPurchase(c *gin.Context) {
	purchase, err := h.queryService.GetPurchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPurchaseResponse(purchase))
}

// ListPayments godoc
// @Summary      List payments for a purchase
// @Description  Every payment booked against the purchase, voided ones included
// @Tags         ledgers
// @Accept       json
// @Produce      json
// @Param        id path string true "Purchase ID"
// @Success      200 {object} dto.Response{data=[]PaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /purchases/{id}/payments [get]
func (h *LedgerHandler) ListPayments(c *gin.Context) {
	payments, err := h.queryService.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toPaymentResponses(payments))
}

// ListOrders godoc
// @Summary      List orders
// @Description  List order ledger records, cancelled ones included
// @Tags         ledgers
// @Accept       json
// @Produce      json
// @Param        period query string false "Accounting period (YYYY-MM)"
// @Param        customerId query string false "Filter by customer ID"
// @Param        orderStatus query string false "Filter by order status" Enums(PENDING, DELIVERED, COMPLETED, CANCELLED)
// @Param        paymentStatus query string false "Filter by payment status" Enums(UNPAID, PAID)
// @Param        page query int false "Page number"
// @Param        pageSize query int false "Page size"
// @Success      200 {object} dto.Response{data=[]OrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /orders [get]
func (h *LedgerHandler) ListOrders(c *gin.Context) {
	var req ledgerapp.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, total, err := h.queryService.ListOrders(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toOrderResponses(orders), total, normalizedPage(req.Page), normalizedPageSize(req.PageSize))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         ledgers
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=OrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /orders/{id} [get]
func (h *LedgerHandler) GetOrder(c *gin.Context) {
	order, err := h.queryService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toOrderResponse(order))
}

// ListReceipts godoc
// @Summary      List receipts for an order
// @Tags         ledgers
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=[]ReceiptResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /orders/{id}/receipts [get]
func (h *LedgerHandler) ListReceipts(c *gin.Context) {
	receipts, err := h.queryService.ListReceipts(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toReceiptResponses(receipts))
}

// ListExpenses godoc
// @Summary      List expenses
// @Tags         ledgers
// @Accept       json
// @Produce      json
// @Param        period query string false "Accounting period (YYYY-MM)"
// @Param        categoryId query string false "Filter by category ID"
// @Param        status query string false "Filter by record status" Enums(ACTIVE, VOIDED)
// @Param        page query int false "Page number"
// @Param        pageSize query int false "Page size"
// @Success      200 {object} dto.Response{data=[]ExpenseResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /expenses [get]
func (h *LedgerHandler) ListExpenses(c *gin.Context) {
	var req ledgerapp.ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expenses, total, err := h.queryService.ListExpenses(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toExpenseResponses(expenses), total, normalizedPage(req.Page), normalizedPageSize(req.PageSize))
}

// ListExpenseCategories godoc
// @Summary      List expense categories
// @Tags         ledgers
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.Response{data=[]ExpenseCategoryResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /expenses/categories [get]
func (h *LedgerHandler) ListExpenseCategories(c *gin.Context) {
	categories, err := h.queryService.ListExpenseCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toExpenseCategoryResponses(categories))
}

// ListSales godoc
// @Summary      List retail sales
// @Tags         ledgers
// @Accept       json
// @Produce      json
// @Param        period query string false "Accounting period (YYYY-MM)"
// @Param        productId query string false "Filter by product ID"
// @Param        payMethod query string false "Filter by pay method" Enums(CASH, CARD, MOBILE)
// @Param        page query int false "Page number"
// @Param        pageSize query int false "Page size"
// @Success      200 {object} dto.Response{data=[]SaleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /sales [get]
func (h *LedgerHandler) ListSales(c *gin.Context) {
	var req ledgerapp.SaleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sales, total, err := h.queryService.ListSales(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toSaleResponses(sales), total, normalizedPage(req.Page), normalizedPageSize(req.PageSize))
}

// normalizedPage mirrors the repository paginate defaults so the meta
// block reports the page actually served.
func normalizedPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizedPageSize(pageSize int) int {
	if pageSize < 1 {
		return 20
	}
	if pageSize > 200 {
		return 200
	}
	return pageSize
}
