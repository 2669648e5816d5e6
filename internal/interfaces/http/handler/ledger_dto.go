package handler

import (
	"github.com/shoplite/backend/internal/domain/ledger"
)

const dateLayout = "2006-01-02"

// PurchaseResponse represents a purchase record in API responses
// @Description Purchase ledger record
type PurchaseResponse struct {
	ID               string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	SupplierID       string `json:"supplier_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	SupplierName     string `json:"supplier_name" example:"Alpha Trading"`
	TotalAmount      string `json:"total_amount" example:"1000.00"`
	PaidAmount       string `json:"paid_amount" example:"400.00"`
	Balance          string `json:"balance" example:"600.00"`
	PurchaseDate     string `json:"purchase_date" example:"2025-01-10"`
	AccountingPeriod string `json:"accounting_period" example:"2025-01"`
	RecordStatus     string `json:"record_status" example:"ACTIVE" enums:"ACTIVE,VOIDED"`
	Status           string `json:"status" example:"PARTIAL" enums:"PENDING,PARTIAL,PAID"`
}

// PaymentResponse represents a payment record in API responses
// @Description Payment booked against a purchase
type PaymentResponse struct {
	ID               string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	PurchaseID       string `json:"purchase_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Amount           string `json:"amount" example:"400.00"`
	PayDate          string `json:"pay_date" example:"2025-01-20"`
	AccountingPeriod string `json:"accounting_period" example:"2025-01"`
	Status           string `json:"status" example:"ACTIVE" enums:"ACTIVE,VOIDED"`
}

// OrderResponse represents an order record in API responses
// @Description Customer order ledger record
type OrderResponse struct {
	ID               string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CustomerID       string `json:"customer_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	CustomerName     string `json:"customer_name" example:"Acme Retail"`
	TotalAmount      string `json:"total_amount" example:"500.00"`
	OrderDate        string `json:"order_date" example:"2025-01-14"`
	DeliveryDate     string `json:"delivery_date" example:"2025-01-15"`
	AccountingPeriod string `json:"accounting_period" example:"2025-01"`
	OrderStatus      string `json:"order_status" example:"DELIVERED" enums:"PENDING,DELIVERED,COMPLETED,CANCELLED"`
	PaymentStatus    string `json:"payment_status" example:"UNPAID" enums:"UNPAID,PAID"`
}

// ReceiptResponse represents a receipt record in API responses
// @Description Receipt booked against an order
type ReceiptResponse struct {
	ID               string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	OrderID          string `json:"order_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Amount           string `json:"amount" example:"100.00"`
	ReceivedDate     string `json:"received_date" example:"2025-01-25"`
	AccountingPeriod string `json:"accounting_period" example:"2025-01"`
	Status           string `json:"status" example:"ACTIVE" enums:"ACTIVE,VOIDED"`
}

// ExpenseResponse represents an expense record in API responses
// @Description Expense ledger record
type ExpenseResponse struct {
	ID               string  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CategoryID       string  `json:"category_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	EmployeeID       *string `json:"employee_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440002"`
	Amount           string  `json:"amount" example:"300.00"`
	ExpenseDate      string  `json:"expense_date" example:"2025-01-12"`
	AccountingPeriod string  `json:"accounting_period" example:"2025-01"`
	Status           string  `json:"status" example:"ACTIVE" enums:"ACTIVE,VOIDED"`
}

// ExpenseCategoryResponse represents an expense category
// @Description Expense category catalog entry
type ExpenseCategoryResponse struct {
	ID          string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string `json:"name" example:"Rent"`
	AccountCode string `json:"account_code" example:"6100"`
	IsSalary    bool   `json:"is_salary" example:"false"`
}

// SaleResponse represents a retail sale record in API responses
// @Description Retail sale ledger record
type SaleResponse struct {
	ID               string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ProductID        string `json:"product_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Amount           string `json:"amount" example:"800.00"`
	PayMethod        string `json:"pay_method" example:"CASH" enums:"CASH,CARD,MOBILE"`
	SaleDate         string `json:"sale_date" example:"2025-01-05"`
	AccountingPeriod string `json:"accounting_period" example:"2025-01"`
}

func toPurchaseResponse(p *ledger.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:               p.ID.String(),
		SupplierID:       p.SupplierID.String(),
		SupplierName:     p.SupplierName,
		TotalAmount:      p.TotalAmount.StringFixed(2),
		PaidAmount:       p.PaidAmount.StringFixed(2),
		Balance:          p.Balance.StringFixed(2),
		PurchaseDate:     p.PurchaseDate.Format(dateLayout),
		AccountingPeriod: p.AccountingPeriod.String(),
		RecordStatus:     p.RecordStatus.String(),
		Status:           p.Status.String(),
	}
}

func toPurchaseResponses(purchases []ledger.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		out[i] = toPurchaseResponse(&purchases[i])
	}
	return out
}

func toPaymentResponses(payments []ledger.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = PaymentResponse{
			ID:               p.ID.String(),
			PurchaseID:       p.PurchaseID.String(),
			Amount:           p.Amount.StringFixed(2),
			PayDate:          p.PayDate.Format(dateLayout),
			AccountingPeriod: p.AccountingPeriod.String(),
			Status:           p.Status.String(),
		}
	}
	return out
}

func toOrderResponse(o *ledger.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID.String(),
		CustomerID:       o.CustomerID.String(),
		CustomerName:     o.CustomerName,
		TotalAmount:      o.TotalAmount.StringFixed(2),
		OrderDate:        o.OrderDate.Format(dateLayout),
		DeliveryDate:     o.DeliveryDate.Format(dateLayout),
		AccountingPeriod: o.AccountingPeriod.String(),
		OrderStatus:      o.OrderStatus.String(),
		PaymentStatus:    o.PaymentStatus.String(),
	}
}

func toOrderResponses(orders []ledger.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out
}

func toReceiptResponses(receipts []ledger.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, len(receipts))
	for i, r := range receipts {
		out[i] = ReceiptResponse{
			ID:               r.ID.String(),
			OrderID:          r.OrderID.String(),
			Amount:           r.Amount.StringFixed(2),
			ReceivedDate:     r.ReceivedDate.Format(dateLayout),
			AccountingPeriod: r.AccountingPeriod.String(),
			Status:           r.Status.String(),
		}
	}
	return out
}

func toExpenseResponses(expenses []ledger.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		resp := ExpenseResponse{
			ID:               e.ID.String(),
			CategoryID:       e.CategoryID.String(),
			Amount:           e.Amount.StringFixed(2),
			ExpenseDate:      e.ExpenseDate.Format(dateLayout),
			AccountingPeriod: e.AccountingPeriod.String(),
			Status:           e.Status.String(),
		}
		if e.EmployeeID != nil {
			id := e.EmployeeID.String()
			resp.EmployeeID = &id
		}
		out[i] = resp
	}
	return out
}

func toExpenseCategoryResponses(categories []ledger.ExpenseCategory) []ExpenseCategoryResponse {
	out := make([]ExpenseCategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ExpenseCategoryResponse{
			ID:          c.ID.String(),
			Name:        c.Name,
			AccountCode: c.AccountCode,
			IsSalary:    c.IsSalary,
		}
	}
	return out
}

func toSaleResponses(sales []ledger.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = SaleResponse{
			ID:               s.ID.String(),
			ProductID:        s.ProductID.String(),
			Amount:           s.Amount.StringFixed(2),
			PayMethod:        s.PayMethod.String(),
			SaleDate:         s.SaleDate.Format(dateLayout),
			AccountingPeriod: s.AccountingPeriod.String(),
		}
	}
	return out
}
