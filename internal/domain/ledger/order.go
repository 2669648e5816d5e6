package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/backend/internal/domain/shared"
)

// OrderStatus represents the fulfilment state of a customer order.
// Cancelled orders are retained but excluded from every aggregate.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// PaymentStatus tracks whether an order has been settled by its receipts.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// Order is a customer order on the receivables ledger.
type Order struct {
	shared.BaseEntity
	CustomerID       uuid.UUID
	CustomerName     string
	TotalAmount      decimal.Decimal
	OrderDate        time.Time
	DeliveryDate     time.Time
	AccountingPeriod Period
	OrderStatus      OrderStatus
	PaymentStatus    PaymentStatus
}

// NewOrder creates a pending order. The accounting period is fixed from
// the delivery date (falling back to the order date when delivery is unset).
func NewOrder(customerID uuid.UUID, customerName string, total decimal.Decimal, orderDate, deliveryDate time.Time) *Order {
	periodDate := deliveryDate
	if periodDate.IsZero() {
		periodDate = orderDate
	}
	return &Order{
		BaseEntity:       shared.NewBaseEntity(),
		CustomerID:       customerID,
		CustomerName:     customerName,
		TotalAmount:      RoundMoney(total),
		OrderDate:        orderDate,
		DeliveryDate:     deliveryDate,
		AccountingPeriod: PeriodOf(periodDate),
		OrderStatus:      OrderStatusPending,
		PaymentStatus:    PaymentStatusUnpaid,
	}
}

// IsCancelled returns true if the order has been cancelled
func (o *Order) IsCancelled() bool {
	return o.OrderStatus == OrderStatusCancelled
}

// OutstandingBalance returns the unpaid amount for the order given its
// receipts, counting only active receipts and clamping at zero so an
// overpaid order never offsets an underpaid one.
func (o *Order) OutstandingBalance(receipts []Receipt) decimal.Decimal {
	received := decimal.Zero
	for _, r := range receipts {
		if r.OrderID != o.ID || r.Status != RecordStatusActive {
			continue
		}
		received = received.Add(r.Amount)
	}
	balance := o.TotalAmount.Sub(received)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
