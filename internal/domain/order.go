package domain

import "time"

// Status is the fulfillment state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus is the settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPaid,
	PaymentFailed,
}

func (p PaymentStatus) String() string { return string(p) }

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	default:
		return false
	}
}

// Customer is the user an order belongs to. Orders whose user was deleted
// arrive without one.
type Customer struct {
	Name  string
	Email string
}

type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	Price     float64
}

// Order is a single customer purchase as reported by the commerce API.
// ID, Date and Amount are immutable once the order exists; Status and
// PaymentStatus change only through the update gateway.
type Order struct {
	ID            string
	Customer      *Customer
	Date          time.Time
	Items         []OrderItem
	Amount        float64
	Status        Status
	PaymentStatus PaymentStatus
	PaymentMethod string
}

// CustomerName degrades to "N/A" for orders without a customer.
func (o Order) CustomerName() string {
	if o.Customer == nil || o.Customer.Name == "" {
		return "N/A"
	}
	return o.Customer.Name
}

// CustomerEmail degrades to "N/A" for orders without a customer.
func (o Order) CustomerEmail() string {
	if o.Customer == nil || o.Customer.Email == "" {
		return "N/A"
	}
	return o.Customer.Email
}

func (o Order) ItemCount() int { return len(o.Items) }
