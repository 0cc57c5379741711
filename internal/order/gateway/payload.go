package gateway

import (
	"encoding/json"
	"time"

	"backoffice/internal/domain"
)

type listResponse struct {
	Success bool           `json:"success"`
	Orders  []orderPayload `json:"orders"`
	Message string         `json:"message"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type updateRequest struct {
	OrderID       string  `json:"orderId"`
	Status        string  `json:"status"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

type deleteRequest struct {
	OrderID string `json:"orderId"`
}

// orderPayload is the Mongo-style order document the API returns.
type orderPayload struct {
	ID            string           `json:"_id"`
	User          *customerPayload `json:"userId"`
	Date          apiTime          `json:"date"`
	Items         []itemPayload    `json:"items"`
	Amount        float64          `json:"amount"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"paymentStatus"`
	PaymentMethod string           `json:"paymentMethod"`
}

// customerPayload is the populated user reference. Deleted users arrive as
// null or as a bare id string; both decode to an absent customer.
type customerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *customerPayload) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		// Unpopulated reference: just the user id, no profile.
		return nil
	}

	type alias customerPayload
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = customerPayload(a)
	return nil
}

type itemPayload struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// apiTime accepts the two date encodings the API has used: epoch
// milliseconds and RFC3339 strings.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	var millis int64
	if err := json.Unmarshal(data, &millis); err == nil {
		t.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}

func (p orderPayload) toDomain() domain.Order {
	var customer *domain.Customer
	if p.User != nil && (p.User.Name != "" || p.User.Email != "") {
		customer = &domain.Customer{Name: p.User.Name, Email: p.User.Email}
	}

	items := make([]domain.OrderItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return domain.Order{
		ID:            p.ID,
		Customer:      customer,
		Date:          p.Date.Time,
		Items:         items,
		Amount:        p.Amount,
		Status:        domain.Status(p.Status),
		PaymentStatus: domain.PaymentStatus(p.PaymentStatus),
		PaymentMethod: p.PaymentMethod,
	}
}
