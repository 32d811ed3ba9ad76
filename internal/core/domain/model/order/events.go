package order

import "time"

const (
	RegisteredEventName = "order.registered"
	DeliveredEventName  = "order.delivered"
)

// OrderRegistered is recorded once the store has assigned the order its number.
type OrderRegistered struct {
	Number           int64     `json:"number"`
	CustomerID       string    `json:"customer_national_id"`
	DeliveryPersonID string    `json:"delivery_person_national_id,omitempty"`
	LineCount        int       `json:"line_count"`
	Subtotal         string    `json:"subtotal"`
	At               time.Time `json:"occurred_at"`
}

func (e OrderRegistered) EventName() string {
	return RegisteredEventName
}

func (e OrderRegistered) OccurredAt() time.Time {
	return e.At
}

type OrderDelivered struct {
	Number       int64     `json:"number"`
	DeliveryDate string    `json:"delivery_date"`
	At           time.Time `json:"occurred_at"`
}

func (e OrderDelivered) EventName() string {
	return DeliveredEventName
}

func (e OrderDelivered) OccurredAt() time.Time {
	return e.At
}
