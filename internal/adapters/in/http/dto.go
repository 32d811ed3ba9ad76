package http

import (
	"encoding/json"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/core/domain/services"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Request and response bodies mirror the schemas in openapi.yaml.

// amount renders money with the two decimals it is stored with.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(decimal.Decimal(a).StringFixed(2))
}

func (a *amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = amount(d)
	return nil
}

type errorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

type newOrderLine struct {
	ProductSerial string `json:"product_serial" validate:"required"`
	Quantity      int    `json:"quantity"`
}

type newOrder struct {
	CustomerNationalID       string              `json:"customer_national_id" validate:"required"`
	DeliveryPersonNationalID string              `json:"delivery_person_national_id" validate:"required"`
	DeliveryDate             *openapi_types.Date `json:"delivery_date,omitempty"`
	Notes                    string              `json:"notes"`
	Lines                    []newOrderLine      `json:"lines" validate:"dive"`
}

func (o newOrder) command() (commands.RegisterOrderCommand, error) {
	lines := make([]commands.RegisterOrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, commands.RegisterOrderLine{ProductSerial: l.ProductSerial, Quantity: l.Quantity})
	}

	var deliveryDate *time.Time
	if o.DeliveryDate != nil {
		deliveryDate = &o.DeliveryDate.Time
	}

	return commands.NewRegisterOrderCommand(
		o.CustomerNationalID,
		o.DeliveryPersonNationalID,
		deliveryDate,
		o.Notes,
		lines,
	)
}

type totalsResponse struct {
	Subtotal amount `json:"subtotal"`
	Tax      amount `json:"tax"`
	Total    amount `json:"total"`
}

func toTotalsResponse(t services.OrderTotals) totalsResponse {
	return totalsResponse{
		Subtotal: amount(t.Subtotal),
		Tax:      amount(t.Tax),
		Total:    amount(t.Total),
	}
}

type registeredOrderResponse struct {
	Number int64 `json:"number"`
	totalsResponse
}

type deliveryConfirmation struct {
	DeliveryDate openapi_types.Date `json:"delivery_date" validate:"required"`
	Notes        string             `json:"notes"`
}

type orderSummaryResponse struct {
	Number                   int64               `json:"number"`
	OrderedAt                time.Time           `json:"ordered_at"`
	DeliveryDate             *openapi_types.Date `json:"delivery_date,omitempty"`
	Status                   string              `json:"status"`
	Notes                    string              `json:"notes"`
	CustomerNationalID       string              `json:"customer_national_id"`
	CustomerName             string              `json:"customer_name"`
	DeliveryPersonNationalID string              `json:"delivery_person_national_id,omitempty"`
	DeliveryPersonName       string              `json:"delivery_person_name,omitempty"`
	Totals                   totalsResponse      `json:"totals"`
}

func toOrderSummaryResponse(s queries.OrderSummary) orderSummaryResponse {
	r := orderSummaryResponse{
		Number:                   s.Number,
		OrderedAt:                s.OrderedAt,
		Status:                   s.Status.String(),
		Notes:                    s.Notes,
		CustomerNationalID:       s.CustomerID,
		CustomerName:             s.CustomerName,
		DeliveryPersonNationalID: s.DeliveryPersonID,
		DeliveryPersonName:       s.DeliveryPersonName,
		Totals:                   toTotalsResponse(s.Totals),
	}
	if s.DeliveryDate != nil {
		r.DeliveryDate = &openapi_types.Date{Time: *s.DeliveryDate}
	}
	return r
}

type orderSearchResponse struct {
	Searched       bool                   `json:"searched"`
	Orders         []orderSummaryResponse `json:"orders"`
	DateRangeError string                 `json:"date_range_error,omitempty"`
}

type orderLineResponse struct {
	Position      int    `json:"position"`
	ProductSerial string `json:"product_serial"`
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	UnitPrice     amount `json:"unit_price"`
	Subtotal      amount `json:"subtotal"`
}

type orderDetailResponse struct {
	orderSummaryResponse
	Lines []orderLineResponse `json:"lines"`
}

func toOrderDetailResponse(d queries.OrderDetail) orderDetailResponse {
	lines := make([]orderLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, orderLineResponse{
			Position:      l.Position,
			ProductSerial: l.ProductSerial,
			ProductName:   l.ProductName,
			Quantity:      l.Quantity,
			UnitPrice:     amount(l.UnitPrice),
			Subtotal:      amount(l.Subtotal),
		})
	}
	return orderDetailResponse{orderSummaryResponse: toOrderSummaryResponse(d.OrderSummary), Lines: lines}
}

type deliveredOrdersResponse struct {
	DeliveryPerson deliveryPersonBody     `json:"delivery_person"`
	Orders         []orderSummaryResponse `json:"orders"`
}

type categoryBody struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func toCategoryBody(v queries.CategoryView) categoryBody {
	return categoryBody{ID: v.ID, Name: v.Name, Description: v.Description}
}

type customerBody struct {
	NationalID string `json:"national_id,omitempty"`
	FirstNames string `json:"first_names" validate:"required"`
	LastNames  string `json:"last_names" validate:"required"`
	Address    string `json:"address"`
	District   string `json:"district"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
}

func (b customerBody) input() commands.CustomerInput {
	return commands.CustomerInput{
		FirstNames: b.FirstNames,
		LastNames:  b.LastNames,
		Address:    b.Address,
		District:   b.District,
		Email:      b.Email,
		Phone:      b.Phone,
	}
}

func toCustomerBody(v queries.CustomerView) customerBody {
	return customerBody{
		NationalID: v.NationalID,
		FirstNames: v.FirstNames,
		LastNames:  v.LastNames,
		Address:    v.Address,
		District:   v.District,
		Email:      v.Email,
		Phone:      v.Phone,
	}
}

type productBody struct {
	SerialNumber string  `json:"serial_number,omitempty"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	UnitPrice    amount  `json:"unit_price"`
	Stock        int     `json:"stock" validate:"gte=0"`
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name,omitempty"`
	Color        string  `json:"color"`
	Dimensions   string  `json:"dimensions"`
}

func (b productBody) details() catalog.ProductDetails {
	return catalog.ProductDetails{
		Name:        b.Name,
		Description: b.Description,
		UnitPrice:   decimal.Decimal(b.UnitPrice),
		Stock:       b.Stock,
		CategoryID:  b.CategoryID,
		Color:       b.Color,
		Dimensions:  b.Dimensions,
	}
}

func toProductBody(v queries.ProductView) productBody {
	return productBody{
		SerialNumber: v.SerialNumber,
		Name:         v.Name,
		Description:  v.Description,
		UnitPrice:    amount(v.UnitPrice),
		Stock:        v.Stock,
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
		Color:        v.Color,
		Dimensions:   v.Dimensions,
	}
}

type deliveryPersonBody struct {
	NationalID string `json:"national_id,omitempty"`
	FirstNames string `json:"first_names" validate:"required"`
	LastNames  string `json:"last_names" validate:"required"`
	Phone      string `json:"phone"`
}

func (b deliveryPersonBody) profile() catalog.DeliveryPersonProfile {
	return catalog.DeliveryPersonProfile{FirstNames: b.FirstNames, LastNames: b.LastNames, Phone: b.Phone}
}

func toDeliveryPersonBody(v queries.DeliveryPersonView) deliveryPersonBody {
	return deliveryPersonBody{NationalID: v.NationalID, FirstNames: v.FirstNames, LastNames: v.LastNames, Phone: v.Phone}
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
