package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type OrderStatus string

const (
	StatusNew       OrderStatus = "New"
	StatusFulfilled OrderStatus = "Fulfilled"
)

func (s OrderStatus) Valid() bool {
	return s == StatusNew || s == StatusFulfilled
}

// CanTransitionTo allows New -> Fulfilled and the idempotent Fulfilled -> Fulfilled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s.Valid() && next == StatusFulfilled
}

// LineItem is one cart line. Price is the extended price (qty x unit price).
type LineItem struct {
	Item  string  `json:"item" validate:"required"`
	Qty   int     `json:"qty" validate:"gt=0"`
	Price float64 `json:"price" validate:"gte=0"`
}

// Order is an immutable snapshot of a checkout, apart from its status.
type Order struct {
	ID          int64       `json:"id" validate:"required"`
	Date        string      `json:"date" validate:"required"`
	Time        string      `json:"time"`
	Customer    string      `json:"customer" validate:"required"`
	Items       []LineItem  `json:"items" validate:"required,min=1,dive"`
	ItemSummary string      `json:"item_summary"`
	Total       float64     `json:"total" validate:"gte=0"`
	Status      OrderStatus `json:"status" validate:"required,eq=New|eq=Fulfilled"`
}

func NewLineItem(name string, qty int, unitPrice float64) LineItem {
	price := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(qty))).Round(2)
	return LineItem{Item: name, Qty: qty, Price: price.InexactFloat64()}
}

// NewOrder stamps date and time from at, which should already be in the shop time zone.
func NewOrder(id int64, at time.Time, customer string, items []LineItem) Order {
	lines := make([]LineItem, len(items))
	copy(lines, items)
	return Order{
		ID:          id,
		Date:        at.Format(DateLayout),
		Time:        at.Format(TimeLayout),
		Customer:    customer,
		Items:       lines,
		ItemSummary: SummarizeItems(lines),
		Total:       SumItems(lines).InexactFloat64(),
		Status:      StatusNew,
	}
}

// SummarizeItems renders "2x Nasi Lemak, 1x Teh Tarik".
func SummarizeItems(items []LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Qty, item.Item))
	}
	return strings.Join(parts, ", ")
}

// SumItems adds extended prices to the cent.
func SumItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Price))
	}
	return total.Round(2)
}

func (o Order) TotalMatchesItems() bool {
	return decimal.NewFromFloat(o.Total).Round(2).Equal(SumItems(o.Items))
}

// CreatedAt reconstructs the creation instant from the timestamp id.
func (o Order) CreatedAt() time.Time {
	return time.Unix(o.ID, 0)
}
