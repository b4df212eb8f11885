package models

import (
	"fmt"
	"strings"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
)

func (t OrderType) Label() string {
	switch t {
	case OrderTypeDineIn:
		return "Dine-in"
	case OrderTypeTakeaway:
		return "Takeaway"
	default:
		return ""
	}
}

type CartLine struct {
	Item string `json:"item" validate:"required"`
	Qty  int    `json:"qty" validate:"gt=0,lte=99"`
}

// Cart is the customer's checkout request. It travels with the request
// instead of living in server side session state.
type Cart struct {
	Customer  string     `json:"customer" validate:"required,max=80"`
	OrderType OrderType  `json:"order_type" validate:"omitempty,eq=dine_in|eq=takeaway"`
	Phone     string     `json:"phone" validate:"omitempty,max=20"`
	Lines     []CartLine `json:"items" validate:"required,min=1,dive"`
}

type UnknownItemError struct {
	Item string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("%s is not on the menu", e.Item)
}

type SoldOutError struct {
	Item string
}

func (e *SoldOutError) Error() string {
	return fmt.Sprintf("%s is sold out", e.Item)
}

// DisplayName annotates the customer name with the order type, e.g. "Uncle Lim (Takeaway)".
func (c Cart) DisplayName() string {
	name := strings.TrimSpace(c.Customer)
	if label := c.OrderType.Label(); label != "" {
		return fmt.Sprintf("%s (%s)", name, label)
	}
	return name
}

// Price turns cart lines into line items using current menu prices.
func (c Cart) Price(menu Menu, soldOut SoldOut) ([]LineItem, error) {
	items := make([]LineItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		unit, ok := menu[line.Item]
		if !ok {
			return nil, &UnknownItemError{Item: line.Item}
		}
		if soldOut.Contains(line.Item) {
			return nil, &SoldOutError{Item: line.Item}
		}
		items = append(items, NewLineItem(line.Item, line.Qty, unit))
	}
	return items, nil
}
