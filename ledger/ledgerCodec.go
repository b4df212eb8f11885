package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go-street-kiosk/models"
)

// Encode renders a ledger as an indented JSON array. Nil encodes as [].
func Encode(orders []models.Order) ([]byte, error) {
	out := make([]models.Order, len(orders))
	for i, order := range orders {
		if order.Items == nil {
			order.Items = []models.LineItem{}
		}
		out[i] = order
	}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Decode parses a ledger payload. An absent or empty payload is an empty
// ledger. Missing item_summary stays "" and missing status becomes New.
func Decode(data []byte) ([]models.Order, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if orders == nil {
		return []models.Order{}, nil
	}
	for i := range orders {
		if orders[i].Status == "" {
			orders[i].Status = models.StatusNew
		}
		if !orders[i].Status.Valid() {
			return nil, &DecodeError{Err: fmt.Errorf("order %d has unknown status %q", orders[i].ID, orders[i].Status)}
		}
	}
	return orders, nil
}
