// Package reports derives dashboard figures from a ledger snapshot. Every
// function is pure: same snapshot in, same report out.
package reports

import (
	"sort"

	"go-street-kiosk/models"

	"github.com/shopspring/decimal"
)

type CustomerRow struct {
	OrderID  int64              `json:"order_id"`
	Date     string             `json:"date"`
	Time     string             `json:"time"`
	Customer string             `json:"customer"`
	Items    string             `json:"items"`
	Total    float64            `json:"total"`
	Status   models.OrderStatus `json:"status"`
}

type DishRow struct {
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type Summary struct {
	Orders    int     `json:"orders"`
	Pending   int     `json:"pending"`
	Fulfilled int     `json:"fulfilled"`
	Revenue   float64 `json:"revenue"`
}

func TotalRevenue(orders []models.Order) float64 {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(decimal.NewFromFloat(order.Total))
	}
	return total.Round(2).InexactFloat64()
}

// ByCustomer returns one row per order, sorted by customer name. Orders for
// the same name keep their ledger order.
func ByCustomer(orders []models.Order) []CustomerRow {
	rows := rowsOf(orders)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Customer < rows[j].Customer
	})
	return rows
}

// Newest returns one row per order, most recent first.
func Newest(orders []models.Order) []CustomerRow {
	rows := rowsOf(orders)
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// ByDish sums quantity and extended price per item name over every order.
func ByDish(orders []models.Order) []DishRow {
	return dishTotals(orders, func(models.Order) bool { return true })
}

// ToCook is ByDish restricted to orders that are not fulfilled yet.
func ToCook(orders []models.Order) []DishRow {
	return dishTotals(orders, func(o models.Order) bool { return o.Status != models.StatusFulfilled })
}

func Summarize(orders []models.Order) Summary {
	summary := Summary{Orders: len(orders), Revenue: TotalRevenue(orders)}
	for _, order := range orders {
		if order.Status == models.StatusFulfilled {
			summary.Fulfilled++
		} else {
			summary.Pending++
		}
	}
	return summary
}

func rowsOf(orders []models.Order) []CustomerRow {
	rows := make([]CustomerRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, CustomerRow{
			OrderID:  order.ID,
			Date:     order.Date,
			Time:     order.Time,
			Customer: order.Customer,
			Items:    itemsText(order),
			Total:    order.Total,
			Status:   order.Status,
		})
	}
	return rows
}

// itemsText prefers the line items over the cached item_summary field.
func itemsText(order models.Order) string {
	if len(order.Items) > 0 {
		return models.SummarizeItems(order.Items)
	}
	return order.ItemSummary
}

func dishTotals(orders []models.Order, include func(models.Order) bool) []DishRow {
	type acc struct {
		qty     int
		revenue decimal.Decimal
	}
	totals := make(map[string]*acc)
	for _, order := range orders {
		if !include(order) {
			continue
		}
		for _, item := range order.Items {
			a, ok := totals[item.Item]
			if !ok {
				a = &acc{revenue: decimal.Zero}
				totals[item.Item] = a
			}
			a.qty += item.Qty
			a.revenue = a.revenue.Add(decimal.NewFromFloat(item.Price))
		}
	}
	rows := make([]DishRow, 0, len(totals))
	for name, a := range totals {
		rows = append(rows, DishRow{Item: name, Quantity: a.qty, Revenue: a.revenue.Round(2).InexactFloat64()})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quantity != rows[j].Quantity {
			return rows[i].Quantity > rows[j].Quantity
		}
		return rows[i].Item < rows[j].Item
	})
	return rows
}
