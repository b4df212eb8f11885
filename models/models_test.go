package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderTotals(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("MYT", 8*60*60)
	at := time.Date(2024, 3, 5, 12, 34, 56, 0, loc)

	items := []LineItem{
		NewLineItem("Roti Canai", 2, 3.00),
		NewLineItem("Teh Tarik", 1, 1.50),
	}
	order := NewOrder(at.Unix(), at, "Uncle Lim (Takeaway)", items)

	assert.Equal(t, 6.00, order.Items[0].Price)
	assert.Equal(t, 7.50, order.Total)
	assert.True(t, order.TotalMatchesItems())
	assert.Equal(t, "2x Roti Canai, 1x Teh Tarik", order.ItemSummary)
	assert.Equal(t, "2024-03-05", order.Date)
	assert.Equal(t, "12:34", order.Time)
	assert.Equal(t, StatusNew, order.Status)
	assert.Equal(t, at.Unix(), order.CreatedAt().Unix())
}

func TestSumItemsAvoidsFloatDrift(t *testing.T) {
	t.Parallel()
	items := []LineItem{
		NewLineItem("Kuih", 1, 0.10),
		NewLineItem("Kuih", 1, 0.20),
	}
	assert.Equal(t, "0.3", SumItems(items).String())
	assert.Equal(t, 0.3, NewOrder(1, time.Unix(1, 0), "A", items).Total)
}

func TestTotalMatchesItemsDetectsTampering(t *testing.T) {
	t.Parallel()
	order := NewOrder(1, time.Unix(1, 0), "A", []LineItem{NewLineItem("Nasi Lemak", 2, 5)})
	order.Total = 9.99
	assert.False(t, order.TotalMatchesItems())
}

func TestStatusTransitions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{StatusNew, StatusFulfilled, true},
		{StatusFulfilled, StatusFulfilled, true},
		{StatusFulfilled, StatusNew, false},
		{StatusNew, StatusNew, false},
		{OrderStatus("Cancelled"), StatusFulfilled, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCartPrice(t *testing.T) {
	t.Parallel()
	menu := Menu{"Nasi Lemak": 5.0, "Teh Tarik": 1.5}

	cart := Cart{Customer: " Aisyah ", OrderType: OrderTypeDineIn, Lines: []CartLine{
		{Item: "Nasi Lemak", Qty: 2},
		{Item: "Teh Tarik", Qty: 1},
	}}
	items, err := cart.Price(menu, nil)
	require.NoError(t, err)
	assert.Equal(t, []LineItem{
		{Item: "Nasi Lemak", Qty: 2, Price: 10},
		{Item: "Teh Tarik", Qty: 1, Price: 1.5},
	}, items)
	assert.Equal(t, "Aisyah (Dine-in)", cart.DisplayName())

	_, err = Cart{Lines: []CartLine{{Item: "Satay", Qty: 1}}}.Price(menu, nil)
	var unknown *UnknownItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Satay", unknown.Item)

	_, err = cart.Price(menu, SoldOut{"Teh Tarik"})
	var soldOut *SoldOutError
	require.ErrorAs(t, err, &soldOut)
	assert.Equal(t, "Teh Tarik", soldOut.Item)
}

func TestCartDisplayNameWithoutType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Uncle Lim", Cart{Customer: "Uncle Lim"}.DisplayName())
	assert.Equal(t, "Uncle Lim (Takeaway)", Cart{Customer: "Uncle Lim", OrderType: OrderTypeTakeaway}.DisplayName())
}

func TestSoldOutSet(t *testing.T) {
	t.Parallel()
	var set SoldOut
	set = set.With("Satay").With("Satay").With("Cendol")
	assert.Equal(t, SoldOut{"Satay", "Cendol"}, set)
	assert.True(t, set.Contains("Cendol"))
	assert.Equal(t, SoldOut{"Cendol"}, set.Without("Satay"))
	assert.Equal(t, SoldOut{"Satay", "Cendol"}, set)
}

func TestSoldOutValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, SoldOut{"Satay", "Cendol"}.Validate())
	assert.NoError(t, SoldOut{}.Validate())
	assert.NoError(t, SoldOut(nil).Validate())
	assert.Error(t, SoldOut{""}.Validate())
	assert.Error(t, SoldOut{"Satay", "   "}.Validate())
	assert.Error(t, SoldOut{strings.Repeat("x", 81)}.Validate())
}

func TestMenuValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Menu{"Nasi Lemak": 0}.Validate())
	assert.Error(t, Menu{"Nasi Lemak": -1}.Validate())
	assert.Error(t, Menu{" ": 1}.Validate())
	assert.Error(t, Menu{"": 1}.Validate())
	assert.Error(t, Menu{strings.Repeat("x", 81): 1}.Validate())
	assert.NoError(t, Menu{}.Validate())
	assert.Equal(t, []string{"Cendol", "Nasi Lemak"}, Menu{"Nasi Lemak": 5, "Cendol": 3}.Names())
}

func TestShopConfig(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("MYT", 8*60*60)
	now := time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)

	cfg := DefaultShopConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsOpen())

	day, err := cfg.ActiveDay(now, loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-06", day.Format(DateLayout))

	cfg.ActiveDate = "2024-12-24"
	cfg.Status = ShopClosed
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.IsOpen())
	day, err = cfg.ActiveDay(now, loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-24", day.Format(DateLayout))

	assert.Error(t, ShopConfig{Status: "maybe"}.Validate())
	assert.Error(t, ShopConfig{Status: ShopOpen, ActiveDate: "24/12/2024"}.Validate())
}
