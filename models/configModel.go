package models

import (
	"fmt"
	"time"
)

type ShopStatus string

const (
	ShopOpen   ShopStatus = "open"
	ShopClosed ShopStatus = "closed"
)

// ShopConfig is the config.json singleton. Open and close times are display
// text only; Status alone decides whether checkout is allowed.
type ShopConfig struct {
	ActiveDate string     `json:"active_date" validate:"omitempty,len=10"`
	OpenTime   string     `json:"open_time" validate:"max=20"`
	CloseTime  string     `json:"close_time" validate:"max=20"`
	Status     ShopStatus `json:"status" validate:"required,eq=open|eq=closed"`
}

func DefaultShopConfig() ShopConfig {
	return ShopConfig{OpenTime: "10:00", CloseTime: "22:00", Status: ShopOpen}
}

func (c ShopConfig) IsOpen() bool {
	return c.Status == ShopOpen
}

func (c ShopConfig) Validate() error {
	if c.Status != ShopOpen && c.Status != ShopClosed {
		return fmt.Errorf("status must be %q or %q", ShopOpen, ShopClosed)
	}
	if c.ActiveDate != "" {
		if _, err := time.Parse(DateLayout, c.ActiveDate); err != nil {
			return fmt.Errorf("invalid active_date: %w", err)
		}
	}
	return nil
}

// ActiveDay returns the configured active date in loc, or the current day
// in loc when none is configured.
func (c ShopConfig) ActiveDay(now time.Time, loc *time.Location) (time.Time, error) {
	if c.ActiveDate == "" {
		return now.In(loc), nil
	}
	day, err := time.ParseInLocation(DateLayout, c.ActiveDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid active_date: %w", err)
	}
	return day, nil
}
