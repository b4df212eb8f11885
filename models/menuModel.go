package models

import (
	"sort"
	"strings"

	"github.com/go-playground/validator"
)

var validate = newValidator()

// newValidator adds notblank, which rejects names that are only whitespace.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// Menu maps item name to unit price. The name is the only identity an item has.
type Menu map[string]float64

func DefaultMenu() Menu {
	return Menu{"Nasi Lemak": 5.0}
}

func (m Menu) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m Menu) Validate() error {
	return validate.Var(m, "dive,keys,notblank,max=80,endkeys,gte=0")
}

func (m Menu) Clone() Menu {
	out := make(Menu, len(m))
	for name, price := range m {
		out[name] = price
	}
	return out
}

// SoldOut is the set of item names that cannot be ordered right now.
type SoldOut []string

func (s SoldOut) Validate() error {
	return validate.Var(s, "dive,notblank,max=80")
}

func (s SoldOut) Contains(name string) bool {
	for _, item := range s {
		if item == name {
			return true
		}
	}
	return false
}

func (s SoldOut) With(name string) SoldOut {
	if s.Contains(name) {
		return s
	}
	out := make(SoldOut, len(s), len(s)+1)
	copy(out, s)
	return append(out, name)
}

func (s SoldOut) Without(name string) SoldOut {
	out := make(SoldOut, 0, len(s))
	for _, item := range s {
		if item != name {
			out = append(out, item)
		}
	}
	return out
}
