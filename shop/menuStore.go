package shop

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go-street-kiosk/database"
	"go-street-kiosk/models"
)

// MenuStore owns menu.json and sold_out.json. Items are identified by name
// only, so renaming an item leaves past orders and the sold-out set pointing
// at the old name.
type MenuStore struct {
	doc    document
	logger *log.Logger
}

func NewMenuStore(store database.BlobStore, logger *log.Logger) *MenuStore {
	if logger == nil {
		logger = log.New(os.Stdout, "[kiosk] ", log.LstdFlags)
	}
	return &MenuStore{doc: document{store: store}, logger: logger}
}

func (s *MenuStore) LoadMenu(ctx context.Context) (models.Menu, error) {
	var menu models.Menu
	found, err := s.doc.load(ctx, MenuKey, &menu)
	if err != nil {
		s.logger.Printf("load %s failed: %v", MenuKey, err)
		return nil, err
	}
	if !found {
		return models.DefaultMenu(), nil
	}
	if menu == nil {
		menu = models.Menu{}
	}
	return menu, nil
}

func (s *MenuStore) SaveMenu(ctx context.Context, menu models.Menu) error {
	if menu == nil {
		menu = models.Menu{}
	}
	if err := menu.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.doc.save(ctx, MenuKey, menu); err != nil {
		s.logger.Printf("save %s failed: %v", MenuKey, err)
		return fmt.Errorf("save %s: %w", MenuKey, err)
	}
	s.logger.Printf("menu saved with %d items", len(menu))
	return nil
}

// SetPrice adds the item or changes its price.
func (s *MenuStore) SetPrice(ctx context.Context, name string, price float64) (models.Menu, error) {
	name = strings.TrimSpace(name)
	return s.updateMenu(ctx, func(menu models.Menu) error {
		menu[name] = price
		return nil
	})
}

func (s *MenuStore) RemoveItem(ctx context.Context, name string) (models.Menu, error) {
	return s.updateMenu(ctx, func(menu models.Menu) error {
		if _, ok := menu[name]; !ok {
			return fmt.Errorf("%w: %s", ErrItemNotFound, name)
		}
		delete(menu, name)
		return nil
	})
}

// RenameItem is a delete plus insert keeping the price. The sold-out set is
// not touched.
func (s *MenuStore) RenameItem(ctx context.Context, from, to string) (models.Menu, error) {
	to = strings.TrimSpace(to)
	return s.updateMenu(ctx, func(menu models.Menu) error {
		price, ok := menu[from]
		if !ok {
			return fmt.Errorf("%w: %s", ErrItemNotFound, from)
		}
		if _, taken := menu[to]; taken && to != from {
			return fmt.Errorf("%w: %s", ErrItemExists, to)
		}
		delete(menu, from)
		menu[to] = price
		return nil
	})
}

func (s *MenuStore) LoadSoldOut(ctx context.Context) (models.SoldOut, error) {
	var set models.SoldOut
	if _, err := s.doc.load(ctx, SoldOutKey, &set); err != nil {
		s.logger.Printf("load %s failed: %v", SoldOutKey, err)
		return nil, err
	}
	if set == nil {
		set = models.SoldOut{}
	}
	return set, nil
}

func (s *MenuStore) SaveSoldOut(ctx context.Context, set models.SoldOut) error {
	if set == nil {
		set = models.SoldOut{}
	}
	if err := s.doc.save(ctx, SoldOutKey, set); err != nil {
		s.logger.Printf("save %s failed: %v", SoldOutKey, err)
		return fmt.Errorf("save %s: %w", SoldOutKey, err)
	}
	s.logger.Printf("sold-out set saved with %d items", len(set))
	return nil
}

// MarkSoldOut only accepts items that are on the menu.
func (s *MenuStore) MarkSoldOut(ctx context.Context, name string) (models.SoldOut, error) {
	menu, err := s.LoadMenu(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := menu[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, name)
	}
	set, err := s.LoadSoldOut(ctx)
	if err != nil {
		return nil, err
	}
	set = set.With(name)
	if err := s.SaveSoldOut(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

// MarkAvailable also accepts names no longer on the menu so stale entries
// left behind by a rename can be cleared.
func (s *MenuStore) MarkAvailable(ctx context.Context, name string) (models.SoldOut, error) {
	set, err := s.LoadSoldOut(ctx)
	if err != nil {
		return nil, err
	}
	set = set.Without(name)
	if err := s.SaveSoldOut(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *MenuStore) updateMenu(ctx context.Context, change func(models.Menu) error) (models.Menu, error) {
	menu, err := s.LoadMenu(ctx)
	if err != nil {
		return nil, err
	}
	menu = menu.Clone()
	if err := change(menu); err != nil {
		return nil, err
	}
	if err := s.SaveMenu(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}
