package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"go-street-kiosk/database"
	"go-street-kiosk/models"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// Service is the only writer of ledger keys. Every mutation loads the whole
// weekly ledger, changes it in memory and stores it back. There is no lock
// and no version check: two overlapping cycles on the same key resolve as
// last writer wins.
type Service struct {
	store  database.BlobStore
	logger *log.Logger
}

func NewService(store database.BlobStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(os.Stdout, "[kiosk] ", log.LstdFlags)
	}
	return &Service{store: store, logger: logger}
}

// Append adds order to the end of the ledger at key. The caller owns id
// uniqueness within the ledger.
func (s *Service) Append(ctx context.Context, key string, order models.Order) error {
	if err := checkOrder(order); err != nil {
		return err
	}
	err := s.mutate(ctx, key, "append", func(orders []models.Order) []models.Order {
		return append(orders, order)
	})
	if err != nil {
		return err
	}
	s.logger.Printf("order %d appended to %s", order.ID, key)
	return nil
}

// UpdateStatus sets the status of the order with id and reports whether the
// id was found. Only Fulfilled is an accepted target. An unknown id still
// rewrites the ledger unchanged.
func (s *Service) UpdateStatus(ctx context.Context, key string, id int64, status models.OrderStatus) (bool, error) {
	if status != models.StatusFulfilled {
		return false, fmt.Errorf("%w: to %q", ErrInvalidTransition, status)
	}
	matched := false
	err := s.mutate(ctx, key, "update status", func(orders []models.Order) []models.Order {
		for i := range orders {
			if orders[i].ID == id && orders[i].Status.CanTransitionTo(status) {
				orders[i].Status = status
				matched = true
			}
		}
		return orders
	})
	if err != nil {
		return false, err
	}
	if matched {
		s.logger.Printf("order %d in %s marked %s", id, key, status)
	} else {
		s.logger.Printf("order %d not found in %s, ledger rewritten unchanged", id, key)
	}
	return matched, nil
}

// DeleteByID removes the order with id and reports whether it was present.
// An unknown id still rewrites the ledger unchanged.
func (s *Service) DeleteByID(ctx context.Context, key string, id int64) (bool, error) {
	removed := 0
	err := s.mutate(ctx, key, "delete", func(orders []models.Order) []models.Order {
		kept := orders[:0]
		for _, order := range orders {
			if order.ID == id {
				removed++
				continue
			}
			kept = append(kept, order)
		}
		return kept
	})
	if err != nil {
		return false, err
	}
	s.logger.Printf("order %d deleted from %s (%d removed)", id, key, removed)
	return removed > 0, nil
}

// LoadSnapshot reads the ledger for display. An absent key is an empty ledger.
func (s *Service) LoadSnapshot(ctx context.Context, key string) ([]models.Order, error) {
	orders, err := s.load(ctx, key)
	if err != nil {
		s.logger.Printf("load %s failed: %v", key, err)
		return nil, err
	}
	return orders, nil
}

// ListLedgers returns the ledger keys present in the store, newest week first.
func (s *Service) ListLedgers(ctx context.Context) ([]string, error) {
	keys, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	ledgers := make([]string, 0, len(keys))
	for _, key := range keys {
		if IsLedgerKey(key) {
			ledgers = append(ledgers, key)
		}
	}
	sortNewestFirst(ledgers)
	return ledgers, nil
}

func (s *Service) mutate(ctx context.Context, key, op string, change func([]models.Order) []models.Order) error {
	orders, err := s.load(ctx, key)
	if err != nil {
		s.logger.Printf("%s on %s aborted before write: %v", op, key, err)
		return fmt.Errorf("%s %s: %w", op, key, err)
	}
	if err := s.save(ctx, key, change(orders)); err != nil {
		s.logger.Printf("%s on %s failed to store: %v", op, key, err)
		return fmt.Errorf("%s %s: %w", op, key, err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, key string) ([]models.Order, error) {
	data, err := s.store.Get(ctx, key)
	if errors.Is(err, database.ErrNotFound) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, err
	}
	orders, err := Decode(data)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Key = key
		}
		return nil, err
	}
	return orders, nil
}

func (s *Service) save(ctx context.Context, key string, orders []models.Order) error {
	data, err := Encode(orders)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, key, data)
}

func checkOrder(order models.Order) error {
	if err := validate.Struct(order); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	if !order.TotalMatchesItems() {
		return fmt.Errorf("%w: total %.2f does not match items", ErrInvalidOrder, order.Total)
	}
	return nil
}
