package shop

import (
	"context"
	"fmt"
	"log"
	"os"

	"go-street-kiosk/database"
	"go-street-kiosk/models"
)

type ConfigStore struct {
	doc    document
	logger *log.Logger
}

func NewConfigStore(store database.BlobStore, logger *log.Logger) *ConfigStore {
	if logger == nil {
		logger = log.New(os.Stdout, "[kiosk] ", log.LstdFlags)
	}
	return &ConfigStore{doc: document{store: store}, logger: logger}
}

// Load returns the stored config. Fields missing from the stored document
// keep their default values.
func (s *ConfigStore) Load(ctx context.Context) (models.ShopConfig, error) {
	cfg := models.DefaultShopConfig()
	if _, err := s.doc.load(ctx, ConfigKey, &cfg); err != nil {
		s.logger.Printf("load %s failed: %v", ConfigKey, err)
		return models.ShopConfig{}, err
	}
	return cfg, nil
}

func (s *ConfigStore) Save(ctx context.Context, cfg models.ShopConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.doc.save(ctx, ConfigKey, cfg); err != nil {
		s.logger.Printf("save %s failed: %v", ConfigKey, err)
		return fmt.Errorf("save %s: %w", ConfigKey, err)
	}
	s.logger.Printf("shop config saved: status=%s active_date=%q", cfg.Status, cfg.ActiveDate)
	return nil
}

// Update applies change to the current config and stores the result.
func (s *ConfigStore) Update(ctx context.Context, change func(*models.ShopConfig)) (models.ShopConfig, error) {
	cfg, err := s.Load(ctx)
	if err != nil {
		return models.ShopConfig{}, err
	}
	change(&cfg)
	if err := s.Save(ctx, cfg); err != nil {
		return models.ShopConfig{}, err
	}
	return cfg, nil
}
