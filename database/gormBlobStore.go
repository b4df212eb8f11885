package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Blob is the row layout used by the SQL backend.
type Blob struct {
	Key       string `gorm:"primaryKey;size:191"`
	Data      []byte `gorm:"type:longblob"`
	UpdatedAt time.Time
}

// GormBlobStore stores one row per key through gorm.
type GormBlobStore struct {
	db *gorm.DB
}

// NewGormBlobStore migrates the blobs table on an already opened handle.
func NewGormBlobStore(db *gorm.DB) (*GormBlobStore, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &GormBlobStore{db: db}, nil
}

// OpenGormBlobStore dials MySQL and tunes the pool for a low traffic kiosk.
func OpenGormBlobStore(cfg MySQLConfig) (*GormBlobStore, func(), error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.Params,
	)
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, nil, err
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)

	store, err := NewGormBlobStore(gdb)
	if err != nil {
		sqlDB.Close()
		return nil, nil, err
	}
	return store, func() { sqlDB.Close() }, nil
}

func (g *GormBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	var blob Blob
	err := g.db.WithContext(ctx).Where("`key` = ?", key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(key)
	}
	if err != nil {
		return nil, unavailable("get", key, err)
	}
	return blob.Data, nil
}

func (g *GormBlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	blob := Blob{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return unavailable("put", key, err)
	}
	return nil
}

func (g *GormBlobStore) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	result := g.db.WithContext(ctx).Where("`key` = ?", key).Delete(&Blob{})
	if result.Error != nil {
		return unavailable("delete", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(key)
	}
	return nil
}

func (g *GormBlobStore) List(ctx context.Context) ([]string, error) {
	var keys []string
	if err := g.db.WithContext(ctx).Model(&Blob{}).Order("`key`").Pluck("key", &keys).Error; err != nil {
		return nil, unavailable("list", "", err)
	}
	return keys, nil
}

func (g *GormBlobStore) Stat(ctx context.Context, key string) (time.Time, error) {
	if err := ValidateKey(key); err != nil {
		return time.Time{}, err
	}
	var blob Blob
	err := g.db.WithContext(ctx).Select("`key`", "updated_at").Where("`key` = ?", key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, notFound(key)
	}
	if err != nil {
		return time.Time{}, unavailable("stat", key, err)
	}
	return blob.UpdatedAt.UTC(), nil
}
