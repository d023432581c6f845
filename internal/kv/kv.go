// Package kv is the durable local key-value substrate behind the domain and
// auth stores. Keys are namespaced strings holding serialized JSON; there is
// no schema migration logic — changing the shape of stored records is not
// handled.
package kv

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the minimal contract the stores persist through.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Record is the single gorm-managed table: one row per namespaced key.
type Record struct {
	Key       string `gorm:"primaryKey;size:120"`
	Value     string
	UpdatedAt time.Time
}

// DB is the gorm-backed Store.
type DB struct {
	db *gorm.DB
}

// New wraps an open gorm connection and ensures the records table exists.
func New(db *gorm.DB) (*DB, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, errors.Wrap(err, "migrate kv records")
	}
	return &DB{db: db}, nil
}

func (d *DB) Get(key string) ([]byte, bool, error) {
	var rec Record
	err := d.db.Where("key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "get %s", key)
	}
	return []byte(rec.Value), true, nil
}

func (d *DB) Put(key string, value []byte) error {
	rec := Record{Key: key, Value: string(value), UpdatedAt: time.Now()}
	err := d.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
	return errors.Wrapf(err, "put %s", key)
}

func (d *DB) Delete(key string) error {
	err := d.db.Where("key = ?", key).Delete(&Record{}).Error
	return errors.Wrapf(err, "delete %s", key)
}
