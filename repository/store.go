package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store is the persistence access layer. Every call is its own implicit
// transaction unless the method says otherwise.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping checks that the underlying connection pool can reach the database.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return translate("ping", err)
	}
	return translate("ping", sqlDB.PingContext(ctx))
}

type scope = func(*gorm.DB) *gorm.DB

// preload eager-loads relation paths, ordering each loaded collection by
// primary key so nested output is stable.
func preload(paths ...string) scope {
	return func(db *gorm.DB) *gorm.DB {
		for _, path := range paths {
			db = db.Preload(path, byID)
		}
		return db
	}
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func insert[T any](db *gorm.DB, row *T) error {
	return db.Create(row).Error
}

func findByID[T any](db *gorm.DB, id uint, scopes ...scope) (*T, error) {
	var row T
	if err := db.Scopes(scopes...).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func exists[T any](db *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := db.Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func listFiltered[T any](db *gorm.DB, scopes ...scope) ([]T, error) {
	rows := []T{}
	if err := db.Scopes(scopes...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}
