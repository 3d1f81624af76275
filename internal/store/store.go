// Package store owns the relational schema and every read/write the
// portal performs. A Store is built once at bootstrap and handed to the
// HTTP layer; nothing in here keeps package-level state.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
