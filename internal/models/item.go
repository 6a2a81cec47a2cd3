package models

import "time"

// ItemStatus is stored and defaulted but not transitioned anywhere yet.
type ItemStatus string

const ItemStatusAvailable ItemStatus = "AVAILABLE"

// Item is a listing. SellerID references a User by id; the reference is
// not cascade-protected, so consumers must handle a missing seller.
// ImagePaths are opaque strings, never read or validated by the core.
type Item struct {
	ID          int64      `json:"id"`
	SellerID    int64      `json:"seller_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Status      ItemStatus `json:"status"`
	ImagePaths  []string   `json:"image_paths"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RecordID implements store.Record.
func (i Item) RecordID() int64 { return i.ID }
