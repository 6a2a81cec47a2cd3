package models

import "time"

// InterestInteraction is an append-only record of a buyer asking for a
// seller's contact info. Records are never updated or deleted, and the
// same (item, buyer) pair may appear any number of times.
type InterestInteraction struct {
	ID              int64     `json:"id"`
	ItemID          int64     `json:"item_id"`
	BuyerID         int64     `json:"buyer_id"`
	InteractionTime time.Time `json:"interaction_time"`
}

// RecordID implements store.Record.
func (i InterestInteraction) RecordID() int64 { return i.ID }
