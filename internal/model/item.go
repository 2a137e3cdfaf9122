package model

import "time"

// Item represents a found physical object tracked until it is claimed.
//
// JSON field names follow the wire format consumed by the dashboard UI,
// so several of them carry historical casing.
type Item struct {
	ID            int64     `json:"itemID"`
	Name          string    `json:"itemName"`
	Category      string    `json:"itemCategory"`
	Description   string    `json:"itemDescription"`
	Color         string    `json:"color"`
	DateFound     string    `json:"dateFound"`
	FoundAt       string    `json:"FoundAt"`
	PhotoMime     string    `json:"photoMime,omitempty"`
	Claimed       bool      `json:"isClaimed"`
	DateUpdated   time.Time `json:"dateUpdated"`
	DaysUnclaimed int       `json:"DaysUnclaimed"`
}

// ItemStatus is an append-only history record of an item's status
// transitions. Rows are only ever inserted, never updated or deleted.
type ItemStatus struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"itemID"`
	Status     string    `json:"status"`
	StatusDate time.Time `json:"statusDate"`
}

// Status labels recorded in the item_status history.
const (
	StatusFound   = "Found"
	StatusClaimed = "Claimed"
)
