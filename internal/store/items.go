package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/matejg/najdeno/internal/model"
)

// itemColumns selects the full item record with the derived days-unclaimed
// value. The derivation floors to whole days and is zero once an item is
// claimed, since age-since-found stops being meaningful after resolution.
const itemColumns = `id, name, category, description, color, date_found, found_at,
	photo_mime, is_claimed, date_updated,
	CASE WHEN is_claimed = 0
	     THEN CAST(julianday('now') - julianday(date_found) AS INTEGER)
	     ELSE 0 END AS days_unclaimed`

// RegisterItem validates and inserts a newly found item, appending a
// "Found" entry to its status history in the same transaction.
func RegisterItem(ctx context.Context, db *sql.DB, name, category, description, color, dateFound, foundAt string) (*model.Item, error) {
	fields := map[string]string{
		"itemName":        name,
		"itemCategory":    category,
		"itemDescription": description,
		"color":           color,
		"dateFound":       dateFound,
		"FoundAt":         foundAt,
	}
	for field, value := range fields {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
		}
	}
	if _, err := time.Parse("2006-01-02", dateFound); err != nil {
		return nil, fmt.Errorf("%w: dateFound must be YYYY-MM-DD", ErrInvalidInput)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO items (name, category, description, color, date_found, found_at, is_claimed, date_updated)
		 VALUES (?, ?, ?, ?, ?, ?, 0, datetime('now'))`,
		name, category, description, color, dateFound, foundAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO item_status (item_id, status) VALUES (?, ?)`,
		id, model.StatusFound,
	)
	if err != nil {
		return nil, fmt.Errorf("recording item status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListUnclaimedItems returns all unclaimed items, most recently found
// first, each annotated with its days-unclaimed value.
func ListUnclaimedItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE is_claimed = 0 ORDER BY date_found DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*model.Item, error) {
	item := &model.Item{}
	var photoMime sql.NullString
	err := s.Scan(&item.ID, &item.Name, &item.Category, &item.Description, &item.Color,
		&item.DateFound, &item.FoundAt, &photoMime, &item.Claimed, &item.DateUpdated,
		&item.DaysUnclaimed)
	if err != nil {
		return nil, err
	}
	item.PhotoMime = photoMime.String
	return item, nil
}

// ItemHistory returns the status history of an item, newest first.
func ItemHistory(ctx context.Context, db *sql.DB, itemID int64) ([]model.ItemStatus, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_id, status, status_date FROM item_status
		 WHERE item_id = ? ORDER BY status_date DESC, id DESC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting item history: %w", err)
	}
	defer rows.Close()

	var history []model.ItemStatus
	for rows.Next() {
		var s model.ItemStatus
		if err := rows.Scan(&s.ID, &s.ItemID, &s.Status, &s.StatusDate); err != nil {
			return nil, fmt.Errorf("scanning item status: %w", err)
		}
		history = append(history, s)
	}
	return history, rows.Err()
}

// SetItemPhoto stores an item's photo data.
func SetItemPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET photo = ?, photo_mime = ?, date_updated = datetime('now') WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item photo: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}

// GetItemPhoto returns an item's photo data and MIME type. A nil byte
// slice means the item has no photo.
func GetItemPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM items WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", ErrItemNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item photo: %w", err)
	}
	return photo, mime.String, nil
}
