package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/matejg/najdeno/internal/db"
	"github.com/matejg/najdeno/internal/model"
)

// daysAgo formats a date n whole days in the past.
func daysAgo(n int) string {
	return time.Now().UTC().AddDate(0, 0, -n).Format("2006-01-02")
}

func registerTestItem(t *testing.T, database *sql.DB, name string, foundDaysAgo int) *model.Item {
	t.Helper()
	item, err := RegisterItem(context.Background(), database,
		name, "Electronics", "test item", "black", daysAgo(foundDaysAgo), "Main Hall")
	if err != nil {
		t.Fatalf("RegisterItem: %v", err)
	}
	return item
}

func TestRegisterAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := RegisterItem(ctx, database,
		"Umbrella", "Accessories", "black umbrella with wooden handle", "black",
		daysAgo(3), "Bus Station")
	if err != nil {
		t.Fatalf("RegisterItem: %v", err)
	}

	if item.ID <= 0 {
		t.Errorf("expected positive item ID, got %d", item.ID)
	}
	if item.Claimed {
		t.Error("new item should not be claimed")
	}
	if item.DaysUnclaimed != 3 {
		t.Errorf("expected 3 days unclaimed, got %d", item.DaysUnclaimed)
	}

	got, err := GetItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got == nil || got.Name != "Umbrella" || got.FoundAt != "Bus Station" {
		t.Errorf("unexpected item: %+v", got)
	}
}

func TestRegisterItemValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		fields [6]string // name, category, description, color, dateFound, foundAt
	}{
		{"missing name", [6]string{"", "Electronics", "desc", "red", daysAgo(1), "Lobby"}},
		{"missing category", [6]string{"Phone", "", "desc", "red", daysAgo(1), "Lobby"}},
		{"missing description", [6]string{"Phone", "Electronics", "", "red", daysAgo(1), "Lobby"}},
		{"missing color", [6]string{"Phone", "Electronics", "desc", "", daysAgo(1), "Lobby"}},
		{"missing date", [6]string{"Phone", "Electronics", "desc", "red", "", "Lobby"}},
		{"missing location", [6]string{"Phone", "Electronics", "desc", "red", daysAgo(1), ""}},
		{"blank name", [6]string{"   ", "Electronics", "desc", "red", daysAgo(1), "Lobby"}},
		{"bad date", [6]string{"Phone", "Electronics", "desc", "red", "yesterday", "Lobby"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.fields
			_, err := RegisterItem(ctx, database, f[0], f[1], f[2], f[3], f[4], f[5])
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	// Nothing may have been persisted.
	items, err := ListUnclaimedItems(ctx, database)
	if err != nil {
		t.Fatalf("ListUnclaimedItems: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items after failed registrations, got %d", len(items))
	}
}

func TestListUnclaimedItemsOrdering(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	registerTestItem(t, database, "Oldest", 6)
	registerTestItem(t, database, "Newest", 1)
	registerTestItem(t, database, "Middle", 4)

	items, err := ListUnclaimedItems(ctx, database)
	if err != nil {
		t.Fatalf("ListUnclaimedItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	wantOrder := []string{"Newest", "Middle", "Oldest"}
	wantDays := []int{1, 4, 6}
	for i, item := range items {
		if item.Name != wantOrder[i] {
			t.Errorf("position %d: expected %s, got %s", i, wantOrder[i], item.Name)
		}
		if item.DaysUnclaimed != wantDays[i] {
			t.Errorf("%s: expected %d days unclaimed, got %d", item.Name, wantDays[i], item.DaysUnclaimed)
		}
		if item.DaysUnclaimed < 0 {
			t.Errorf("%s: days unclaimed is negative", item.Name)
		}
	}
}

func TestRegisterItemRecordsFoundStatus(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item := registerTestItem(t, database, "Wallet", 2)

	history, err := ItemHistory(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("ItemHistory: %v", err)
	}
	if len(history) != 1 || history[0].Status != model.StatusFound {
		t.Errorf("expected a single Found history entry, got %+v", history)
	}
}

func TestItemPhoto(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item := registerTestItem(t, database, "Camera", 1)

	photo := []byte("fake photo data")
	if err := SetItemPhoto(ctx, database, item.ID, photo, "image/jpeg"); err != nil {
		t.Fatalf("SetItemPhoto: %v", err)
	}

	data, mime, err := GetItemPhoto(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItemPhoto: %v", err)
	}
	if string(data) != "fake photo data" || mime != "image/jpeg" {
		t.Errorf("unexpected photo data %q mime %q", data, mime)
	}
}

func TestItemPhotoMissingItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := SetItemPhoto(ctx, database, 9999, []byte("x"), "image/jpeg"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if _, _, err := GetItemPhoto(ctx, database, 9999); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}
