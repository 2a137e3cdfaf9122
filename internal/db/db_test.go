package db

import (
	"context"
	"testing"
)

func TestMigrateIsIdempotent(t *testing.T) {
	database := NewTestDB(t)

	if err := Migrate(database); err != nil {
		t.Fatalf("second Migrate run: %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	database := NewTestDB(t)
	ctx := context.Background()

	if err := Seed(ctx, database); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var count int
	database.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if count != len(seedEmployees) {
		t.Fatalf("expected %d seeded employees, got %d", len(seedEmployees), count)
	}

	if err := Seed(ctx, database); err != nil {
		t.Fatalf("second Seed run: %v", err)
	}
	database.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if count != len(seedEmployees) {
		t.Errorf("second seed added rows: expected %d employees, got %d", len(seedEmployees), count)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	database := NewTestDB(t)

	_, err := database.Exec(
		`INSERT INTO claims (item_id, owner_first_name, owner_last_name, verification_code)
		 VALUES (9999, 'Maja', 'Zupan', 'ABCD1234')`,
	)
	if err == nil {
		t.Error("expected foreign key violation for claim on missing item")
	}
}
