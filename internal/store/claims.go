package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matejg/najdeno/internal/model"
)

// txTimeout bounds every claim mutation transaction. A transaction that
// exceeds it is rolled back and surfaced as a storage error.
const txTimeout = 5 * time.Second

// CreateClaim files an ownership claim against an item. The item must
// exist and still be unclaimed. A short verification code is generated
// for the claimant to present at pickup.
func CreateClaim(ctx context.Context, db *sql.DB, itemID int64, firstName, lastName string) (*model.Claim, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("%w: claimant first and last name are required", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var claimed bool
	err = tx.QueryRowContext(ctx,
		`SELECT is_claimed FROM items WHERE id = ?`, itemID,
	).Scan(&claimed)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("checking item: %w", err)
	}
	if claimed {
		return nil, ErrItemAlreadyClaimed
	}

	code := strings.ToUpper(uuid.NewString()[:8])
	result, err := tx.ExecContext(ctx,
		`INSERT INTO claims (item_id, owner_first_name, owner_last_name, verification_code, claim_date)
		 VALUES (?, ?, ?, ?, date('now'))`,
		itemID, firstName, lastName, code,
	)
	if err != nil {
		return nil, fmt.Errorf("creating claim: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}

	claimID, _ := result.LastInsertId()
	return GetClaim(ctx, db, claimID)
}

// GetClaim returns a claim by ID, or nil if it does not exist.
func GetClaim(ctx context.Context, db *sql.DB, id int64) (*model.Claim, error) {
	c := &model.Claim{}
	err := db.QueryRowContext(ctx,
		`SELECT id, item_id, owner_first_name, owner_last_name, verification_code,
		        claim_date, verification_status, handled_by
		 FROM claims WHERE id = ?`, id,
	).Scan(&c.ID, &c.ItemID, &c.OwnerFirstName, &c.OwnerLastName, &c.VerificationCode,
		&c.ClaimDate, &c.Status, &c.HandledBy)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting claim: %w", err)
	}
	return c, nil
}

// ListPendingClaims returns all pending claims joined with their item's
// display fields and the handling employee's full name.
func ListPendingClaims(ctx context.Context, db *sql.DB) ([]model.Claim, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT c.id, c.item_id, c.owner_first_name, c.owner_last_name,
		        c.verification_code, c.claim_date, c.verification_status, c.handled_by,
		        i.name AS item_name, i.category AS item_category, i.found_at AS found_at_location,
		        COALESCE(e.first_name || ' ' || e.last_name, ?) AS managing_staff
		 FROM claims c
		 JOIN items i ON i.id = c.item_id
		 LEFT JOIN employees e ON e.id = c.handled_by
		 WHERE c.verification_status = ?
		 ORDER BY c.claim_date DESC, c.id DESC`,
		model.UnassignedStaff, model.ClaimPending,
	)
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	defer rows.Close()

	var claims []model.Claim
	for rows.Next() {
		var c model.Claim
		if err := rows.Scan(&c.ID, &c.ItemID, &c.OwnerFirstName, &c.OwnerLastName,
			&c.VerificationCode, &c.ClaimDate, &c.Status, &c.HandledBy,
			&c.ItemName, &c.ItemCategory, &c.FoundAtLocation, &c.ManagingStaff); err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// ApproveClaim resolves a pending claim in a single transaction: the claim
// moves to Approved, the item's claimed flag flips, its last-updated
// timestamp is refreshed, and a "Claimed" entry is appended to the item's
// status history. Either all four changes persist or none do.
//
// The status-guarded UPDATE runs first so the transaction takes the write
// lock immediately; of two concurrent approvals on the same claim, one
// commits and the other finds the claim no longer pending and gets
// ErrClaimNotPending. Returns the affected item's ID on success.
func ApproveClaim(ctx context.Context, db *sql.DB, claimID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE claims SET verification_status = ?
		 WHERE id = ? AND verification_status = ?`,
		model.ClaimApproved, claimID, model.ClaimPending,
	)
	if err != nil {
		return 0, fmt.Errorf("updating claim: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return 0, ErrClaimNotPending
	}

	var itemID int64
	err = tx.QueryRowContext(ctx,
		`SELECT item_id FROM claims WHERE id = ?`, claimID,
	).Scan(&itemID)
	if err != nil {
		return 0, fmt.Errorf("resolving claimed item: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET is_claimed = 1, date_updated = datetime('now') WHERE id = ?`,
		itemID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating item: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO item_status (item_id, status) VALUES (?, ?)`,
		itemID, model.StatusClaimed,
	)
	if err != nil {
		return 0, fmt.Errorf("recording item status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing approval: %w", err)
	}

	return itemID, nil
}

// RejectClaim moves a pending claim to the terminal Rejected state. The
// item is untouched and remains claimable by others.
func RejectClaim(ctx context.Context, db *sql.DB, claimID int64) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	result, err := db.ExecContext(ctx,
		`UPDATE claims SET verification_status = ?
		 WHERE id = ? AND verification_status = ?`,
		model.ClaimRejected, claimID, model.ClaimPending,
	)
	if err != nil {
		return fmt.Errorf("rejecting claim: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrClaimNotPending
	}
	return nil
}
