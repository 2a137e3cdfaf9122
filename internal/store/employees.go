package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/matejg/najdeno/internal/model"
)

// CreateEmployee adds a staff member. Used by seeding and tests; the
// running service treats employees as read-only.
func CreateEmployee(ctx context.Context, db *sql.DB, firstName, lastName, position string, itemsManaged int) (*model.Employee, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO employees (first_name, last_name, position, items_managed)
		 VALUES (?, ?, ?, ?)`,
		firstName, lastName, position, itemsManaged,
	)
	if err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting employee id: %w", err)
	}

	return &model.Employee{
		ID:           id,
		FirstName:    firstName,
		LastName:     lastName,
		Position:     position,
		ItemsManaged: itemsManaged,
	}, nil
}

// ListEmployees returns all employees ordered by items managed, busiest
// first.
func ListEmployees(ctx context.Context, db *sql.DB) ([]model.Employee, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, first_name, last_name, position, items_managed
		 FROM employees ORDER BY items_managed DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.ItemsManaged); err != nil {
			return nil, fmt.Errorf("scanning employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
