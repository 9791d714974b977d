package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"poppys-backend/internal/storage"
)

// Operators returns the active RFID to operator-name directory, ordered by
// name. This directory is the only source of the mapping.
func (s *Storage) Operators(ctx context.Context) ([]storage.Operator, error) {
	const op = "storage.mysql.Operators"

	rows, err := s.db.QueryContext(ctx, `
        SELECT id, rfid, name, is_active FROM operators
        WHERE is_active = TRUE
        ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: query operator directory: %w", op, err)
	}
	defer rows.Close()

	return scanOperators(op, rows)
}

// AllOperators returns every directory entry, inactive ones included. Used
// by the admin panel only.
func (s *Storage) AllOperators(ctx context.Context) ([]storage.Operator, error) {
	const op = "storage.mysql.AllOperators"

	rows, err := s.db.QueryContext(ctx, `
        SELECT id, rfid, name, is_active FROM operators
        ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: query operator directory: %w", op, err)
	}
	defer rows.Close()

	return scanOperators(op, rows)
}

func (s *Storage) SaveOperator(ctx context.Context, req storage.SaveOperator) (int64, error) {
	const op = "storage.mysql.SaveOperator"

	res, err := s.db.ExecContext(ctx, `
        INSERT INTO operators (rfid, name, is_active)
        VALUES (?, ?, TRUE)
        ON DUPLICATE KEY UPDATE
            name = VALUES(name),
            is_active = TRUE,
            updated_at = CURRENT_TIMESTAMP`,
		req.RFID, req.Name)
	if err != nil {
		return 0, fmt.Errorf("%s: insert operator rfid=%s: %w", op, req.RFID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateOperator(ctx context.Context, req storage.UpdateOperator) error {
	const op = "storage.mysql.UpdateOperator"

	res, err := s.db.ExecContext(ctx, `
        UPDATE operators SET rfid = ?, name = ?, is_active = ?
        WHERE id = ?`,
		req.RFID, req.Name, req.IsActive, req.ID)
	if err != nil {
		return fmt.Errorf("%s: update operator id=%d: %w", op, req.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: operator id=%d not found", op, req.ID)
	}

	return nil
}

func scanOperators(op string, rows *sql.Rows) ([]storage.Operator, error) {
	var operators []storage.Operator
	for rows.Next() {
		var o storage.Operator
		if err := rows.Scan(&o.ID, &o.RFID, &o.Name, &o.IsActive); err != nil {
			return nil, fmt.Errorf("%s: scan operator: %w", op, err)
		}
		operators = append(operators, o)
	}

	return operators, rows.Err()
}
