package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/foodsaver/internal/common"
	"github.com/Veraticus/foodsaver/internal/model"
)

// SaveItem inserts a new pantry item and assigns its id.
func (s *SQLiteStorage) SaveItem(ctx context.Context, item *model.PantryItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO items (name, quantity, purchase_date, expiry_date, notes)
		VALUES (?, ?, ?, ?, ?)`,
		item.Name, item.Quantity, item.PurchaseDate, item.ExpiryDate, item.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get item id: %w", err)
	}
	item.ID = id

	slog.Debug("saved pantry item", "id", item.ID, "name", item.Name)
	return nil
}

// GetItem returns the pantry item with the given id, or ErrNotFound.
func (s *SQLiteStorage) GetItem(ctx context.Context, id int64) (*model.PantryItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	var item model.PantryItem
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, quantity, purchase_date, expiry_date, notes, created_at
		FROM items
		WHERE id = ?`, id).Scan(
		&item.ID, &item.Name, &item.Quantity, &item.PurchaseDate,
		&item.ExpiryDate, &item.Notes, &item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: item %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	return &item, nil
}

// ListItems returns all pantry items ordered by insertion id. The stable
// order is part of the listing contract; derived sorting happens upstream.
func (s *SQLiteStorage) ListItems(ctx context.Context) ([]model.PantryItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, quantity, purchase_date, expiry_date, notes, created_at
		FROM items
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []model.PantryItem
	for rows.Next() {
		var item model.PantryItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Quantity, &item.PurchaseDate,
			&item.ExpiryDate, &item.Notes, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	slog.Debug("retrieved pantry items", "count", len(items))
	return items, nil
}

// UpdateItem replaces all fields of an existing item.
func (s *SQLiteStorage) UpdateItem(ctx context.Context, item *model.PantryItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}
	if err := validateID(item.ID, "item.ID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE items
		SET name = ?, quantity = ?, purchase_date = ?, expiry_date = ?, notes = ?
		WHERE id = ?`,
		item.Name, item.Quantity, item.PurchaseDate, item.ExpiryDate, item.Notes, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: item %d", common.ErrNotFound, item.ID)
	}

	return nil
}

// DeleteItem removes an item by id.
func (s *SQLiteStorage) DeleteItem(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: item %d", common.ErrNotFound, id)
	}

	slog.Debug("deleted pantry item", "id", id)
	return nil
}
