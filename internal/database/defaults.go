package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// ShoppingListKey is the local storage key of the shopping list.
const ShoppingListKey = "shopping:list"

var defaultShoppingList = []string{"Milch", "Brot", "Eier", "Kaffee"}

// SeedDefaults ensures baseline local storage entries exist for new databases.
// Existing values are never overwritten, so it is safe on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	shopping, err := json.Marshal(defaultShoppingList)
	if err != nil {
		return err
	}
	defaults := map[string]string{
		ShoppingListKey: string(shopping),
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		now := Now()
		for key, value := range defaults {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO local_storage(key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO NOTHING;
			`, key, value, now); err != nil {
				return fmt.Errorf("seed %s: %w", key, err)
			}
		}
		return nil
	})
}
