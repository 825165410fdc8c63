package repository

import (
	"context"
	"fmt"

	"github.com/news-board-api/internal/database"
)

// rowExists is the generic existence check shared by all repositories.
// table and column are only ever the fixed literals at the Exists call
// sites in this package, never request input; the id value is always a
// bound parameter.
func rowExists(ctx context.Context, db *database.DB, table, column string, value interface{}) (bool, error) {
	stmt := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", table, column)

	var exists bool
	err := db.QueryRowContext(ctx, stmt, value).Scan(&exists)
	return exists, err
}
