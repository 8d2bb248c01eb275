package postgresql

import (
	"context"

	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction carried by the context, or the pool.
// Repositories work unchanged inside and outside transactions.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := database.TxFrom(ctx); ok {
		return tx
	}
	return db.Pool
}
