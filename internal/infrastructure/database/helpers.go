package database

import (
	"github.com/rs/zerolog/log"
)

// Close shuts down the connection pool. pgxpool waits for acquired
// connections to be released before tearing the pool down, so this is
// safe during graceful shutdown. Calling Close on an unconnected or
// already closed wrapper is a no-op.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}

	log.Info().Msg("Closing database connection pool")
	db.Pool.Close()

	// Subsequent HealthCheck calls must see the pool as gone
	db.Pool = nil
}
