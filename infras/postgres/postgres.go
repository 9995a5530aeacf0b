package postgres

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"dost/config"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection keeps separate read and write handles. The remote backend is a
// single DSN today, so both point at the same database, but repositories are
// written against the split.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New dials the remote backend. Callers must not ask for a connection in demo
// mode; the DI layer only builds one when the remote DSN is configured.
func New(config *config.Config) *Connection {
	db := createConnection(config.Remote.ServiceURL, config.Remote.MaxRetry, config.Remote.RetryWait)

	return &Connection{
		Read:  db,
		Write: db,
	}
}

func createConnection(dsn string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			log.
				Info().
				Msg("Connected to remote database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Int("attempt", retry+1).
			Msg("Failed connecting to remote database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
