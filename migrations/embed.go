// Package migrations embeds the journal schema into the binary.
package migrations

import (
	"embed"

	"github.com/p0sel0k/hw3/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "."
}
