// Package database provides SQLite connectivity for the operation journal.
//
// The journal defaults to an in-memory database (path ":memory:"), which
// lives exactly as long as the process. A file path may be configured for
// debugging, in which case the directory is created and the file is
// restricted to 0600.
//
// Migrations are plain .up.sql/.down.sql files named
// YYYYMMDD_HHMMSS_description, registered through MigrationsFS by the
// migrations package and applied in version order.
//
// Usage:
//
//	db, err := database.Open(database.Config{Path: ":memory:", BusyTimeout: 5})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
package database
