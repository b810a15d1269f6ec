// Package database provides the SQLite connection used by Estate Core.
//
// Property and array data live in memory; SQLite only stores the
// audit log of changes made through the API. The package handles:
//   - Opening the database with WAL mode and a busy timeout
//   - Applying versioned schema migrations from an fs.FS
//   - Health checks and pool statistics for /health and /metrics
//
// Usage:
//
//	db, err := database.Open(ctx, database.Config{Path: cfg.Database.Path, WALMode: true})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
//
// All queries use parameterised statements and the database file is
// created with mode 0600.
package database
