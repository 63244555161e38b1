package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vineauth/internal/dbx"
	"github.com/dmitrijs2005/vineauth/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/vineauth/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path works against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
}
