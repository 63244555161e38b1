package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vineauth/internal/common"
	"github.com/dmitrijs2005/vineauth/internal/dbx"
	"github.com/dmitrijs2005/vineauth/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts profile and fills in its generated ID. A second profile for
// the same user yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	query :=
		`INSERT INTO profiles (user_id, username, email, phone, address, country,
		                       full_name, national_id_number, gender, date_of_birth)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.UserName, profile.Email, profile.Phone, profile.Address, profile.Country,
		profile.FullName, profile.NationalIDNumber, profile.Gender, profile.DateOfBirth,
	).Scan(&profile.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query :=
		`SELECT id, user_id, username, email, phone, address, country,
		        full_name, national_id_number, gender, date_of_birth
		 FROM profiles
		 WHERE user_id = $1
		 `

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.UserName, &p.Email, &p.Phone, &p.Address, &p.Country,
		&p.FullName, &p.NationalIDNumber, &p.Gender, &p.DateOfBirth,
	)

	if err != nil {
		// a user id that is not a uuid cannot own a profile
		if errors.Is(err, sql.ErrNoRows) || dbx.IsInvalidText(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}
