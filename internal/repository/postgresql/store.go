package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/choongman-erp/erp-backend-go/internal/domain/store"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type storeRepository struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepository{db: db}
}

// GetByID implements store.StoreRepository.
func (r *storeRepository) GetByID(ctx context.Context, id string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, timezone, latitude, longitude, radius_meters, is_head_office,
			   created_at, updated_at
		FROM stores
		WHERE id = $1
	`

	var s store.Store
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Timezone, &s.Latitude, &s.Longitude, &s.RadiusMeters, &s.IsHeadOffice,
		&s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, fmt.Errorf("failed to get store by ID: %w", err)
	}

	if s.RadiusMeters <= 0 {
		s.RadiusMeters = store.DefaultRadiusMeters
	}

	return s, nil
}

// List implements store.StoreRepository.
func (r *storeRepository) List(ctx context.Context, includeHeadOffice bool) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, timezone, latitude, longitude, radius_meters, is_head_office,
			   created_at, updated_at
		FROM stores
	`
	if !includeHeadOffice {
		query += " WHERE is_head_office = false"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var s store.Store
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Timezone, &s.Latitude, &s.Longitude, &s.RadiusMeters, &s.IsHeadOffice,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		if s.RadiusMeters <= 0 {
			s.RadiusMeters = store.DefaultRadiusMeters
		}
		stores = append(stores, s)
	}

	return stores, rows.Err()
}
