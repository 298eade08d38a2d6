package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/skanda-m/estatedesk/internal/domain"
)

type PropertyStore struct {
	db *sql.DB
}

func NewPropertyStore(db *sql.DB) *PropertyStore {
	return &PropertyStore{db: db}
}

const propertyColumns = `id, name, description, social_id, address, city, state, postal_code,
	price, area, beds, baths, listing, facing, condition, corner_plot, thumbnail_url, created_at`

func (s *PropertyStore) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO properties (id, name, description, social_id, address, city, state, postal_code,
			price, area, beds, baths, listing, facing, condition, corner_plot, thumbnail_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, p.Name, p.Description, p.SocialID, p.Address, p.City, p.State, p.PostalCode,
		p.Price, p.Area, p.Beds, p.Baths, string(p.Listing), string(p.Facing), string(p.Condition),
		p.CornerPlot, p.ThumbnailURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *PropertyStore) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+propertyColumns+` FROM properties WHERE id = ?
	`, id)

	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return p, nil
}

func (s *PropertyStore) List(ctx context.Context) ([]*domain.Property, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var props []*domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		props = append(props, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating properties: %w", err)
	}

	return props, nil
}

func (s *PropertyStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(r rowScanner) (*domain.Property, error) {
	p := &domain.Property{}
	var listing, facing, condition string
	err := r.Scan(&p.ID, &p.Name, &p.Description, &p.SocialID, &p.Address, &p.City, &p.State,
		&p.PostalCode, &p.Price, &p.Area, &p.Beds, &p.Baths, &listing, &facing, &condition,
		&p.CornerPlot, &p.ThumbnailURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Listing = domain.Listing(listing)
	p.Facing = domain.Facing(facing)
	p.Condition = domain.Condition(condition)
	return p, nil
}
