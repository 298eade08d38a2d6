package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/skanda-m/estatedesk/internal/domain"
)

type LeadStore struct {
	db *sql.DB
}

func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{db: db}
}

func (s *LeadStore) Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leads (id, full_name, phone, status, property_id) VALUES (?, ?, ?, ?, ?)
	`, id, l.FullName, l.Phone, string(l.Status), l.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *LeadStore) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	l := &domain.Lead{}
	var status string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, full_name, phone, status, property_id, created_at FROM leads WHERE id = ?
	`, id).Scan(&l.ID, &l.FullName, &l.Phone, &status, &l.PropertyID, &l.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	l.Status = domain.LeadStatus(status)
	return l, nil
}

func (s *LeadStore) List(ctx context.Context) ([]*domain.Lead, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, full_name, phone, status, property_id, created_at FROM leads
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		l := &domain.Lead{}
		var status string
		if err := rows.Scan(&l.ID, &l.FullName, &l.Phone, &status, &l.PropertyID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		l.Status = domain.LeadStatus(status)
		leads = append(leads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leads: %w", err)
	}

	return leads, nil
}

// CountByStatus returns lead counts keyed by triage status. Statuses with no
// leads are absent from the map.
func (s *LeadStore) CountByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.LeadStatus]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan lead count: %w", err)
		}
		counts[domain.LeadStatus(status)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lead counts: %w", err)
	}

	return counts, nil
}
