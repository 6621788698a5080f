package service

import (
	"context"
	"fmt"
	"time"
)

// CounterStore issues monotonically increasing sequence numbers. Next must be
// atomic: concurrent calls for the same key never observe the same value.
type CounterStore interface {
	Next(ctx context.Context, key string) (int64, error)
}

// SequenceService turns counter values into human-readable identifiers.
// Counters are keyed per tenant and calendar year, so numbers restart at 0001
// each year and never collide across tenants.
type SequenceService struct {
	counters CounterStore
}

// NewSequenceService creates a new SequenceService.
func NewSequenceService(counters CounterStore) *SequenceService {
	return &SequenceService{counters: counters}
}

// NextRegistrationNo issues a student registration number, e.g. SCH-2026-0001.
func (s *SequenceService) NextRegistrationNo(ctx context.Context, tenantID string) (string, error) {
	year := time.Now().UTC().Year()
	seq, err := s.counters.Next(ctx, fmt.Sprintf("student-registration:%s:%d", tenantID, year))
	if err != nil {
		return "", fmt.Errorf("next registration number: %w", err)
	}
	return fmt.Sprintf("SCH-%d-%04d", year, seq), nil
}

// NextEmployeeID issues a staff employee ID, e.g. EMP-2026-0001.
func (s *SequenceService) NextEmployeeID(ctx context.Context, tenantID string) (string, error) {
	year := time.Now().UTC().Year()
	seq, err := s.counters.Next(ctx, fmt.Sprintf("employee-id:%s:%d", tenantID, year))
	if err != nil {
		return "", fmt.Errorf("next employee id: %w", err)
	}
	return fmt.Sprintf("EMP-%d-%04d", year, seq), nil
}
