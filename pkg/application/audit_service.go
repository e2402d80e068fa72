package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

type AuditService struct {
	repo        domain.AuditRepository
	mu          sync.Mutex
	subscribers []func(domain.Event)
}

// Compile-time check that AuditService implements AuditLogger
var _ domain.AuditLogger = (*AuditService)(nil)

func NewAuditService(repo domain.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Log(action string, actor string, metadata map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Get the latest event to continue the hash chain
	events, err := s.repo.LoadEvents()
	if err != nil {
		return fmt.Errorf("failed to load audit trail: %w", err)
	}
	prevHash := ""
	if len(events) > 0 {
		prevHash = events[len(events)-1].Hash
	}

	event := domain.Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Actor:     actor,
		Metadata:  metadata,
		PrevHash:  prevHash,
	}
	event.Hash = event.CalculateHash()

	if err := s.repo.RecordEvent(event); err != nil {
		return err
	}
	for _, fn := range s.subscribers {
		fn(event)
	}
	return nil
}

// Subscribe registers fn to receive every event once it has been recorded.
// fn runs while the log is locked and must not block.
func (s *AuditService) Subscribe(fn func(domain.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *AuditService) GetTimeline() ([]domain.Event, error) {
	return s.repo.LoadEvents()
}

// VerifyIntegrity walks the hash chain and reports every broken link or altered event.
func (s *AuditService) VerifyIntegrity() ([]string, error) {
	events, err := s.repo.LoadEvents()
	if err != nil {
		return nil, err
	}
	return domain.VerifyChain(events), nil
}
