package submissions

import (
	"context"
	"sync"
)

type memoryRegistrationRepository struct {
	mu      sync.RWMutex
	records []*Registration
	byRef   map[string]int
}

// NewMemoryRegistrationRepository constructs an in-memory registration repository.
func NewMemoryRegistrationRepository() RegistrationRepository {
	return &memoryRegistrationRepository{byRef: make(map[string]int)}
}

func (m *memoryRegistrationRepository) Create(_ context.Context, reg *Registration) (*Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneRegistration(reg)
	m.records = append(m.records, cloned)
	if cloned.Reference != "" {
		m.byRef[cloned.Reference] = len(m.records) - 1
	}
	return cloneRegistration(cloned), nil
}

func (m *memoryRegistrationRepository) GetByReference(_ context.Context, reference string) (*Registration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.byRef[reference]
	if !ok {
		return nil, &NotFoundError{Resource: "registration", Key: reference}
	}
	return cloneRegistration(m.records[idx]), nil
}

func (m *memoryRegistrationRepository) List(_ context.Context) ([]*Registration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Registration, len(m.records))
	for i, record := range m.records {
		out[i] = cloneRegistration(record)
	}
	return out, nil
}

type memoryMessageRepository struct {
	mu      sync.RWMutex
	records []*Message
}

// NewMemoryMessageRepository constructs an in-memory message repository.
func NewMemoryMessageRepository() MessageRepository {
	return &memoryMessageRepository{}
}

func (m *memoryMessageRepository) Create(_ context.Context, msg *Message) (*Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneMessage(msg)
	m.records = append(m.records, cloned)
	return cloneMessage(cloned), nil
}

func (m *memoryMessageRepository) List(_ context.Context) ([]*Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Message, len(m.records))
	for i, record := range m.records {
		out[i] = cloneMessage(record)
	}
	return out, nil
}

func cloneRegistration(reg *Registration) *Registration {
	if reg == nil {
		return nil
	}
	copied := *reg
	if reg.Data.AITools != nil {
		copied.Data.AITools = append([]string(nil), reg.Data.AITools...)
	}
	if reg.Data.Crew != nil {
		copied.Data.Crew = append([]CrewMember(nil), reg.Data.Crew...)
	}
	return &copied
}

func cloneMessage(msg *Message) *Message {
	if msg == nil {
		return nil
	}
	copied := *msg
	return &copied
}
