package service

import (
	"strings"
	"sync"
)

// digest returns a syntactically valid SHA-512 hex digest built from c.
func digest(c string) string {
	return strings.Repeat(c, 128)
}

type staticIDGenerator string

func (g staticIDGenerator) Generate() string {
	return string(g)
}

// fakeSlotMetrics records what the slot engine reports.
type fakeSlotMetrics struct {
	mu         sync.Mutex
	operations []string
	faults     []string
	credited   int64
}

func (m *fakeSlotMetrics) ObserveSlotOperation(operation, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operations = append(m.operations, operation+":"+outcome)
}

func (m *fakeSlotMetrics) ObserveIntegrityFault(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults = append(m.faults, kind)
}

func (m *fakeSlotMetrics) AddCreditedUsage(ms int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credited += ms
}
