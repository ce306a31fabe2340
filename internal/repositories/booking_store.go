package repositories

import (
	"sort"
	"sync"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/domain/models"
)

// BookingStore is the persistence seam for the booking collection. The MySQL
// implementation backs the running server; MemoryStore backs tests and any
// deployment that wants a throwaway desk.
type BookingStore interface {
	List() ([]models.Booking, error)
	GetByID(id int64) (models.Booking, error)
	// Create assigns the registration number (count of existing bookings + 1)
	// and persists the record.
	Create(b models.Booking) (models.Booking, error)
	Update(b models.Booking) error
}

// MemoryStore keeps the booking collection in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[int64]models.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: map[int64]models.Booking{}}
}

func (s *MemoryStore) List() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RegistrationNumber < out[j].RegistrationNumber
	})
	return out, nil
}

func (s *MemoryStore) GetByID(id int64) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}

func (s *MemoryStore) Create(b models.Booking) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.RegistrationNumber = int64(len(s.bookings)) + 1
	s.bookings[b.RegistrationNumber] = b
	return b, nil
}

func (s *MemoryStore) Update(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[b.RegistrationNumber]; !ok {
		return domain.NotFoundError{Resource: "booking"}
	}
	s.bookings[b.RegistrationNumber] = b
	return nil
}
