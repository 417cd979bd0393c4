package booking

import (
	"errors"
	"log"

	"hotel-reservations/config"
)

// Manager wires the three collections together for the CLI.
type Manager struct {
	Hotels       *HotelRepository
	Customers    *CustomerRepository
	Reservations *Coordinator

	stores []RecordStore
	db     *Database
}

// NewManager builds the repositories and the coordinator over the given
// stores.
func NewManager(hotels, customers, reservations RecordStore, logger *log.Logger) *Manager {
	hotelRepo := NewHotelRepository(hotels, logger)
	customerRepo := NewCustomerRepository(customers, logger)
	return &Manager{
		Hotels:       hotelRepo,
		Customers:    customerRepo,
		Reservations: NewCoordinator(reservations, hotelRepo, customerRepo, logger),
		stores:       []RecordStore{hotels, customers, reservations},
	}
}

// Open builds a Manager over the backend selected in cfg.
func Open(cfg config.Config, logger *log.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := NewDatabase(cfg.DatabasePath(), logger)
		if err != nil {
			return nil, err
		}
		m := NewManager(db.Store("hotels"), db.Store("customers"), db.Store("reservations"), logger)
		m.db = db
		return m, nil
	default:
		return NewManager(
			NewFileStore(cfg.HotelsPath(), logger),
			NewFileStore(cfg.CustomersPath(), logger),
			NewFileStore(cfg.ReservationsPath(), logger),
			logger,
		), nil
	}
}

// Close releases the SQLite handle, if any.
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

// Paths lists where the hotel, customer and reservation collections live.
func (m *Manager) Paths() []string {
	paths := make([]string, len(m.stores))
	for i, s := range m.stores {
		paths[i] = s.Path()
	}
	return paths
}

// Snapshot loads all three collections.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		Hotels:       m.Hotels.ListAll(),
		Customers:    m.Customers.ListAll(),
		Reservations: m.Reservations.List(),
	}
}

// Audit checks the current stored state. See Audit.
func (m *Manager) Audit() []AuditFinding { return Audit(m.Snapshot()) }

// Reset empties every collection.
func (m *Manager) Reset() error {
	var errs []error
	for _, s := range m.stores {
		if err := s.Save(Records{}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
