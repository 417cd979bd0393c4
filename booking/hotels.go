package booking

import "log"

// HotelRepository provides CRUD for hotels over a RecordStore.
type HotelRepository struct {
	c collection[Hotel]
}

func NewHotelRepository(store RecordStore, logger *log.Logger) *HotelRepository {
	return &HotelRepository{c: collection[Hotel]{
		kind:   KindHotel,
		store:  store,
		logger: loggerOrDefault(logger),
		decode: decodeHotel,
		idOf:   Hotel.key,
	}}
}

// Create stores a new hotel. Duplicate ids and invalid room counts are
// rejected.
func (r *HotelRepository) Create(h Hotel) error {
	if h.ID == "" {
		return fail(r.c.logger, emptyID(KindHotel))
	}
	records := r.c.store.Load()
	if _, ok := records[h.ID]; ok {
		return fail(r.c.logger, duplicate(KindHotel, h.ID))
	}
	if err := h.Validate(); err != nil {
		return fail(r.c.logger, err)
	}
	return r.c.put(records, h.ID, h)
}

func (r *HotelRepository) Get(id string) Lookup[Hotel] { return r.c.get(id) }

// Update overlays the non-nil fields of u onto the stored hotel. The merged
// record must still pass Validate.
func (r *HotelRepository) Update(id string, u HotelUpdate) error {
	return r.c.modify(id, func(h *Hotel) error {
		u.apply(h)
		return h.Validate()
	})
}

func (r *HotelRepository) Delete(id string) error { return r.c.remove(id) }

// ListAll returns the stored collection exactly as persisted.
func (r *HotelRepository) ListAll() Records { return r.c.store.Load() }

// Hotels returns every well-formed hotel ordered by id.
func (r *HotelRepository) Hotels() []Hotel { return r.c.all() }
