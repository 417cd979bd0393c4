package booking

import "log"

// CustomerRepository provides CRUD for customers over a RecordStore.
type CustomerRepository struct {
	c collection[Customer]
}

func NewCustomerRepository(store RecordStore, logger *log.Logger) *CustomerRepository {
	return &CustomerRepository{c: collection[Customer]{
		kind:   KindCustomer,
		store:  store,
		logger: loggerOrDefault(logger),
		decode: decodeCustomer,
		idOf:   Customer.key,
	}}
}

func (r *CustomerRepository) Create(c Customer) error { return r.c.insert(c.ID, c) }

func (r *CustomerRepository) Get(id string) Lookup[Customer] { return r.c.get(id) }

func (r *CustomerRepository) Update(id string, u CustomerUpdate) error {
	return r.c.modify(id, func(c *Customer) error {
		u.apply(c)
		return nil
	})
}

func (r *CustomerRepository) Delete(id string) error { return r.c.remove(id) }

func (r *CustomerRepository) ListAll() Records { return r.c.store.Load() }

func (r *CustomerRepository) Customers() []Customer { return r.c.all() }
