// Package store owns the in-memory domain collections (clients, products,
// quotations, sample requests, delivery notes, document library) and their
// persistence into the durable key-value substrate. The store assigns ids and
// timestamps; it never computes pricing — writers pass totals in already
// consistent with the items (see the pricing package).
package store

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/archemics/salessnap/internal/kv"
	"github.com/archemics/salessnap/internal/models"
)

const (
	clientsKey       = "salessnap:clients"
	productsKey      = "salessnap:products"
	quotationsKey    = "salessnap:quotations"
	samplesKey       = "salessnap:samples"
	deliveryNotesKey = "salessnap:deliveryNotes"
	documentsKey     = "salessnap:documents"
)

// Store is the single process-wide state container, passed to consumers by
// dependency injection. The mutex lets concurrent HTTP goroutines treat each
// mutation as atomic.
type Store struct {
	mu            sync.RWMutex
	kv            kv.Store
	clients       []models.Client
	products      []models.Product
	quotations    []models.Quotation
	samples       []models.SampleRequest
	deliveryNotes []models.DeliveryNote
	documents     []models.DocumentFile
}

// New loads every collection from the substrate. With seed enabled, absent
// collections get the demo fixtures.
func New(db kv.Store, seed bool) *Store {
	s := &Store{kv: db}
	clientsLoaded := s.load(clientsKey, &s.clients)
	productsLoaded := s.load(productsKey, &s.products)
	quotationsLoaded := s.load(quotationsKey, &s.quotations)
	s.load(samplesKey, &s.samples)
	s.load(deliveryNotesKey, &s.deliveryNotes)
	s.load(documentsKey, &s.documents)
	if seed {
		if !clientsLoaded {
			s.clients = seedClients()
			s.persist(clientsKey, s.clients)
		}
		if !productsLoaded {
			s.products = seedProducts()
			s.persist(productsKey, s.products)
		}
		if !quotationsLoaded {
			s.quotations = seedQuotations()
			s.persist(quotationsKey, s.quotations)
		}
	}
	return s
}

// load returns whether the key existed and decoded.
func (s *Store) load(key string, dst any) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("store: loading collection")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("store: decoding collection")
		return false
	}
	return true
}

// persist is best-effort, mirroring local-storage semantics: the in-memory
// mutation already happened, a failed write only degrades durability.
func (s *Store) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("store: encoding collection")
		return
	}
	if err := s.kv.Put(key, raw); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("store: persisting collection")
	}
}

// DashboardStats derives counters over the current collections. Conversion
// rate counts accepted quotations among those that ever left draft, as a
// rounded whole percentage.
func (s *Store) DashboardStats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accepted, decided := 0, 0
	for _, q := range s.quotations {
		switch q.Status {
		case models.QuotationAccepted:
			accepted++
			decided++
		case models.QuotationSent, models.QuotationDeclined:
			decided++
		}
	}
	rate := 0
	if decided > 0 {
		rate = int(float64(accepted)/float64(decided)*100 + 0.5)
	}
	return models.DashboardStats{
		TotalQuotations: len(s.quotations),
		TotalClients:    len(s.clients),
		TotalProducts:   len(s.products),
		ConversionRate:  rate,
	}
}
