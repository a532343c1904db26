package services

import (
	"strings"

	"github.com/sirupsen/logrus"

	"hotel-manager/errs"
	"hotel-manager/models"
	"hotel-manager/storage"
)

// CustomerService wraps guest registration, lookup and profile updates.
type CustomerService struct {
	store *storage.Store
	log   *logrus.Logger
}

func NewCustomerService(store *storage.Store, log *logrus.Logger) *CustomerService {
	return &CustomerService{store: store, log: log}
}

// Add registers a customer and returns the assigned id.
func (s *CustomerService) Add(name, email, phone, address, idProof string) (int, error) {
	id, err := s.store.AddCustomer(name, email, phone, address, idProof)
	if err != nil {
		return 0, err
	}
	s.log.WithFields(logrus.Fields{
		"customer": id,
		"name":     name,
	}).Info("customer registered")
	return id, nil
}

// Find returns the customer or a not-found error.
func (s *CustomerService) Find(id int) (models.Customer, error) {
	customer, ok := s.store.FindCustomer(id)
	if !ok {
		return models.Customer{}, errs.NotFound("customer", id)
	}
	return customer, nil
}

// FindByName returns the first customer whose name matches exactly,
// case-insensitively.
func (s *CustomerService) FindByName(name string) (models.Customer, bool) {
	for _, c := range s.store.Customers() {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return models.Customer{}, false
}

// All returns every registered customer.
func (s *CustomerService) All() []models.Customer {
	return s.store.Customers()
}

// Search matches the keyword case-insensitively against name and email,
// and as a raw substring against the phone number.
func (s *CustomerService) Search(keyword string) []models.Customer {
	lower := strings.ToLower(keyword)
	var out []models.Customer
	for _, c := range s.store.Customers() {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			strings.Contains(c.Phone, keyword) {
			out = append(out, c)
		}
	}
	return out
}

// UpdateInfo replaces the contact fields after validation.
func (s *CustomerService) UpdateInfo(id int, phone, email, address string) error {
	err := s.store.UpdateCustomer(id, func(c *models.Customer) error {
		return c.UpdateInfo(phone, email, address)
	})
	if err != nil {
		return err
	}
	s.log.WithField("customer", id).Info("customer info updated")
	return nil
}

// RecordVisit bumps the visit count and lifetime spend.
func (s *CustomerService) RecordVisit(id int, amount float64) error {
	return s.store.UpdateCustomer(id, func(c *models.Customer) error {
		return c.AddVisit(amount)
	})
}

func (s *CustomerService) Count() int { return s.store.CustomerCount() }
