package models

import (
	"time"

	"hotel-manager/errs"
	"hotel-manager/utils"
)

// Customer is a registered guest. Visit count and lifetime spend only
// grow, and only through AddVisit.
type Customer struct {
	ID           int    `validate:"gt=0"`
	Name         string `validate:"required"`
	Email        string `validate:"hotelemail"`
	Phone        string `validate:"hotelphone"`
	Address      string `validate:"required"`
	IDProof      string `validate:"required"`
	RegisteredAt time.Time
	TotalVisits  int
	TotalSpent   float64
}

// NewCustomer builds a validated Customer registered now.
func NewCustomer(id int, name, email, phone, address, idProof string) (*Customer, error) {
	c := &Customer{
		ID:           id,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Address:      address,
		IDProof:      idProof,
		RegisteredAt: time.Now(),
	}
	if err := utils.ValidateStruct(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddVisit records a completed stay and the amount spent on it.
func (c *Customer) AddVisit(amount float64) error {
	if amount < 0 {
		return errs.Validation("Amount", "cannot be negative")
	}
	c.TotalVisits++
	c.TotalSpent += amount
	return nil
}

// UpdateInfo replaces the contact fields after validating all of them;
// a failure leaves the customer untouched.
func (c *Customer) UpdateInfo(phone, email, address string) error {
	updated := *c
	updated.Phone = phone
	updated.Email = email
	updated.Address = address
	if err := utils.ValidateStruct(&updated); err != nil {
		return err
	}
	*c = updated
	return nil
}

func (c *Customer) IsValid() bool {
	return c.ID > 0 && c.Name != "" && utils.IsValidEmail(c.Email) &&
		utils.IsValidPhone(c.Phone) && c.Address != "" && c.IDProof != ""
}
