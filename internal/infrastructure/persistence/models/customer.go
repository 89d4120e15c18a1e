package models

import (
	"time"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	FirstName string          `gorm:"type:varchar(63);not null"`
	LastName  string          `gorm:"type:varchar(63);not null"`
	Nickname  string          `gorm:"type:varchar(63);not null;index"`
	Email     string          `gorm:"type:varchar(63);not null;index"`
	Password  string          `gorm:"type:varchar(63);not null"`
	Gender    customer.Gender `gorm:"type:varchar(10);not null;default:'UNKNOWN'"`
	Birthday  time.Time       `gorm:"type:date;not null"`
	IsActive  bool            `gorm:"not null;default:true"`
	Addresses []AddressModel  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *customer.Customer {
	addresses := make([]customer.Address, len(m.Addresses))
	for i := range m.Addresses {
		addresses[i] = *m.Addresses[i].ToDomain()
	}

	return &customer.Customer{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Nickname:  m.Nickname,
		Email:     m.Email,
		Password:  m.Password,
		Gender:    m.Gender,
		Birthday:  m.Birthday,
		IsActive:  m.IsActive,
		Addresses: addresses,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Nickname = c.Nickname
	m.Email = c.Email
	m.Password = c.Password
	m.Gender = c.Gender
	m.Birthday = c.Birthday
	m.IsActive = c.IsActive

	m.Addresses = make([]AddressModel, len(c.Addresses))
	for i := range c.Addresses {
		m.Addresses[i].FromDomain(&c.Addresses[i])
	}
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// AddressModel is the persistence model for the Address domain entity.
type AddressModel struct {
	BaseModel
	CustomerID uint   `gorm:"not null;index"`
	Address    string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address entity.
func (m *AddressModel) ToDomain() *customer.Address {
	return &customer.Address{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		CustomerID: m.CustomerID,
		Text:       m.Address,
	}
}

// FromDomain populates the persistence model from a domain Address entity.
func (m *AddressModel) FromDomain(a *customer.Address) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.CustomerID = a.CustomerID
	m.Address = a.Text
}

// AddressModelFromDomain creates a new persistence model from a domain Address entity.
func AddressModelFromDomain(a *customer.Address) *AddressModel {
	m := &AddressModel{}
	m.FromDomain(a)
	return m
}
