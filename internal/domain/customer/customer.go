package customer

import (
	"regexp"
	"time"

	"github.com/crm/backend/internal/domain/shared"
)

// DateLayout is the wire format for birthday values (ISO-8601 calendar date).
const DateLayout = "2006-01-02"

// Customer represents a customer account.
// It is the aggregate root for customer-related operations and exclusively
// owns its Addresses: they are created through it and removed with it.
type Customer struct {
	shared.BaseEntity
	Password  string
	FirstName string
	LastName  string
	Nickname  string
	Email     string
	Gender    Gender
	Birthday  time.Time
	IsActive  bool
	Addresses []Address
}

// NewCustomer creates a new customer with required fields.
// A zero birthday falls back to the current date; callers that require an
// explicit value (the create endpoint does) must validate before reaching
// this constructor.
func NewCustomer(firstName, lastName, nickname, email, password string, gender Gender, birthday time.Time) (*Customer, error) {
	if err := validateRequired("first_name", firstName); err != nil {
		return nil, err
	}
	if err := validateRequired("last_name", lastName); err != nil {
		return nil, err
	}
	if err := validateRequired("nickname", nickname); err != nil {
		return nil, err
	}
	if err := validateRequired("password", password); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if _, err := ParseGender(string(gender)); err != nil {
		return nil, err
	}
	if birthday.IsZero() {
		y, m, d := time.Now().Date()
		birthday = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return &Customer{
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Nickname:  nickname,
		Email:     email,
		Gender:    gender,
		Birthday:  birthday,
		IsActive:  true,
	}, nil
}

// Update replaces the customer's full field state. The create/update wire
// contract is full-state, so every field is validated again.
func (c *Customer) Update(firstName, lastName, nickname, email, password string, gender Gender, birthday time.Time, isActive bool) error {
	if err := validateRequired("first_name", firstName); err != nil {
		return err
	}
	if err := validateRequired("last_name", lastName); err != nil {
		return err
	}
	if err := validateRequired("nickname", nickname); err != nil {
		return err
	}
	if err := validateRequired("password", password); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if _, err := ParseGender(string(gender)); err != nil {
		return err
	}

	c.FirstName = firstName
	c.LastName = lastName
	c.Nickname = nickname
	c.Email = email
	c.Password = password
	c.Gender = gender
	c.Birthday = birthday
	c.IsActive = isActive
	c.UpdatedAt = time.Now()

	return nil
}

// AddAddress appends a new owned address to the aggregate.
func (c *Customer) AddAddress(text string) error {
	addr, err := NewAddress(c.ID, text)
	if err != nil {
		return err
	}
	c.Addresses = append(c.Addresses, *addr)
	return nil
}

// Activate marks the customer active. Idempotent.
func (c *Customer) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
}

// Deactivate marks the customer inactive. Idempotent.
func (c *Customer) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Validation functions

// emailRegex accepts local@domain where each side is 1 to 5 dot-separated
// labels.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9_%+\-]+(\.[A-Za-z0-9_%+\-]+){0,4}@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+){0,4}$`)

// ValidateEmail checks the wire format of an email address. It is applied on
// deserialize and again on serialize, so a stored value that was corrupted
// out of band fails the same way a bad request does.
func ValidateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("MISSING_FIELD", "Invalid customer: missing email")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format: "+email)
	}
	return nil
}

// ParseBirthday parses an ISO-8601 calendar date string.
func ParseBirthday(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_BIRTHDAY", "Birthday must be an ISO-8601 date (yyyy-mm-dd)")
	}
	return t, nil
}

func validateRequired(field, value string) error {
	if value == "" {
		return shared.NewDomainError("MISSING_FIELD", "Invalid customer: missing "+field)
	}
	return nil
}
