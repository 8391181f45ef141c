package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role assigned to a user.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole converts a string into a Role, accepting any casing.
// Returns ErrInvalidRole for unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(s)) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// Gender is the self-reported gender of a user profile.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ParseGender converts a string into a Gender, accepting any casing.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToUpper(s)) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	default:
		return "", ErrInvalidGender
	}
}

// User represents a registered user of the shop.
// HashedPassword is never serialized; the plaintext Password field only holds
// the value transiently between registration input and hashing.
type User struct {
	ID             uuid.UUID  `json:"id"`
	Login          string     `json:"login"`
	Email          string     `json:"email"`
	Password       string     `json:"-"`
	HashedPassword string     `json:"-"`
	Role           Role       `json:"role"`
	Firstname      string     `json:"firstname"`
	Lastname       string     `json:"lastname"`
	MiddleName     string     `json:"middle_name,omitempty"`
	Gender         Gender     `json:"gender,omitempty"`
	PhoneNumber    string     `json:"phone_number,omitempty"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewUser creates a User with a fresh ID and timestamps. The plaintext
// password is carried on the struct and must be hashed before storage.
// Role always starts as CUSTOMER; promotion is a separate, explicit operation.
func NewUser(login, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Login:     login,
		Email:     email,
		Password:  password,
		Role:      RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User's invariants.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(u.Login) == "" {
		return ErrEmptyLogin
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Role != RoleCustomer && u.Role != RoleAdmin {
		return ErrInvalidRole
	}

	if u.Gender != "" && u.Gender != GenderMale && u.Gender != GenderFemale {
		return ErrInvalidGender
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt truncates input beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validEmailFormat performs a minimal structural check: a local part, an @,
// and a domain containing an interior dot. Full RFC 5322 validation is left
// to the request validator at the API edge.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
