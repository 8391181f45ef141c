package api

import (
	"github.com/google/uuid"
)

// RegisterRequest is the payload for the registration endpoint. Any role
// field a caller might send is deliberately not modeled: registered users
// are always customers.
type RegisterRequest struct {
	Login       string `json:"login"        validate:"required,min=3,max=64"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8,max=72"`
	Firstname   string `json:"firstname"    validate:"required,max=64"`
	Lastname    string `json:"lastname"     validate:"required,max=64"`
	MiddleName  string `json:"middle_name"  validate:"max=64"`
	Gender      string `json:"gender"       validate:"omitempty,oneof=MALE FEMALE male female"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
	BirthDate   string `json:"birth_date"   validate:"omitempty,datetime=2006-01-02"`
}

// LoginRequest is the payload for the login endpoint. UserData is the login
// or the email; which one is not disclosed by any error path.
type LoginRequest struct {
	UserData string `json:"user_data" validate:"required"`
	Password string `json:"password"  validate:"required"`
}

// AuthResponse is the successful response of register, login, and refresh.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Role         string    `json:"role"`
	UserData     string    `json:"user_data"`
}

// CategoryRequest is the payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name         string    `json:"name"          validate:"required,max=128"`
	Description  string    `json:"description"   validate:"max=1024"`
	Ingredients  string    `json:"ingredients"   validate:"max=1024"`
	Price        string    `json:"price"         validate:"required"`
	Weight       int16     `json:"weight"        validate:"gte=0"`
	CaloricValue int16     `json:"caloric_value" validate:"gte=0"`
	CategoryID   uuid.UUID `json:"category_id"   validate:"required"`
}
