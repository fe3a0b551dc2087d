package model

type RegisterOwnerRequest struct {
	FullName     string `json:"fullName" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=100"`
	MobileNumber string `json:"mobileNumber" validate:"required,max=20"`
	Password     string `json:"password" validate:"required,min=8,max=100"`
}

// LoginRequest carries the owner email or the driver mobile number,
// depending on role.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=100"`
	Password   string `json:"password" validate:"required,max=100"`
	Role       string `json:"role" validate:"required,oneof=owner driver"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type OwnerResponse struct {
	OwnerID      string `json:"ownerId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
}

type SubscriptionResponse struct {
	Plan             string `json:"plan"`
	Status           string `json:"status"`
	CurrentPeriodEnd string `json:"currentPeriodEnd"`
}
