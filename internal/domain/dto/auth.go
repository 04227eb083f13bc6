package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for login endpoints.
//
// @Description Request to authenticate an account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"S3cret!pass"`
} // @name LoginRequest

// RegisterRequest represents the JSON request body for register endpoints.
//
// @Description Request to register a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=80" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"S3cret!pass"`
	Phone    string `json:"phone,omitempty" example:"+4915123456789"`
} // @name RegisterRequest

// ForgotPasswordRequest starts a password reset for the given email.
//
// @Description Request a password reset email
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
} // @name ForgotPasswordRequest

// ResetPasswordRequest completes a password reset with the emailed token.
//
// @Description Reset a password using an emailed token
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8" example:"S3cret!pass"`
} // @name ResetPasswordRequest

// ChangePasswordRequest rotates the password of the authenticated account.
//
// @Description Change the current account's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
} // @name ChangePasswordRequest

// VerifyEmailRequest confirms an email address with the emailed token.
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
} // @name VerifyEmailRequest

// LoginResponse represents the JSON response body for login endpoints.
type LoginResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
	Account      AccountResponse `json:"account"`
} // @name LoginResponse

// AccountResponse is the public slice of an account in auth responses.
type AccountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email" example:"user@example.com"`
	Name  string `json:"name,omitempty" example:"Jane Doe"`
	Role  string `json:"role,omitempty" example:"editor"`
} // @name AccountResponse

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Claims carries the identity embedded in an access token.
type Claims struct {
	AccountID primitive.ObjectID `json:"account_id"`
	Subject   string             `json:"subject"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	Role      string             `json:"role"`
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 8 {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// Validate performs custom validation on the forgot-password request.
func (r *ForgotPasswordRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	return nil
}

// Validate performs custom validation on the reset-password request.
func (r *ResetPasswordRequest) Validate() error {
	if r.Token == "" {
		return &ValidationError{Field: "token", Message: "token is required"}
	}
	if len(r.Password) < 8 {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// Validate performs custom validation on the change-password request.
func (r *ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return &ValidationError{Field: "current_password", Message: "current password is required"}
	}
	if len(r.NewPassword) < 8 {
		return &ValidationError{Field: "new_password", Message: "new password must be at least 8 characters"}
	}
	return nil
}

// Validate performs custom validation on the verify-email request.
func (r *VerifyEmailRequest) Validate() error {
	if r.Token == "" {
		return &ValidationError{Field: "token", Message: "token is required"}
	}
	return nil
}

// Validate performs custom validation on the register request.
func (r *RegisterRequest) Validate() error {
	if len(r.Name) < 3 {
		return &ValidationError{Field: "name", Message: "name must be at least 3 characters"}
	}
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 8 {
		return &ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}
