// models/user.go
package models

import (
	"time"
)

// DefaultBio is assigned when a user registers without a bio or clears it.
const DefaultBio = "Hello! I'm new here."

// DeletedUsername is substituted wherever a referenced user no longer exists.
const DeletedUsername = "[deleted]"

// User model
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"-" bson:"password"` // bcrypt hash, never serialized
	Bio       string    `json:"bio" bson:"bio"`
	Avatar    string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// PlaceholderUser stands in for a deleted or missing user in projections.
func PlaceholderUser() *User {
	return &User{Username: DeletedUsername}
}

// RegisterRequest represents the registration form
type RegisterRequest struct {
	Username        string `json:"username" form:"username" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	Bio             string `json:"bio" form:"bio"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ProfileUpdateRequest represents the edit-profile form. The password is
// changed only when both CurrentPassword and NewPassword are supplied.
type ProfileUpdateRequest struct {
	Bio             string `json:"bio" form:"bio"`
	CurrentPassword string `json:"currentPassword" form:"currentPassword"`
	NewPassword     string `json:"newPassword" form:"newPassword"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// Response is the JSON envelope for API-style endpoints
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
