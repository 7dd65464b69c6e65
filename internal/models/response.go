package models

import "time"

// UserResponse is the public projection of a User. The password hash and
// internal flags are never serialized.
type UserResponse struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	AccountCreated time.Time `json:"accountCreated"`
	AccountUpdated time.Time `json:"accountUpdated"`
}

func NewUserResponse(user *User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		AccountCreated: user.AccountCreated,
		AccountUpdated: user.AccountUpdated,
	}
}

type ProfilePicResponse struct {
	FileName   string `json:"fileName"`
	ID         string `json:"id"`
	URL        string `json:"url"`
	UploadDate string `json:"uploadDate"`
	UserID     string `json:"userId"`
}

// Response is the JSON error envelope. Successful responses carry the
// resource projection directly.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}
