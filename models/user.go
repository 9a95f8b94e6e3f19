package models

import "time"

// User is a dealership staff account. Access gates which home-screen
// features the mobile app shows (e.g. "Digital Quotation").
type User struct {
	ID           string    `json:"userId"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Location     string    `json:"location"`
	Access       string    `json:"access"`
	Dealer       DealerInfo `json:"dealer"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

// ProfileResponse is the home-screen payload for GET /users/me.
type ProfileResponse struct {
	Success            bool   `json:"success"`
	Name               string `json:"name"`
	Mobile             string `json:"mobile"`
	Access             string `json:"access"`
	DealershipName     string `json:"dealershipName"`
	DealershipAddress  string `json:"dealershipAddress"`
	RTGSDetails        string `json:"rtgsDetails"`
}
