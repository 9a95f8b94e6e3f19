package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"dealerdesk/models"
	"dealerdesk/service"
	"dealerdesk/utils"
)

// AuthController handles HTTP requests for signup, login, and logout
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup handles POST /auth/signup
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if msg := validateSignup(req); msg != "" {
		log.Printf("❌ Signup: validation failed: %s", msg)
		writeStatus(w, http.StatusBadRequest, false, msg)
		return
	}

	user, err := c.authService.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeStatus(w, http.StatusConflict, false, err.Error())
			return
		}
		log.Printf("❌ Signup: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Failed to create account")
		return
	}

	log.Printf("✅ Signup: account created for %s", user.Email)
	writeStatus(w, http.StatusCreated, true, "Account created successfully")
}

// Login handles POST /auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeStatus(w, http.StatusBadRequest, false, "Email and password are required")
		return
	}

	userID, token, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeStatus(w, http.StatusUnauthorized, false, err.Error())
			return
		}
		log.Printf("❌ Login: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Login failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.LoginResponse{
		Success: true,
		UserID:  userID,
		Token:   token,
	})
}

// Logout handles POST /auth/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := r.Header.Get("Authorization")
	if token != "" {
		c.authService.Logout(token)
	}
	writeStatus(w, http.StatusOK, true, "Logged out")
}

func validateSignup(req models.SignupRequest) string {
	switch {
	case !utils.ValidCustomerName(req.Name):
		return "Name must contain only letters and spaces"
	case !utils.ValidMobile(req.Mobile):
		return "Mobile number must be exactly 10 digits"
	case !utils.ValidEmail(req.Email):
		return "Invalid email address"
	case len(req.Password) < 6:
		return "Password must be at least 6 characters"
	case req.Location == "":
		return "Location is required"
	}
	return ""
}

// writeStatus writes the {success, message} envelope every mutating
// endpoint responds with.
func writeStatus(w http.ResponseWriter, code int, success bool, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.StatusResponse{Success: success, Message: message})
}
