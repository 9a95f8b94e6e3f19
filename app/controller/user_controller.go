package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"dealerdesk/models"
	"dealerdesk/repository"
)

// UserController handles HTTP requests for user profiles
type UserController struct {
	repository repository.UserRepositoryInterface
}

// NewUserController creates a new UserController
func NewUserController(repo repository.UserRepositoryInterface) *UserController {
	return &UserController{repository: repo}
}

// GetProfile handles GET /users/me?userId=<id>
// The profile drives the home screen: the access field decides which
// features the client unlocks.
func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeStatus(w, http.StatusBadRequest, false, "userId is required")
		return
	}

	user, err := c.repository.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeStatus(w, http.StatusNotFound, false, "User not found")
			return
		}
		log.Printf("❌ GetProfile: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Failed to load profile")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ProfileResponse{
		Success:           true,
		Name:              user.Name,
		Mobile:            user.Mobile,
		Access:            user.Access,
		DealershipName:    user.Dealer.Name,
		DealershipAddress: user.Dealer.Address,
		RTGSDetails:       user.Dealer.RTGSDetails,
	})
}
