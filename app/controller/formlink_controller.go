package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"dealerdesk/models"
	"dealerdesk/repository"
)

// FormLinkController handles HTTP requests for the shared form-links list
type FormLinkController struct {
	repository repository.FormLinkRepositoryInterface
}

// NewFormLinkController creates a new FormLinkController
func NewFormLinkController(repo repository.FormLinkRepositoryInterface) *FormLinkController {
	return &FormLinkController{repository: repo}
}

// ListFormLinks handles GET /form-links?q=<search>
func (c *FormLinkController) ListFormLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	search := r.URL.Query().Get("q")
	links, err := c.repository.List(r.Context(), search)
	if err != nil {
		log.Printf("❌ ListFormLinks: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Failed to load form links")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.FormLinksResponse{Success: true, Forms: links})
}
