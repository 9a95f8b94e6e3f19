package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"dealerdesk/models"
	"dealerdesk/pricing"
	"dealerdesk/repository"
	"dealerdesk/service"
	"dealerdesk/utils"

	"github.com/google/uuid"
)

// digitalQuotationAccess is the profile access value that unlocks the
// quotation feature.
const digitalQuotationAccess = "Digital Quotation"

// QuotationController handles HTTP requests for the digital quotation flow:
// the cascading model/variant/color pickers, enquiry submission, and PDF
// generation.
type QuotationController struct {
	catalogCache     *service.CatalogCache
	quotationService *service.QuotationService
	shareService     service.ShareServiceInterface
	exportService    *service.ExportService
	userRepo         repository.UserRepositoryInterface
	quotationRepo    repository.QuotationRepositoryInterface
	colorScope       pricing.ColorScope
	logoDataURI      string

	// Generated PDF paths keyed by document id, so share can find them.
	pdfMutex sync.RWMutex
	pdfPaths map[string]string
}

// NewQuotationController creates a new QuotationController
func NewQuotationController(
	catalogCache *service.CatalogCache,
	quotationService *service.QuotationService,
	shareService service.ShareServiceInterface,
	exportService *service.ExportService,
	userRepo repository.UserRepositoryInterface,
	quotationRepo repository.QuotationRepositoryInterface,
	colorScope pricing.ColorScope,
	logoDataURI string,
) *QuotationController {
	return &QuotationController{
		catalogCache:     catalogCache,
		quotationService: quotationService,
		shareService:     shareService,
		exportService:    exportService,
		userRepo:         userRepo,
		quotationRepo:    quotationRepo,
		colorScope:       colorScope,
		logoDataURI:      logoDataURI,
		pdfPaths:         make(map[string]string),
	}
}

// checkAccess verifies the user exists and has the quotation feature
// unlocked. Returns the user on success.
func (c *QuotationController) checkAccess(r *http.Request, userID string) (*models.User, string) {
	if userID == "" {
		return nil, "userId is required"
	}
	user, err := c.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "User not found"
		}
		log.Printf("❌ checkAccess: %v", err)
		return nil, "Failed to verify access"
	}
	if user.Access != digitalQuotationAccess {
		return nil, "You do not have access to Digital Quotation"
	}
	return user, ""
}

// GetCatalog handles GET /quotation/catalog?refresh=true
// Returns the full pricing catalog. A refresh query forces a refetch from
// the catalog source; otherwise the cached snapshot is served.
func (c *QuotationController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Query().Get("refresh") == "true" {
		if err := c.catalogCache.Refresh(r.Context()); err != nil {
			log.Printf("❌ GetCatalog: refresh failed: %v", err)
			writeStatus(w, http.StatusBadGateway, false, "Failed to refresh catalog")
			return
		}
	} else if err := c.catalogCache.EnsureLoaded(r.Context()); err != nil {
		log.Printf("❌ GetCatalog: %v", err)
		writeStatus(w, http.StatusBadGateway, false, "Failed to load catalog")
		return
	}

	entries, _ := c.catalogCache.Entries()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"catalog": entries,
	})
}

// GetModels handles GET /quotation/models
func (c *QuotationController) GetModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries, err := c.loadedEntries(r)
	if err != nil {
		writeStatus(w, http.StatusBadGateway, false, "Failed to load catalog")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"models":  pricing.ListModels(entries),
	})
}

// GetVariants handles GET /quotation/variants?model=<model>
func (c *QuotationController) GetVariants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	model := r.URL.Query().Get("model")
	if model == "" {
		writeStatus(w, http.StatusBadRequest, false, "model is required")
		return
	}

	entries, err := c.loadedEntries(r)
	if err != nil {
		writeStatus(w, http.StatusBadGateway, false, "Failed to load catalog")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"variants": pricing.ListVariants(entries, model),
	})
}

// GetColors handles GET /quotation/colors?model=<model>
func (c *QuotationController) GetColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	model := r.URL.Query().Get("model")
	entries, err := c.loadedEntries(r)
	if err != nil {
		writeStatus(w, http.StatusBadGateway, false, "Failed to load catalog")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"colors":  pricing.ListColors(entries, c.colorScope, model),
	})
}

// SubmitQuotation handles POST /quotation/submit
// The body is URL-encoded form data: customerName, mobileNumber,
// customerAddress, userId, model, variant, color, totalAmount. All
// validation happens before any write.
func (c *QuotationController) SubmitQuotation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeStatus(w, http.StatusBadRequest, false, "Invalid form data")
		return
	}

	sub := models.QuotationSubmission{
		UserID:          r.PostFormValue("userId"),
		CustomerName:    r.PostFormValue("customerName"),
		CustomerMobile:  r.PostFormValue("mobileNumber"),
		CustomerAddress: r.PostFormValue("customerAddress"),
		Model:           r.PostFormValue("model"),
		Variant:         r.PostFormValue("variant"),
		Color:           r.PostFormValue("color"),
	}
	if amount := r.PostFormValue("totalAmount"); amount != "" {
		parsed, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			writeStatus(w, http.StatusBadRequest, false, "totalAmount must be a number")
			return
		}
		sub.TotalAmount = parsed
	}

	if msg := validateSubmission(sub); msg != "" {
		log.Printf("❌ SubmitQuotation: validation failed: %s", msg)
		writeStatus(w, http.StatusBadRequest, false, msg)
		return
	}

	if _, msg := c.checkAccess(r, sub.UserID); msg != "" {
		writeStatus(w, http.StatusForbidden, false, msg)
		return
	}

	// The pair must exist in the catalog before anything is written.
	entries, err := c.loadedEntries(r)
	if err != nil {
		writeStatus(w, http.StatusBadGateway, false, "Failed to load catalog")
		return
	}
	if _, err := pricing.ResolvePrice(entries, sub.Model, sub.Variant); err != nil {
		writeStatus(w, http.StatusBadRequest, false, fmt.Sprintf("No pricing found for %s %s", sub.Model, sub.Variant))
		return
	}

	sub.ID = uuid.NewString()
	if err := c.quotationRepo.Insert(r.Context(), &sub); err != nil {
		log.Printf("❌ SubmitQuotation: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Failed to save quotation")
		return
	}

	log.Printf("💰 SubmitQuotation: saved enquiry for %s (%s %s)", sub.CustomerName, sub.Model, sub.Variant)
	writeStatus(w, http.StatusOK, true, "Quotation submitted successfully")
}

// GenerateQuotation handles POST /quotation/generate
// Composes the printable document, renders it through Chrome, and returns
// the document plus the PDF location.
func (c *QuotationController) GenerateQuotation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.GenerateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if msg := validateGenerate(req); msg != "" {
		log.Printf("❌ GenerateQuotation: validation failed: %s", msg)
		writeStatus(w, http.StatusBadRequest, false, msg)
		return
	}

	user, msg := c.checkAccess(r, req.UserID)
	if msg != "" {
		writeStatus(w, http.StatusForbidden, false, msg)
		return
	}

	entries, err := c.loadedEntries(r)
	if err != nil {
		writeStatus(w, http.StatusBadGateway, false, "Failed to load catalog")
		return
	}

	entry, err := pricing.ResolvePrice(entries, req.Model, req.Variant)
	if err != nil {
		writeStatus(w, http.StatusNotFound, false, fmt.Sprintf("No pricing found for %s %s", req.Model, req.Variant))
		return
	}

	doc := c.quotationService.Compose(
		entry,
		models.CustomerInfo{
			Name:    req.CustomerName,
			Address: req.CustomerAddress,
			Mobile:  req.CustomerMobile,
		},
		req.Color,
		user.Dealer,
		models.IssuedBy{Name: user.Name, Mobile: user.Mobile},
	)
	evicted := c.quotationService.StoreDocument(doc)

	pdfPath, err := c.quotationService.GeneratePDF(r.Context(), doc)
	if err != nil {
		c.quotationService.DropDocument(doc.ID)
		log.Printf("❌ GenerateQuotation: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Failed to generate PDF")
		return
	}

	c.pdfMutex.Lock()
	for _, id := range evicted {
		delete(c.pdfPaths, id)
	}
	c.pdfPaths[doc.ID] = pdfPath
	c.pdfMutex.Unlock()

	log.Printf("🎉 GenerateQuotation: document %s ready", doc.ID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":    true,
		"documentId": doc.ID,
		"document":   doc,
		"pdfPath":    pdfPath,
	})
}

// RenderQuotation handles GET /quotation/render?id=<docID>
// Serves the quotation HTML that headless Chrome prints. Also usable in a
// normal browser for preview.
func (c *QuotationController) RenderQuotation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	doc, ok := c.quotationService.Document(id)
	if !ok {
		http.Error(w, "Document not found", http.StatusNotFound)
		return
	}

	html, err := c.quotationService.RenderHTML(doc, c.logoDataURI)
	if err != nil {
		log.Printf("❌ RenderQuotation: %v", err)
		http.Error(w, "Failed to render quotation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// ShareQuotation handles GET /quotation/share?id=<docID>
// Copies the generated PDF into the share directory for the client.
func (c *QuotationController) ShareQuotation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	c.pdfMutex.RLock()
	pdfPath, ok := c.pdfPaths[id]
	c.pdfMutex.RUnlock()
	if !ok {
		writeStatus(w, http.StatusNotFound, false, "No generated PDF for this document")
		return
	}

	doc, _ := c.quotationService.Document(id)
	title := fmt.Sprintf("Quotation for %s", doc.Customer.Name)
	sharedPath, err := c.shareService.Share(pdfPath, title)
	if err != nil {
		log.Printf("❌ ShareQuotation: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Failed to share PDF")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":    true,
		"sharedPath": sharedPath,
	})
}

// DownloadQuotation handles GET /quotation/download?id=<docID>
// Streams the generated PDF back to the client.
func (c *QuotationController) DownloadQuotation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	c.pdfMutex.RLock()
	pdfPath, ok := c.pdfPaths[id]
	c.pdfMutex.RUnlock()
	if !ok {
		http.Error(w, "No generated PDF for this document", http.StatusNotFound)
		return
	}

	doc, _ := c.quotationService.Document(id)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", utils.QuotationFileName(doc.Customer.Name)))
	http.ServeFile(w, r, pdfPath)
}

// ExportSubmissions handles GET /admin/quotations/export
// Returns the submission register as an xlsx workbook.
func (c *QuotationController) ExportSubmissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := c.exportService.SubmissionsWorkbook(r.Context())
	if err != nil {
		log.Printf("❌ ExportSubmissions: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Failed to export submissions")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="quotation_submissions.xlsx"`)
	w.Write(data)
}

// loadedEntries returns the cached catalog, fetching it on first use.
func (c *QuotationController) loadedEntries(r *http.Request) ([]models.CatalogEntry, error) {
	if err := c.catalogCache.EnsureLoaded(r.Context()); err != nil {
		log.Printf("❌ loadedEntries: %v", err)
		return nil, err
	}
	entries, _ := c.catalogCache.Entries()
	return entries, nil
}

func validateSubmission(sub models.QuotationSubmission) string {
	switch {
	case !utils.ValidCustomerName(sub.CustomerName):
		return "Customer name must contain only letters and spaces"
	case !utils.ValidMobile(sub.CustomerMobile):
		return "Mobile number must be exactly 10 digits"
	case sub.CustomerAddress == "":
		return "Customer address is required"
	case sub.UserID == "":
		return "userId is required"
	case sub.Model == "" || sub.Variant == "":
		return "Model and variant are required"
	}
	return ""
}

func validateGenerate(req models.GenerateQuotationRequest) string {
	switch {
	case !utils.ValidCustomerName(req.CustomerName):
		return "Customer name must contain only letters and spaces"
	case !utils.ValidMobile(req.CustomerMobile):
		return "Mobile number must be exactly 10 digits"
	case req.CustomerAddress == "":
		return "Customer address is required"
	case req.UserID == "":
		return "userId is required"
	case req.Model == "" || req.Variant == "":
		return "Model and variant are required"
	}
	return ""
}
