package router

import (
	"net/http"

	"dealerdesk/app/controller"
)

type Controllers struct {
	Auth      *controller.AuthController
	User      *controller.UserController
	Task      *controller.TaskController
	FormLink  *controller.FormLinkController
	Quotation *controller.QuotationController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Auth routes
	http.HandleFunc("/auth/signup", controllers.Auth.Signup)
	http.HandleFunc("/auth/login", controllers.Auth.Login)
	http.HandleFunc("/auth/logout", controllers.Auth.Logout)

	// Profile route
	http.HandleFunc("/users/me", controllers.User.GetProfile)

	// Task-list viewer routes
	http.HandleFunc("/tasks/sheets", controllers.Task.ListSheets)
	http.HandleFunc("/tasks", controllers.Task.ListTasks)

	// Form links route
	http.HandleFunc("/form-links", controllers.FormLink.ListFormLinks)

	// Digital quotation routes
	http.HandleFunc("/quotation/catalog", controllers.Quotation.GetCatalog)
	http.HandleFunc("/quotation/models", controllers.Quotation.GetModels)
	http.HandleFunc("/quotation/variants", controllers.Quotation.GetVariants)
	http.HandleFunc("/quotation/colors", controllers.Quotation.GetColors)
	http.HandleFunc("/quotation/submit", controllers.Quotation.SubmitQuotation)
	http.HandleFunc("/quotation/generate", controllers.Quotation.GenerateQuotation)
	http.HandleFunc("/quotation/render", controllers.Quotation.RenderQuotation)
	http.HandleFunc("/quotation/share", controllers.Quotation.ShareQuotation)
	http.HandleFunc("/quotation/download", controllers.Quotation.DownloadQuotation)

	// Back-office export
	http.HandleFunc("/admin/quotations/export", controllers.Quotation.ExportSubmissions)
}
