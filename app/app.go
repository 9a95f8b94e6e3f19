package app

import (
	"fmt"
	"os"

	"dealerdesk/app/controller"
	"dealerdesk/app/router"
	"dealerdesk/db"
	"dealerdesk/pricing"
	"dealerdesk/repository"
	"dealerdesk/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Pick the catalog source: the legacy web-app endpoint if configured,
	// otherwise the Sheets API read of the pricing tab.
	var catalogSource service.CatalogSourceInterface
	var taskSource service.TaskSourceInterface

	if scriptURL := os.Getenv("CATALOG_SCRIPT_URL"); scriptURL != "" {
		catalogSource = service.NewScriptCatalogSource(scriptURL)
	}

	if spreadsheetID := os.Getenv("PRICING_SPREADSHEET_ID"); spreadsheetID != "" {
		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsPath == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
		}
		sheetService, err := service.NewSheetService(credentialsPath, spreadsheetID)
		if err != nil {
			return err
		}
		if catalogSource == nil {
			catalogSource = sheetService
		}
		taskSource = sheetService
	}

	if catalogSource == nil {
		return fmt.Errorf("no catalog source configured: set PRICING_SPREADSHEET_ID or CATALOG_SCRIPT_URL")
	}
	if taskSource == nil {
		return fmt.Errorf("task source requires PRICING_SPREADSHEET_ID")
	}

	colorScope := pricing.ColorScopeGlobal
	if os.Getenv("COLOR_SCOPE") == "model" {
		colorScope = pricing.ColorScopeModel
	}

	outputDir := os.Getenv("PDF_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}
	shareDir := os.Getenv("PDF_SHARE_DIR")
	if shareDir == "" {
		shareDir = "shared"
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	quotationRepo := repository.NewQuotationRepository()
	formLinkRepo := repository.NewFormLinkRepository()

	// Initialize services
	catalogCache := service.NewCatalogCache(catalogSource)
	taskService := service.NewTaskService(taskSource)
	authService := service.NewAuthService(userRepo)
	quotationService := service.NewQuotationService(baseURL, outputDir)
	shareService := service.NewShareService(shareDir)
	exportService := service.NewExportService(quotationRepo)

	logoDataURI := service.LoadLogoDataURI(os.Getenv("LOGO_PATH"))

	// Create controllers
	controllers := &router.Controllers{
		Auth:     controller.NewAuthController(authService),
		User:     controller.NewUserController(userRepo),
		Task:     controller.NewTaskController(taskService),
		FormLink: controller.NewFormLinkController(formLinkRepo),
		Quotation: controller.NewQuotationController(
			catalogCache,
			quotationService,
			shareService,
			exportService,
			userRepo,
			quotationRepo,
			colorScope,
			logoDataURI,
		),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
