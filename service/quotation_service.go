package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"dealerdesk/models"
	"dealerdesk/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

// nationalPromotionLabel is printed as Sr. No. 12 with a dash: promotions
// are announced per campaign and never priced on the quotation itself.
const nationalPromotionLabel = "National Promotion"

// maxParkedDocs bounds the parked-document map. Older documents are evicted
// oldest-first; share and download only need the recent ones.
const maxParkedDocs = 16

// QuotationService composes printable quotation documents and renders them
// to PDF through headless Chrome.
type QuotationService struct {
	baseURL      string
	outputDir    string
	templatePath string

	// Documents pending a render pass, keyed by document id. Chrome fetches
	// them back through GET /quotation/render?id=. order tracks insertion
	// for oldest-first eviction.
	mu    sync.RWMutex
	docs  map[string]models.QuotationDocument
	order []string
}

// NewQuotationService creates a new QuotationService
func NewQuotationService(baseURL, outputDir string) *QuotationService {
	return &QuotationService{
		baseURL:      baseURL,
		outputDir:    outputDir,
		templatePath: filepath.Join("templates", "quotation.html"),
		docs:         make(map[string]models.QuotationDocument),
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Compose builds the structured quotation document from a resolved catalog
// entry and the customer, dealer, and consultant blocks. The output is a
// pure value: the twelve line items always appear in the same order and no
// state is touched.
func (s *QuotationService) Compose(
	entry *models.CatalogEntry,
	customer models.CustomerInfo,
	color string,
	dealer models.DealerInfo,
	issuedBy models.IssuedBy,
) models.QuotationDocument {
	lines := make([]models.QuotationLine, 0, 12)
	for i, c := range entry.Components() {
		lines = append(lines, models.QuotationLine{
			SrNo:        i + 1,
			Particulars: c.Label,
			Rupees:      utils.FormatRupees(c.Amount),
		})
	}
	lines = append(lines, models.QuotationLine{
		SrNo:        11,
		Particulars: models.KeyOnRoadTotal,
		Rupees:      utils.FormatRupees(entry.OnRoadTotal),
		Bold:        true,
	})
	lines = append(lines, models.QuotationLine{
		SrNo:        12,
		Particulars: nationalPromotionLabel,
		Rupees:      "-",
	})

	if color == "" {
		color = "---"
	}

	return models.QuotationDocument{
		ID:             uuid.NewString(),
		IssuedAt:       time.Now().Format("02-Jan-2006"),
		Customer:       customer,
		Model:          entry.Model,
		Variant:        entry.Variant,
		Color:          color,
		Lines:          lines,
		TotalInWords:   utils.ToIndianWordsUpper(entry.OnRoadTotal),
		TotalInFigures: utils.FormatRupees(entry.OnRoadTotal),
		TotalAmount:    entry.OnRoadTotal,
		Dealer:         dealer,
		IssuedBy:       issuedBy,
	}
}

// StoreDocument parks a composed document for the render pass. When the
// store is full the oldest documents are evicted; their ids are returned so
// the caller can release anything keyed on them.
func (s *QuotationService) StoreDocument(doc models.QuotationDocument) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[doc.ID] = doc
	s.order = append(s.order, doc.ID)

	var evicted []string
	for len(s.order) > maxParkedDocs {
		oldest := s.order[0]
		s.order = s.order[1:]
		if _, ok := s.docs[oldest]; ok {
			delete(s.docs, oldest)
			evicted = append(evicted, oldest)
		}
	}
	return evicted
}

// Document fetches a parked document by id.
func (s *QuotationService) Document(id string) (models.QuotationDocument, bool) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	return doc, ok
}

// DropDocument removes a parked document. The id stays in the eviction
// order; it is skipped there once the map entry is gone.
func (s *QuotationService) DropDocument(id string) {
	s.mu.Lock()
	delete(s.docs, id)
	s.mu.Unlock()
}

// RenderHTML renders the quotation HTML template for a document.
func (s *QuotationService) RenderHTML(doc models.QuotationDocument, logoDataURI string) (string, error) {
	tmpl, err := template.ParseFiles(s.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	templateData := struct {
		models.QuotationDocument
		LogoDataURI string
	}{
		QuotationDocument: doc,
		LogoDataURI:       logoDataURI,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF prints a parked document to PDF via chromedp and writes it to
// the output directory. Returns the file path.
func (s *QuotationService) GeneratePDF(ctx context.Context, doc models.QuotationDocument) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/quotation/render?id=%s", s.baseURL, doc.ID)
	log.Printf("🖨️  GeneratePDF: Rendering %s", renderURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		// 210mm = 794px at 96 DPI
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for fonts and the logo image before printing
		chromedp.Evaluate(`
			(function() {
				return Promise.all([
					document.fonts.ready,
					Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
						return new Promise((resolve) => {
							if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
								resolve();
								return;
							}
							const timeout = setTimeout(() => resolve(), 5000);
							img.onload = () => { clearTimeout(timeout); resolve(); };
							img.onerror = () => { clearTimeout(timeout); resolve(); };
						});
					}))
				]);
			})();
		`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.2).
				WithMarginBottom(0.2).
				WithMarginLeft(0.2).
				WithMarginRight(0.2).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate PDF: %w", err)
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	fileName := utils.QuotationFileName(doc.Customer.Name)
	filePath := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s", doc.ID[:8], fileName))
	if err := os.WriteFile(filePath, pdfBuf, 0644); err != nil {
		return "", fmt.Errorf("failed to save PDF: %w", err)
	}

	log.Printf("✅ GeneratePDF: Saved %s (%d bytes)", filePath, len(pdfBuf))
	return filePath, nil
}
