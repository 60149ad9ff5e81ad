package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"aqua-store/models"
)

// CatalogExporter prints the catalog grid to PDF with headless Chrome.
// Chrome loads the service's own print view, so baseURL must be reachable from this process.
type CatalogExporter struct {
	baseURL    string
	chromePath string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewCatalogExporter creates a CatalogExporter. An empty chromePath means auto-detect.
func NewCatalogExporter(baseURL, chromePath string, timeout time.Duration, logger *zap.Logger) *CatalogExporter {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	return &CatalogExporter{
		baseURL:    baseURL,
		chromePath: chromePath,
		timeout:    timeout,
		logger:     logger,
	}
}

// detectChromePath checks the common Chrome/Chromium install locations
func detectChromePath() string {
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

// RenderURL is the absolute print view URL Chrome navigates to
func (e *CatalogExporter) RenderURL(criteria models.FilterCriteria) string {
	return e.baseURL + PrintURL(criteria)
}

// GeneratePDF prints the filtered catalog grid to an A4 PDF
func (e *CatalogExporter) GeneratePDF(ctx context.Context, criteria models.FilterCriteria) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // required in containers
	)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromeCtx, chromeCancel := chromedp.NewContext(allocCtx)
	defer chromeCancel()

	renderURL := e.RenderURL(criteria)
	e.logger.Info("generating catalog pdf", zap.String("render_url", renderURL))

	var pdf []byte
	err := chromedp.Run(chromeCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(`
			Promise.all(Array.from(document.images).map(img => img.complete ? null :
				new Promise(resolve => { img.onload = img.onerror = resolve; setTimeout(resolve, 5000); })))
		`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm
				WithPaperHeight(11.69). // 297mm
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	e.logger.Info("catalog pdf generated", zap.Int("bytes", len(pdf)))
	return pdf, nil
}
