package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultScale is the supersampling factor applied during rasterization for
// print-quality output.
const DefaultScale = 2.0

// DefaultRenderTimeout bounds one rasterization run.
const DefaultRenderTimeout = 60 * time.Second

// Rasterizer renders an HTML preview into a single logical bitmap. Tests
// substitute a fake; production uses a headless Chrome.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) (image.Image, error)
}

// ChromeConfig configures the headless-browser rasterizer.
type ChromeConfig struct {
	// ChromePath overrides the browser binary location (CHROME_PATH style).
	ChromePath string
	// Scale is the supersampling factor; zero selects DefaultScale.
	Scale float64
	// Timeout bounds one rasterization; zero selects DefaultRenderTimeout.
	Timeout time.Duration
	// Verbose enables progress logging.
	Verbose bool
}

// ChromeRasterizer renders HTML with a headless Chrome at a fixed 794px
// viewport width, producing deterministic geometry independent of any live
// window size, zoom or scroll state. Requires Chrome/Chromium installed.
type ChromeRasterizer struct {
	cfg ChromeConfig
}

// NewChromeRasterizer creates a rasterizer, filling zero config fields with
// defaults.
func NewChromeRasterizer(cfg ChromeConfig) *ChromeRasterizer {
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultScale
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRenderTimeout
	}
	if cfg.ChromePath == "" {
		cfg.ChromePath = os.Getenv("CHROME_PATH")
	}
	return &ChromeRasterizer{cfg: cfg}
}

// Rasterize writes the HTML to a throwaway working directory, loads it in a
// headless browser and captures a full-height screenshot. The working
// directory is removed on success and failure alike.
func (r *ChromeRasterizer) Rasterize(ctx context.Context, html string) (image.Image, error) {
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "preview.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("staging preview: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		// Cross-origin images referenced by resume content must render
		// instead of blanking out.
		chromedp.Flag("disable-web-security", true),
	)
	if r.cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.cfg.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.cfg.Timeout)
	defer cancel()

	if r.cfg.Verbose {
		log.Printf("[EXPORT] Rasterizing preview at %dpx width, scale %.1f", PageWidthPx, r.cfg.Scale)
	}

	var shot []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		// Normalize the page the way the on-screen preview cannot be relied
		// on to be: opaque white background, no margins, no transforms.
		chromedp.Evaluate(`(() => {
			document.documentElement.style.background = "#ffffff";
			document.body.style.margin = "0";
			document.body.style.background = "#ffffff";
			document.body.style.transform = "none";
			document.body.style.overflow = "visible";
		})()`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var contentHeight float64
			if err := chromedp.Evaluate(
				`Math.max(document.documentElement.scrollHeight, document.body.scrollHeight)`,
				&contentHeight,
			).Do(ctx); err != nil {
				return err
			}
			height := int64(math.Ceil(contentHeight))
			if height < 1 {
				height = 1
			}
			return emulation.SetDeviceMetricsOverride(PageWidthPx, height, r.cfg.Scale, false).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			shot, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithFromSurface(true).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rasterization failed: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decoding screenshot: %w", err)
	}

	if r.cfg.Verbose {
		b := img.Bounds()
		log.Printf("[EXPORT] Captured logical image: %dx%d px", b.Dx(), b.Dy())
	}
	return img, nil
}
