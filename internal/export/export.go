package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

// Options controls one export invocation.
type Options struct {
	// RegionID addresses the preview node to rasterize. Empty selects the
	// renderer's stable region id.
	RegionID string
	// Filename is the output file name including extension. Empty generates
	// one from the document owner's name and the current time.
	Filename string
	// Dir is the output directory. Empty means the current directory.
	Dir string
}

// Result describes a completed export.
type Result struct {
	Path  string
	Pages int
}

// Exporter runs the pagination and export pipeline. Concurrent invocations
// for the same output are collapsed: two identical in-flight exports would
// each be safe, but would do redundant browser work.
type Exporter struct {
	raster Rasterizer
	group  singleflight.Group
}

// NewExporter creates an Exporter over the given rasterizer.
func NewExporter(raster Rasterizer) *Exporter {
	return &Exporter{raster: raster}
}

// Export renders doc with the given layout, rasterizes the preview, slices
// it into A4 pages and writes a PDF. Any stage failure surfaces as *Error
// with the cause attached, and no partially-written output file is ever left
// behind: the PDF is written to a temp file, verified, then renamed.
func (e *Exporter) Export(ctx context.Context, doc *types.ResumeDocument, tpl types.Template, opts Options) (*Result, error) {
	if doc == nil {
		return nil, &Error{Message: "document is required"}
	}

	regionID := opts.RegionID
	if regionID == "" {
		regionID = rendering.RegionID
	}
	filename := opts.Filename
	if filename == "" {
		filename = DefaultFilename(doc.Profile.Name, time.Now())
	}

	key := string(tpl) + "/" + regionID + "/" + filepath.Join(opts.Dir, filename)
	res, err, _ := e.group.Do(key, func() (any, error) {
		return e.export(ctx, doc, tpl, regionID, filepath.Join(opts.Dir, filename))
	})
	if err != nil {
		return nil, err
	}
	return res.(*Result), nil
}

func (e *Exporter) export(ctx context.Context, doc *types.ResumeDocument, tpl types.Template, regionID, outPath string) (*Result, error) {
	html, err := rendering.Render(doc, tpl)
	if err != nil {
		return nil, &Error{Message: "failed to render preview", Cause: err}
	}

	if err := checkRegion(html, regionID); err != nil {
		return nil, err
	}

	img, err := e.raster.Rasterize(ctx, html)
	if err != nil {
		return nil, &Error{Message: "failed to rasterize preview", Cause: err}
	}

	bounds := img.Bounds()
	bands := SlicePages(bounds.Dx(), bounds.Dy())

	pdfBytes, err := assemblePDF(img, bands)
	if err != nil {
		return nil, err
	}

	if err := writeVerified(pdfBytes, outPath, len(bands)); err != nil {
		return nil, err
	}

	return &Result{Path: outPath, Pages: len(bands)}, nil
}

// checkRegion confirms the addressable preview region exists in the rendered
// HTML before any browser work starts.
func checkRegion(html, regionID string) error {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &Error{Message: "failed to parse rendered preview", Cause: err}
	}
	if parsed.Find("#" + regionID).Length() == 0 {
		return &Error{Message: fmt.Sprintf("preview region %q not found", regionID)}
	}
	return nil
}

// writeVerified writes the assembled PDF to a temp file next to the target,
// verifies the page count by reading it back, then renames it into place.
func writeVerified(pdfBytes []byte, outPath string, wantPages int) error {
	dir := filepath.Dir(outPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &Error{Message: "failed to create output directory", Cause: err}
		}
	}

	tmp, err := os.CreateTemp(dir, ".resume-export-*.pdf")
	if err != nil {
		return &Error{Message: "failed to create output file", Cause: err}
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(pdfBytes); err != nil {
		_ = tmp.Close()
		cleanup()
		return &Error{Message: "failed to write output file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &Error{Message: "failed to finalize output file", Cause: err}
	}

	got, err := CountPages(tmpPath)
	if err != nil {
		cleanup()
		return &Error{Message: "failed to verify exported PDF", Cause: err}
	}
	if got != wantPages {
		cleanup()
		return &Error{Message: fmt.Sprintf("exported PDF has %d pages, expected %d", got, wantPages)}
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		cleanup()
		return &Error{Message: "failed to move output into place", Cause: err}
	}
	return nil
}

// DefaultFilename builds the output file name from the document owner's name
// (lowercased, whitespace collapsed to dashes) and a timestamp.
func DefaultFilename(ownerName string, now time.Time) string {
	name := strings.ToLower(strings.TrimSpace(ownerName))
	name = strings.Join(strings.Fields(name), "-")
	if name == "" {
		name = "resume"
	}
	return fmt.Sprintf("%s-resume-%s.pdf", name, now.Format("20060102-150405"))
}
