package export

// Physical page geometry. The preview is rasterized at a fixed pixel width
// corresponding to A4 at 96 DPI, then mapped to millimetres using the A4
// width as the horizontal reference.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	PageWidthPx  = 794 // A4 width at 96 DPI
)

// PageBand is the horizontal slice of the logical image printed on one page.
// Top and Height are in source-image pixels.
type PageBand struct {
	Top    int
	Height int
}

// SlicePages partitions a logical image of the given pixel dimensions into
// page bands.
//
// The page height in pixels is the floor of width scaled by the A4 aspect
// ratio, so every full page holds the same whole number of source rows and
// each row lands on exactly one page: no row is duplicated across a page
// boundary and none is skipped. The last page gets the exact remainder. The
// loop is bounded by the shrinking remainder, never by a page-count cap, so
// arbitrarily tall content slices completely. Zero-height (or degenerate
// zero-width) input yields a single empty page rather than failing.
func SlicePages(width, height int) []PageBand {
	if width <= 0 || height <= 0 {
		return []PageBand{{Top: 0, Height: 0}}
	}

	bandPx := int(float64(width) * PageHeightMM / PageWidthMM)
	if bandPx < 1 {
		bandPx = 1
	}

	var bands []PageBand
	for top := 0; top < height; top += bandPx {
		h := bandPx
		if remaining := height - top; remaining < h {
			h = remaining
		}
		bands = append(bands, PageBand{Top: top, Height: h})
	}
	return bands
}

// HeightMM converts a band height to millimetres given the source image
// width in pixels.
func (b PageBand) HeightMM(imageWidth int) float64 {
	if imageWidth <= 0 {
		return 0
	}
	return float64(b.Height) * PageWidthMM / float64(imageWidth)
}
