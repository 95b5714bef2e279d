package export

import (
	"image"
	"image/draw"

	"github.com/signintech/gopdf"
)

// assemblePDF builds an A4 document with one cropped sub-image per page
// band, each placed at the page origin at full 210mm width. Assembly is
// all-or-nothing: the caller only writes the returned bytes out after every
// page has been added.
func assemblePDF(img image.Image, bands []PageBand) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: PageWidthMM, H: PageHeightMM},
		Unit:     gopdf.UnitMM,
	})

	width := img.Bounds().Dx()
	for _, band := range bands {
		pdf.AddPage()
		if band.Height == 0 {
			continue
		}
		crop := cropBand(img, band)
		rect := &gopdf.Rect{W: PageWidthMM, H: band.HeightMM(width)}
		if err := pdf.ImageFrom(crop, 0, 0, rect); err != nil {
			return nil, &Error{Message: "failed to place page image", Cause: err}
		}
	}

	return pdf.GetBytesPdf(), nil
}

// cropBand copies one band into a fresh origin-anchored image. A plain
// SubImage keeps the source's offset bounds, which the PDF encoder must not
// see.
func cropBand(img image.Image, band PageBand) image.Image {
	src := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, src.Dx(), band.Height))
	draw.Draw(out, out.Bounds(), img, image.Pt(src.Min.X, src.Min.Y+band.Top), draw.Src)
	return out
}
