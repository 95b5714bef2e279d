package export

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// CountPages reads back a PDF file and returns its page count. The exporter
// uses it to verify the assembled document before the output is moved into
// place.
func CountPages(path string) (int, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()
	return reader.NumPage(), nil
}
