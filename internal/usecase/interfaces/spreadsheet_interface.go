package interfaces

import "io"

// ISheetEncoder renders a header and rows as a downloadable file.
type ISheetEncoder interface {
	Format() string
	ContentType() string
	Extension() string
	Encode(header []string, rows [][]string) ([]byte, error)
}

// ISheetDecoder reads a header row and data rows from an uploaded file.
type ISheetDecoder interface {
	Decode(r io.Reader) (header []string, rows [][]string, err error)
}
