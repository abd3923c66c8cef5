// Package extract converts uploaded files to plain text, dispatching by
// file extension. PDF and TXT are supported; any other extension yields
// empty text rather than an error so unsupported uploads degrade silently.
package extract

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromFile returns the plain text of the file at path.
// Unsupported extensions and unreadable files yield an empty string.
func FromFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return fromPDF(path)
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		// Unsupported types can be added later (e.g. .docx)
		return ""
	}
}

// fromPDF extracts the text layer of every page. Pages that fail to
// decode are skipped so one corrupt page does not lose the document.
func fromPDF(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return ""
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return ""
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// ListDocuments returns the paths of all regular files directly inside
// dir, the upload corpus layout. A missing directory yields no paths.
func ListDocuments(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths
}
