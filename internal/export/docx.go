// File path: internal/export/docx.go
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gomutex/godocx"

	"github.com/underwritehq/underwriter/internal/common"
)

// DocumentTitle is the single top-level heading of every exported report.
const DocumentTitle = "Underwriting Risk Assessment Report"

// MIMEType is the wordprocessingml content type served on download.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Exporter writes generated reports as .docx files under one directory.
type Exporter struct {
	dir string
}

func NewExporter(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return &Exporter{dir: dir}, nil
}

// Dir returns the directory exported documents are written to.
func (e *Exporter) Dir() string {
	return e.dir
}

// Filename derives the document name from the applicant name and the
// generation timestamp. The applicant name is embedded as-is; an unusual
// name can produce a path the filesystem rejects, which surfaces as an
// export error.
func Filename(applicantName string, ts time.Time) string {
	return fmt.Sprintf("Underwriting_Report_%s_%s.docx", applicantName, ts.Format("20060102_150405"))
}

// Export writes the cleaned report as a document holding one heading and one
// paragraph of unformatted text, and returns the file path. The browser-side
// bold/italic rendering is not carried into the document.
func (e *Exporter) Export(cleanedReport, applicantName string, ts time.Time) (string, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return "", fmt.Errorf("new document: %w", err)
	}
	doc.AddHeading(DocumentTitle, 0)
	doc.AddParagraph(cleanedReport)

	path := filepath.Join(e.dir, Filename(applicantName, ts))
	if err := doc.SaveTo(path); err != nil {
		return "", fmt.Errorf("save document: %w", err)
	}
	common.Logger().Info("export: document written", "path", path)
	return path, nil
}
