// File path: internal/api/download_handler.go
package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/underwritehq/underwriter/internal/common"
	"github.com/underwritehq/underwriter/internal/export"
)

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	name := strings.TrimSpace(r.URL.Query().Get("file"))
	if name == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("file parameter required"))
		return
	}
	// downloads are served only out of the export directory
	name = filepath.Base(name)
	if !strings.HasSuffix(name, ".docx") {
		writeError(w, http.StatusBadRequest, fmt.Errorf("not a report document: %s", name))
		return
	}

	path := filepath.Join(s.exporter.Dir(), name)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, http.StatusNotFound, fmt.Errorf("document not found: %s", name))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", export.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := io.Copy(w, file); err != nil {
		logger.Error("api: download copy failed", "file", name, "error", err)
	}
}
