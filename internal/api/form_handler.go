// File path: internal/api/form_handler.go
package api

import (
	"net/http"

	"github.com/underwritehq/underwriter/internal/applicant"
	"github.com/underwritehq/underwriter/internal/common"
)

type formPage struct {
	Record           applicant.Record
	MaritalStatuses  []applicant.MaritalStatus
	PropertyTypes    []applicant.PropertyType
	LoanTypes        []applicant.LoanType
	HistoryOptions   []applicant.History
	ValidationError  string
	DateOfBirthValue string
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, applicant.Defaults(), "")
}

func (s *Server) renderForm(w http.ResponseWriter, rec applicant.Record, validationError string) {
	page := formPage{
		Record:           rec,
		MaritalStatuses:  applicant.MaritalStatuses(),
		PropertyTypes:    applicant.PropertyTypes(),
		LoanTypes:        applicant.LoanTypes(),
		HistoryOptions:   applicant.Histories(),
		ValidationError:  validationError,
		DateOfBirthValue: rec.DateOfBirth.Format("2006-01-02"),
	}
	status := http.StatusOK
	if validationError != "" {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "form.html", page); err != nil {
		common.Logger().Error("api: form template failed", "error", err)
	}
}
