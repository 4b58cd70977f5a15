// File path: internal/applicant/applicant.go
package applicant

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MaritalStatus enumerates the accepted marital status selections.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
	MaritalWidowed  MaritalStatus = "Widowed"
)

// PropertyType enumerates the accepted property classifications.
type PropertyType string

const (
	PropertySingleFamily PropertyType = "Single-family home"
	PropertyMultiFamily  PropertyType = "Multi-family home"
	PropertyCondo        PropertyType = "Condo"
	PropertyTownhouse    PropertyType = "Townhouse"
)

// LoanType enumerates the accepted loan products.
type LoanType string

const (
	LoanFixedRate      LoanType = "Fixed-rate"
	LoanAdjustableRate LoanType = "Adjustable-rate"
)

// History describes how recently a bankruptcy or foreclosure occurred.
type History string

const (
	HistoryNone           History = "None"
	HistoryWithinPastYear History = "Within the past year"
	HistoryOneToFiveYears History = "1-5 years ago"
	HistoryOverFiveYears  History = "More than 5 years ago"
)

// MaritalStatuses lists the selectable marital status options in form order.
func MaritalStatuses() []MaritalStatus {
	return []MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed}
}

// PropertyTypes lists the selectable property types in form order.
func PropertyTypes() []PropertyType {
	return []PropertyType{PropertySingleFamily, PropertyMultiFamily, PropertyCondo, PropertyTownhouse}
}

// LoanTypes lists the selectable loan types in form order.
func LoanTypes() []LoanType {
	return []LoanType{LoanFixedRate, LoanAdjustableRate}
}

// Histories lists the selectable bankruptcy/foreclosure options in form order.
func Histories() []History {
	return []History{HistoryNone, HistoryWithinPastYear, HistoryOneToFiveYears, HistoryOverFiveYears}
}

// Record is the immutable snapshot of one loan application submission. It is
// built once from the form post and passed by value through the pipeline.
type Record struct {
	// Applicant information
	Name          string
	DateOfBirth   time.Time
	SSN           string
	MaritalStatus MaritalStatus
	Dependents    int

	// Employment and income
	Employer           string
	JobTitle           string
	YearsAtJob         float64
	MonthlyGrossIncome float64
	OtherIncomeSources string

	// Financial information
	CurrentAssets          float64
	CurrentDebts           float64
	MonthlyDebtObligations float64
	CreditScore            int

	// Property information
	PropertyAddress string
	PropertyType    PropertyType
	PurchasePrice   float64
	LoanAmount      float64
	DownPayment     float64

	// Loan details
	LoanType      LoanType
	LoanTermYears int
	InterestRate  float64

	// Housing expense information
	MonthlyHousingPayment float64
	AnnualPropertyTaxes   float64
	AnnualInsurance       float64
	MonthlyHOAFees        float64

	// Additional information
	LoanPurpose        string
	BankruptcyHistory  History
	ForeclosureHistory History
	LegalIssues        string
}

// minBirthDate bounds the date-of-birth field on the low end.
var minBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Defaults returns the pre-filled record shown on an untouched form.
func Defaults() Record {
	return Record{
		Name:                   "John Doe",
		DateOfBirth:            time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC),
		SSN:                    "123-45-6789",
		MaritalStatus:          MaritalSingle,
		Dependents:             2,
		Employer:               "XYZ Corporation",
		JobTitle:               "Software Engineer",
		YearsAtJob:             5.0,
		MonthlyGrossIncome:     10000.0,
		OtherIncomeSources:     "None",
		CurrentAssets:          150000.0,
		CurrentDebts:           50000.0,
		MonthlyDebtObligations: 1500.0,
		CreditScore:            720,
		PropertyAddress:        "123 Elm Street, Springfield",
		PropertyType:           PropertySingleFamily,
		PurchasePrice:          400000.0,
		LoanAmount:             320000.0,
		DownPayment:            80000.0,
		LoanType:               LoanFixedRate,
		LoanTermYears:          30,
		InterestRate:           3.5,
		MonthlyHousingPayment:  2000.0,
		AnnualPropertyTaxes:    4000.0,
		AnnualInsurance:        1200.0,
		MonthlyHOAFees:         0.0,
		LoanPurpose:            "Purchase",
		BankruptcyHistory:      HistoryNone,
		ForeclosureHistory:     HistoryNone,
		LegalIssues:            "None",
	}
}

// ParseForm builds a Record from a submitted form. Absent fields keep their
// defaults; present fields must satisfy the basic range constraints the form
// advertises. The first violation is returned as a field-labeled error, with
// the record still carrying every valid submitted value so a form can be
// re-rendered for correction; the offending field falls back to its default.
func ParseForm(values url.Values) (Record, error) {
	rec := Defaults()
	p := &formParser{values: values}

	p.text(&rec.Name, "applicant_name")
	p.date(&rec.DateOfBirth, "date_of_birth")
	p.text(&rec.SSN, "ssn")
	p.maritalStatus(&rec.MaritalStatus, "marital_status")
	p.count(&rec.Dependents, "number_of_dependents")

	p.text(&rec.Employer, "current_employer")
	p.text(&rec.JobTitle, "job_title")
	p.decimal(&rec.YearsAtJob, "years_at_current_job")
	p.decimal(&rec.MonthlyGrossIncome, "monthly_gross_income")
	p.text(&rec.OtherIncomeSources, "other_income_sources")

	p.decimal(&rec.CurrentAssets, "current_assets")
	p.decimal(&rec.CurrentDebts, "current_debts")
	p.decimal(&rec.MonthlyDebtObligations, "monthly_debt_obligations")
	p.creditScore(&rec.CreditScore, "credit_score")

	p.text(&rec.PropertyAddress, "property_address")
	p.propertyType(&rec.PropertyType, "property_type")
	p.decimal(&rec.PurchasePrice, "purchase_price")
	p.decimal(&rec.LoanAmount, "loan_amount_requested")
	p.decimal(&rec.DownPayment, "down_payment_amount")

	p.loanType(&rec.LoanType, "loan_type")
	p.count(&rec.LoanTermYears, "loan_term")
	p.decimal(&rec.InterestRate, "interest_rate")

	p.decimal(&rec.MonthlyHousingPayment, "current_monthly_housing_payment")
	p.decimal(&rec.AnnualPropertyTaxes, "estimated_property_taxes")
	p.decimal(&rec.AnnualInsurance, "homeowners_insurance")
	p.decimal(&rec.MonthlyHOAFees, "hoa_fees")

	p.text(&rec.LoanPurpose, "purpose_of_loan")
	p.history(&rec.BankruptcyHistory, "bankruptcy_history")
	p.history(&rec.ForeclosureHistory, "foreclosure_history")
	p.text(&rec.LegalIssues, "legal_issues")

	return rec, p.err
}

// formParser applies one field at a time and remembers the first failure.
// Parsing continues past a failure so the remaining valid fields still land
// in the record.
type formParser struct {
	values url.Values
	err    error
}

func (p *formParser) raw(key string) (string, bool) {
	if !p.values.Has(key) {
		return "", false
	}
	return strings.TrimSpace(p.values.Get(key)), true
}

func (p *formParser) fail(format string, args ...interface{}) {
	if p.err == nil {
		p.err = fmt.Errorf(format, args...)
	}
}

func (p *formParser) text(dst *string, key string) {
	if raw, ok := p.raw(key); ok {
		*dst = raw
	}
}

func (p *formParser) decimal(dst *float64, key string) {
	raw, ok := p.raw(key)
	if !ok || raw == "" {
		return
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail("%s: not a number: %q", key, raw)
		return
	}
	if parsed < 0 {
		p.fail("%s: must not be negative", key)
		return
	}
	*dst = parsed
}

func (p *formParser) count(dst *int, key string) {
	raw, ok := p.raw(key)
	if !ok || raw == "" {
		return
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		p.fail("%s: not a whole number: %q", key, raw)
		return
	}
	if parsed < 0 {
		p.fail("%s: must not be negative", key)
		return
	}
	*dst = parsed
}

func (p *formParser) creditScore(dst *int, key string) {
	raw, ok := p.raw(key)
	if !ok || raw == "" {
		return
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		p.fail("%s: not a whole number: %q", key, raw)
		return
	}
	if parsed < 0 || parsed > 850 {
		p.fail("%s: must be between 0 and 850", key)
		return
	}
	*dst = parsed
}

func (p *formParser) date(dst *time.Time, key string) {
	raw, ok := p.raw(key)
	if !ok || raw == "" {
		return
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		p.fail("%s: expected YYYY-MM-DD, got %q", key, raw)
		return
	}
	if parsed.Before(minBirthDate) || parsed.After(time.Now()) {
		p.fail("%s: must be between 1900-01-01 and today", key)
		return
	}
	*dst = parsed
}

func (p *formParser) maritalStatus(dst *MaritalStatus, key string) {
	raw, ok := p.raw(key)
	if !ok || raw == "" {
		return
	}
	for _, option := range MaritalStatuses() {
		if raw == string(option) {
			*dst = option
			return
		}
	}
	p.fail("%s: unknown option %q", key, raw)
}

func (p *formParser) propertyType(dst *PropertyType, key string) {
	raw, ok := p.raw(key)
	if !ok || raw == "" {
		return
	}
	for _, option := range PropertyTypes() {
		if raw == string(option) {
			*dst = option
			return
		}
	}
	p.fail("%s: unknown option %q", key, raw)
}

func (p *formParser) loanType(dst *LoanType, key string) {
	raw, ok := p.raw(key)
	if !ok || raw == "" {
		return
	}
	for _, option := range LoanTypes() {
		if raw == string(option) {
			*dst = option
			return
		}
	}
	p.fail("%s: unknown option %q", key, raw)
}

func (p *formParser) history(dst *History, key string) {
	raw, ok := p.raw(key)
	if !ok || raw == "" {
		return
	}
	for _, option := range Histories() {
		if raw == string(option) {
			*dst = option
			return
		}
	}
	p.fail("%s: unknown option %q", key, raw)
}
