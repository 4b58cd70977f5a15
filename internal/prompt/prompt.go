// File path: internal/prompt/prompt.go
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/underwritehq/underwriter/internal/applicant"
)

const preamble = "You are an expert in underwriting and risk assessment for home loans. " +
	"Using the input data provided, generate a comprehensive underwriting risk assessment report. " +
	"The report should analyze the borrower's financial stability, creditworthiness, and the risk associated with the loan. " +
	"Use the following structure for the report and make sure report generated only based on data provided and rules provided. " +
	"Don't hallucinate."

// Build serializes the record into the generation prompt: instructional
// preamble, every field verbatim under its labeled section, the constant
// rulebook, and one worked example. Total over any well-typed record.
func Build(rec applicant.Record) string {
	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n")

	section(&b, "Applicant Information",
		field("Name", rec.Name),
		field("Date of Birth", rec.DateOfBirth.Format("2006-01-02")),
		field("Social Security Number", rec.SSN),
		field("Marital Status", string(rec.MaritalStatus)),
		field("Number of Dependents", strconv.Itoa(rec.Dependents)),
	)
	section(&b, "Employment and Income",
		field("Current Employer", rec.Employer),
		field("Job Title", rec.JobTitle),
		field("Years at Current Job", formatDecimal(rec.YearsAtJob)),
		field("Monthly Gross Income", formatDecimal(rec.MonthlyGrossIncome)),
		field("Other Income Sources", rec.OtherIncomeSources),
	)
	section(&b, "Financial Information",
		field("Current Assets", formatDecimal(rec.CurrentAssets)),
		field("Current Debts", formatDecimal(rec.CurrentDebts)),
		field("Monthly Debt Obligations", formatDecimal(rec.MonthlyDebtObligations)),
		field("Credit Score", strconv.Itoa(rec.CreditScore)),
	)
	section(&b, "Property Information",
		field("Property Address", rec.PropertyAddress),
		field("Property Type", string(rec.PropertyType)),
		field("Purchase Price", formatDecimal(rec.PurchasePrice)),
		field("Loan Amount Requested", formatDecimal(rec.LoanAmount)),
		field("Down Payment Amount", formatDecimal(rec.DownPayment)),
	)
	section(&b, "Loan Details",
		field("Loan Type", string(rec.LoanType)),
		field("Loan Term", strconv.Itoa(rec.LoanTermYears)),
		field("Interest Rate", formatDecimal(rec.InterestRate)),
	)
	section(&b, "Housing Expense Information",
		field("Current Monthly Housing Payment", formatDecimal(rec.MonthlyHousingPayment)),
		field("Estimated Property Taxes", formatDecimal(rec.AnnualPropertyTaxes)),
		field("Homeowners Insurance", formatDecimal(rec.AnnualInsurance)),
		field("HOA Fees", formatDecimal(rec.MonthlyHOAFees)),
	)
	section(&b, "Additional Information",
		field("Purpose of Loan", rec.LoanPurpose),
		field("Bankruptcy History", string(rec.BankruptcyHistory)),
		field("Foreclosure History", string(rec.ForeclosureHistory)),
		field("Legal Issues", rec.LegalIssues),
	)

	b.WriteString("\n")
	b.WriteString(rulebook)
	b.WriteString("\n")
	b.WriteString(sampleReport)
	return b.String()
}

func section(b *strings.Builder, heading string, fields ...string) {
	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString(":\n")
	for _, f := range fields {
		b.WriteString("    ")
		b.WriteString(f)
		b.WriteString("\n")
	}
}

func field(label, value string) string {
	return fmt.Sprintf("%s: %s", label, value)
}

// formatDecimal renders a decimal the way the form system reported it:
// shortest representation with at least one fractional digit, so whole
// amounts read "320000.0" rather than "320000".
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
