// File path: internal/prompt/rulebook.go
package prompt

// rulebook and sampleReport are prompt content, constant across requests.
// The rules are instructions to the model, not logic this service executes:
// all LTV/DTI arithmetic happens on the model side.

const rulebook = `Rules for Assessment:
1. Loan-to-Value (LTV) Ratio Calculation:
   - LTV Ratio = (Loan Amount Requested / Purchase Price) * 100
   - High LTV (>80%) indicates higher risk.
   - Red Flag: LTV above 90%.

2. Debt-to-Income (DTI) Ratio Calculation:
   - DTI Ratio = (Monthly Debt Obligations / Monthly Gross Income) * 100
   - A DTI above 43% is generally considered risky.
   - Red Flag: DTI above 50%.

3. Credit Score Evaluation:
   - 750 and above: Excellent
   - 700-749: Good
   - 650-699: Fair
   - Below 650: Poor
   - Red Flag: Credit score below 600.

4. Employment Stability:
   - Longer tenure at current job (>2 years) indicates stability.
   - Red Flag: Frequent job changes or employment less than 6 months.

5. Current Assets vs. Debts:
   - Positive net worth (assets > debts) is favorable.
   - Red Flag: Net worth is negative.

6. Housing Expense to Income Ratio:
   - Housing expenses should generally not exceed 28-31% of gross monthly income.
   - Red Flag: Housing expense ratio above 35%.

Red Flags to Consider:
- Recent bankruptcy (within the past 5 years).
- History of foreclosure.
- Legal issues such as pending lawsuits or liens.
- Significant discrepancies between reported income and bank statements or tax returns.
`

const sampleReport = `Sample Output:
Underwriting Risk Assessment Report

1. Applicant Information:
- Name: John Doe
- Date of Birth: January 1, 1980
- Social Security Number: 123-45-6789
- Marital Status: Married
- Number of Dependents: 2

2. Employment and Income:
- Current Employer: XYZ Corporation
- Job Title: Software Engineer
- Years at Current Job: 5 years
- Monthly Gross Income: $10,000
- Other Income Sources: None

3. Financial Summary:
- Current Assets: $150,000
- Current Debts: $50,000
- Monthly Debt Obligations: $1,500
- Credit Score: 720

4. Property Details:
- Property Address: 123 Elm Street, Springfield
- Property Type: Single-family home
- Purchase Price: $400,000
- Loan Amount Requested: $320,000
- Down Payment Amount: $80,000

5. Loan Details:
- Loan Type: Fixed-rate
- Loan Term: 30 years
- Interest Rate: 3.5%

6. Housing Expense Analysis:
- Current Monthly Housing Payment: $2,000 (rent)
- Estimated Property Taxes: $4,000 annually
- Homeowners Insurance: $1,200 annually
- HOA Fees: None

7. Risk Metrics:
- LTV Ratio:
  - Calculation: ($320,000 / $400,000) * 100 = 80%
  - Assessment: Acceptable risk.

- DTI Ratio:
  - Calculation: ($1,500 / $10,000) * 100 = 15%
  - Assessment: Low risk.

- Credit Score:
  - Score: 720
  - Assessment: Good.

- Employment Stability:
  - Years at Current Job: 5 years
  - Assessment: Stable.

- Net Worth:
  - Calculation: $150,000 - $50,000 = $100,000
  - Assessment: Positive.

- Housing Expense to Income Ratio:
  - Calculation: ($2,000 / $10,000) * 100 = 20%
  - Assessment: Affordable.

8. Assessment and Recommendation:
John Doe demonstrates a strong financial profile with a good credit score, stable employment, and manageable debt levels. The LTV and DTI ratios are within acceptable limits, indicating a moderate risk. However, key factors the underwriter should consider include:

- Consistency of Income: Ensure that income is consistent with tax returns and bank statements.
- Employment Verification: Confirm job stability and employment details with the employer.
- Credit History: Review the detailed credit report for any late payments, collections, or other negative items not captured by the score.
- Asset Verification: Verify the existence and liquidity of reported assets.

Based on the provided information, it is recommended to approve the loan application for the requested amount of $320,000. No significant red flags were identified, and the applicant appears to be a low to moderate risk.
`
