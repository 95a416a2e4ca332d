package domain

import "github.com/shopspring/decimal"

// AccountingProfitReport sums the period's buckets into accounting profit.
// Chargeable disposals are excluded here; they surface in the taxable profit step.
type AccountingProfitReport struct {
	Revenue              decimal.Decimal `json:"revenue"`
	COGS                 decimal.Decimal `json:"cogs"`
	Expenses             decimal.Decimal `json:"expenses"`
	Depreciation         decimal.Decimal `json:"depreciation"` // Lifetime accumulated over active assets
	DisposalProfitLoss   decimal.Decimal `json:"disposalProfitLoss"`
	AccountingProfit     decimal.Decimal `json:"accountingProfit"`
	NonTaxableIncome     decimal.Decimal `json:"nonTaxableIncome"`
	DisallowableExpenses decimal.Decimal `json:"disallowableExpenses"`
	ChargeableGains      decimal.Decimal `json:"chargeableGains"`
	ChargeableLosses     decimal.Decimal `json:"chargeableLosses"`
}

// VATReport totals VAT collected on inflows against VAT paid on outflows.
type VATReport struct {
	VATCollected decimal.Decimal `json:"vatCollected"`
	VATPaid      decimal.Decimal `json:"vatPaid"`
	VATNet       decimal.Decimal `json:"vatNet"`
	Transactions []Transaction   `json:"transactions"` // Lines with a VAT amount
}

// WHTReport totals withholding tax by direction.
type WHTReport struct {
	WHTReceivable decimal.Decimal `json:"whtReceivable"`
	WHTPayable    decimal.Decimal `json:"whtPayable"`
	WHTNet        decimal.Decimal `json:"whtNet"`
	Transactions  []Transaction   `json:"transactions"` // Lines with a WHT amount
}

// PAYEBandLine records how much of the taxable income fell into one band.
type PAYEBandLine struct {
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"` // Fraction, e.g. 0.07
	Tax    decimal.Decimal `json:"tax"`
}

// PAYEResult is the outcome of one PAYE computation.
type PAYEResult struct {
	GrossIncome   decimal.Decimal `json:"grossIncome"`
	TotalRelief   decimal.Decimal `json:"totalRelief"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	PAYE          decimal.Decimal `json:"paye"`
	Bands         []PAYEBandLine  `json:"bands"`
}

// PAYEEmployeeLine is one employee's row in a payroll PAYE report.
type PAYEEmployeeLine struct {
	ContactID   string          `json:"contactID"`
	ContactName string          `json:"contactName"`
	GrossSalary decimal.Decimal `json:"grossSalary"`
	TotalRelief decimal.Decimal `json:"totalRelief"`
	PAYE        decimal.Decimal `json:"paye"`
}

// PAYEReport aggregates PAYE across employees for a period.
type PAYEReport struct {
	Lines     []PAYEEmployeeLine `json:"lines"`
	TotalPAYE decimal.Decimal    `json:"totalPAYE"`
}

// TaxableProfitReport shows the adjustment chain from accounting profit to
// taxable profit, including the capital allowance restriction outcome.
type TaxableProfitReport struct {
	AccountingProfit           decimal.Decimal `json:"accountingProfit"`
	Depreciation               decimal.Decimal `json:"depreciation"`
	DisallowableExpenses       decimal.Decimal `json:"disallowableExpenses"`
	ChargeableGains            decimal.Decimal `json:"chargeableGains"`
	ChargeableLosses           decimal.Decimal `json:"chargeableLosses"`
	NonTaxableIncome           decimal.Decimal `json:"nonTaxableIncome"`
	LossReliefBf               decimal.Decimal `json:"lossReliefBf"`
	CapitalAllowanceForYear    decimal.Decimal `json:"capitalAllowanceForYear"`
	CapitalAllowanceBf         decimal.Decimal `json:"capitalAllowanceBf"`
	TotalCapitalAllowance      decimal.Decimal `json:"totalCapitalAllowance"`
	AllowedCapitalAllowance    decimal.Decimal `json:"allowedCapitalAllowance"`
	UnrelievedCapitalAllowance decimal.Decimal `json:"unrelievedCapitalAllowance"`
	NonTaxableRatio            decimal.Decimal `json:"nonTaxableRatio"` // Fraction of revenue
	TaxableProfit              decimal.Decimal `json:"taxableProfit"`
}

// CITReport is the company income tax outcome for a period.
type CITReport struct {
	Accounting    AccountingProfitReport `json:"accounting"`
	Taxable       TaxableProfitReport    `json:"taxable"`
	Turnover      decimal.Decimal        `json:"turnover"`
	CITRate       decimal.Decimal        `json:"citRate"` // Percent actually applied
	CIT           decimal.Decimal        `json:"cit"`
	WHTReceivable decimal.Decimal        `json:"whtReceivable"`
	WHTDeductible decimal.Decimal        `json:"whtDeductible"`
	NetCIT        decimal.Decimal        `json:"netCIT"`
	CarryForwards CarryForwards          `json:"carryForwards"`
}

// PITReport is the personal income tax outcome for a sole proprietor's period.
type PITReport struct {
	Accounting    AccountingProfitReport `json:"accounting"`
	Taxable       TaxableProfitReport    `json:"taxable"`
	PIT           decimal.Decimal        `json:"pit"`
	Bands         []PAYEBandLine         `json:"bands"`
	CarryForwards CarryForwards          `json:"carryForwards"`
}
