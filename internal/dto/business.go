package dto

import (
	"time"

	"github.com/nairabooks/naira_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBusinessRequest defines the data needed to create a new business.
// The creator becomes the business owner.
type CreateBusinessRequest struct {
	Name         string              `json:"name" binding:"required"`
	BusinessType domain.BusinessType `json:"businessType" binding:"required,oneof=COMPANY SOLE_PROPRIETOR"`
	RCNumber     string              `json:"rcNumber"`
	TIN          string              `json:"tin"`
}

// BusinessResponse defines the data returned for a business.
type BusinessResponse struct {
	BusinessID    string              `json:"businessID"`
	Name          string              `json:"name"`
	BusinessType  domain.BusinessType `json:"businessType"`
	RCNumber      string              `json:"rcNumber"`
	TIN           string              `json:"tin"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// UpdateSettingsRequest defines the tax settings a business may change.
// Pointers distinguish fields not provided from zero-value updates.
type UpdateSettingsRequest struct {
	DefaultVATRate              *decimal.Decimal `json:"defaultVatRate"`
	DefaultWHTRate              *decimal.Decimal `json:"defaultWhtRate"`
	CITRate                     *decimal.Decimal `json:"citRate"`
	DefaultDepreciationRate     *decimal.Decimal `json:"defaultDepreciationRate"`
	DefaultCapitalAllowanceRate *decimal.Decimal `json:"defaultCapitalAllowanceRate"`
	LossReliefBf                *decimal.Decimal `json:"lossReliefBf"`
	CapitalAllowanceBf          *decimal.Decimal `json:"capitalAllowanceBf"`
	ChargeableLossBf            *decimal.Decimal `json:"chargeableLossBf"`
	VATEnabled                  *bool            `json:"vatEnabled"`
	WHTEnabled                  *bool            `json:"whtEnabled"`
	CITEnabled                  *bool            `json:"citEnabled"`
	PITEnabled                  *bool            `json:"pitEnabled"`
	PAYEEnabled                 *bool            `json:"payeEnabled"`
	FinancialYearStart          *time.Time       `json:"financialYearStart"`
	FinancialYearEnd            *time.Time       `json:"financialYearEnd"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse DTO
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:    b.BusinessID,
		Name:          b.Name,
		BusinessType:  b.BusinessType,
		RCNumber:      b.RCNumber,
		TIN:           b.TIN,
		IsActive:      b.IsActive,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}
