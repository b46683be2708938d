package warranty

import (
	"time"

	"github.com/Veraticus/roofline/internal/model"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// FormCategory is one row of the coverage checklist on a warranty form.
type FormCategory struct {
	Category    model.Category  `json:"category"`
	DisplayName string          `json:"display_name"`
	Subtypes    []model.Subtype `json:"subtypes,omitempty"`
	Covered     bool            `json:"covered"`
}

// FormTier is one tier badge on a warranty form.
type FormTier struct {
	Tier        model.Tier `json:"tier"`
	DisplayName string     `json:"display_name"`
	Credential  Credential `json:"contractor_credential"`
	Eligible    bool       `json:"eligible"`
}

// WarrantyForm is the document handed to the warranty registration step.
type WarrantyForm struct {
	GeneratedAt             time.Time              `json:"generated_at"`
	ID                      string                 `json:"id"`
	InvoiceID               string                 `json:"invoice_id,omitempty"`
	RuleSetVersion          string                 `json:"rule_set_version"`
	Categories              []FormCategory         `json:"categories"`
	Tiers                   []FormTier             `json:"tiers"`
	EligibleTiers           []model.Tier           `json:"eligible_tiers"`
	QualifyingItems         []model.ClassifiedItem `json:"qualifying_items"`
	QualifyingCategoryCount int                    `json:"qualifying_category_count"`
	HasPremiumShingle       bool                   `json:"has_premium_shingle"`
}

// NewForm builds a warranty form from an evaluation.
func NewForm(invoiceID string, result model.EligibilityResult, now time.Time) WarrantyForm {
	form := WarrantyForm{
		GeneratedAt:             now.UTC(),
		ID:                      uuid.NewString(),
		InvoiceID:               invoiceID,
		RuleSetVersion:          result.RuleSetVersion,
		EligibleTiers:           result.EligibleTiers(),
		QualifyingItems:         []model.ClassifiedItem{},
		QualifyingCategoryCount: result.QualifyingCategoryCount,
		HasPremiumShingle:       result.HasPremiumShingle,
	}
	if form.EligibleTiers == nil {
		form.EligibleTiers = []model.Tier{}
	}

	subtypes := make(map[model.Category][]model.Subtype)
	for _, item := range result.Items {
		if !item.IsCategorized() {
			continue
		}
		form.QualifyingItems = append(form.QualifyingItems, item)
		if !containsSubtype(subtypes[item.Category], item.Subtype) {
			subtypes[item.Category] = append(subtypes[item.Category], item.Subtype)
		}
	}

	for _, c := range model.AllCategories() {
		form.Categories = append(form.Categories, FormCategory{
			Category:    c,
			DisplayName: c.DisplayName(),
			Subtypes:    subtypes[c],
			Covered:     result.Coverage[c],
		})
	}

	for _, req := range requirements {
		form.Tiers = append(form.Tiers, FormTier{
			Tier:        req.Tier,
			DisplayName: req.DisplayName,
			Credential:  req.Credential,
			Eligible:    result.Eligible(req.Tier),
		})
	}

	return form
}

// JSON encodes the form with indentation.
func (f WarrantyForm) JSON() ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

func containsSubtype(list []model.Subtype, s model.Subtype) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
