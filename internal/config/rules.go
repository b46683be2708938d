package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/roofline/internal/classification"
	"github.com/Veraticus/roofline/internal/common"
	"github.com/Veraticus/roofline/internal/model"
	"github.com/Veraticus/roofline/internal/pattern"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyRulesVersion         = "rules.version"
	KeyRulesPremiumSubtypes = "rules.premium_subtypes"
	KeyRulesProducts        = "rules.products"
	KeyBatchWorkers         = "batch.workers"
)

// CustomRuleSetVersion names a configured rule table that has no explicit version.
const CustomRuleSetVersion = "custom"

// ProductRuleConfig is one rule table row as written in the config file.
type ProductRuleConfig struct {
	Category    string   `mapstructure:"category" validate:"required,oneof=Shingles RidgeCaps StarterStrips Ventilation LeakBarrier RoofDeck"`
	Subtype     string   `mapstructure:"subtype" validate:"required"`
	CodePattern string   `mapstructure:"code_pattern" validate:"required_without=Keywords"`
	Keywords    []string `mapstructure:"keywords" validate:"omitempty,dive,required"`
}

var (
	validate                            = validator.New()
	ruleValidator pattern.RuleValidator = pattern.NewValidator()
)

// LoadRuleSet builds the rule set from configuration.
// It follows this precedence:
// 1. rules.products / rules.premium_subtypes / rules.version from v (config file or ROOFLINE_ env vars)
// 2. The built-in canonical table and premium policy
func LoadRuleSet(v *viper.Viper) (model.RuleSet, error) {
	rs := classification.DefaultRuleSet()

	if v.IsSet(KeyRulesProducts) {
		var rows []ProductRuleConfig
		if err := v.UnmarshalKey(KeyRulesProducts, &rows); err != nil {
			return model.RuleSet{}, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyRulesProducts, err)
		}

		rules, err := convertRules(rows)
		if err != nil {
			return model.RuleSet{}, err
		}
		rs.Rules = rules
		rs.Version = CustomRuleSetVersion
	}

	if version := strings.TrimSpace(v.GetString(KeyRulesVersion)); version != "" {
		rs.Version = version
	}

	if v.IsSet(KeyRulesPremiumSubtypes) {
		rs.PremiumSubtypes = parseSubtypes(v.GetStringSlice(KeyRulesPremiumSubtypes))
	}

	if err := ValidateRuleSet(rs); err != nil {
		return model.RuleSet{}, err
	}

	warnUnknownPremium(rs)

	return rs, nil
}

// ValidateRuleSet reports every problem in the rule set joined into one error.
func ValidateRuleSet(rs model.RuleSet) error {
	errs := ruleValidator.ValidateRules(rs.Rules)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: rule set %q: %w", common.ErrInvalidConfig, rs.Version, errors.Join(errs...))
}

// BatchWorkers returns the configured worker count, or fallback when unset or invalid.
func BatchWorkers(v *viper.Viper, fallback int) int {
	if n := v.GetInt(KeyBatchWorkers); n > 0 {
		return n
	}
	return fallback
}

func convertRules(rows []ProductRuleConfig) ([]model.ProductRule, error) {
	rules := make([]model.ProductRule, 0, len(rows))

	for i, row := range rows {
		// Category names are case-insensitive; canonicalize before the oneof check.
		if category, err := model.ParseCategory(row.Category); err == nil {
			row.Category = string(category)
		}
		if err := validate.Struct(row); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", common.ErrInvalidConfig, KeyRulesProducts, i, err)
		}

		category, err := model.ParseCategory(row.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", common.ErrInvalidConfig, KeyRulesProducts, i, err)
		}

		rules = append(rules, model.ProductRule{
			Category:    category,
			Subtype:     model.Subtype(strings.TrimSpace(row.Subtype)),
			CodePattern: strings.TrimSpace(row.CodePattern),
			Keywords:    row.Keywords,
		})
	}

	return rules, nil
}

// parseSubtypes accepts list entries as well as comma separated values from env vars.
func parseSubtypes(values []string) []model.Subtype {
	out := []model.Subtype{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, model.Subtype(part))
			}
		}
	}
	return out
}

func warnUnknownPremium(rs model.RuleSet) {
	known := make(map[string]bool, len(rs.Rules))
	for _, r := range rs.Rules {
		if r.Category == model.CategoryShingles {
			known[strings.ToLower(string(r.Subtype))] = true
		}
	}
	for _, p := range rs.PremiumSubtypes {
		if !known[strings.ToLower(string(p))] {
			common.LogWarn("Premium subtype has no shingle rule", common.Fields{
				"subtype": string(p),
				"version": rs.Version,
			})
		}
	}
}
