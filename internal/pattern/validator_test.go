package pattern

import (
	"errors"
	"testing"

	"github.com/Veraticus/roofline/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateRules(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		rules    []Rule
		wantErrs int
	}{
		{
			name: "valid table",
			rules: []Rule{
				{Category: model.CategoryShingles, Subtype: model.SubtypeHDZ, CodePattern: "^02GASTZ3"},
				{Category: model.CategoryRidgeCaps, Subtype: model.SubtypeTimberTex, CodePattern: "^04GATX", Keywords: []string{"timbertex"}},
			},
		},
		{
			name:     "empty table",
			wantErrs: 1,
		},
		{
			name: "bad regex",
			rules: []Rule{
				{Category: model.CategoryShingles, Subtype: model.SubtypeHDZ, CodePattern: "^02GASTZ3["},
			},
			wantErrs: 1,
		},
		{
			name: "duplicate subtype",
			rules: []Rule{
				{Category: model.CategoryRoofDeck, Subtype: model.SubtypeFeltBuster, CodePattern: "^05GAFB"},
				{Category: model.CategoryRoofDeck, Subtype: "feltbuster", Keywords: []string{"feltbuster"}},
			},
			wantErrs: 1,
		},
		{
			name: "several problems reported together",
			rules: []Rule{
				{Category: "Gutters", Subtype: "K", CodePattern: "^G"},
				{Category: model.CategoryVentilation, Subtype: model.SubtypeCobra},
				{Category: model.CategoryVentilation, Subtype: model.SubtypeMasterFlow, CodePattern: "(("},
			},
			wantErrs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.ValidateRules(tt.rules)
			require.Len(t, errs, tt.wantErrs)
			for _, err := range errs {
				assert.True(t, errors.Is(err, model.ErrInvalidRule), "error %v should wrap ErrInvalidRule", err)
			}
		})
	}
}
