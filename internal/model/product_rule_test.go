package model

import (
	"errors"
	"testing"
)

func TestProductRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rule    ProductRule
		wantErr bool
	}{
		{
			name: "code pattern only",
			rule: ProductRule{
				Category:    CategoryShingles,
				Subtype:     SubtypeHDZ,
				CodePattern: "^02GASTZ3",
			},
		},
		{
			name: "keywords only",
			rule: ProductRule{
				Category: CategoryVentilation,
				Subtype:  SubtypeCobra,
				Keywords: []string{"cobra"},
			},
		},
		{
			name: "unknown category",
			rule: ProductRule{
				Category:    "Gutters",
				Subtype:     "Seamless",
				CodePattern: "^99GUT",
			},
			wantErr: true,
		},
		{
			name: "missing subtype",
			rule: ProductRule{
				Category:    CategoryRoofDeck,
				CodePattern: "^05GADA",
			},
			wantErr: true,
		},
		{
			name: "no matcher",
			rule: ProductRule{
				Category: CategoryRoofDeck,
				Subtype:  SubtypeDeckArmor,
			},
			wantErr: true,
		},
		{
			name: "blank keyword",
			rule: ProductRule{
				Category: CategoryLeakBarrier,
				Subtype:  SubtypeStormGuard,
				Keywords: []string{"stormguard", "  "},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() error = nil, want error")
				}
				if !errors.Is(err, ErrInvalidRule) {
					t.Errorf("Validate() error = %v, want ErrInvalidRule", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestRuleSet_Validate(t *testing.T) {
	empty := RuleSet{Version: "empty"}
	if err := empty.Validate(); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("empty rule set error = %v, want ErrInvalidRule", err)
	}

	bad := RuleSet{
		Version: "bad",
		Rules: []ProductRule{
			{Category: CategoryShingles, Subtype: SubtypeHDZ, CodePattern: "^02GASTZ3"},
			{Category: "Siding", Subtype: "Vinyl", CodePattern: "^X"},
		},
	}
	err := bad.Validate()
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("bad rule set error = %v, want ErrUnknownCategory", err)
	}
}

func TestRuleSet_IsPremium(t *testing.T) {
	rs := RuleSet{PremiumSubtypes: []Subtype{SubtypeHDZ, SubtypeUHDZ}}

	tests := []struct {
		subtype Subtype
		want    bool
	}{
		{SubtypeHDZ, true},
		{SubtypeUHDZ, true},
		{"hdz", true},
		{SubtypeAS, false},
		{SubtypeCobra, false},
		{"", false},
	}

	for _, tt := range tests {
		if got := rs.IsPremium(tt.subtype); got != tt.want {
			t.Errorf("IsPremium(%q) = %v, want %v", tt.subtype, got, tt.want)
		}
	}
}

func TestRuleSet_Clone(t *testing.T) {
	rs := RuleSet{
		Version:         "v1",
		Rules:           []ProductRule{{Category: CategoryLeakBarrier, Subtype: SubtypeStormGuard, Keywords: []string{"stormguard"}}},
		PremiumSubtypes: []Subtype{SubtypeHDZ},
	}

	clone := rs.Clone()
	clone.Rules[0].Keywords[0] = "changed"
	clone.Rules[0].Subtype = SubtypeWeatherWatch
	clone.PremiumSubtypes[0] = SubtypeAS

	if rs.Rules[0].Keywords[0] != "stormguard" {
		t.Errorf("keywords shared with clone: %q", rs.Rules[0].Keywords[0])
	}
	if rs.Rules[0].Subtype != SubtypeStormGuard {
		t.Errorf("rules shared with clone: %q", rs.Rules[0].Subtype)
	}
	if !rs.IsPremium(SubtypeHDZ) {
		t.Error("premium subtypes shared with clone")
	}

	if empty := (RuleSet{}).Clone(); empty.Rules != nil || empty.PremiumSubtypes != nil {
		t.Errorf("Clone of empty set = %+v, want nil slices", empty)
	}
}
