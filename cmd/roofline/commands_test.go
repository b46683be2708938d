package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Veraticus/roofline/internal/cli"
	"github.com/Veraticus/roofline/internal/common"
	"github.com/Veraticus/roofline/internal/model"
	"github.com/Veraticus/roofline/internal/testutil/products"
	"github.com/Veraticus/roofline/internal/warranty"
	"github.com/goccy/go-json"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCmd_Table(t *testing.T) {
	items := products.NewBuilder(t).
		WithSubtype(model.SubtypeHDZ).
		WithSubtype(model.SubtypeCobra).
		WithUncategorized().
		Build()

	out, err := executeCommand(t, itemsJSON(t, items), "classify")
	require.NoError(t, err)

	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "Shingles")
	assert.Contains(t, out, "Ventilation")
	assert.Contains(t, out, "uncategorized")
	assert.Contains(t, out, "1 of 3 items did not match any product rule")
}

func TestClassifyCmd_JSON(t *testing.T) {
	input := `[
		{"item_code": "04GATXCW", "description": "TimberTex Charcoal", "quantity": "3"},
		{"item_code": "", "description": "Tiger Paw underlayment 10 SQ", "unit_price": "$129.00"}
	]`

	out, err := executeCommand(t, input, "classify", "--json")
	require.NoError(t, err)

	var classified []model.ClassifiedItem
	require.NoError(t, json.Unmarshal([]byte(out), &classified))
	require.Len(t, classified, 2)

	assert.Equal(t, model.CategoryRidgeCaps, classified[0].Category)
	assert.Equal(t, model.MatchedByCode, classified[0].MatchedBy)
	assert.Equal(t, 3, classified[0].Item.Quantity)

	assert.Equal(t, model.CategoryRoofDeck, classified[1].Category)
	assert.Equal(t, model.SubtypeTigerPaw, classified[1].Subtype)
	assert.Equal(t, model.MatchedByDescription, classified[1].MatchedBy)
	assert.InDelta(t, 129.0, classified[1].Item.UnitPrice, 0.001)
}

func TestClassifyCmd_EmptyArray(t *testing.T) {
	out, err := executeCommand(t, "[]", "classify")
	require.NoError(t, err)
	assert.Contains(t, out, "No line items.")
}

func TestInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		wantErr error
	}{
		{name: "empty stdin", stdin: "", wantErr: common.ErrNoLineItems},
		{name: "malformed json", stdin: "[{", wantErr: common.ErrInvalidInput},
		{name: "wrong shape", stdin: `{"items": 3}`, wantErr: common.ErrInvalidInput},
		{name: "trailing garbage", stdin: `[] trailing-garbage`, wantErr: common.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, command := range []string{"classify", "evaluate", "form", "batch"} {
				_, err := executeCommand(t, tt.stdin, command)
				require.Error(t, err, command)
				assert.True(t, errors.Is(err, tt.wantErr), "%s: got %v", command, err)

				var ue *common.UserError
				assert.True(t, errors.As(err, &ue), command)
			}
		})
	}
}

func TestEvaluateCmd_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		fixture products.Fixture
		want    []model.Tier
	}{
		{name: "shingles only", fixture: products.FixtureShinglesOnly, want: nil},
		{
			name:    "basic system",
			fixture: products.FixtureBasicSystem,
			want:    []model.Tier{model.TierStandardLimited, model.TierSystemPlusLimited},
		},
		{
			name:    "wind proven",
			fixture: products.FixtureWindProven,
			want: []model.Tier{
				model.TierStandardLimited,
				model.TierSystemPlusLimited,
				model.TierSilverPledge,
				model.TierWindProven,
			},
		},
		{
			name:    "full system",
			fixture: products.FixtureFullSystem,
			want:    model.AllTiers(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, itemsJSON(t, tt.fixture.Items()), "evaluate", "--json")
			require.NoError(t, err)

			var result model.EligibilityResult
			require.NoError(t, json.Unmarshal([]byte(out), &result))
			assert.Equal(t, len(tt.fixture.Categories()), result.QualifyingCategoryCount)
			assert.Equal(t, tt.want, result.EligibleTiers())
		})
	}
}

func TestEvaluateCmd_EmptyPurchase(t *testing.T) {
	out, err := executeCommand(t, "[]", "evaluate", "--json")
	require.NoError(t, err)

	var result model.EligibilityResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 0, result.QualifyingCategoryCount)
	assert.False(t, result.HasPremiumShingle)
	assert.Empty(t, result.EligibleTiers())
}

func TestEvaluateCmd_Table(t *testing.T) {
	items := products.NewBuilder(t).
		WithFixture(products.FixtureWindProven).
		WithUncategorized().
		Build()

	out, err := executeCommand(t, itemsJSON(t, items), "evaluate")
	require.NoError(t, err)

	assert.Contains(t, out, "Category coverage")
	assert.Contains(t, out, "Roof Deck Protection")
	assert.Contains(t, out, "Qualifying categories: 4/6")
	assert.Contains(t, out, "Premium shingle: yes")
	assert.Contains(t, out, "WindProven Limited Wind Warranty")
	assert.Contains(t, out, "1 uncategorized item(s):")
	assert.Contains(t, out, "NAILCOIL125")
	assert.Contains(t, out, "Rule set 2024.1")
}

func TestBatchCmd_JSON(t *testing.T) {
	invoices := []warranty.Invoice{
		{ID: "INV-1", Items: products.FixtureFullSystem.Items()},
		{Items: products.FixtureShinglesOnly.Items()},
		{ID: "INV-3", Items: products.FixtureBasicSystem.Items()},
	}
	data, err := json.Marshal(invoices)
	require.NoError(t, err)

	out, err := executeCommand(t, string(data), "batch", "--json", "--workers", "2")
	require.NoError(t, err)

	var results []warranty.BatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)

	assert.Equal(t, "INV-1", results[0].InvoiceID)
	assert.True(t, results[0].Result.GoldenPledge)
	assert.Equal(t, "invoice-2", results[1].InvoiceID)
	assert.Empty(t, results[1].Result.EligibleTiers())
	assert.Equal(t, "INV-3", results[2].InvoiceID)
	assert.True(t, results[2].Result.StandardLimited)
}

func TestBatchCmd_Table(t *testing.T) {
	invoices := []warranty.Invoice{
		{ID: "INV-9", Items: products.FixtureWindProven.Items()},
	}
	data, err := json.Marshal(invoices)
	require.NoError(t, err)

	out, err := executeCommand(t, string(data), "batch", "--progress")
	require.NoError(t, err)

	assert.Contains(t, out, "INV-9")
	assert.Contains(t, out, "4/6")
	assert.Contains(t, out, "WindProven")
	assert.Contains(t, out, "Invoices: 1")
}

func TestBatchCmd_Empty(t *testing.T) {
	out, err := executeCommand(t, "[]", "batch")
	require.NoError(t, err)
	assert.Contains(t, out, "No invoices.")
}

func TestBatchCmd_Interrupted(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	var errOut bytes.Buffer
	interrupts := cli.NewInterruptHandler(&errOut)
	ctx, stop := interrupts.HandleInterrupts(context.Background())
	defer stop()

	self, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	if err := self.Signal(os.Interrupt); err != nil {
		t.Skipf("cannot deliver interrupt on this platform: %v", err)
	}
	require.Eventually(t, interrupts.WasInterrupted, time.Second, 10*time.Millisecond)

	data, err := json.Marshal([]warranty.Invoice{{ID: "INV-1", Items: products.FixtureFullSystem.Items()}})
	require.NoError(t, err)

	root := newRootCmd(interrupts)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(bytes.NewReader(data))
	root.SetArgs([]string{"batch", "--json", "--log-level", "error"})

	err = root.ExecuteContext(ctx)
	require.Error(t, err)
	assert.Equal(t, "batch evaluation interrupted", common.UserMessage(err))
	assert.Empty(t, out.String())
}

func TestBatchCmd_NotInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd(cli.NewInterruptHandler(&bytes.Buffer{}))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetIn(bytes.NewReader([]byte(`[{"id":"INV-1","items":[]}]`)))
	root.SetArgs([]string{"batch", "--log-level", "error"})

	err := root.ExecuteContext(ctx)
	require.Error(t, err)
	var ue *common.UserError
	assert.False(t, errors.As(err, &ue), "plain cancellation is not reported as an interrupt: %v", err)
}

func TestBatchCmd_WorkersFlag(t *testing.T) {
	cmd := batchCmd(nil)
	flag := cmd.Flag("workers")
	require.NotNil(t, flag)
	assert.Equal(t, "4", flag.DefValue)
}

func TestFormCmd(t *testing.T) {
	out, err := executeCommand(t, itemsJSON(t, products.FixtureBasicSystem.Items()), "form", "--invoice", "INV-42")
	require.NoError(t, err)

	var form warranty.WarrantyForm
	require.NoError(t, json.Unmarshal([]byte(out), &form))

	assert.Equal(t, "INV-42", form.InvoiceID)
	assert.NotEmpty(t, form.ID)
	assert.Len(t, form.Categories, len(model.AllCategories()))
	assert.Len(t, form.QualifyingItems, 3)
	assert.Equal(t, []model.Tier{model.TierStandardLimited, model.TierSystemPlusLimited}, form.EligibleTiers)
}

func TestTiersCmd(t *testing.T) {
	out, err := executeCommand(t, "", "tiers")
	require.NoError(t, err)
	assert.Contains(t, out, "GoldenPledge")
	assert.Contains(t, out, "required")
	assert.Contains(t, out, "master_elite")

	out, err = executeCommand(t, "", "tiers", "--json")
	require.NoError(t, err)
	var reqs []warranty.Requirement
	require.NoError(t, json.Unmarshal([]byte(out), &reqs))
	assert.Equal(t, warranty.Requirements(), reqs)
}

func TestRulesListCmd(t *testing.T) {
	out, err := executeCommand(t, "", "rules", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Rule set 2024.1")
	assert.Contains(t, out, "^02GASTZ3")
	assert.Contains(t, out, "HDZ *")
	assert.NotContains(t, out, "AS *")

	out, err = executeCommand(t, "", "rules", "list", "--json")
	require.NoError(t, err)
	var rs model.RuleSet
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	assert.Len(t, rs.Rules, 15)
}

func TestRulesValidateCmd(t *testing.T) {
	out, err := executeCommand(t, "", "rules", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Rule set 2024.1 is valid (15 rules, premium: HDZ, UHDZ)")

	cfg := writeConfig(t, `
rules:
  products:
    - category: RoofDeck
      subtype: DeckArmor
      code_pattern: "^05GA(DA"
`)
	out, err = executeCommand(t, "", "rules", "validate", "--config", cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
	assert.Contains(t, out, "rule configuration is invalid")
}

func TestCustomRulesDriveClassification(t *testing.T) {
	cfg := writeConfig(t, `
rules:
  version: "test-1"
  products:
    - category: Shingles
      subtype: Duration
      code_pattern: "^OC-DUR"
  premium_subtypes: [Duration]
`)
	out, err := executeCommand(t, `[{"item_code":"oc-dur-onyx"}]`, "evaluate", "--json", "--config", cfg)
	require.NoError(t, err)

	var result model.EligibilityResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "test-1", result.RuleSetVersion)
	assert.True(t, result.Coverage[model.CategoryShingles])
	assert.True(t, result.HasPremiumShingle)
}
