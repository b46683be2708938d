package model

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// LineItem is one purchased product entry from a supplier invoice.
type LineItem struct {
	ItemCode    string  `json:"item_code"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
	Quantity    int     `json:"quantity"`
}

// lineItemJSON mirrors LineItem with lenient numeric fields.
type lineItemJSON struct {
	ItemCode    string          `json:"item_code"`
	Description string          `json:"description"`
	UnitPrice   json.RawMessage `json:"unit_price"`
	Amount      json.RawMessage `json:"amount"`
	Quantity    json.RawMessage `json:"quantity"`
}

// UnmarshalJSON decodes a line item. Numeric fields may be JSON numbers or
// numeric strings; anything missing or unparsable decodes as zero.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw lineItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	li.ItemCode = raw.ItemCode
	li.Description = raw.Description
	li.UnitPrice = parseFloatOrZero(raw.UnitPrice)
	li.Amount = parseFloatOrZero(raw.Amount)

	li.Quantity = parseQuantity(raw.Quantity)

	return nil
}

func parseFloatOrZero(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}

	s := string(raw)
	if raw[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err != nil {
			return 0
		}
		s = strings.TrimSpace(unquoted)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseQuantity truncates to a whole count; negative or out of range values decode as zero.
func parseQuantity(raw json.RawMessage) int {
	q := parseFloatOrZero(raw)
	if q < 0 || q >= float64(math.MaxInt) {
		return 0
	}
	return int(q)
}

// MatchSource records which field of a line item produced its classification.
type MatchSource string

// Match sources.
const (
	MatchedByCode        MatchSource = "code"
	MatchedByDescription MatchSource = "description"
)

// ClassifiedItem is a line item annotated with its category, if any.
type ClassifiedItem struct {
	Category  Category    `json:"category,omitempty"`
	Subtype   Subtype     `json:"subtype,omitempty"`
	MatchedBy MatchSource `json:"matched_by,omitempty"`
	Item      LineItem    `json:"item"`
}

// IsCategorized reports whether a rule matched the item.
func (ci ClassifiedItem) IsCategorized() bool {
	return ci.Category != ""
}
