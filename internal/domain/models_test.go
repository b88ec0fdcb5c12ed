package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"boughtleaf/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRouteDayTotals_DeductionTotal(t *testing.T) {
	totals := &domain.RouteDayTotals{
		Gross:          dec("1000"),
		Coarse:         dec("10.5"),
		Water:          dec("5"),
		BagWeight:      dec("20"),
		Spd:            dec("1"),
		Boiled:         dec("2"),
		Rejected:       dec("3"),
		RouteDeduct:    dec("4"),
		ExcessLeaf:     dec("0.5"),
		Transfer:       dec("6"),
		RouteDeductPre: dec("7"),
	}

	assert.True(t, dec("59").Equal(totals.DeductionTotal()))
}

func TestRouteDayTotals_DeductionTotal_Zero(t *testing.T) {
	totals := &domain.RouteDayTotals{}
	assert.True(t, totals.DeductionTotal().IsZero())
}

// The external consumers depend on two deliberate quirks of the JSON
// surface: the "coarce" spelling on transactions and the "BellowBest"
// spelling on leaf count records.
func TestTransaction_CoarceJSONKey(t *testing.T) {
	txn := domain.Transaction{Coarse: dec("12.5")}
	b, err := json.Marshal(txn)
	assert.NoError(t, err)

	var m map[string]any
	assert.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "coarce")
	assert.NotContains(t, m, "coarse")
}

func TestLeafCountRecord_BellowBestJSONKey(t *testing.T) {
	rec := domain.LeafCountRecord{BelowBest: 7}
	b, err := json.Marshal(rec)
	assert.NoError(t, err)

	var m map[string]any
	assert.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "BellowBest")
	assert.NotContains(t, m, "belowBest")
	assert.EqualValues(t, 7, m["BellowBest"])
}
