package calculation

import (
	"testing"

	"kasko-gateway/internal/elt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func successOutcome(calcID int64, premium int) elt.Outcome {
	return elt.Outcome{Result: &elt.CalcResult{CalcID: calcID, PremiumSum: premium}}
}

func TestBuildAggregate_PreservesRequestOrder(t *testing.T) {
	companies := []string{"Согласие", "РЕСО", "Ингосстрах"}
	outcomes := []elt.Outcome{
		successOutcome(1, 100),
		successOutcome(2, 200),
		successOutcome(3, 300),
	}

	agg := BuildAggregate(companies, outcomes)
	require.Len(t, agg.Entries, 3)
	for i, company := range companies {
		assert.Equal(t, company, agg.Entries[i].Company)
	}
}

func TestBuildAggregate_FailureGetsErrorEntry(t *testing.T) {
	agg := BuildAggregate(
		[]string{"Согласие"},
		[]elt.Outcome{{Err: "timeout"}},
	)

	require.Len(t, agg.Entries, 1)
	assert.Equal(t, StatusError, agg.Entries[0].Status)
	require.NotNil(t, agg.Entries[0].Data)
	assert.Equal(t, "timeout", agg.Entries[0].Data.Error)
}

func TestBuildAggregate_ProviderErrorKeepsPartialData(t *testing.T) {
	agg := BuildAggregate(
		[]string{"Согласие"},
		[]elt.Outcome{{Result: &elt.CalcResult{Error: "тариф не найден", PremiumSum: 100}}},
	)

	require.Len(t, agg.Entries, 1)
	assert.Equal(t, StatusError, agg.Entries[0].Status)
	assert.Equal(t, 100, agg.Entries[0].Data.PremiumSum)
}

func TestBuildAggregate_ReferenceCompanyByName(t *testing.T) {
	// Reference company not first in the list: the calc id must still come
	// from it, not from the list position.
	agg := BuildAggregate(
		[]string{"Согласие", "РЕСО"},
		[]elt.Outcome{successOutcome(11, 100), successOutcome(22, 200)},
	)

	require.NotNil(t, agg.CalcID)
	assert.Equal(t, int64(22), *agg.CalcID)
}

func TestBuildAggregate_FailedReferenceCompanyLeavesCalcIDUnset(t *testing.T) {
	agg := BuildAggregate(
		[]string{"РЕСО", "Согласие"},
		[]elt.Outcome{{Err: "timeout"}, successOutcome(2, 200)},
	)
	assert.Nil(t, agg.CalcID)
}

func TestSuccesses_CountsOnlySuccessEntries(t *testing.T) {
	agg := BuildAggregate(
		[]string{"A", "B", "C"},
		[]elt.Outcome{
			successOutcome(1, 100),
			{Err: "down"},
			{Result: &elt.CalcResult{Error: "нет тарифа"}},
		},
	)
	assert.Equal(t, 1, agg.Successes())
}

func TestSummaries_EveryEntryContributes(t *testing.T) {
	agg := BuildAggregate(
		[]string{"РЕСО", "Согласие", "Ингосстрах"},
		[]elt.Outcome{
			{Result: &elt.CalcResult{CalcID: 1, PremiumSum: 100, TotalFranchise: intPtr(15)}},
			{Err: "down"},
			{Result: &elt.CalcResult{Error: "частичный", PremiumSum: 300}},
		},
	)

	summaries := agg.Summaries()
	require.Len(t, summaries, 3)

	assert.Equal(t, "РЕСО", summaries[0].InsuranceCompany)
	assert.Equal(t, 100, summaries[0].PremiumSum)
	assert.Equal(t, 15, summaries[0].Franchise)

	// transport failure: zero sums, zero franchise
	assert.Equal(t, 0, summaries[1].PremiumSum)
	assert.Equal(t, 0, summaries[1].Franchise)

	// provider error with partial sums still contributes them
	assert.Equal(t, 300, summaries[2].PremiumSum)
}
