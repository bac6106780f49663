package calculation

import (
	"kasko-gateway/internal/elt"
	"kasko-gateway/internal/reso"
)

const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// ReferenceCompany is the company whose provider calculation id becomes the
// run's calc_id. Looked up by name, never by position in the fan-out list.
const ReferenceCompany = "РЕСО"

// MinSuccessful is the business gate: a run with fewer successful company
// calculations must not be forwarded to the guarantee provider.
const MinSuccessful = 3

// MsgTooFewSuccesses is the fixed rejection message of the validation gate.
const MsgTooFewSuccesses = "Менее трех страховых компаний вернули успешный расчет"

// Entry is one company's normalized outcome. Data always carries the error
// text for failed entries; partial sums are kept when the provider returned
// them alongside an error.
type Entry struct {
	Company string          `json:"company"`
	Status  string          `json:"status"`
	Data    *elt.CalcResult `json:"data"`
}

// Aggregate collects per-company entries in the original request order.
type Aggregate struct {
	Entries []Entry
	CalcID  *int64 // reference company's calculation id, nil when it failed
}

// BuildAggregate pairs the ordered company list with its outcomes. Both
// slices share the same order; each company produces exactly one entry.
func BuildAggregate(companies []string, outcomes []elt.Outcome) *Aggregate {
	agg := &Aggregate{Entries: make([]Entry, 0, len(companies))}

	for i, company := range companies {
		outcome := outcomes[i]

		if outcome.Failed() {
			agg.Entries = append(agg.Entries, Entry{
				Company: company,
				Status:  StatusError,
				Data:    &elt.CalcResult{Error: outcome.Err},
			})
			continue
		}

		result := outcome.Result
		status := StatusSuccess
		if result.Error != "" {
			status = StatusError
		}
		agg.Entries = append(agg.Entries, Entry{Company: company, Status: status, Data: result})

		if company == ReferenceCompany && status == StatusSuccess {
			id := result.CalcID
			agg.CalcID = &id
		}
	}
	return agg
}

// Successes counts entries whose provider error is unset.
func (a *Aggregate) Successes() int {
	n := 0
	for _, e := range a.Entries {
		if e.Status == StatusSuccess {
			n++
		}
	}
	return n
}

// Summaries derives the guarantee submission list from every entry; failed
// companies contribute whatever partial sums they have and a zero franchise
// when absent.
func (a *Aggregate) Summaries() []reso.CompanyCalc {
	calcs := make([]reso.CompanyCalc, 0, len(a.Entries))
	for _, e := range a.Entries {
		calc := reso.CompanyCalc{InsuranceCompany: e.Company}
		if e.Data != nil {
			calc.PremiumSum = e.Data.PremiumSum
			if e.Data.TotalFranchise != nil {
				calc.Franchise = *e.Data.TotalFranchise
			}
		}
		calcs = append(calcs, calc)
	}
	return calcs
}
