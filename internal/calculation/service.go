package calculation

import (
	"context"
	"fmt"

	"kasko-gateway/internal/elt"
	"kasko-gateway/internal/models"
	"kasko-gateway/internal/reso"

	"github.com/rs/zerolog/log"
)

// Service runs the multi-company calculation workflow: fan out over the
// active companies, aggregate, validate, submit to the guarantee provider,
// persist.
type Service struct {
	Calc      elt.Calculator
	Guarantee reso.Guarantee
	Store     *Store
}

// Request is the calculation-endpoint body: the shared calculation payload
// plus the run's correlation id and the companies to fan out over.
type Request struct {
	elt.CalcParams
	CalcResoID      int64    `json:"calc_reso_id"`
	PrevCalcID      int64    `json:"prev_calc_id"`
	ActiveCompanies []string `json:"active_companies"`
}

// RunResult is returned to the caller on a fully successful run.
type RunResult struct {
	InsuranceID int64   `json:"insurance_id"`
	CalcID      *int64  `json:"calc_id"`
	QuoteID     int64   `json:"quote_id"`
	PoliceID    int64   `json:"police_id"`
	Results     []Entry `json:"results"`
}

// Run executes the workflow. A *Rejection is a client-facing failure carrying
// the payload the caller must see; any other error is an internal persistence
// failure whose detail stays in the logs.
func (s *Service) Run(ctx context.Context, req *Request) (*RunResult, error) {
	// Fan out sequentially, preserving the caller's company order. One
	// company's failure never prevents the rest from being attempted.
	outcomes := make([]elt.Outcome, 0, len(req.ActiveCompanies))
	for _, company := range req.ActiveCompanies {
		outcomes = append(outcomes, s.safeCalculate(ctx, company, &req.CalcParams))
	}

	agg := BuildAggregate(req.ActiveCompanies, outcomes)

	if agg.Successes() < MinSuccessful {
		return nil, &Rejection{Message: MsgTooFewSuccesses, Details: agg.Entries}
	}

	var calcID int64
	if agg.CalcID != nil {
		calcID = *agg.CalcID
	}

	actions, err := s.Guarantee.GetRLActions(ctx, calcID, req.PrevCalcID, agg.Summaries())
	if err != nil {
		return nil, &Rejection{Message: err.Error()}
	}
	if !actions.OK() {
		return nil, &Rejection{Message: actions.Error, Details: actions}
	}

	// Record the quote/policy ids right away so they survive a failed
	// status check. This also supersedes any prior run with the same
	// correlation id.
	run := &models.Insurance{
		CalcID:     agg.CalcID,
		CalcResoID: &req.CalcResoID,
		QuoteID:    &actions.QuoteID,
		PoliceID:   &actions.PolicyID,
	}
	if err := s.Store.ReplaceRun(ctx, run); err != nil {
		log.Error().Err(err).Int64("calc_reso_id", req.CalcResoID).Msg("failed to record calculation run")
		return nil, err
	}

	status, err := s.Guarantee.GetRLStatus(ctx, actions.QuoteID)
	if err != nil {
		return nil, &Rejection{Message: err.Error()}
	}
	if status.Error != reso.ErrorOK {
		return nil, &Rejection{Message: status.Error, Details: status}
	}
	if status.Status != reso.StatusSuccess {
		return nil, &Rejection{Message: status.Status, Details: status}
	}

	if err := s.Store.AddQuotes(ctx, run.ID, calcID, agg.Entries); err != nil {
		log.Error().Err(err).Int64("insurance_id", run.ID).Msg("failed to record company quotes")
		return nil, err
	}

	return &RunResult{
		InsuranceID: run.ID,
		CalcID:      agg.CalcID,
		QuoteID:     actions.QuoteID,
		PoliceID:    actions.PolicyID,
		Results:     agg.Entries,
	}, nil
}

// safeCalculate shields the fan-out loop from a misbehaving provider call:
// a panic becomes a failure entry for that company only.
func (s *Service) safeCalculate(ctx context.Context, company string, params *elt.CalcParams) (out elt.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("company", company).Interface("panic", r).Msg("company calculation panicked")
			out = elt.Outcome{Err: fmt.Sprintf("%v", r)}
		}
	}()
	return s.Calc.Calculate(ctx, elt.MethodFinal, company, params)
}
