package reso

import (
	"context"
	"encoding/xml"

	"kasko-gateway/internal/soap"
)

// Namespace of the RESO guarantee service.
const Namespace = "http://www.reso.ru/guarantee/"

// ErrorOK is the literal the service puts in its Error field when nothing
// went wrong.
const ErrorOK = "OK"

// StatusSuccess is the confirmation status token. The upstream contract
// spells it exactly like this; do not correct it.
const StatusSuccess = "SUCEESS"

// CompanyCalc is one company's premium/franchise summary submitted with a run.
type CompanyCalc struct {
	InsuranceCompany string `json:"InsuranceCompany" xml:"InsuranceCompany"`
	PremiumSum       int    `json:"PremiumSum" xml:"PremiumSum"`
	Franchise        int    `json:"Franchise" xml:"Franchise"`
}

// RLActionsResult is the GetRLActions response body.
type RLActionsResult struct {
	Error    string `json:"Error" xml:"GetRLActionsResult>Error"`
	QuoteID  int64  `json:"QuoteID" xml:"GetRLActionsResult>QuoteID"`
	PolicyID int64  `json:"PolicyID" xml:"GetRLActionsResult>PolicyID"`
}

// OK reports whether the provider accepted the submission.
func (r *RLActionsResult) OK() bool {
	return r.Error == ErrorOK
}

// RLStatusResult is the GetRLStatus response body.
type RLStatusResult struct {
	Error  string `json:"Error" xml:"GetRLStatusResult>Error"`
	Status string `json:"Status" xml:"GetRLStatusResult>Status"`
}

// Confirmed reports whether the quote reached its success status.
func (r *RLStatusResult) Confirmed() bool {
	return r.Error == ErrorOK && r.Status == StatusSuccess
}

// Guarantee is the quote/policy issuance contract used by the orchestrator.
type Guarantee interface {
	GetRLActions(ctx context.Context, calcID, prevCalcID int64, calcs []CompanyCalc) (*RLActionsResult, error)
	GetRLStatus(ctx context.Context, quoteID int64) (*RLStatusResult, error)
}

// Client talks to the RESO guarantee SOAP service over the shared transport.
type Client struct {
	Soap *soap.Client
}

type rlActionsRequest struct {
	XMLName    xml.Name      `xml:"http://www.reso.ru/guarantee/ GetRLActions"`
	CalcID     int64         `xml:"CalcId"`
	PrevCalcID int64         `xml:"PrevCalcId,omitempty"`
	CalcList   []CompanyCalc `xml:"CalcList>Calc"`
}

// GetRLActions submits the aggregated run and returns the assigned quote and
// policy identifiers.
func (c *Client) GetRLActions(ctx context.Context, calcID, prevCalcID int64, calcs []CompanyCalc) (*RLActionsResult, error) {
	req := rlActionsRequest{
		CalcID:     calcID,
		PrevCalcID: prevCalcID,
		CalcList:   calcs,
	}
	var result RLActionsResult
	if err := c.Soap.Call(ctx, Namespace+"GetRLActions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type rlStatusRequest struct {
	XMLName xml.Name `xml:"http://www.reso.ru/guarantee/ GetRLStatus"`
	QuoteID int64    `xml:"QuoteId"`
}

// GetRLStatus fetches the processing status of a previously submitted quote.
func (c *Client) GetRLStatus(ctx context.Context, quoteID int64) (*RLStatusResult, error) {
	req := rlStatusRequest{QuoteID: quoteID}
	var result RLStatusResult
	if err := c.Soap.Call(ctx, Namespace+"GetRLStatus", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
