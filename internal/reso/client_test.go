package reso

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kasko-gateway/internal/soap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soapEnvelope(inner string) string {
	return `<?xml version="1.0" encoding="utf-8"?>` +
		`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">` +
		`<soap:Body>` + inner + `</soap:Body></soap:Envelope>`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{Soap: &soap.Client{URL: srv.URL, Username: "user", Password: "pass"}}
}

func TestGetRLActions_Accepted(t *testing.T) {
	var gotBody, gotAction string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotAction = r.Header.Get("SOAPAction")
		w.Write([]byte(soapEnvelope(`<GetRLActionsResponse xmlns="http://www.reso.ru/guarantee/">` +
			`<GetRLActionsResult><Error>OK</Error><QuoteID>42</QuoteID><PolicyID>7</PolicyID></GetRLActionsResult>` +
			`</GetRLActionsResponse>`)))
	})

	calcs := []CompanyCalc{
		{InsuranceCompany: "РЕСО", PremiumSum: 50000, Franchise: 15000},
		{InsuranceCompany: "Согласие", PremiumSum: 48000},
	}
	result, err := c.GetRLActions(context.Background(), 101, 0, calcs)
	require.NoError(t, err)

	assert.True(t, result.OK())
	assert.Equal(t, int64(42), result.QuoteID)
	assert.Equal(t, int64(7), result.PolicyID)

	assert.Equal(t, "http://www.reso.ru/guarantee/GetRLActions", gotAction)
	assert.Contains(t, gotBody, "<CalcId>101</CalcId>")
	assert.Contains(t, gotBody, "<InsuranceCompany>РЕСО</InsuranceCompany>")
	assert.Contains(t, gotBody, "<Franchise>15000</Franchise>")
	// zero PrevCalcId stays off the wire
	assert.NotContains(t, gotBody, "PrevCalcId")
}

func TestGetRLActions_ProviderError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(soapEnvelope(`<GetRLActionsResponse xmlns="http://www.reso.ru/guarantee/">` +
			`<GetRLActionsResult><Error>Расчет не найден</Error></GetRLActionsResult>` +
			`</GetRLActionsResponse>`)))
	})

	result, err := c.GetRLActions(context.Background(), 1, 0, nil)
	require.NoError(t, err)
	assert.False(t, result.OK())
	assert.Equal(t, "Расчет не найден", result.Error)
}

func TestGetRLActions_TransportError(t *testing.T) {
	c := &Client{Soap: &soap.Client{URL: "http://127.0.0.1:1"}}
	_, err := c.GetRLActions(context.Background(), 1, 0, nil)
	require.Error(t, err)
}

func TestGetRLStatus_Confirmed(t *testing.T) {
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(soapEnvelope(`<GetRLStatusResponse xmlns="http://www.reso.ru/guarantee/">` +
			`<GetRLStatusResult><Error>OK</Error><Status>SUCEESS</Status></GetRLStatusResult>` +
			`</GetRLStatusResponse>`)))
	})

	result, err := c.GetRLStatus(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, result.Confirmed())
	assert.Contains(t, gotBody, "<QuoteId>42</QuoteId>")
}

func TestGetRLStatus_PendingIsNotConfirmed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(soapEnvelope(`<GetRLStatusResponse xmlns="http://www.reso.ru/guarantee/">` +
			`<GetRLStatusResult><Error>OK</Error><Status>PENDING</Status></GetRLStatusResult>` +
			`</GetRLStatusResponse>`)))
	})

	result, err := c.GetRLStatus(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, result.Confirmed())
	assert.Equal(t, "PENDING", result.Status)
}
