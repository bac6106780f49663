package elt

import (
	"context"
	"encoding/xml"
	"errors"

	"kasko-gateway/internal/soap"
)

// Namespace of the ELT insurance aggregation service.
const Namespace = "http://www.elt-online.ru/"

// MsgMalformedRequest is returned when the provider answers with an empty or
// unparseable calculation result.
const MsgMalformedRequest = "Не правильный запрос"

// Calculator issues one calculation call per insurance company.
type Calculator interface {
	Calculate(ctx context.Context, method, company string, params *CalcParams) Outcome
}

// Client talks to the ELT SOAP service. The embedded transport is shared
// process-wide; Login/Password are additionally carried inside request bodies
// the way the service expects.
type Client struct {
	Soap     *soap.Client
	Login    string
	Password string
}

func (c *Client) authInfo() AuthInfo {
	return AuthInfo{Login: c.Login, Password: c.Password}
}

type calculationRequest struct {
	XMLName          xml.Name
	AuthInfo         AuthInfo    `xml:"AuthInfo"`
	InsuranceCompany string      `xml:"InsuranceCompany"`
	ContractOptionID int         `xml:"ContractOptionId"`
	Params           *CalcParams `xml:"Params"`
}

// Calculate runs one preliminary or final KASKO calculation for a single
// company. Faults, transport errors, and empty results are downgraded to a
// Failure outcome; the call itself never returns an error.
func (c *Client) Calculate(ctx context.Context, method, company string, params *CalcParams) Outcome {
	req := calculationRequest{
		XMLName:          xml.Name{Space: Namespace, Local: method},
		AuthInfo:         c.authInfo(),
		InsuranceCompany: company,
		ContractOptionID: 1,
		Params:           params,
	}

	var resp struct {
		Preliminary *CalcResult `xml:"PreliminaryKASKOCalculationResult"`
		Final       *CalcResult `xml:"FinalKASKOCalculationResult"`
	}
	if err := c.Soap.Call(ctx, Namespace+method, req, &resp); err != nil {
		var fault *soap.Fault
		if errors.As(err, &fault) {
			return Outcome{Err: fault.Reason}
		}
		return Outcome{Err: err.Error()}
	}

	result := resp.Preliminary
	if result == nil {
		result = resp.Final
	}
	if result == nil {
		return Outcome{Err: MsgMalformedRequest}
	}
	return Outcome{Result: result}
}

// opParams covers the parameter shapes of the reference lookups; unset fields
// are omitted from the request element.
type opParams struct {
	XMLName          xml.Name
	AuthInfo         *AuthInfo `xml:"AuthInfo,omitempty"`
	Login            string    `xml:"Login,omitempty"`
	Mark             string    `xml:"Mark,omitempty"`
	Model            string    `xml:"Model,omitempty"`
	InsuranceCompany string    `xml:"InsuranceCompany,omitempty"`
	Product          string    `xml:"Product,omitempty"`
	OrderID          string    `xml:"OrderId,omitempty"`
}

func (c *Client) call(ctx context.Context, method string, params opParams, out interface{}) error {
	params.XMLName = xml.Name{Space: Namespace, Local: method}
	return c.Soap.Call(ctx, Namespace+method, params, out)
}

// GetAutoMarks returns the list of vehicle makes.
func (c *Client) GetAutoMarks(ctx context.Context) ([]string, error) {
	var resp struct {
		Marks []string `xml:"GetAutoMarksResult>string"`
	}
	if err := c.call(ctx, "GetAutoMarks", opParams{}, &resp); err != nil {
		return nil, err
	}
	return resp.Marks, nil
}

// GetAutoModels returns the models of one make.
func (c *Client) GetAutoModels(ctx context.Context, mark string) ([]string, error) {
	var resp struct {
		Models []string `xml:"GetAutoModelsResult>string"`
	}
	if err := c.call(ctx, "GetAutoModels", opParams{Mark: mark}, &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}

// GetAutoModifications returns the modifications of one make/model pair.
func (c *Client) GetAutoModifications(ctx context.Context, mark, model string) ([]Car, error) {
	var resp struct {
		Cars []Car `xml:"GetAutoModificationsResult>Car"`
	}
	if err := c.call(ctx, "GetAutoModifications", opParams{Mark: mark, Model: model}, &resp); err != nil {
		return nil, err
	}
	return resp.Cars, nil
}

// GetInsuranceCompanies returns the companies available to the given login.
func (c *Client) GetInsuranceCompanies(ctx context.Context) ([]Company, error) {
	var resp struct {
		Companies []Company `xml:"GetInsuranceCompaniesResult>InsuranceCompany"`
	}
	if err := c.call(ctx, "GetInsuranceCompanies", opParams{Login: c.Login}, &resp); err != nil {
		return nil, err
	}
	return resp.Companies, nil
}

// GetBanks returns the financing banks reference list.
func (c *Client) GetBanks(ctx context.Context) ([]Bank, error) {
	var resp struct {
		Banks []Bank `xml:"GetBanksResult>Bank"`
	}
	if err := c.call(ctx, "GetBanks", opParams{}, &resp); err != nil {
		return nil, err
	}
	return resp.Banks, nil
}

// GetSTOA returns the claim-settlement (repair shop) variants.
func (c *Client) GetSTOA(ctx context.Context) ([]Option, error) {
	var resp struct {
		Stoa []Option `xml:"GetSTOAResult>Option"`
	}
	if err := c.call(ctx, "GetSTOA", opParams{}, &resp); err != nil {
		return nil, err
	}
	return resp.Stoa, nil
}

// GetGOLimit returns a company's liability-extension insured sums.
func (c *Client) GetGOLimit(ctx context.Context, companyID string) ([]GOLimit, error) {
	var resp struct {
		Limits []GOLimit `xml:"GetGOLimitResult>GOLimit"`
	}
	if err := c.call(ctx, "GetGOLimit", opParams{InsuranceCompany: companyID}, &resp); err != nil {
		return nil, err
	}
	return resp.Limits, nil
}

// GetDOTypes returns the additional-equipment types.
func (c *Client) GetDOTypes(ctx context.Context) ([]DOType, error) {
	var resp struct {
		Types []DOType `xml:"GetDOTypesResult>DOType"`
	}
	if err := c.call(ctx, "GetDOTypes", opParams{}, &resp); err != nil {
		return nil, err
	}
	return resp.Types, nil
}

// GetOPF returns the legal-form reference list.
func (c *Client) GetOPF(ctx context.Context) ([]Option, error) {
	var resp struct {
		Opf []Option `xml:"GetOPFResult>Option"`
	}
	if err := c.call(ctx, "GetOPF", opParams{}, &resp); err != nil {
		return nil, err
	}
	return resp.Opf, nil
}

// GetInsuranceCompanySpecificOptions returns options specific to one company.
func (c *Client) GetInsuranceCompanySpecificOptions(ctx context.Context, companyID string) ([]CompanyOption, error) {
	var resp struct {
		Options []CompanyOption `xml:"GetInsuranceCompanySpecificOptionsResult>InsuranceCompanyOption"`
	}
	if err := c.call(ctx, "GetInsuranceCompanySpecificOptions", opParams{InsuranceCompany: companyID}, &resp); err != nil {
		return nil, err
	}
	return resp.Options, nil
}

// GetProducts returns a company's products.
func (c *Client) GetProducts(ctx context.Context, companyID string) ([]Option, error) {
	var resp struct {
		Products []Option `xml:"GetProductsResult>Product"`
	}
	if err := c.call(ctx, "GetProducts", opParams{InsuranceCompany: companyID}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// GetPrograms returns a company's programs, optionally filtered by product.
func (c *Client) GetPrograms(ctx context.Context, companyID, product string) ([]Option, error) {
	var resp struct {
		Programs []Option `xml:"GetProgramsResult>Program"`
	}
	if err := c.call(ctx, "GetPrograms", opParams{InsuranceCompany: companyID, Product: product}, &resp); err != nil {
		return nil, err
	}
	return resp.Programs, nil
}

// GetPUUMarks returns the anti-theft unit makes.
func (c *Client) GetPUUMarks(ctx context.Context) ([]Option, error) {
	var resp struct {
		Marks []Option `xml:"GetPUUMarksResult>PUUMark"`
	}
	if err := c.call(ctx, "GetPUUMarks", opParams{}, &resp); err != nil {
		return nil, err
	}
	return resp.Marks, nil
}

// GetPUUModels returns the anti-theft unit models of one make.
func (c *Client) GetPUUModels(ctx context.Context, markID string) ([]PuuModel, error) {
	var resp struct {
		Models []PuuModel `xml:"GetPUUModelsResult>PUUModel"`
	}
	if err := c.call(ctx, "GetPUUModels", opParams{Mark: markID}, &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}

// GetOptions returns general reference options and their allowed values.
func (c *Client) GetOptions(ctx context.Context) ([]RefInfo, error) {
	var resp struct {
		Options []RefInfo `xml:"GetOptionsResult>Option"`
	}
	if err := c.call(ctx, "GetOptions", opParams{}, &resp); err != nil {
		return nil, err
	}
	return resp.Options, nil
}

// GetRegionsExt returns regions with full names and KLADR codes.
func (c *Client) GetRegionsExt(ctx context.Context) ([]KladrRegion, error) {
	var resp struct {
		Regions []KladrRegion `xml:"GetRegionsExtResult>Region"`
	}
	if err := c.call(ctx, "GetRegionsExt", opParams{}, &resp); err != nil {
		return nil, err
	}
	return resp.Regions, nil
}

// GetCountries returns the country reference list.
func (c *Client) GetCountries(ctx context.Context) ([]Option, error) {
	var resp struct {
		Countries []Option `xml:"GetCountriesResult>Country"`
	}
	if err := c.call(ctx, "GetCountries", opParams{}, &resp); err != nil {
		return nil, err
	}
	return resp.Countries, nil
}

// GetAvailablePrintForms returns the printable forms for an order.
func (c *Client) GetAvailablePrintForms(ctx context.Context, orderID string) ([]PrintForm, error) {
	auth := c.authInfo()
	var resp struct {
		Forms []PrintForm `xml:"GetAvailablePrintFormsResult>PrintForm"`
	}
	if err := c.call(ctx, "GetAvailablePrintForms", opParams{AuthInfo: &auth, OrderID: orderID}, &resp); err != nil {
		return nil, err
	}
	return resp.Forms, nil
}
