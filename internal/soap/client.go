package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Fault is a SOAP protocol-level fault returned by a provider.
type Fault struct {
	Code   string `xml:"faultcode"`
	Reason string `xml:"faultstring"`
}

func (f *Fault) Error() string {
	if f.Code == "" {
		return "soap: fault: " + f.Reason
	}
	return fmt.Sprintf("soap: fault %s: %s", f.Code, f.Reason)
}

// Client issues document-style SOAP 1.1 calls against a single service URL,
// authenticating with a WS-Security UsernameToken header. The underlying
// HTTP client is expensive to set up and shared process-wide; it is built
// lazily on first use and safe for concurrent callers.
type Client struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration

	mu   sync.Mutex
	http *http.Client
}

func (c *Client) httpClient() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.http == nil {
		timeout := c.Timeout
		if timeout == 0 {
			timeout = 3 * time.Minute
		}
		c.http = &http.Client{Timeout: timeout}
	}
	return c.http
}

// Close drops the shared HTTP client and its idle connections. Subsequent
// calls rebuild it.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.http != nil {
		c.http.CloseIdleConnections()
		c.http = nil
	}
}

type requestEnvelope struct {
	XMLName xml.Name      `xml:"soapenv:Envelope"`
	NS      string        `xml:"xmlns:soapenv,attr"`
	Header  requestHeader `xml:"soapenv:Header"`
	Body    requestBody   `xml:"soapenv:Body"`
}

type requestHeader struct {
	Security *security `xml:",omitempty"`
}

type security struct {
	XMLName xml.Name      `xml:"wsse:Security"`
	NS      string        `xml:"xmlns:wsse,attr"`
	Token   usernameToken `xml:"wsse:UsernameToken"`
}

type usernameToken struct {
	Username string        `xml:"wsse:Username"`
	Password tokenPassword `xml:"wsse:Password"`
}

type tokenPassword struct {
	Type  string `xml:"Type,attr"`
	Value string `xml:",chardata"`
}

type requestBody struct {
	Payload interface{}
}

type responseEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    struct {
		Fault *Fault `xml:"Fault"`
		Inner []byte `xml:",innerxml"`
	} `xml:"Body"`
}

const (
	envelopeNS     = "http://schemas.xmlsoap.org/soap/envelope/"
	wsseNS         = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"
	passwordText   = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-username-token-profile-1.0#PasswordText"
	soapContentTyp = "text/xml; charset=utf-8"
)

// Call performs one SOAP operation. The payload must carry an XMLName for the
// operation element; out receives the single response element from the body.
// A fault is returned as *Fault; any other failure is a transport error.
func (c *Client) Call(ctx context.Context, action string, payload interface{}, out interface{}) error {
	env := requestEnvelope{
		NS:   envelopeNS,
		Body: requestBody{Payload: payload},
	}
	if c.Username != "" {
		env.Header.Security = &security{
			NS: wsseNS,
			Token: usernameToken{
				Username: c.Username,
				Password: tokenPassword{Type: passwordText, Value: c.Password},
			},
		}
	}

	raw, err := xml.Marshal(env)
	if err != nil {
		return fmt.Errorf("soap: encode request: %w", err)
	}
	body := append([]byte(xml.Header), raw...)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("soap: build request: %w", err)
	}
	req.Header.Set("Content-Type", soapContentTyp)
	req.Header.Set("SOAPAction", action)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("soap: %s: %w", action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("soap: %s: read response: %w", action, err)
	}

	var respEnv responseEnvelope
	if err := xml.Unmarshal(respBody, &respEnv); err != nil {
		return fmt.Errorf("soap: %s: decode envelope: %w", action, err)
	}
	if respEnv.Body.Fault != nil {
		return respEnv.Body.Fault
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("soap: %s: status %d body: %s", action, resp.StatusCode, respBody)
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(respEnv.Body.Inner)) == 0 {
		return fmt.Errorf("soap: %s: empty response body", action)
	}
	if err := xml.Unmarshal(respEnv.Body.Inner, out); err != nil {
		return fmt.Errorf("soap: %s: decode result: %w", action, err)
	}
	return nil
}
