// Package hkp implements a client for the OpenPGP HTTP Keyserver Protocol
// (draft-shaw-openpgp-hkp-00): searching a keyserver's index, retrieving
// armored keys and submitting them.
package hkp

import (
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/gohkp/gohkp/mr"
)

const (
	// DefaultPort is the IANA-assigned HKP port.
	DefaultPort = 11371

	lookupPath = "/pks/lookup"
	submitPath = "/pks/add"
	userAgent  = "gohkp"
)

// ErrKeyNotFound means the keyserver answered, but has no key matching the
// requested id.
var ErrKeyNotFound = fmt.Errorf("public key not found")

// A Client issues HKP requests against a single keyserver. The keyserver
// location is fixed at construction and the Client holds no other state,
// so it is safe to reuse across calls.
type Client struct {
	client    *http.Client // HTTP client used to talk to the keyserver.
	BaseURL   *url.URL     // Base URL of the keyserver, including port.
	UserAgent string       // User agent sent with every request.
}

// New returns a Client for the keyserver at the given host and port.
// host may carry an http:// or https:// scheme; without one, http:// is
// assumed. A port of 0 selects DefaultPort.
func New(host string, port int) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("missing keyserver host")
	}
	if port == 0 {
		port = DefaultPort
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	parsedURL, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("error parsing keyserver URL '%s': %v", host, err)
	}
	parsedURL.Host = parsedURL.Hostname() + ":" + strconv.Itoa(port)

	return &Client{
		client:    http.DefaultClient,
		BaseURL:   parsedURL,
		UserAgent: userAgent,
	}, nil
}

// Search asks the keyserver for its index of keys matching query and
// parses the answer into key records, in the server's order.
func (c *Client) Search(query string) ([]mr.KeyRecord, error) {
	return c.search(query, false)
}

// SearchExact is Search with the HKP exact flag set, so the keyserver only
// returns keys matching query exactly.
func (c *Client) SearchExact(query string) ([]mr.KeyRecord, error) {
	return c.search(query, true)
}

func (c *Client) search(query string, exact bool) ([]mr.KeyRecord, error) {
	if query == "" {
		return nil, fmt.Errorf("missing search query")
	}

	params := url.Values{}
	params.Set("op", "index")
	params.Set("options", "mr")
	params.Set("search", query)
	if exact {
		params.Set("exact", "on")
	} else {
		params.Set("exact", "off")
	}

	body, _, err := c.get(lookupPath, params)
	if err != nil {
		return nil, err
	}
	return mr.Parse(body)
}

// Retrieve fetches the ASCII-armored key with the given id from the
// keyserver. keyID may be a short id, long id or full fingerprint, with or
// without a leading 0x. Retrieval by general query isn't supported, since
// queries can be ambiguous.
func (c *Client) Retrieve(keyID string) (string, error) {
	normalized, err := normalizeKeyID(keyID)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("op", "get")
	params.Set("options", "mr")
	params.Set("search", normalized)

	body, response, err := c.get(lookupPath, params)
	if err != nil {
		if response != nil && response.StatusCode == http.StatusNotFound {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return strings.TrimRightFunc(body, unicode.IsSpace), nil
}

// Submit uploads ASCII-armored key material to the keyserver. The server's
// response body isn't parsed: a 2xx status means the key was accepted.
func (c *Client) Submit(armoredKey string) error {
	if armoredKey == "" {
		return fmt.Errorf("missing key text")
	}

	data := url.Values{}
	data.Set("keytext", armoredKey)
	data.Set("options", "mr")

	endpoint := *c.BaseURL
	endpoint.Path = submitPath

	request, err := http.NewRequest("POST", endpoint.String(), strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.UserAgent != "" {
		request.Header.Set("User-Agent", c.UserAgent)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if !isSuccess(response.StatusCode) {
		return makeErrorForResponse(response)
	}
	return nil
}

// normalizeKeyID checks that keyID looks like an OpenPGP key id or
// fingerprint and prefixes it with 0x, as the lookup interface requires.
// Accepted lengths are 8 (short id), 16 (long id), 32 (V3 fingerprint) and
// 40 (V4 fingerprint) hex digits.
func normalizeKeyID(keyID string) (string, error) {
	hexDigits := strings.TrimPrefix(keyID, "0x")
	switch len(hexDigits) {
	case 8, 16, 32, 40:
		return "0x" + hexDigits, nil
	}
	return "", fmt.Errorf("no or invalid key id '%s'", keyID)
}

// get issues a GET against path with the given query parameters and
// returns the response body. On a non-2xx status the response is returned
// alongside the error so callers can branch on the status code.
func (c *Client) get(path string, params url.Values) (string, *http.Response, error) {
	endpoint := *c.BaseURL
	endpoint.Path = path
	endpoint.RawQuery = params.Encode()

	request, err := http.NewRequest("GET", endpoint.String(), nil)
	if err != nil {
		return "", nil, err
	}
	if c.UserAgent != "" {
		request.Header.Set("User-Agent", c.UserAgent)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return "", nil, err
	}
	defer response.Body.Close()

	if !isSuccess(response.StatusCode) {
		return "", response, makeErrorForResponse(response)
	}

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return "", response, fmt.Errorf("error reading response body: %v", err)
	}
	return string(body), response, nil
}

func makeErrorForResponse(response *http.Response) error {
	detail := decodeErrorDetail(response)
	if detail != "" {
		return fmt.Errorf("keyserver error: %d %s", response.StatusCode, detail)
	}
	return fmt.Errorf("keyserver error: %d", response.StatusCode)
}

// decodeErrorDetail pulls the first line of the error body for context.
// HKP servers answer errors with plain text or HTML.
func decodeErrorDetail(response *http.Response) string {
	if response.Body == nil {
		return ""
	}
	body, err := ioutil.ReadAll(io.LimitReader(response.Body, 512))
	if err != nil {
		return ""
	}
	firstLine := strings.SplitN(strings.TrimSpace(string(body)), "\n", 2)[0]
	return strings.TrimSpace(firstLine)
}

func isSuccess(httpStatusCode int) bool {
	return httpStatusCode/100 == 2
}
