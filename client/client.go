package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/BestDev/unreal-blueprint-mcp/schema"
	"github.com/viant/jsonrpc"
	"golang.org/x/oauth2"
)

const (
	// DefaultURL is the engine plugin address
	DefaultURL = "http://localhost:8080"
	// DefaultTimeout bounds every outbound call
	DefaultTimeout = 30 * time.Second
)

// Client represents engine plugin client
type Client struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	token        string
	timestampIDs bool
	lastID       atomic.Uint64
	logger       *slog.Logger
}

// request is the outbound JSON-RPC envelope; params are omitted when absent.
type request struct {
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Id      uint64          `json:"id"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type envelope struct {
	Jsonrpc string          `json:"jsonrpc"`
	Id      interface{}     `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *jsonrpc.Error  `json:"error"`
}

// BaseURL returns engine plugin base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NextRequestID returns a request id greater than any id issued before
func (c *Client) NextRequestID() uint64 {
	if !c.timestampIDs {
		return c.lastID.Add(1)
	}
	for {
		last := c.lastID.Load()
		next := uint64(time.Now().UnixMilli())
		if next <= last {
			next = last + 1
		}
		if c.lastID.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Invoke sends a JSON-RPC request; the returned response carries exactly one of result or error
func (c *Client) Invoke(ctx context.Context, method string, params interface{}) *jsonrpc.Response {
	id := c.NextRequestID()
	response := &jsonrpc.Response{Id: id, Jsonrpc: jsonrpc.Version}
	payload, err := newRequest(id, method, params)
	if err != nil {
		response.Error = jsonrpc.NewInvalidParamsError(err.Error(), nil)
		return response
	}
	body, rpcErr := c.do(ctx, http.MethodPost, c.baseURL, payload)
	if rpcErr != nil {
		response.Error = rpcErr
		return response
	}
	reply := &envelope{}
	if err = json.Unmarshal(body, reply); err != nil {
		response.Error = schema.NewInvalidResponse(err.Error(), body)
		return response
	}
	hasResult := len(reply.Result) > 0
	switch {
	case reply.Error != nil && hasResult:
		response.Error = schema.NewInvalidResponse("both result and error present", body)
	case reply.Error == nil && !hasResult:
		response.Error = schema.NewInvalidResponse("neither result nor error present", body)
	case reply.Error != nil:
		response.Error = reply.Error
	default:
		response.Result = reply.Result
	}
	return response
}

// Call invokes method and decodes its result into R
func Call[R any](ctx context.Context, c *Client, method string, params interface{}) (*R, error) {
	response := c.Invoke(ctx, method, params)
	if response.Error != nil {
		return nil, response.Error
	}
	var result R
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return nil, schema.NewInvalidResponse(err.Error(), response.Result)
	}
	return &result, nil
}

// Get retrieves a REST sub-path and returns the raw body
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	URL := c.baseURL + path
	if len(query) > 0 {
		URL += "?" + query.Encode()
	}
	data, rpcErr := c.do(ctx, http.MethodGet, URL, nil)
	if rpcErr != nil {
		return nil, rpcErr
	}
	return data, nil
}

// Post sends body as JSON to a REST sub-path and returns the raw body
func (c *Client) Post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, jsonrpc.NewInvalidParamsError(err.Error(), nil)
	}
	data, rpcErr := c.do(ctx, http.MethodPost, c.baseURL+path, payload)
	if rpcErr != nil {
		return nil, rpcErr
	}
	return data, nil
}

// Close releases idle connections
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) do(ctx context.Context, method, URL string, payload []byte) ([]byte, *jsonrpc.Error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	started := time.Now()
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, method, URL, body)
	if err != nil {
		return nil, schema.NewTransportFailure(err)
	}
	if payload != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		rpcErr := transportError(err)
		c.logger.Debug("request failed", "method", method, "url", URL, "code", rpcErr.Code, "elapsed", time.Since(started), "error", err)
		return nil, rpcErr
	}
	defer httpResponse.Body.Close()
	data, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, transportError(err)
	}
	c.logger.Debug("request completed", "method", method, "url", URL, "status", httpResponse.StatusCode, "elapsed", time.Since(started))
	if httpResponse.StatusCode != http.StatusOK {
		return nil, schema.NewHTTPError(httpResponse.StatusCode, data)
	}
	return data, nil
}

func newRequest(id uint64, method string, params interface{}) ([]byte, error) {
	ret := &request{Jsonrpc: jsonrpc.Version, Method: method, Id: id}
	if params != nil {
		var err error
		if raw, ok := params.(json.RawMessage); ok {
			ret.Params = raw
		} else if ret.Params, err = json.Marshal(params); err != nil {
			return nil, err
		}
		if string(ret.Params) == "null" {
			ret.Params = nil
		}
	}
	return json.Marshal(ret)
}

// New creates engine plugin client
func New(baseURL string, options ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	ret := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{}
	}
	if ret.token != "" {
		httpClient := *ret.httpClient
		httpClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: ret.token, TokenType: "Bearer"}),
			Base:   httpClient.Transport,
		}
		ret.httpClient = &httpClient
	}
	if ret.timestampIDs {
		ret.lastID.Store(uint64(time.Now().UnixMilli()) - 1)
	}
	return ret
}
