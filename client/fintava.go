package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type FintavaOption func(*Fintava)

func WithConfig(conf *Config) FintavaOption {
	return func(f *Fintava) {
		f.conf = conf
	}
}

func WithCredentials(secretKey, environment string) FintavaOption {
	conf := NewConfig()
	conf.SecretKey, conf.Environment = secretKey, environment
	conf.Host = HostFor(environment)
	return WithConfig(conf)
}

func WithHost(host string) FintavaOption {
	return func(f *Fintava) {
		if f.conf != nil {
			f.conf.Host = host
		}
	}
}

func WithTimeout(timeout time.Duration) FintavaOption {
	return func(f *Fintava) {
		if f.conf != nil {
			f.conf.Timeout = timeout
		}
	}
}

func WithHTTPClient(hc *http.Client) FintavaOption {
	return func(f *Fintava) {
		f.http = hc
	}
}

// WithHeader sets a default header on every request. Caller-supplied values
// win over the client's own defaults on conflict.
func WithHeader(key, value string) FintavaOption {
	return func(f *Fintava) {
		f.overrides.Set(key, value)
	}
}

// FintavaClient builds the transport client shared by all resource modules.
// Configuration is immutable once construction returns.
func FintavaClient(log *logrus.Logger, opts ...FintavaOption) (out *Fintava, err error) {
	out = &Fintava{log: newFintavaLogger(log), overrides: http.Header{}}
	for i := range opts {
		opts[i](out)
	}
	if out.conf == nil {
		return nil, errors.Errorf("fintava configuration not initialised")
	} else if out.conf.SecretKey == "" {
		return nil, errors.Errorf("fintava secret key not set")
	}
	out.init()
	return
}

type Fintava struct {
	conf      *Config
	log       *fintavaLogger
	http      *http.Client
	headers   http.Header
	overrides http.Header
}

func (f Fintava) Config() Config {
	return *f.conf
}

func (f *Fintava) init() {
	if f.conf.Timeout <= 0 {
		f.conf.Timeout = defaultTimeout
	}
	if f.conf.Host == "" {
		f.conf.Host = HostFor(f.conf.Environment)
	}
	if f.conf.UserAgent == "" {
		f.conf.UserAgent = defaultUserAgent
	}
	f.headers = http.Header{}
	f.headers.Set("Authorization", "Bearer "+f.conf.SecretKey)
	f.headers.Set("Content-Type", "application/json")
	f.headers.Set("User-Agent", f.conf.UserAgent)
	for key, vals := range f.overrides {
		f.headers[http.CanonicalHeaderKey(key)] = vals
	}
	if f.http == nil {
		f.http = &http.Client{
			Timeout: f.conf.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		}
	}
}

// RawResult is the undecoded outcome of one successful round trip.
type RawResult struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *RawResult) ParseDataTo(out any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(r.Body, out), "failed to parse response into %T", out)
}

func (f *Fintava) Get(ctx context.Context, path string, params url.Values) (*RawResult, error) {
	return f.do(ctx, Endpoint{http.MethodGet, path}, nil, params)
}

func (f *Fintava) Post(ctx context.Context, path string, body any) (*RawResult, error) {
	return f.do(ctx, Endpoint{http.MethodPost, path}, body, nil)
}

func (f *Fintava) Put(ctx context.Context, path string, body any) (*RawResult, error) {
	return f.do(ctx, Endpoint{http.MethodPut, path}, body, nil)
}

func (f *Fintava) Patch(ctx context.Context, path string, body any) (*RawResult, error) {
	return f.do(ctx, Endpoint{http.MethodPatch, path}, body, nil)
}

func (f *Fintava) Delete(ctx context.Context, path string, body any) (*RawResult, error) {
	return f.do(ctx, Endpoint{http.MethodDelete, path}, body, nil)
}

// do performs exactly one round trip. Any failure surfaces as a normalized
// *ErrorResponse; a failed call is never retried.
func (f *Fintava) do(ctx context.Context, endpoint Endpoint, body any, query url.Values) (*RawResult, error) {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, requestError(errors.Wrapf(err, "failed to encode request body"))
		}
		payload = bytes.NewReader(buf)
	}
	target := endpoint.Url(f.conf.Host)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, endpoint.Method, target, payload)
	if err != nil {
		return nil, requestError(err)
	}
	requestId := f.log.getRequestID(ctx)
	for key, vals := range f.headers {
		req.Header[key] = vals
	}
	req.Header.Set("X-Request-Id", requestId.String())

	entry := f.log.request(requestId, endpoint.Method, target)
	started := time.Now()
	res, err := f.http.Do(req)
	if err != nil {
		entry.WithError(err).Debug("request failed")
		return nil, networkError()
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	f.log.response(entry, res.StatusCode, started)
	if err != nil {
		return nil, networkError()
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, responseError(res.StatusCode, raw)
	}
	return &RawResult{StatusCode: res.StatusCode, Header: res.Header, Body: raw}, nil
}

// Request performs one round trip against endpoint and decodes the response
// envelope into R. Decode failures on a 2xx body are programmer/shape errors
// and propagate wrapped, not normalized.
func Request[R any](f *Fintava, ctx context.Context, endpoint Endpoint, body any, query url.Values) (out R, err error) {
	res, err := f.do(ctx, endpoint, body, query)
	if err != nil {
		return out, err
	}
	if err = res.ParseDataTo(&out); err != nil {
		return out, err
	}
	return out, nil
}
