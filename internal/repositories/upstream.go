package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/aaravmahajanofficial/saonamtg-web/internal/errors"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	headerTotalPages = "X-WP-TotalPages"
	headerTotal      = "X-WP-Total"

	tracerName = "github.com/aaravmahajanofficial/saonamtg-web/internal/repositories"
)

// RequestEditor mutates every outgoing request, e.g. to attach credentials.
type RequestEditor func(req *http.Request)

// QueryCredentials attaches the WooCommerce consumer key/secret as query
// parameters, which is how the commerce API authenticates.
func QueryCredentials(key, secret string) RequestEditor {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Set("consumer_key", key)
		q.Set("consumer_secret", secret)
		req.URL.RawQuery = q.Encode()
	}
}

// NewHTTPClient returns a pooled client with an overall request timeout.
// A traced client propagates trace context and records otelhttp spans;
// leave it off for clients whose URLs carry secrets.
func NewHTTPClient(timeout time.Duration, traced bool) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	var rt http.RoundTripper = transport
	if traced {
		rt = otelhttp.NewTransport(transport)
	}

	return &http.Client{
		Transport: rt,
		Timeout:   timeout,
	}
}

// upstream performs JSON GET requests against one REST API base URL.
type upstream struct {
	api     string
	baseURL string
	client  *http.Client
	editors []RequestEditor
	tracer  trace.Tracer
}

func newUpstream(api, baseURL string, client *http.Client, editors ...RequestEditor) *upstream {
	if client == nil {
		client = http.DefaultClient
	}

	return &upstream{
		api:     api,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		editors: editors,
		tracer:  otel.Tracer(tracerName),
	}
}

// get decodes the JSON body of baseURL+path into dest (when non-nil) and
// returns the response headers. 404 maps to a NOT_FOUND AppError, any
// other failure to an UPSTREAM_ERROR.
func (u *upstream) get(ctx context.Context, path string, params url.Values, dest any) (http.Header, error) {
	start := time.Now()
	outcome := "error"

	defer func() { metrics.RecordUpstream(u.api, outcome, time.Since(start)) }()

	ctx, span := u.tracer.Start(ctx, u.api+".get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("upstream.api", u.api),
			attribute.String("upstream.path", path),
		),
	)
	defer span.End()

	endpoint := u.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, appErrors.InternalError("failed to build upstream request").WithDetail(path).WithError(err)
	}

	req.Header.Set("Accept", "application/json")

	for _, edit := range u.editors {
		edit(req)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")

		return nil, appErrors.UpstreamError(fmt.Sprintf("%s API request failed", u.api)).WithDetail(path).WithError(err)
	}

	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusNotFound {
		outcome = "not_found"
		_, _ = io.Copy(io.Discard, resp.Body)

		return resp.Header, appErrors.NotFoundError(fmt.Sprintf("%s API resource not found", u.api)).WithDetail(path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		span.SetStatus(codes.Error, resp.Status)

		return nil, appErrors.UpstreamError(fmt.Sprintf("%s API responded with status %d", u.api, resp.StatusCode)).
			WithDetail(strings.TrimSpace(string(snippet)))
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "decode failed")

			return nil, appErrors.UpstreamError(fmt.Sprintf("failed to decode %s API response", u.api)).WithDetail(path).WithError(err)
		}
	}

	outcome = "ok"

	return resp.Header, nil
}

// parseTotals reads the WordPress pagination headers. Missing or
// non-numeric values fall back to one page and zero items.
func parseTotals(h http.Header) (totalPages, total int) {
	return headerInt(h, headerTotalPages, 1), headerInt(h, headerTotal, 0)
}

func headerInt(h http.Header, name string, fallback int) int {
	raw := strings.TrimSpace(h.Get(name))
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return n
}
