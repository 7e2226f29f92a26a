// Package repository talks to the external activities API.
// It uses net/http directly and returns decoded domain values.
package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Shivanand-hulikatti/activity-signup/internal/metrics"
	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

// ErrUnexpectedStatus is returned when the listing endpoint answers with a
// non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status from activities API")

// Operation names used for metrics.
const (
	opList       = "list"
	opSignup     = "signup"
	opUnregister = "unregister"
)

// maxBody caps how much of a response body is read.
const maxBody = 1 << 20

// ActivityRepository reads and mutates activities through the API.
type ActivityRepository struct {
	client  *http.Client
	baseURL string
	metrics *metrics.Upstream
}

// NewActivityRepository constructs an ActivityRepository. baseURL must not
// end with a slash.
func NewActivityRepository(client *http.Client, baseURL string, m *metrics.Upstream) *ActivityRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &ActivityRepository{client: client, baseURL: baseURL, metrics: m}
}

// List fetches the full activity collection. Any non-2xx status is an error.
func (r *ActivityRepository) List(ctx context.Context) (model.Activities, error) {
	start := time.Now()

	body, status, err := r.do(ctx, http.MethodGet, r.baseURL+"/activities")
	if err != nil {
		r.metrics.Observe(opList, metrics.ResultTransport, time.Since(start))
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if status < 200 || status >= 300 {
		r.metrics.Observe(opList, metrics.ResultRejected, time.Since(start))
		return nil, fmt.Errorf("list activities: %w (%d)", ErrUnexpectedStatus, status)
	}

	var acts model.Activities
	if err := json.Unmarshal(body, &acts); err != nil {
		r.metrics.Observe(opList, metrics.ResultTransport, time.Since(start))
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	r.metrics.Observe(opList, metrics.ResultOK, time.Since(start))
	return acts, nil
}

// Signup enrolls email in activity. A body that is not JSON is an error.
func (r *ActivityRepository) Signup(ctx context.Context, activity, email string) (model.Reply, error) {
	start := time.Now()

	body, status, err := r.do(ctx, http.MethodPost, r.signupURL(activity, email))
	if err != nil {
		r.metrics.Observe(opSignup, metrics.ResultTransport, time.Since(start))
		return model.Reply{}, fmt.Errorf("signup: %w", err)
	}

	reply, err := decodeReply(body, status)
	if err != nil {
		r.metrics.Observe(opSignup, metrics.ResultTransport, time.Since(start))
		return model.Reply{}, fmt.Errorf("decode signup reply: %w", err)
	}
	r.metrics.Observe(opSignup, resultFor(reply), time.Since(start))
	return reply, nil
}

// Unregister removes participant from activity. participant is passed as
// given; the API accepts any identifier string. An empty or non-JSON body
// decodes as an empty reply.
func (r *ActivityRepository) Unregister(ctx context.Context, activity, participant string) (model.Reply, error) {
	start := time.Now()

	body, status, err := r.do(ctx, http.MethodDelete, r.signupURL(activity, participant))
	if err != nil {
		r.metrics.Observe(opUnregister, metrics.ResultTransport, time.Since(start))
		return model.Reply{}, fmt.Errorf("unregister: %w", err)
	}

	reply, err := decodeReply(body, status)
	if err != nil {
		reply = model.Reply{Status: status}
	}
	r.metrics.Observe(opUnregister, resultFor(reply), time.Since(start))
	return reply, nil
}

func (r *ActivityRepository) signupURL(activity, identifier string) string {
	return r.baseURL + "/activities/" + encodeComponent(activity) + "/signup?email=" + encodeComponent(identifier)
}

func (r *ActivityRepository) do(ctx context.Context, method, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// replyBody mirrors the API's reply. detail is a string for domain errors
// but a list for request validation errors, so both fields stay raw.
type replyBody struct {
	Message json.RawMessage `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

func decodeReply(body []byte, status int) (model.Reply, error) {
	var rb replyBody
	if err := json.Unmarshal(bytes.TrimSpace(body), &rb); err != nil {
		return model.Reply{}, err
	}
	return model.Reply{
		Status:  status,
		Message: textOf(rb.Message),
		Detail:  textOf(rb.Detail),
	}, nil
}

func textOf(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func resultFor(reply model.Reply) string {
	if reply.OK() {
		return metrics.ResultOK
	}
	return metrics.ResultRejected
}

// encodeComponent percent-encodes s the way browsers' encodeURIComponent
// does for the characters that matter here: spaces become %20, not "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
