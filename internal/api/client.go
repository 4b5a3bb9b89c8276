// Package api wraps outbound HTTP calls to the campus parking backend.
// Every call resolves the configured base address, attaches the saved
// credential as a bearer header, and records a diagnostic entry for the
// request/response pair. Transport failures come back tagged Connectivity,
// uninterpretable server answers tagged Server with the server's own
// message taking precedence over a generic one. The client never retries;
// resilience lives with the callers and the fallback dataset.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/levietphu/campuspark/internal/common"
	"github.com/levietphu/campuspark/internal/endpoint"
	"github.com/levietphu/campuspark/internal/logging"
	"github.com/levietphu/campuspark/internal/models"
	"github.com/levietphu/campuspark/internal/session"
)

const (
	loginPath   = "/api_users/login/"
	profilePath = "/api_users/sinhvien/%s/"
	historyPath = "/api_users/lichsuravao/by-ma-sv/%s/"
	topUpPath   = "/api_nap_tien/"
)

// Client is the backend operation surface consumed by the services layer.
type Client interface {
	Login(ctx context.Context, studentID, password string) (*models.UserProfile, error)
	Profile(ctx context.Context, studentID string) (*models.UserProfile, error)
	History(ctx context.Context, studentID string) ([]models.HistoryRecord, error)
	TopUp(ctx context.Context, req models.TopUpRequest) (*models.TopUpReceipt, error)
}

// HTTPClient implements Client over REST endpoints.
type HTTPClient struct {
	endpoints *endpoint.Store
	sessions  *session.Store
	http      *http.Client
	log       logging.Logger
}

func NewHTTPClient(endpoints *endpoint.Store, sessions *session.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		endpoints: endpoints,
		sessions:  sessions,
		http:      &http.Client{Timeout: 10 * time.Second},
		log:       log.With("component", "api"),
	}
}

// send issues one call against baseURL+path and decodes a 2xx body into out
// (when out is non-nil). See the package comment for the failure contract.
func (c *HTTPClient) send(ctx context.Context, method, path string, body any, out any) error {
	base := c.endpoints.Get(ctx)
	url := strings.TrimRight(base, "/") + path

	var reqBody io.Reader
	var reqJSON []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqJSON = data
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token := c.sessions.Credential(ctx)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "request sent",
		"method", method, "url", url, "authorized", token != "", "body", string(reqJSON))

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "url", url, "error", err.Error())
		return common.WrapError(common.KindConnectivity, err, "cannot reach server at %s", base)
	}
	defer resp.Body.Close()

	respJSON, err := io.ReadAll(resp.Body)
	if err != nil {
		return common.WrapError(common.KindConnectivity, err, "reading response from %s", base)
	}

	c.log.Debug(ctx, "response received",
		"method", method, "url", url, "status", resp.StatusCode, "body", string(respJSON))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(respJSON, &eb)
		msg := eb.text()
		if msg == "" {
			msg = fmt.Sprintf("server returned %s", resp.Status)
		}
		return &common.Error{Kind: common.KindServer, Message: msg, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.Unmarshal(respJSON, out); err != nil {
			return common.WrapError(common.KindServer, err, "unexpected response shape from %s", url)
		}
	}
	return nil
}

// Login submits credentials. An auth rejection (401/403 or success=false)
// comes back as InvalidCredentials carrying the server's message; other
// statuses (malformed request, rate limit) keep their Server tag.
func (c *HTTPClient) Login(ctx context.Context, studentID, password string) (*models.UserProfile, error) {
	var resp loginResponse
	err := c.send(ctx, http.MethodPost, loginPath, loginRequest{StudentID: studentID, Password: password}, &resp)
	if err != nil {
		status := common.ErrorStatus(err)
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, &common.Error{Kind: common.KindInvalidCredentials, Message: err.Error(), Status: status}
		}
		return nil, err
	}

	if !resp.Success || resp.Student == nil {
		msg := resp.Message
		if msg == "" {
			msg = "invalid student id or password"
		}
		return nil, common.NewError(common.KindInvalidCredentials, "%s", msg)
	}

	profile := resp.Student.profile()
	return &profile, nil
}

// Profile fetches a student's account record.
func (c *HTTPClient) Profile(ctx context.Context, studentID string) (*models.UserProfile, error) {
	var payload studentPayload
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf(profilePath, studentID), nil, &payload); err != nil {
		return nil, err
	}
	profile := payload.profile()
	return &profile, nil
}

// History fetches a student's entry/exit records.
func (c *HTTPClient) History(ctx context.Context, studentID string) ([]models.HistoryRecord, error) {
	var payloads []historyPayload
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf(historyPath, studentID), nil, &payloads); err != nil {
		return nil, err
	}

	records := make([]models.HistoryRecord, 0, len(payloads))
	for _, p := range payloads {
		records = append(records, p.record())
	}
	return records, nil
}

// TopUp submits a balance top-up. Failures are returned as-is; the caller
// decides how to surface them, never this layer.
func (c *HTTPClient) TopUp(ctx context.Context, req models.TopUpRequest) (*models.TopUpReceipt, error) {
	wire := topUpRequest{
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Note:          req.Note,
	}
	if wire.Method == "" {
		wire.Method = models.DefaultTopUpMethod
	}

	var resp topUpResponse
	if err := c.send(ctx, http.MethodPost, topUpPath, wire, &resp); err != nil {
		return nil, err
	}

	receipt := models.TopUpReceipt{
		Success:       resp.Success,
		Message:       resp.Message,
		TransactionID: resp.TransactionID,
	}
	if receipt.TransactionID == "" {
		receipt.TransactionID = req.TransactionID
	}
	return &receipt, nil
}
