package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"photohunter-cli/logger"

	"github.com/google/uuid"
)

// RequestIDHeader is set on every request sent to the backend
const RequestIDHeader = "X-Request-ID"

// HTTPAuth implements AuthProvider against the PhotoHunter backend
type HTTPAuth struct {
	httpClient *http.Client
	baseURL    string
}

type loginResponse struct {
	JWT string `json:"jwt"`
}

type errorBody struct {
	Message string `json:"message"`
}

// NewHTTPAuth creates a provider that posts to {baseURL}/user/login
func NewHTTPAuth(baseURL string) *HTTPAuth {
	return &HTTPAuth{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SignIn exchanges email and password for an access token
func (h *HTTPAuth) SignIn(ctx context.Context, email, password string) (string, error) {
	data, err := json.Marshal(Credentials{Email: email, Password: password})
	if err != nil {
		return "", &AuthError{Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/user/login", bytes.NewReader(data))
	if err != nil {
		return "", &AuthError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		logger.Log.Warnw("login request failed", "request_id", requestID, "error", err)
		return "", &AuthError{Err: fmt.Errorf("failed to make request: %w", err)}
	}
	defer resp.Body.Close()

	if err := CheckResponse(resp); err != nil {
		logger.Log.Debugw("login rejected", "request_id", requestID, "status", resp.StatusCode)
		return "", err
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &AuthError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if body.JWT == "" {
		return "", &AuthError{Status: resp.StatusCode, Err: fmt.Errorf("response carried no token")}
	}

	return body.JWT, nil
}

// CheckResponse turns a non-2xx response into an *AuthError, reading the
// server message from a JSON body of the form {"message": "..."}.
// A body that is not JSON or has no message yields an AuthError with an empty Message.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return &AuthError{Status: resp.StatusCode, Err: fmt.Errorf("failed to read error body: %w", err)}
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return &AuthError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	return &AuthError{
		Status:  resp.StatusCode,
		Message: body.Message,
		Err:     fmt.Errorf("unexpected status code: %d", resp.StatusCode),
	}
}
