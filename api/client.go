package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"photohunter-cli/auth"
	"photohunter-cli/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TokenProvider defines the interface for token management
type TokenProvider interface {
	GetToken() (string, error)
}

// ClientInterface defines the interface for API client operations
type ClientInterface interface {
	Register(ctx context.Context, req RegistrationRequest) (*User, error)
	GetProfile(ctx context.Context) (*Profile, error)
	ListLocations(ctx context.Context, near *Coordinates) ([]Location, error)
}

// Client represents the API client
type Client struct {
	httpClient    *http.Client
	baseURL       string
	tokenProvider TokenProvider
	validate      *validator.Validate
}

// RegistrationRequest is the body of POST /user/register
type RegistrationRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=128"`
}

// User is the public part of a user account
type User struct {
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

// Location is a photo spot owned or favourited by a user
type Location struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// Coordinates is a point used to search for nearby locations
type Coordinates struct {
	Lat float64
	Lng float64
}

// Profile is the response of GET /user/profile
type Profile struct {
	User      User       `json:"user"`
	Locations []Location `json:"locations"`
	Favorites []Location `json:"favorites"`
}

// NewClient creates a new API client
func NewClient(baseURL string, tokenProvider TokenProvider) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:       strings.TrimRight(baseURL, "/"),
		tokenProvider: tokenProvider,
		validate:      validator.New(),
	}
}

// Register creates a new account. Backend rejections come back as *auth.AuthError.
func (c *Client) Register(ctx context.Context, reg RegistrationRequest) (*User, error) {
	if err := c.validate.Struct(reg); err != nil {
		return nil, &auth.AuthError{Message: validationMessage(err), Err: err}
	}

	data, err := json.Marshal(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/register", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var user User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile retrieves the profile of the signed-in user
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	token, err := c.tokenProvider.GetToken()
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var profile Profile
	if err := c.do(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListLocations retrieves public locations. With near set, the backend
// returns only the locations around that point.
func (c *Client) ListLocations(ctx context.Context, near *Coordinates) ([]Location, error) {
	endpoint := c.baseURL + "/api/location"
	if near != nil {
		query := url.Values{}
		query.Set("lat", strconv.FormatFloat(near.Lat, 'f', -1, 64))
		query.Set("lng", strconv.FormatFloat(near.Lng, 'f', -1, 64))
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var locations []Location
	if err := c.do(req, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *Client) do(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set(auth.RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Warnw("api request failed", "request_id", requestID, "path", req.URL.Path, "error", err)
		return &auth.AuthError{Err: fmt.Errorf("failed to make request: %w", err)}
	}
	defer resp.Body.Close()

	logger.Log.Debugw("api response", "request_id", requestID, "path", req.URL.Path, "status", resp.StatusCode)

	if err := auth.CheckResponse(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// validationMessage turns the first field error into text for the form
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Invalid registration data"
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Email is not a valid address"
	case "max":
		return fmt.Sprintf("%s is too long", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
