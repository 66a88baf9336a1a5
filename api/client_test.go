package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"photohunter-cli/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTokenProvider is a mock implementation of the token provider
type mockTokenProvider struct {
	token string
	err   error
}

func (m *mockTokenProvider) GetToken() (string, error) {
	return m.token, m.err
}

func TestClient_GetProfile(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse func(w http.ResponseWriter, r *http.Request)
		wantErr        bool
		wantMessage    string
		wantProfile    *Profile
	}{
		{
			name: "successful profile",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/user/profile", r.URL.Path)
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				assert.NotEmpty(t, r.Header.Get(auth.RequestIDHeader))

				json.NewEncoder(w).Encode(map[string]any{
					"user":      map[string]string{"full_name": "fullname", "avatar_url": "avatar_url"},
					"locations": []map[string]string{{"id": "l1", "title": "title 1"}, {"id": "l2", "title": "title 2"}},
					"favorites": []map[string]string{{"id": "l1", "title": "title 1"}},
				})
			},
			wantProfile: &Profile{
				User:      User{FullName: "fullname", AvatarURL: "avatar_url"},
				Locations: []Location{{ID: "l1", Title: "title 1"}, {ID: "l2", Title: "title 2"}},
				Favorites: []Location{{ID: "l1", Title: "title 1"}},
			},
		},
		{
			name: "unauthorized with message",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"message": "Access Denied"})
			},
			wantErr:     true,
			wantMessage: "Access Denied",
		},
		{
			name: "invalid response",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("invalid json"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResponse))
			defer server.Close()

			client := NewClient(server.URL, &mockTokenProvider{token: "test-token"})

			profile, err := client.GetProfile(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantMessage, auth.MessageOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProfile, profile)
		})
	}
}

func TestClient_GetProfile_TokenError(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL, &mockTokenProvider{err: errors.New("no active session")})

	_, err := client.GetProfile(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get token")
	assert.False(t, called, "no request should be sent without a token")
}

func TestClient_Register(t *testing.T) {
	tests := []struct {
		name           string
		req            RegistrationRequest
		serverResponse func(w http.ResponseWriter, r *http.Request)
		wantErr        bool
		wantMessage    string
		wantUser       *User
		wantNoRequest  bool
	}{
		{
			name: "successful registration",
			req:  RegistrationRequest{Email: "test@test.com", Password: "T3s!PA7sw0rd", Name: "fullname"},
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/user/register", r.URL.Path)
				var body RegistrationRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "fullname", body.Name)
				json.NewEncoder(w).Encode(User{FullName: "fullname"})
			},
			wantUser: &User{FullName: "fullname"},
		},
		{
			name: "email already registered",
			req:  RegistrationRequest{Email: "test@test.com", Password: "T3s!PA7sw0rd", Name: "fullname"},
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"message": "Email already registered"})
			},
			wantErr:     true,
			wantMessage: "Email already registered",
		},
		{
			name:          "missing name is rejected locally",
			req:           RegistrationRequest{Email: "test@test.com", Password: "pw"},
			wantErr:       true,
			wantMessage:   "Name is required",
			wantNoRequest: true,
		},
		{
			name:          "malformed email is rejected locally",
			req:           RegistrationRequest{Email: "nope", Password: "pw", Name: "n"},
			wantErr:       true,
			wantMessage:   "Email is not a valid address",
			wantNoRequest: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				if tt.serverResponse != nil {
					tt.serverResponse(w, r)
				}
			}))
			defer server.Close()

			client := NewClient(server.URL, &mockTokenProvider{})

			user, err := client.Register(context.Background(), tt.req)

			assert.Equal(t, !tt.wantNoRequest, called)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantMessage, auth.MessageOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestClient_ListLocations(t *testing.T) {
	tests := []struct {
		name      string
		near      *Coordinates
		wantQuery string
	}{
		{name: "all locations", near: nil, wantQuery: ""},
		{name: "near a point", near: &Coordinates{Lat: 50, Lng: 10.46484}, wantQuery: "lat=50&lng=10.46484"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/location", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				assert.Empty(t, r.Header.Get("Authorization"))

				json.NewEncoder(w).Encode([]map[string]any{
					{"id": "dsfdsfg4eyt", "title": "title", "description": "description l1", "lat": 50.0, "lng": 48},
				})
			}))
			defer server.Close()

			client := NewClient(server.URL, &mockTokenProvider{err: errors.New("no session")})

			locations, err := client.ListLocations(context.Background(), tt.near)

			require.NoError(t, err)
			assert.Equal(t, []Location{
				{ID: "dsfdsfg4eyt", Title: "title", Description: "description l1", Lat: 50, Lng: 48},
			}, locations)
		})
	}
}

func TestClient_ListLocations_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Location search unavailable"})
	}))
	defer server.Close()

	client := NewClient(server.URL, &mockTokenProvider{})

	locations, err := client.ListLocations(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, locations)
	assert.Equal(t, "Location search unavailable", auth.MessageOf(err))
}
