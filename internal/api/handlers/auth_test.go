package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/lightone/tce-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, payload map[string]string) *http.Response {
	t.Helper()

	body, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name           string
		request        map[string]string
		setup          func()
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful registration",
			request: map[string]string{
				"first_name": "Alice",
				"last_name":  "Walker",
				"username":   "alice",
				"email":      "alice@example.com",
				"password":   "secret123",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var user struct {
					Email    string `json:"email"`
					Username string `json:"username"`
					IsAdmin  bool   `json:"isAdmin"`
				}
				testutil.DecodeData(t, resp, &user)
				assert.Equal(t, "alice@example.com", user.Email)
				assert.Equal(t, "alice", user.Username)
				assert.False(t, user.IsAdmin)
			},
		},
		{
			name: "missing fields",
			request: map[string]string{
				"email":    "incomplete@example.com",
				"password": "secret123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			request: map[string]string{
				"first_name": "Bob",
				"last_name":  "Taken",
				"username":   "freshusername",
				"email":      "taken@example.com",
				"password":   "secret123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("taken@example.com").
					Build(t, ts.DB.DB)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty request body",
			request:        map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			resp := postJSON(t, ts.URL("/users/register"), tt.request)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_LoginAndProfile(t *testing.T) {
	ts := testutil.NewTestServer(t)

	// Register alice through the API, then exercise the full scenario.
	resp := postJSON(t, ts.URL("/users/register"), map[string]string{
		"first_name": "Alice",
		"last_name":  "Walker",
		"username":   "alice",
		"email":      "alice@example.com",
		"password":   "secret123",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/users/login"), map[string]string{
			"email":    "alice@example.com",
			"password": "wrongpassword",
		})
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid credentials.")
	})

	var token string
	t.Run("correct password yields token", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/users/login"), map[string]string{
			"email":    "alice@example.com",
			"password": "secret123",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var data struct {
			Token string `json:"token"`
		}
		testutil.DecodeData(t, resp, &data)
		require.NotEmpty(t, data.Token)
		token = data.Token
	})

	t.Run("profile without token", func(t *testing.T) {
		resp, err := http.Get(ts.URL("/users/profile"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("profile with token omits password", func(t *testing.T) {
		req := testutil.AuthorizedRequest(t, http.MethodGet, ts.URL("/users/profile"), token, nil, "")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := testutil.DecodeEnvelope(t, resp)
		data, ok := result["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", data["email"])

		for key := range data {
			assert.False(t, strings.Contains(strings.ToLower(key), "password"),
				"profile response leaked field %q", key)
		}
	})
}

func TestAuthHandler_AdminDashboardGating(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, userToken := testutil.NewUserBuilder().BuildAndLogin(t, ts)
	_, adminToken := testutil.NewUserBuilder().AsAdmin().BuildAndLogin(t, ts)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{
			name:           "no token is unauthorized",
			token:          "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-admin token is forbidden",
			token:          userToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin token succeeds",
			token:          adminToken,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.AuthorizedRequest(t, http.MethodGet, ts.URL("/users/admin/dashboard"), tt.token, nil, "")
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
