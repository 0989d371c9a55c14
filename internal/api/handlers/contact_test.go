package handlers_test

import (
	"net/http"
	"testing"

	"github.com/lightone/tce-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("anonymous visitor can submit", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/contactUs/"), map[string]string{
			"name":    "Liam O'Brien",
			"email":   "liam@example.com",
			"phone":   "+353 86 123 4567",
			"tour":    "Northern Lights Expedition",
			"message": "Do you run this tour in late March?",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var message struct {
			ID       string `json:"id"`
			FullName string `json:"fullname"`
			Email    string `json:"email"`
		}
		testutil.DecodeData(t, resp, &message)
		assert.Equal(t, "Liam O'Brien", message.FullName)
		assert.NotEmpty(t, message.ID)
	})

	t.Run("missing required fields", func(t *testing.T) {
		resp := postJSON(t, ts.URL("/contactUs/"), map[string]string{
			"name": "No Email",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestContactHandler_AdminInbox(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, adminToken := testutil.NewUserBuilder().AsAdmin().BuildAndLogin(t, ts)

	resp := postJSON(t, ts.URL("/contactUs/"), map[string]string{
		"name":    "Anna Berg",
		"email":   "anna@example.com",
		"message": "Is airport pickup included?",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID string `json:"id"`
	}
	testutil.DecodeData(t, resp, &created)
	resp.Body.Close()

	t.Run("list requires admin", func(t *testing.T) {
		resp, err := http.Get(ts.URL("/contactUs/"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("admin reads the inbox", func(t *testing.T) {
		req := testutil.AuthorizedRequest(t, http.MethodGet, ts.URL("/contactUs/"), adminToken, nil, "")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := testutil.DecodeEnvelope(t, resp)
		assert.Equal(t, float64(1), result["count"])
	})

	t.Run("admin reads a single message", func(t *testing.T) {
		req := testutil.AuthorizedRequest(t, http.MethodGet, ts.URL("/contactUs/"+created.ID), adminToken, nil, "")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var message struct {
			Message string `json:"message"`
		}
		testutil.DecodeData(t, resp, &message)
		assert.Equal(t, "Is airport pickup included?", message.Message)
	})

	t.Run("admin deletes a message", func(t *testing.T) {
		req := testutil.AuthorizedRequest(t, http.MethodDelete, ts.URL("/contactUs/"+created.ID), adminToken, nil, "")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		again := testutil.AuthorizedRequest(t, http.MethodDelete, ts.URL("/contactUs/"+created.ID), adminToken, nil, "")
		resp, err = http.DefaultClient.Do(again)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
