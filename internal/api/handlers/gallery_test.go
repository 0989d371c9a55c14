package handlers_test

import (
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lightone/tce-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGalleryImage(t *testing.T, ts *testutil.TestServer, token, alt string) (string, string) {
	t.Helper()

	body, contentType := testutil.MultipartBody(t,
		map[string]string{"alt": alt},
		"image", "landscape.webp", "image/webp", jpegBytes(256<<10))
	req := testutil.AuthorizedRequest(t, http.MethodPost, ts.URL("/gallery/"), token, body, contentType)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var image struct {
		ID  string `json:"id"`
		Src string `json:"src"`
		Alt string `json:"alt"`
	}
	testutil.DecodeData(t, resp, &image)
	require.True(t, strings.HasPrefix(image.Src, "/img/gallery/"), "unexpected src %q", image.Src)
	return image.ID, image.Src
}

func TestGalleryHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, adminToken := testutil.NewUserBuilder().AsAdmin().BuildAndLogin(t, ts)

	t.Run("stores image and serves it publicly", func(t *testing.T) {
		_, src := createGalleryImage(t, ts, adminToken, "Sunset over the fjord")

		resp, err := http.Get(ts.URL(src))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("rejects request without a file", func(t *testing.T) {
		body, contentType := testutil.MultipartBody(t, map[string]string{"alt": "no file"}, "", "", "", nil)
		req := testutil.AuthorizedRequest(t, http.MethodPost, ts.URL("/gallery/"), adminToken, body, contentType)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Image file required")
	})

	t.Run("requires admin", func(t *testing.T) {
		body, contentType := testutil.MultipartBody(t,
			map[string]string{"alt": "x"}, "image", "x.png", "image/png", jpegBytes(1024))
		req := testutil.AuthorizedRequest(t, http.MethodPost, ts.URL("/gallery/"), "", body, contentType)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGalleryHandler_ListAndDelete(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, adminToken := testutil.NewUserBuilder().AsAdmin().BuildAndLogin(t, ts)

	id, src := createGalleryImage(t, ts, adminToken, "Harbour at dawn")
	createGalleryImage(t, ts, adminToken, "Old town streets")

	t.Run("list is public", func(t *testing.T) {
		resp, err := http.Get(ts.URL("/gallery/"))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := testutil.DecodeEnvelope(t, resp)
		assert.Equal(t, float64(2), result["count"])
	})

	t.Run("delete removes record and file", func(t *testing.T) {
		req := testutil.AuthorizedRequest(t, http.MethodDelete, ts.URL("/gallery/"+id), adminToken, nil, "")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		listResp, err := http.Get(ts.URL("/gallery/"))
		require.NoError(t, err)
		defer listResp.Body.Close()
		result := testutil.DecodeEnvelope(t, listResp)
		assert.Equal(t, float64(1), result["count"])

		assert.Eventually(t, func() bool {
			_, err := os.Stat(storedPath(ts, src))
			return os.IsNotExist(err)
		}, 3*time.Second, 20*time.Millisecond, "deleted gallery image file remains")
	})

	t.Run("delete unknown id", func(t *testing.T) {
		req := testutil.AuthorizedRequest(t, http.MethodDelete, ts.URL("/gallery/00000000-0000-0000-0000-000000000000"), adminToken, nil, "")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
