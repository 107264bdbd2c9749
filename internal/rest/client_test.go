package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilnworks/safetydesk/pkg/types"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c := NewClient("http://backend.test", types.ReportBBS)
	httpmock.ActivateNonDefault(c.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://backend.test/", types.ReportBBS)
	assert.Equal(t, "http://backend.test/api/bbs", c.collectionURL())
	assert.Equal(t, "http://backend.test/api/bbs/r1", c.recordURL("r1"))
}

func TestClientList(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "http://backend.test/api/bbs",
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id":"r1","status":"Open","area":"Kiln"},{"id":"r2","status":"Closed","area":"Press"}]`))

	records, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, types.StatusOpen, records[0].Status)
	assert.Equal(t, "Kiln", records[0].Fields["area"])
}

func TestClientListBackendError(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "http://backend.test/api/bbs",
		httpmock.NewStringResponder(http.StatusInternalServerError, "database locked"))

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "backend returned 500")
	assert.ErrorContains(t, err, "database locked")
}

func TestClientGet(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "http://backend.test/api/bbs/r1",
		httpmock.NewStringResponder(http.StatusOK, `{"id":"r1","status":"Open","area":"Kiln"}`))

	rec, err := c.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", rec.ID)
	assert.Equal(t, "Kiln", rec.Fields["area"])
}

func TestClientGetNotFound(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodGet, "http://backend.test/api/bbs/missing",
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"record not found"}`))

	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestClientUpdateStatus(t *testing.T) {
	c := newTestClient(t)
	var got map[string]string
	httpmock.RegisterResponder(http.MethodPatch, "http://backend.test/api/bbs/r1",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
				return nil, err
			}
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			return httpmock.NewStringResponse(http.StatusOK, `{}`), nil
		})

	require.NoError(t, c.UpdateStatus(context.Background(), "r1", types.StatusClosed))
	assert.Equal(t, map[string]string{"status": types.StatusClosed}, got)
}

func TestClientUpdateRecord(t *testing.T) {
	c := newTestClient(t)
	var got map[string]any
	httpmock.RegisterResponder(http.MethodPut, "http://backend.test/api/bbs/r1",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(http.StatusOK, `{}`), nil
		})

	fields := map[string]any{"area": "Press", "status": types.StatusInReview}
	require.NoError(t, c.UpdateRecord(context.Background(), "r1", fields))
	assert.Equal(t, "Press", got["area"])
	assert.Equal(t, types.StatusInReview, got["status"])
}

func TestClientUpdateRejected(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodPut, "http://backend.test/api/bbs/r1",
		httpmock.NewStringResponder(http.StatusBadRequest, "invalid status value"))

	err := c.UpdateRecord(context.Background(), "r1", map[string]any{"status": "Archived"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "backend returned 400")
}

func TestClientCreate(t *testing.T) {
	c := newTestClient(t)
	var recordPart string
	var photoName string
	var photoData []byte
	httpmock.RegisterResponder(http.MethodPost, "http://backend.test/api/bbs",
		func(req *http.Request) (*http.Response, error) {
			if err := req.ParseMultipartForm(1 << 20); err != nil {
				return nil, err
			}
			recordPart = req.FormValue("record")
			file, header, err := req.FormFile("photo")
			if err == nil {
				defer file.Close()
				photoName = header.Filename
				photoData, err = io.ReadAll(file)
				if err != nil {
					return nil, err
				}
			}
			return httpmock.NewStringResponse(http.StatusCreated, `{"id":"r9"}`), nil
		})

	photo := &types.Attachment{Filename: "kiln.jpg", Data: []byte{0xff, 0xd8}}
	id, err := c.Create(context.Background(), map[string]any{"area": "Kiln"}, photo)
	require.NoError(t, err)
	assert.Equal(t, "r9", id)

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(recordPart), &fields))
	assert.Equal(t, "Kiln", fields["area"])
	assert.Equal(t, "kiln.jpg", photoName)
	assert.Equal(t, photo.Data, photoData)
}

func TestClientCreateWithoutPhoto(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodPost, "http://backend.test/api/bbs",
		func(req *http.Request) (*http.Response, error) {
			if err := req.ParseMultipartForm(1 << 20); err != nil {
				return nil, err
			}
			if _, _, err := req.FormFile("photo"); err == nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, "unexpected photo"), nil
			}
			return httpmock.NewStringResponse(http.StatusCreated, `{"id":"r10"}`), nil
		})

	id, err := c.Create(context.Background(), map[string]any{"area": "Dock"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "r10", id)
}

func TestClientDelete(t *testing.T) {
	c := newTestClient(t)
	httpmock.RegisterResponder(http.MethodDelete, "http://backend.test/api/bbs/r1",
		httpmock.NewStringResponder(http.StatusNoContent, ""))

	require.NoError(t, c.Delete(context.Background(), "r1"))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}
