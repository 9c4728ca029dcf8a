package inspections

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"roofsite/internal/models"
)

const testKey = "service-role-key"

func TestInsertSendsNullOptionalFields(t *testing.T) {
	var got []map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/inspections", r.URL.Path)
		require.Equal(t, testKey, r.Header.Get("apikey"))
		require.Equal(t, "Bearer "+testKey, r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", testKey)
	err := client.Insert(context.Background(), models.NewInspection{Name: "A", Phone: "123"})
	require.NoError(t, err)

	require.Len(t, got, 1)
	row := got[0]
	require.Equal(t, "A", row["name"])
	require.Equal(t, "123", row["phone"])
	for _, field := range []string{"address", "preferred_time", "message", "source_page", "utm_source", "utm_medium", "utm_campaign"} {
		v, ok := row[field]
		require.True(t, ok, "%s must be present", field)
		require.Nil(t, v, "%s must be null", field)
	}
}

func TestInsertRESTErrors(t *testing.T) {
	status := http.StatusBadRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"code":"23502","message":"null value in column \"phone\"","details":null,"hint":null}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testKey)

	err := client.Insert(context.Background(), models.NewInspection{Name: "A", Phone: "1"})
	var restErr *RESTError
	require.True(t, errors.As(err, &restErr))
	require.Equal(t, http.StatusBadRequest, restErr.StatusCode)
	require.Equal(t, "23502", restErr.Code)
	require.True(t, restErr.Rejected())

	status = http.StatusBadGateway
	err = client.Insert(context.Background(), models.NewInspection{Name: "A", Phone: "1"})
	require.True(t, errors.As(err, &restErr))
	require.False(t, restErr.Rejected())
}

func TestNotConfigured(t *testing.T) {
	require.ErrorIs(t, NewClient("", testKey).Insert(context.Background(), models.NewInspection{}), ErrNotConfigured)

	_, err := NewClient("http://example.invalid", "").List(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, listSelect, r.URL.Query().Get("select"))
		require.Equal(t, "created_at.desc", r.URL.Query().Get("order"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"b6c1","name":"Newer","phone":"2","address":null,"message":"leak","preferred_time":null,"source_page":"/","utm_source":null,"created_at":"2026-02-02T10:00:00+00:00"},
			{"id":"a5b0","name":"Older","phone":"1","address":"Klang","message":null,"preferred_time":"am","source_page":null,"utm_source":"google","created_at":"2026-01-01T10:00:00+00:00"}
		]`))
	}))
	defer srv.Close()

	rows, err := NewClient(srv.URL, testKey).List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Newer", rows[0].Name)
	require.Nil(t, rows[0].Address)
	require.Equal(t, "leak", *rows[0].Message)
	require.Equal(t, "google", *rows[1].UTMSource)
	require.True(t, rows[0].CreatedAt.After(rows[1].CreatedAt))
}

func TestListEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	rows, err := NewClient(srv.URL, testKey).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}
