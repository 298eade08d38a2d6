package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIMailerSend(t *testing.T) {
	var got sendRequest
	var gotAuth, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewAPIMailer(srv.URL, "re_key", "EstateDesk <noreply@example.com>")
	err := m.Send(context.Background(), Message{
		To:      "  Asha@Example.com ",
		Subject: "Verify your email",
		Text:    "Click the link.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_key", gotAuth)
	assert.Equal(t, "/emails", gotPath)
	assert.Equal(t, "EstateDesk <noreply@example.com>", got.From)
	assert.Equal(t, "asha@example.com", got.To)
	assert.Equal(t, "Verify your email", got.Subject)
	assert.Equal(t, "Click the link.", got.Text)
}

func TestAPIMailerSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	m := NewAPIMailer(srv.URL, "bad-key", "noreply@example.com")
	err := m.Send(context.Background(), Message{To: "asha@example.com", Subject: "hi", Text: "hi"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "401")
	assert.ErrorContains(t, err, "invalid api key")
}

func TestAPIMailerTrailingSlashBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	m := NewAPIMailer(srv.URL+"/", "re_key", "noreply@example.com")
	require.NoError(t, m.Send(context.Background(), Message{To: "a@example.com"}))
	assert.Equal(t, "/emails", gotPath)
}
