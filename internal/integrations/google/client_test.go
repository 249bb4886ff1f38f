package google

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/m04kA/hotel-booking-service/pkg/logger"
)

func newTestServer(t *testing.T, userinfo string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"invalid_grant"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"access","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/oauth2/v2/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, userinfo)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(server *httptest.Server) *Client {
	c := NewClient(Config{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://localhost/callback"}, logger.NewNop())
	c.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:   server.URL + "/auth",
		TokenURL:  server.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	c.userinfoEndpoint = server.URL + "/"
	return c
}

func TestAuthCodeURL(t *testing.T) {
	c := NewClient(Config{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://localhost/callback"}, logger.NewNop())

	raw := c.AuthCodeURL("state-123")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "state-123", parsed.Query().Get("state"))
	assert.Equal(t, "client", parsed.Query().Get("client_id"))
	assert.Contains(t, parsed.Query().Get("scope"), "openid")
}

func TestFetchProfile_Success(t *testing.T) {
	server := newTestServer(t, `{"id":"1234","email":"guest@example.com","name":"Guest One","picture":"https://lh3/p.png","verified_email":true}`)

	profile, err := newTestClient(server).FetchProfile(context.Background(), "good-code")

	require.NoError(t, err)
	assert.Equal(t, &Profile{
		Subject:  "1234",
		Email:    "guest@example.com",
		Name:     "Guest One",
		Picture:  "https://lh3/p.png",
		Verified: true,
	}, profile)
}

func TestFetchProfile_BadCode(t *testing.T) {
	server := newTestServer(t, `{}`)

	_, err := newTestClient(server).FetchProfile(context.Background(), "bad-code")

	assert.ErrorIs(t, err, ErrExchange)
}

func TestFetchProfile_UnverifiedEmail(t *testing.T) {
	server := newTestServer(t, `{"id":"1234","email":"guest@example.com","verified_email":false}`)

	_, err := newTestClient(server).FetchProfile(context.Background(), "good-code")

	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestFetchProfile_EmptyCode(t *testing.T) {
	_, err := NewClient(Config{}, logger.NewNop()).FetchProfile(context.Background(), "")
	assert.ErrorIs(t, err, ErrExchange)
}
