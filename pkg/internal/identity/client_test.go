package identity

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	localCache "github.com/unilink-app/timeline/pkg/internal/cache"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := localCache.NewStore(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/user_abc", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user_abc","username":"alice","first_name":"Alice","last_name":"Liddell","image_url":"https://img.example.com/alice.png"}`))
	}))
	defer srv.Close()

	viper.Set("identity.endpoint", srv.URL)
	viper.Set("identity.secret_key", "sk_test")

	user, err := GetUser("user_abc")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice", user.FirstName)
	assert.Equal(t, "https://img.example.com/alice.png", user.ImageURL)
}

func TestGetUserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	viper.Set("identity.endpoint", srv.URL)

	_, err := GetUser("user_gone")
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeNotFound))
}

func TestGetUserUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	viper.Set("identity.endpoint", srv.URL)

	_, err := GetUser("user_unlucky")
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeUpstreamDegraded))
}

func TestGetUserUnreachable(t *testing.T) {
	viper.Set("identity.endpoint", "http://127.0.0.1:1")

	_, err := GetUser("user_isolated")
	require.Error(t, err)
	assert.True(t, status.IsCode(err, status.CodeUpstreamDegraded))
}

func TestGetUserAvatar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user_pic","username":"bob","image_url":"https://img.example.com/bob.png"}`))
	}))
	defer srv.Close()

	viper.Set("identity.endpoint", srv.URL)

	avatar, err := GetUserAvatar("user_pic")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/bob.png", avatar)
}
