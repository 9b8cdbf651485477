package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	localCache "github.com/unilink-app/timeline/pkg/internal/cache"
	"github.com/unilink-app/timeline/pkg/internal/status"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
)

// User is the identity provider's view of a member. It is best-effort
// enrichment only; the Account table stays the source of truth for
// everything the timeline writes.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url"`
}

var client *http.Client

func NewClient() {
	client = &http.Client{}
}

func GetUser(externalID string) (*User, error) {
	if client == nil {
		NewClient()
	}

	url := fmt.Sprintf("%s/v1/users/%s", viper.GetString("identity.endpoint"), externalID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, status.Upstream("unable to build identity request", err)
	}
	req.Header.Set("Authorization", "Bearer "+viper.GetString("identity.secret_key"))

	resp, err := client.Do(req)
	if err != nil {
		return nil, status.Upstream("identity provider is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, status.NotFound(fmt.Sprintf("identity %s was not found", externalID))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, status.Upstream(fmt.Sprintf("identity provider answered status %d", resp.StatusCode), nil)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, status.Upstream("unable to read identity response", err)
	}

	var user User
	if err := jsoniter.Unmarshal(raw, &user); err != nil {
		return nil, status.Upstream("unable to parse identity response", err)
	}

	return &user, nil
}

func GetUserCacheKey(externalID string) string {
	return fmt.Sprintf("identity-user#%s", externalID)
}

// GetUserCached looks the identity up through the local cache first; hits
// are kept for five minutes.
func GetUserCached(externalID string) (*User, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	if hit, err := marshal.Get(ctx, GetUserCacheKey(externalID), new(User)); err == nil {
		return hit.(*User), nil
	}

	user, err := GetUser(externalID)
	if err != nil {
		return nil, err
	}

	_ = marshal.Set(
		ctx,
		GetUserCacheKey(externalID),
		*user,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"identity-user", fmt.Sprintf("identity#%s", externalID)}),
	)

	return user, nil
}

// GetUserAvatar returns the freshly resolved avatar URL of an external
// identity, empty when the identity has none.
func GetUserAvatar(externalID string) (string, error) {
	user, err := GetUserCached(externalID)
	if err != nil {
		return "", err
	}
	return user.ImageURL, nil
}
