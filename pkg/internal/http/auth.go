package http

import (
	"crypto/rsa"
	"fmt"
	"os"
	"strings"

	"github.com/unilink-app/timeline/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var identityPublicKey *rsa.PublicKey

func LoadIdentityPublicKey() error {
	raw, err := os.ReadFile(viper.GetString("security.identity_public_key"))
	if err != nil {
		return err
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(raw)
	if err != nil {
		return err
	}

	identityPublicKey = key
	return nil
}

// authMiddleware verifies the bearer token the identity provider issued and
// stows the linked account into the request locals. Requests without a
// usable token pass through unauthenticated; protected handlers gate on the
// locals themselves.
func authMiddleware(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(token) == 0 {
		token = c.Cookies("__session")
	}
	if len(token) == 0 || identityPublicKey == nil {
		return c.Next()
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return identityPublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil || !parsed.Valid {
		log.Debug().Err(err).Msg("Unable to verify the bearer token, continuing unauthenticated...")
		return c.Next()
	}

	externalID, err := parsed.Claims.GetSubject()
	if err != nil || len(externalID) == 0 {
		return c.Next()
	}

	account, err := services.LoadOrInitAccount(externalID)
	if err != nil {
		log.Warn().Err(err).Str("identity", externalID).Msg("Unable to load account for an authenticated request...")
		return c.Next()
	}

	c.Locals("user", account)
	return c.Next()
}
