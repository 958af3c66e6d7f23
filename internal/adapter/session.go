package adapter

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var errNoStoreClaim = errors.New("token carries no store claim")

// storeIDFromToken extracts the store identifier from an access token
// without verifying the signature. Verification happens server-side; the
// terminal only needs the claim to scope its pull queries.
func storeIDFromToken(token string) (string, error) {
	if token == "" {
		return "", errNoStoreClaim
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("parse access token: %w", err)
	}

	if storeID, ok := claims["store_id"].(string); ok && storeID != "" {
		return storeID, nil
	}

	// older tokens keep the store under app_metadata
	if meta, ok := claims["app_metadata"].(map[string]any); ok {
		if storeID, ok := meta["store_id"].(string); ok && storeID != "" {
			return storeID, nil
		}
	}

	return "", errNoStoreClaim
}
