package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

var ErrInvalidToken = errors.New("token: invalid or expired token")

func Generate(v *viper.Viper, metadata Metadata) (string, error) {
	expiry := v.GetDuration("jwt.expiry")
	if expiry == 0 {
		expiry = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"iss": v.GetString("app.name"),
		"aud": v.GetString("jwt.audience"),
		"exp": time.Now().Add(expiry).Unix(),
		"metadata": map[string]string{
			"user_id":   metadata.UserID,
			"full_name": metadata.FullName,
			"user_type": metadata.UserType,
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(v.GetString("jwt.secret")))
}

func Parse(v *viper.Viper, raw string) (*Metadata, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.GetString("jwt.secret")), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	rawMeta, ok := claims["metadata"].(map[string]interface{})
	if !ok {
		return nil, ErrInvalidToken
	}

	metadata := &Metadata{}
	if v, ok := rawMeta["user_id"].(string); ok {
		metadata.UserID = v
	}
	if v, ok := rawMeta["full_name"].(string); ok {
		metadata.FullName = v
	}
	if v, ok := rawMeta["user_type"].(string); ok {
		metadata.UserType = v
	}
	if metadata.UserID == "" {
		return nil, ErrInvalidToken
	}
	return metadata, nil
}
