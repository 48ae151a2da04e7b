package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/stream-service/internal/model"
)

type Generator struct {
	secret []byte
}

func New(secret string) *Generator {
	return &Generator{
		secret: []byte(secret),
	}
}

// GenerateStreamAccessToken signs a short-lived token authorizing one member
// to open the broadcast of one stream.
func (g *Generator) GenerateStreamAccessToken(memberID, streamID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(30 * time.Minute)

	claims := model.StreamAccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   memberID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		MemberID: memberID,
		StreamID: streamID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(g.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign stream access JWT token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (g *Generator) ValidateStreamAccessToken(tokenString string) (*model.StreamAccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.StreamAccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse stream access JWT token: %w", err)
	}

	if claims, ok := token.Claims.(*model.StreamAccessClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid stream access JWT token")
}
