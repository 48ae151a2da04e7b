package model

import "github.com/golang-jwt/jwt/v5"

// StreamAccessClaims authorize a member to open the broadcast of one stream.
type StreamAccessClaims struct {
	jwt.RegisteredClaims

	MemberID string `json:"member_id"`
	StreamID string `json:"stream_id"`
}
