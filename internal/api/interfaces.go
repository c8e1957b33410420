package api

import (
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	GenerateToken(device string) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	Device string `json:"device"`
}
