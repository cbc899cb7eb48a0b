package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoExpiry el token no trae claim exp.
	ErrNoExpiry = errors.New("jwt: token sin exp")
	// ErrExpired el exp del token ya pasó.
	ErrExpired = errors.New("jwt: token expirado")
)

// Claims claims que el portal lee del token emitido por el backend.
// El backend firma con sus propias llaves; aquí solo se usan exp, sub y role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Generate genera un token firmado HS256 con subject, role y expiración.
// Se usa en pruebas y en entornos donde el portal comparte secreto con el backend.
func Generate(secret, subject, role string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse lee los claims del token. Con secret vacío no verifica la firma
// (el backend es quien la valida en cada llamada); con secret verifica HMAC.
// La expiración no se valida aquí: ver Expiry.
func Parse(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	if secret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
			return nil, fmt.Errorf("jwt: parse: %w", err)
		}
		return claims, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, fmt.Errorf("jwt: parse: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("jwt: claims inválidos")
	}
	return claims, nil
}

// Expiry devuelve el instante exp del token. ErrNoExpiry si no lo trae,
// ErrExpired si ya pasó respecto de now.
func Expiry(secret, tokenString string, now time.Time) (time.Time, error) {
	claims, err := Parse(secret, tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	exp := claims.ExpiresAt.Time
	if !exp.After(now) {
		return exp, ErrExpired
	}
	return exp, nil
}
