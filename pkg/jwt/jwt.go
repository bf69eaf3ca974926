package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los datos de la sesión.
// Plantas y permisos viajan en el token para que los middlewares no consulten la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name,omitempty"`
	Plants      []string `json:"plants"`
	Permissions []string `json:"permissions"`
}

// Subject datos del usuario que se firman en el token.
type Subject struct {
	UserID      string
	Email       string
	DisplayName string
	Plants      []string
	Permissions []string
}

// Generate firma un token con un jti nuevo. Devuelve el token y sus claims.
func Generate(secret string, sub Subject, sessionID, issuer string, expMinutes int) (string, *Claims, error) {
	if secret == "" {
		return "", nil, fmt.Errorf("jwt: secret vacío")
	}
	if sessionID == "" {
		return "", nil, fmt.Errorf("jwt: session id vacío")
	}
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:      sub.UserID,
		Email:       sub.Email,
		DisplayName: sub.DisplayName,
		Plants:      sub.Plants,
		Permissions: sub.Permissions,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Parse valida firma y expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.ID == "" || claims.UserID == "" {
		return nil, fmt.Errorf("claims incompletos")
	}
	return claims, nil
}
