package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. Handlers map each of these to 401 but keep the
// messages distinct so clients can tell why a token was rejected.
var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrBadSignature   = errors.New("invalid token signature")
	ErrTokenMalformed = errors.New("invalid token")
	ErrNoSubject      = errors.New("token has no subject")
)

// Claims is the verified identity of a caller. Profile fields come from the
// identity provider's user_metadata block and may be empty.
type Claims struct {
	Subject   string
	Email     string
	FullName  string
	AvatarURL string
}

type tokenClaims struct {
	Email        string `json:"email"`
	UserMetadata struct {
		FullName  string `json:"full_name"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 bearer tokens against a single shared secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify decodes and validates a raw token string. It is a pure synchronous
// check; no audience validation is performed.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	var tc tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &tc, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}
	if tc.Subject == "" {
		return nil, ErrNoSubject
	}

	return &Claims{
		Subject:   tc.Subject,
		Email:     tc.Email,
		FullName:  tc.UserMetadata.FullName,
		AvatarURL: tc.UserMetadata.AvatarURL,
	}, nil
}
