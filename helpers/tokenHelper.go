package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const AdminRole = "ADMIN"

var ErrInvalidToken = errors.New("invalid token")

type SignedDetails struct {
	Role string
	jwt.StandardClaims
}

// TokenHelper issues and checks the dashboard session tokens.
type TokenHelper struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenHelper(secret string, ttl time.Duration) *TokenHelper {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenHelper{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source used for issuing and expiry checks.
func (h *TokenHelper) WithClock(now func() time.Time) *TokenHelper {
	h.now = now
	return h
}

func (h *TokenHelper) GenerateToken(role string) (signedToken string, expiresAt int64, err error) {
	issued := h.now()
	expiresAt = issued.Add(h.ttl).Unix()
	claim := SignedDetails{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  issued.Unix(),
			ExpiresAt: expiresAt,
		},
	}
	signedToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString(h.secret)
	if err != nil {
		return "", 0, err
	}
	return signedToken, expiresAt, nil
}

func (h *TokenHelper) ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return h.secret, nil
		},
	)
	if err != nil && !expiredOnly(err) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims", ErrInvalidToken)
	}
	if claims.ExpiresAt < h.now().Unix() {
		return nil, fmt.Errorf("%w: token is expired", ErrInvalidToken)
	}
	return claims, nil
}

// expiredOnly reports whether err is nothing but the library's own expiry
// check, which uses wall time; expiry is rechecked against h.now.
func expiredOnly(err error) bool {
	var validationErr *jwt.ValidationError
	return errors.As(err, &validationErr) && validationErr.Errors == jwt.ValidationErrorExpired
}
