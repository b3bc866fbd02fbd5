package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"tasksync/internal/model"
	"tasksync/internal/session"
)

// expiresAt decodes the exp claim of cred. The signature is not checked.
func expiresAt(cred model.Credential) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(cred.String(), &claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", session.ErrMalformedCredential, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: missing exp claim", session.ErrMalformedCredential)
	}
	return claims.ExpiresAt.Time, nil
}

// locallyExpired reports whether cred must be dropped without asking the
// server. Malformed credentials count as expired.
func (uc *implUseCase) locallyExpired(cred model.Credential) bool {
	exp, err := expiresAt(cred)
	if err != nil {
		return true
	}
	return !exp.After(uc.now())
}
