package usecase

import (
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/pkg/jwt"
	"lane-booking/internal/usecase/shared"
)

var ErrNotStaff = errs.New("token does not belong to staff")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Guest(), err
	}
	if claims.Role != jwt.RoleStaff {
		return shared.Guest(), ErrNotStaff
	}
	return shared.Staff(claims.Subject), nil
}
