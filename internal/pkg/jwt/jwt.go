package jwt

import (
	"context"
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Tokens are issued by the ERP gateway; this core only verifies them and
// reads the identity claims it needs for scoping.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateAccessToken(employeeID, storeID string, role user.Role) (token string, expiresAt int64, err error)
}

type JWTService struct {
	secretKey            string
	accessExpirationTime string
	tokenAuth            *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpirationTime string) Service {
	return &JWTService{
		secretKey:            secretKey,
		accessExpirationTime: accessExpirationTime,
		tokenAuth:            jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAccessToken exists for integration tests and local tooling; the
// production issuer lives in the gateway.
func (j *JWTService) GenerateAccessToken(employeeID, storeID string, role user.Role) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id": employeeID,
		"store_id":    storeID,
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresAt, nil
}

// Identity is the caller identity extracted from verified claims.
type Identity struct {
	EmployeeID string
	StoreID    string
	Role       user.Role
}

// IdentityFromContext reads the caller identity from the request context
// populated by jwtauth.Verifier.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, user.ErrInvalidClaims
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Identity{}, user.ErrInvalidClaims
	}

	storeID, ok := claims["store_id"].(string)
	if !ok || storeID == "" {
		return Identity{}, user.ErrInvalidClaims
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Identity{}, user.ErrInvalidClaims
	}

	return Identity{
		EmployeeID: employeeID,
		StoreID:    storeID,
		Role:       user.Role(roleStr),
	}, nil
}
