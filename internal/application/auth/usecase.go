// Package auth autentica al operador del puesto y emite el JWT de escritura.
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Stand-api/internal/application/dto"
	"github.com/jhoicas/Stand-api/internal/domain"
	"github.com/jhoicas/Stand-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Operator credencial configurada. PasswordHash vacío deshabilita el login.
type Operator struct {
	User         string
	PasswordHash string
}

// AuthUseCase login del operador.
type AuthUseCase struct {
	operator Operator
	jwtCfg   JWTConfig
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(operator Operator, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{operator: operator, jwtCfg: jwtCfg, log: log}
}

// Login verifica usuario y password contra el operador configurado y devuelve el token.
// Cualquier fallo de credenciales es ErrUnauthorized, sin distinguir usuario de password.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user := strings.TrimSpace(in.Username)
	if user == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.operator.PasswordHash == "" {
		uc.log.Warn().Str("user", user).Msg("login rechazado: operador sin password configurado")
		return nil, domain.ErrUnauthorized
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(uc.operator.User)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(uc.operator.PasswordHash), []byte(in.Password))
	if !userOK || passErr != nil {
		uc.log.Warn().Str("user", user).Msg("login rechazado: credenciales inválidas")
		return nil, domain.ErrUnauthorized
	}

	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, uc.operator.User, jwt.RoleOperator, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user", user).Time("expires_at", exp).Msg("login de operador")
	return &dto.LoginResponse{Token: token, ExpiresAt: exp}, nil
}

// HashPassword genera el hash bcrypt para OPERATOR_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("auth: password vacío")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash: %w", err)
	}
	return string(hash), nil
}
