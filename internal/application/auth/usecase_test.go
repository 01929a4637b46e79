package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/application/auth"
	"github.com/jhoicas/pos-ledger/internal/application/dto"
	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/pkg/jwt"
)

const secret = "test-secret"

func newUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	uc, err := auth.NewAuthUseCase([]auth.Passcode{
		{Code: "9999", Name: "Dueño", Role: entity.RoleAdmin},
		{Code: "1234", Name: "Caja 1", Role: entity.RoleCashier},
		{Code: "", Role: "ignorado"},
	}, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"})
	require.NoError(t, err)
	return uc
}

func TestLogin_PorRol(t *testing.T) {
	uc := newUseCase(t)

	res, err := uc.Login(dto.LoginRequest{Passcode: "1234"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, res.User.Role)
	assert.Equal(t, "Caja 1", res.User.Name)

	claims, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, claims.Role)
	assert.Equal(t, "Caja 1", claims.UserName)

	res, err = uc.Login(dto.LoginRequest{Passcode: "9999"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, res.User.Role)
}

func TestLogin_SesionPorTerminal(t *testing.T) {
	uc := newUseCase(t)

	a, err := uc.Login(dto.LoginRequest{Passcode: "1234"})
	require.NoError(t, err)
	b, err := uc.Login(dto.LoginRequest{Passcode: "1234"})
	require.NoError(t, err)

	assert.Equal(t, a.User.ID, b.User.ID)
	assert.NotEmpty(t, a.User.Session)
	assert.NotEqual(t, a.User.Session, b.User.Session)

	claims, err := jwt.Parse(secret, b.Token)
	require.NoError(t, err)
	assert.Equal(t, b.User.Session, claims.Session)
}

func TestLogin_CodigoIncorrecto(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Login(dto.LoginRequest{Passcode: "0000"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNewAuthUseCase_SinCodigos(t *testing.T) {
	_, err := auth.NewAuthUseCase([]auth.Passcode{{Code: "  "}}, auth.JWTConfig{Secret: secret})
	assert.ErrorIs(t, err, auth.ErrNoPasscodes)
}
