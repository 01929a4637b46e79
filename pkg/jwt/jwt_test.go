package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/pos-ledger/pkg/jwt"
)

func TestGenerateParse_IdaYVuelta(t *testing.T) {
	tok, err := pkgjwt.Generate("clave", "cashier", "Cajero", "cashier", "s-1", "pos-ledger", 5)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse("clave", tok)
	require.NoError(t, err)
	assert.Equal(t, "cashier", claims.UserID)
	assert.Equal(t, "Cajero", claims.UserName)
	assert.Equal(t, "cashier", claims.Role)
	assert.Equal(t, "pos-ledger", claims.Issuer)
	assert.Equal(t, "s-1", claims.Session)
	assert.Equal(t, "s-1", claims.ID)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("clave", "admin", "Admin", "admin", "s-2", "pos-ledger", 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otra-clave", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate("clave", "admin", "Admin", "admin", "s-3", "pos-ledger", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("clave", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "a", "b", "admin", "s", "x", 5)
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
	_, err = pkgjwt.Parse("", "tok")
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}
