package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/invorya/pos-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "pos-api-test"
)

func TestGenerateYParse_TokenValido(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, pkgjwt.Parse(testSecret, token))
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, 60)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testIssuer, 60)
	require.NoError(t, err)

	assert.Error(t, pkgjwt.Parse("otro-secret", token), "un token firmado con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, testIssuer, -1)
	require.NoError(t, err)

	assert.Error(t, pkgjwt.Parse(testSecret, token))
}

func TestParse_Basura(t *testing.T) {
	assert.Error(t, pkgjwt.Parse(testSecret, "no-es-un-jwt"))
}

// Un token con sujeto distinto de "operator" no es una sesión válida aunque
// esté bien firmado.
func TestParse_SujetoIncorrecto(t *testing.T) {
	claims := gojwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "intruso",
		IssuedAt:  gojwt.NewNumericDate(time.Now()),
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.Error(t, pkgjwt.Parse(testSecret, token))
}

// Un token sin firma (alg none) debe rechazarse siempre.
func TestParse_AlgoritmoNone(t *testing.T) {
	claims := gojwt.RegisteredClaims{Subject: "operator"}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Error(t, pkgjwt.Parse(testSecret, token))
}
