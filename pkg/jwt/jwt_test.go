package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Rollstock-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func testSubject() pkgjwt.Subject {
	return pkgjwt.Subject{
		UserID:      "00000000-0000-0000-0000-000000000001",
		Email:       "op@planta.test",
		DisplayName: "Operador",
		Plants:      []string{"P1"},
		Permissions: []string{"pr-stock"},
	}
}

func TestGenerateAndParse(t *testing.T) {
	tok, issued, err := pkgjwt.Generate(testSecret, testSubject(), "sess-1", "rollstock-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.ID)
	assert.Equal(t, issued.UserID, claims.UserID)
	assert.Equal(t, "op@planta.test", claims.Email)
	assert.Equal(t, []string{"P1"}, claims.Plants)
	assert.Equal(t, []string{"pr-stock"}, claims.Permissions)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, testSubject(), "sess-1", "rollstock-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, testSubject(), "sess-1", "rollstock-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSessionID(t *testing.T) {
	_, _, err := pkgjwt.Generate(testSecret, testSubject(), "", "rollstock-test", 60)
	assert.Error(t, err)
}
