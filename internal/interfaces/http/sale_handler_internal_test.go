package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParam_Vacio(t *testing.T) {
	got, err := parseDateParam("", false)
	require.NoError(t, err)
	assert.Nil(t, got, "sin valor no hay filtro")
}

func TestParseDateParam_FechaSola(t *testing.T) {
	got, err := parseDateParam("2026-08-15", false)
	require.NoError(t, err)
	require.NotNil(t, got)

	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
	assert.True(t, got.Equal(want), "esperado %s, obtenido %s", want, got)
}

// Una fecha sin hora como límite superior debe cubrir el día completo:
// se amplía a las 23:59:59.999 para que el rango sea inclusivo.
func TestParseDateParam_FechaSolaFinDeDia(t *testing.T) {
	got, err := parseDateParam("2026-08-15", true)
	require.NoError(t, err)
	require.NotNil(t, got)

	want := time.Date(2026, 8, 15, 23, 59, 59, 999_000_000, time.Local)
	assert.True(t, got.Equal(want), "esperado %s, obtenido %s", want, got)
}

// Un timestamp RFC3339 explícito se respeta tal cual, sin ampliación.
func TestParseDateParam_RFC3339SinAmpliar(t *testing.T) {
	got, err := parseDateParam("2026-08-15T10:30:00Z", true)
	require.NoError(t, err)
	require.NotNil(t, got)

	want := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	assert.True(t, got.Equal(want))
}

func TestParseDateParam_Invalido(t *testing.T) {
	for _, s := range []string{"15/08/2026", "ayer", "2026-13-40"} {
		_, err := parseDateParam(s, false)
		assert.Error(t, err, "entrada %q", s)
	}
}
