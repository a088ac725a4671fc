package nit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andescloud/inventario-service/pkg/nit"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de referencia del algoritmo módulo 11 (Orden Administrativa 4/1989):
//
//	900123456 → 8
//	800197268 → 4   (NIT de la propia DIAN: 800.197.268-4)
//	111111114 → 0   (residuo 0, el dígito es el residuo)
//	111111118 → 1   (residuo 1, el dígito es el residuo)
// ──────────────────────────────────────────────────────────────────────────────

func TestVerificationDigit_VectoresConocidos(t *testing.T) {
	casos := []struct {
		base     string
		esperado byte
	}{
		{"900123456", '8'},
		{"800197268", '4'},
		{"111111114", '0'},
		{"111111118", '1'},
	}

	for _, c := range casos {
		dv, err := nit.VerificationDigit(c.base)
		require.NoError(t, err, "base %s", c.base)
		assert.Equal(t, string(c.esperado), string(dv),
			"dígito de verificación incorrecto para %s", c.base)
	}
}

func TestVerificationDigit_AceptaPuntosYGuiones(t *testing.T) {
	dv, err := nit.VerificationDigit("900.123.456")
	require.NoError(t, err)
	assert.Equal(t, byte('8'), dv)
}

func TestVerificationDigit_ErrorConPocosDigitos(t *testing.T) {
	_, err := nit.VerificationDigit("12345")
	assert.Error(t, err, "menos de 9 dígitos no alcanza para calcular el dígito")
}

// ── Validate ──────────────────────────────────────────────────────────────────

func TestValidate_NITCorrecto(t *testing.T) {
	for _, taxID := range []string{"900123456-8", "900.123.456-8", "9001234568"} {
		assert.NoError(t, nit.Validate(taxID), "el NIT %s es válido", taxID)
	}
}

func TestValidate_DigitoIncorrecto(t *testing.T) {
	err := nit.Validate("900123456-7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "esperado 8")
}

func TestValidate_SinDigitoDeVerificacion(t *testing.T) {
	err := nit.Validate("900123456")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "falta el dígito")
}

// ── Format ────────────────────────────────────────────────────────────────────

func TestFormat_NormalizaPuntosYGuiones(t *testing.T) {
	assert.Equal(t, "900123456-8", nit.Format("900.123.456-8"))
	assert.Equal(t, "900123456-8", nit.Format("9001234568"))
	assert.Equal(t, "900123456-8", nit.Format(" 900123456-8 "))
}

func TestFormat_CalculaDigitoFaltante(t *testing.T) {
	assert.Equal(t, "900123456-8", nit.Format("900123456"))
	assert.Equal(t, "800197268-4", nit.Format("800.197.268"))
}

func TestFormat_EntradaNoReconocibleQuedaIgual(t *testing.T) {
	assert.Equal(t, "S/N", nit.Format("S/N"))
	assert.Equal(t, "", nit.Format(""))
	assert.Equal(t, "", nit.Format("   "))
}
