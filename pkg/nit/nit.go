// Package nit valida y normaliza Números de Identificación Tributaria (NIT)
// colombianos, incluido el dígito de verificación módulo 11 de la DIAN.
package nit

import (
	"fmt"
	"strings"
	"unicode"
)

// Pesos del algoritmo módulo 11 (Orden Administrativa 4 de 1989, DIAN),
// aplicados a los 9 dígitos base del NIT de izquierda a derecha.
var weights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// VerificationDigit calcula el dígito de verificación para los 9 dígitos base
// del NIT. Acepta la cadena con o sin puntos y guiones.
func VerificationDigit(taxID string) (byte, error) {
	digits := onlyDigits(taxID)
	if len(digits) < 9 {
		return 0, fmt.Errorf("nit: se requieren al menos 9 dígitos para calcular el dígito de verificación, se encontraron %d", len(digits))
	}
	return checkDigit(digits[:9]), nil
}

// Validate verifica que el NIT incluya un dígito de verificación correcto.
// Acepta "900123456-8", "900.123.456-8" o "9001234568".
func Validate(taxID string) error {
	digits := onlyDigits(taxID)
	if len(digits) < 9 {
		return fmt.Errorf("nit: debe tener al menos 9 dígitos, se encontraron %d", len(digits))
	}
	if len(digits) == 9 {
		return fmt.Errorf("nit: falta el dígito de verificación")
	}
	expected := checkDigit(digits[:9])
	if got := digits[9]; got != expected {
		return fmt.Errorf("nit: dígito de verificación inválido: esperado %c, recibido %c", expected, got)
	}
	return nil
}

// Format devuelve el NIT en la forma canónica "900123456-8", sin puntos ni
// espacios. Si la cadena trae solo los 9 dígitos base calcula y agrega el
// dígito de verificación; si no contiene un NIT reconocible la devuelve tal
// cual, recortada.
func Format(taxID string) string {
	digits := onlyDigits(taxID)
	switch len(digits) {
	case 10:
		return fmt.Sprintf("%s-%c", digits[:9], digits[9])
	case 9:
		return fmt.Sprintf("%s-%c", digits, checkDigit(digits))
	default:
		return strings.TrimSpace(taxID)
	}
}

// checkDigit aplica módulo 11 sobre los 9 dígitos base ya extraídos.
func checkDigit(base []byte) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return byte('0' + remainder)
	}
	return byte('0' + (11 - remainder))
}

func onlyDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
