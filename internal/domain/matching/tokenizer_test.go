package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/barra-pro/internal/domain/matching"
)

func TestTokenize_NormalizaYFiltra(t *testing.T) {
	casos := []struct {
		nombre   string
		entrada  string
		esperado []string
	}{
		{"minúsculas y tildes", "Azúcar Moreno", []string{"azucar", "moreno"}},
		{"partículas cortas fuera", "Aceite de Oliva Virgen", []string{"aceite", "oliva", "virgen"}},
		{"símbolos eliminados", "Coca-Cola 33cl (pack)", []string{"cocacola", "33cl", "pack"}},
		{"duplicados colapsados", "vodka vodka premium", []string{"vodka", "premium"}},
		{"solo partículas", "de la el", nil},
		{"vacío", "", nil},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := matching.Tokenize(c.entrada)
			if c.esperado == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, c.esperado, got)
		})
	}
}

func TestMatchScore_OrdenDePalabrasNoImporta(t *testing.T) {
	// Contrato del umbral global: productos iguales con el orden invertido
	// deben superar 0.4.
	score := matching.MatchScore("Vodka Absolut", "Absolut Vodka")
	assert.Greater(t, score, 0.4, "la contención bidireccional ignora el orden de palabras")
	assert.InDelta(t, 1.0, score, 1e-9, "mismos tokens → puntuación máxima")
}

func TestMatchScore_ContencionDeSubcadenas(t *testing.T) {
	// "tomate" está contenido en "tomates": cuenta como emparejado.
	score := matching.MatchScore("Tomate pera", "Tomates pera caja")
	assert.Greater(t, score, 0.4)
}

func TestMatchScore_DenominadorEsElConjuntoMayor(t *testing.T) {
	// 1 token emparejado de max(1, 3) tokens → 1/3.
	score := matching.MatchScore("Vodka", "Vodka Absolut Premium")
	assert.InDelta(t, 1.0/3.0, score, 1e-9)
}

func TestMatchScore_SinTokensDevuelveCero(t *testing.T) {
	assert.Zero(t, matching.MatchScore("", "Vodka"))
	assert.Zero(t, matching.MatchScore("de el", "la"))
}

func TestMatchScore_ProductosDistintosPuntuanBajo(t *testing.T) {
	score := matching.MatchScore("Vodka Absolut", "Harina de trigo")
	assert.Less(t, score, 0.4)
}
