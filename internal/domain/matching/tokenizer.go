package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone (NFD), elimina las marcas diacríticas y recompone.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Tokenize normaliza un nombre de producto a su conjunto de tokens:
// minúsculas, sin tildes, solo [a-z0-9], partido por espacios y descartando
// tokens de 2 caracteres o menos (filtra partículas tipo "de", "el").
// El resultado no contiene duplicados.
func Tokenize(name string) []string {
	s := strings.ToLower(name)
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, s)

	seen := make(map[string]struct{})
	tokens := make([]string, 0, 4)
	for _, tok := range strings.Fields(s) {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tokens = append(tokens, tok)
	}
	return tokens
}

// MatchScore puntúa la equivalencia difusa de dos nombres de producto en
// [0,1]. Un token del objetivo cuenta como emparejado si algún token del
// candidato lo contiene o está contenido en él (contención bidireccional,
// deliberadamente laxa para variantes de orden y flexión). La puntuación es
// emparejados / max(|objetivo|, |candidato|): una aproximación asimétrica a
// Jaccard, no un Jaccard real. Los umbrales de corte (0.4, 0.6) están
// ajustados empíricamente sobre esta fórmula exacta.
func MatchScore(target, candidate string) float64 {
	targetTokens := Tokenize(target)
	candidateTokens := Tokenize(candidate)
	if len(targetTokens) == 0 || len(candidateTokens) == 0 {
		return 0
	}

	matched := 0
	for _, t := range targetTokens {
		for _, c := range candidateTokens {
			if strings.Contains(c, t) || strings.Contains(t, c) {
				matched++
				break
			}
		}
	}

	denom := len(targetTokens)
	if len(candidateTokens) > denom {
		denom = len(candidateTokens)
	}
	return float64(matched) / float64(denom)
}
