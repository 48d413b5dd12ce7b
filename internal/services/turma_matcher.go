package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/andori/back/internal/models"
)

// Casamento difuso de rótulos de turma. Professores se referem à turma de
// forma informal ("6º ano", "6ºA", "turma do 6 ano"); estas funções são
// puras para poderem ser testadas sem banco.

// GradeYearToken extrai o primeiro número inteiro do texto e o normaliza
// para a forma "<N>º ano". Retorna vazio quando não há dígitos.
func GradeYearToken(s string) string {
	digits := firstInteger(s)
	if digits == "" {
		return ""
	}
	return fmt.Sprintf("%sº ano", digits)
}

// DigitsOnly remove tudo que não for dígito.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func firstInteger(s string) string {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}

// MatchesTurma decide se um rótulo livre casa com o nome armazenado da
// turma. Basta satisfazer um dos critérios: igualdade exata sem caixa,
// continência de substring em qualquer direção, token de série ("6º ano")
// por substring, ou igualdade dos nomes reduzidos a dígitos.
func MatchesTurma(label, nome string) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	n := strings.ToLower(strings.TrimSpace(nome))
	if l == "" || n == "" {
		return false
	}

	if l == n {
		return true
	}
	if strings.Contains(l, n) || strings.Contains(n, l) {
		return true
	}

	if token := strings.ToLower(GradeYearToken(l)); token != "" {
		if strings.Contains(n, token) || strings.Contains(token, n) {
			return true
		}
	}

	ld, nd := DigitsOnly(l), DigitsOnly(n)
	if ld != "" && ld == nd {
		return true
	}

	return false
}

// FilterTurmas devolve as turmas cujo nome casa com o rótulo, na ordem
// recebida.
func FilterTurmas(label string, turmas []models.Turma) []models.Turma {
	var matched []models.Turma
	for _, t := range turmas {
		if MatchesTurma(label, t.Nome) {
			matched = append(matched, t)
		}
	}
	return matched
}
