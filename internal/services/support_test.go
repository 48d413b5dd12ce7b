package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportStrategies(t *testing.T) {
	tests := []struct {
		name  string
		nivel string
		count int
	}{
		{name: "alto acrescenta estratégias intensivas", nivel: "alto", count: 8},
		{name: "alto com caixa e espaços", nivel: "  Alto ", count: 8},
		{name: "medio sem acento", nivel: "medio", count: 6},
		{name: "médio com acento", nivel: "médio", count: 6},
		{name: "vazio recebe só a base", nivel: "", count: 5},
		{name: "rótulo desconhecido recebe só a base", nivel: "altíssimo", count: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SupportStrategies(tt.nivel)
			assert.Len(t, got, tt.count)
			// a base vem sempre primeiro, na mesma ordem
			assert.Equal(t, baseSupportStrategies, got[:len(baseSupportStrategies)])
		})
	}
}

func TestSupportStrategiesDoesNotShareBackingArray(t *testing.T) {
	first := SupportStrategies("alto")
	first[0] = "mutado"

	second := SupportStrategies("alto")
	assert.Equal(t, baseSupportStrategies[0], second[0])
}
