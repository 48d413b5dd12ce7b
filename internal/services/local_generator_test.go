package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andori/back/internal/models"
)

func TestLocalMaterialNeverReturnsNilLists(t *testing.T) {
	req := models.GenerateMaterialRequest{Assunto: "Frações"}

	material := LocalMaterial(req, "", nil)

	assert.NotEmpty(t, material.Roteiro.Topicos)
	assert.NotEmpty(t, material.Roteiro.Falas)
	assert.NotEmpty(t, material.Roteiro.Exemplos)
	assert.NotEmpty(t, material.Resumo.Texto)
	assert.NotEmpty(t, material.Resumo.Exemplo)
}

func TestLocalMaterialWeavesHyperfocus(t *testing.T) {
	req := models.GenerateMaterialRequest{Assunto: "Frações", Turma: "6º A"}

	material := LocalMaterial(req, "dinossauros", nil)

	fala := strings.Join(material.Roteiro.Falas, " ")
	assert.Contains(t, fala, "dinossauros")
	assert.Contains(t, fala, "Frações")
	assert.Len(t, material.Roteiro.Exemplos, 3)
	for _, exemplo := range material.Roteiro.Exemplos {
		assert.Contains(t, exemplo, "dinossauros")
	}
	assert.Contains(t, material.Resumo.Exemplo, "dinossauros")
}

func TestLocalMaterialWithoutHyperfocusUsesEverydayExamples(t *testing.T) {
	req := models.GenerateMaterialRequest{Assunto: "Fotossíntese"}

	material := LocalMaterial(req, "", nil)

	fala := strings.Join(material.Roteiro.Falas, " ")
	assert.Contains(t, fala, "dia a dia")
	assert.Len(t, material.Roteiro.Exemplos, 2)
}

func TestLocalMaterialIncludesSupportStrategies(t *testing.T) {
	req := models.GenerateMaterialRequest{Assunto: "Frações"}
	strategies := SupportStrategies("alto")

	material := LocalMaterial(req, "", strategies)

	fala := strings.Join(material.Roteiro.Falas, " ")
	assert.Contains(t, fala, "Dicas de mediação")
	assert.Contains(t, fala, highSupportStrategies[0])
}

func TestLocalMaterialEchoesFeedback(t *testing.T) {
	req := models.GenerateMaterialRequest{
		Assunto:  "Frações",
		Feedback: "usar exemplos mais curtos",
	}

	material := LocalMaterial(req, "", nil)

	fala := strings.Join(material.Roteiro.Falas, " ")
	assert.Contains(t, fala, "usar exemplos mais curtos")
}
