package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andori/back/internal/models"
)

func TestBuildUserMessageIsDeterministic(t *testing.T) {
	req := models.GenerateMaterialRequest{
		Assunto:    "Frações",
		Disciplina: "Matemática",
		Descricao:  "Introdução a frações com material concreto",
		Turma:      "6º A",
		Data:       "2026-03-10",
	}
	profile := &models.StudentProfile{
		ID:        "a1",
		Nome:      "Ana",
		Interesse: "dinossauros",
	}
	turmaCtx := &models.TurmaContext{
		TurmaID: "t1",
		Nome:    "6º A",
		Alunos:  []models.TurmaAluno{{ID: "a1", Nome: "Ana"}},
	}

	first := BuildUserMessage(req, profile, turmaCtx)
	second := BuildUserMessage(req, profile, turmaCtx)

	// mesmo input, mesmos bytes: o preview e o prompt real nunca divergem
	assert.Equal(t, first, second)
}

func TestBuildUserMessageEmbedsPayload(t *testing.T) {
	req := models.GenerateMaterialRequest{Assunto: "Frações", Turma: "6º A"}

	message := BuildUserMessage(req, nil, nil)

	assert.Contains(t, message, `"assunto":"Frações"`)
	assert.Contains(t, message, `"turma":"6º A"`)
	assert.Contains(t, message, `"student_profile":null`)
	assert.Contains(t, message, "JSON VÁLIDO")
}

func TestBuildLLMPayloadTurmaLabelPrefersRequest(t *testing.T) {
	req := models.GenerateMaterialRequest{Assunto: "Frações", Turma: "turma do 6 ano"}
	turmaCtx := &models.TurmaContext{Nome: "6º A, 6º B"}

	payload := BuildLLMPayload(req, nil, turmaCtx)

	assert.Equal(t, "turma do 6 ano", payload.Turma)
}

func TestBuildLLMPayloadTurmaLabelFallsBackToContext(t *testing.T) {
	req := models.GenerateMaterialRequest{Assunto: "Frações"}
	turmaCtx := &models.TurmaContext{Nome: "6º A"}

	payload := BuildLLMPayload(req, nil, turmaCtx)

	assert.Equal(t, "6º A", payload.Turma)
}

func TestLLMPayloadFieldOrderIsStable(t *testing.T) {
	payload := BuildLLMPayload(models.GenerateMaterialRequest{Assunto: "Frações"}, nil, nil)

	encoded, err := json.Marshal(payload)
	require.NoError(t, err)

	// struct serializa na ordem declarada dos campos
	assert.Equal(t,
		`{"disciplina":"","assunto":"Frações","descricao":"","turma":"","data":"","feedback":"","student_profile":null,"turma_context":null}`,
		string(encoded))
}

func TestChatSystemPromptPinsOutputContract(t *testing.T) {
	prompt := ChatSystemPrompt()

	assert.Contains(t, prompt, `"roteiro"`)
	assert.Contains(t, prompt, `"resumo"`)
	assert.Contains(t, prompt, "APENAS JSON VÁLIDO")
}

func TestBuildRecommendationPromptIncludesObservations(t *testing.T) {
	prompt := BuildRecommendationPrompt("evita barulho alto e precisa de pausas")

	assert.Contains(t, prompt, "evita barulho alto e precisa de pausas")
	assert.Contains(t, prompt, "Sinais de sobrecarga")
}
