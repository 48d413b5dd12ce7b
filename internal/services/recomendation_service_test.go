package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andori/back/internal/clients"
	"github.com/andori/back/internal/models"
	"github.com/andori/back/internal/repositories"
)

type fakeObsStudentRepo struct {
	repositories.StudentRepository
	savedAlunoID string
	savedObs     string
	err          error
}

func (f *fakeObsStudentRepo) SaveObservacoes(ctx context.Context, alunoID, observacoes string) error {
	if f.err != nil {
		return f.err
	}
	f.savedAlunoID = alunoID
	f.savedObs = observacoes
	return nil
}

type fakeAulaRepo struct {
	repositories.AulaRepository
	savedArrmdID string
	savedRecs    string
	err          error
}

func (f *fakeAulaRepo) SetRecomendacoesIA(ctx context.Context, arrmdID, recomendacoes string) error {
	if f.err != nil {
		return f.err
	}
	f.savedArrmdID = arrmdID
	f.savedRecs = recomendacoes
	return nil
}

func TestGenerateRecommendationsRemoteSuccess(t *testing.T) {
	client := &fakeOpenAIClient{content: "1) Reduza estímulos\n2) Antecipe mudanças"}
	studentRepo := &fakeObsStudentRepo{}
	aulaRepo := &fakeAulaRepo{}
	svc := NewRecomendationService(client, studentRepo, aulaRepo)

	result, err := svc.GenerateRecommendations(context.Background(), models.RecomendationCreate{
		AlunoID:     "a1",
		ArrmdID:     "ar1",
		Observacoes: "sensível a barulho",
	})
	require.NoError(t, err)

	assert.Equal(t, "1) Reduza estímulos\n2) Antecipe mudanças", result.RecomendacoesIA)
	assert.Equal(t, "a1", studentRepo.savedAlunoID)
	assert.Equal(t, "sensível a barulho", studentRepo.savedObs)
	assert.Equal(t, "ar1", aulaRepo.savedArrmdID)
	assert.Equal(t, result.RecomendacoesIA, aulaRepo.savedRecs)
	assert.Contains(t, client.lastUser, "sensível a barulho")
}

func TestGenerateRecommendationsFallsBackWithoutKey(t *testing.T) {
	client := &fakeOpenAIClient{err: clients.ErrNoAPIKey}
	svc := NewRecomendationService(client, nil, nil)

	result, err := svc.GenerateRecommendations(context.Background(), models.RecomendationCreate{
		Observacoes: "sensível a barulho",
	})
	require.NoError(t, err)

	assert.Equal(t, fallbackRecommendations, result.RecomendacoesIA)
}

func TestGenerateRecommendationsFallsBackOnEmptyAnswer(t *testing.T) {
	client := &fakeOpenAIClient{content: "   "}
	svc := NewRecomendationService(client, nil, nil)

	result, err := svc.GenerateRecommendations(context.Background(), models.RecomendationCreate{
		Observacoes: "sensível a barulho",
	})
	require.NoError(t, err)

	assert.Equal(t, fallbackRecommendations, result.RecomendacoesIA)
}

func TestGenerateRecommendationsRequiresObservacoes(t *testing.T) {
	svc := NewRecomendationService(nil, nil, nil)

	_, err := svc.GenerateRecommendations(context.Background(), models.RecomendationCreate{})
	assert.Error(t, err)
}

func TestGenerateRecommendationsPropagatesSaveError(t *testing.T) {
	studentRepo := &fakeObsStudentRepo{err: repositories.ErrNotFound}
	svc := NewRecomendationService(nil, studentRepo, nil)

	_, err := svc.GenerateRecommendations(context.Background(), models.RecomendationCreate{
		AlunoID:     "inexistente",
		Observacoes: "obs",
	})

	assert.True(t, errors.Is(err, repositories.ErrNotFound))
}
