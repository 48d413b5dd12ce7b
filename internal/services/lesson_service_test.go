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

type fakeOpenAIClient struct {
	content    string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeOpenAIClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	return f.content, f.err
}

func (f *fakeOpenAIClient) GenerateText(ctx context.Context, system, user string) (string, error) {
	return f.GenerateJSON(ctx, system, user)
}

// Os fakes embutem a interface e sobrescrevem só o que o serviço usa;
// chamada a método não sobrescrito estoura o teste de propósito.
type fakeStudentRepo struct {
	repositories.StudentRepository
	profile *models.StudentProfile
	err     error
}

func (f *fakeStudentRepo) GetProfile(ctx context.Context, alunoID string) (*models.StudentProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type fakeTurmaRepo struct {
	repositories.TurmaRepository
	turmas     []models.Turma
	turma      *models.Turma
	getErr     error
	roster     []models.TurmaAluno
	aggregated []models.TurmaAluno
	lastIDs    []string
}

func (f *fakeTurmaRepo) ListAll(ctx context.Context) ([]models.Turma, error) {
	return f.turmas, nil
}

func (f *fakeTurmaRepo) GetByID(ctx context.Context, id string) (*models.Turma, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.turma, nil
}

func (f *fakeTurmaRepo) Roster(ctx context.Context, turmaID string) ([]models.TurmaAluno, error) {
	return f.roster, nil
}

func (f *fakeTurmaRepo) RosterByTurmaIDs(ctx context.Context, turmaIDs []string) ([]models.TurmaAluno, error) {
	f.lastIDs = turmaIDs
	return f.aggregated, nil
}

const validModelOutput = `{
	"roteiro": {"topicos": ["t1"], "falas": ["fala do modelo"], "exemplos": ["e1"]},
	"resumo": {"texto": "resumo do modelo", "exemplo": "exemplo do modelo"}
}`

func TestGenerateMaterialRequiresAssunto(t *testing.T) {
	svc := NewLessonService(nil, nil, nil)

	_, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{Assunto: "   "})

	assert.ErrorIs(t, err, ErrAssuntoRequired)
}

func TestGenerateMaterialRemoteSuccess(t *testing.T) {
	client := &fakeOpenAIClient{content: validModelOutput}
	svc := NewLessonService(client, nil, nil)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{Assunto: "Frações"})
	require.NoError(t, err)

	assert.Equal(t, models.SourceOpenAI, resp.Source)
	assert.Equal(t, []string{"fala do modelo"}, resp.Roteiro.Falas)
	assert.Equal(t, "resumo do modelo", resp.Resumo.Texto)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateMaterialFallsBackWithoutClient(t *testing.T) {
	svc := NewLessonService(nil, nil, nil)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{Assunto: "Frações"})
	require.NoError(t, err)

	assert.Equal(t, models.SourceLocal, resp.Source)
	assert.NotEmpty(t, resp.Roteiro.Falas)
	assert.NotEmpty(t, resp.Resumo.Texto)
}

func TestGenerateMaterialFallsBackOnMissingKey(t *testing.T) {
	client := &fakeOpenAIClient{err: clients.ErrNoAPIKey}
	svc := NewLessonService(client, nil, nil)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{Assunto: "Frações"})
	require.NoError(t, err)

	assert.Equal(t, models.SourceLocal, resp.Source)
}

func TestGenerateMaterialFallsBackOnClientError(t *testing.T) {
	client := &fakeOpenAIClient{err: errors.New("timeout")}
	svc := NewLessonService(client, nil, nil)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{Assunto: "Frações"})
	require.NoError(t, err)

	assert.Equal(t, models.SourceLocal, resp.Source)
}

func TestGenerateMaterialFallsBackOnMalformedOutput(t *testing.T) {
	client := &fakeOpenAIClient{content: `{"roteiro": "não sou objeto"}`}
	svc := NewLessonService(client, nil, nil)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{Assunto: "Frações"})
	require.NoError(t, err)

	assert.Equal(t, models.SourceLocal, resp.Source)
}

func TestGenerateMaterialExplicitHyperfocusWinsOverProfile(t *testing.T) {
	studentRepo := &fakeStudentRepo{profile: &models.StudentProfile{
		ID:        "a1",
		Nome:      "Ana",
		Interesse: "dinossauros",
	}}
	svc := NewLessonService(nil, studentRepo, nil)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{
		Assunto:    "Frações",
		AlunoID:    "a1",
		Hyperfocus: "foguetes",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Resumo.Exemplo, "foguetes")
	assert.NotContains(t, resp.Resumo.Exemplo, "dinossauros")
}

func TestGenerateMaterialUsesProfileInteresse(t *testing.T) {
	studentRepo := &fakeStudentRepo{profile: &models.StudentProfile{
		ID:        "a1",
		Nome:      "Ana",
		Interesse: "dinossauros",
	}}
	svc := NewLessonService(nil, studentRepo, nil)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{
		Assunto: "Frações",
		AlunoID: "a1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SourceLocal, resp.Source)
	assert.Contains(t, resp.Resumo.Exemplo, "dinossauros")
}

func TestGenerateMaterialPreferenciaWhenNoInteresse(t *testing.T) {
	studentRepo := &fakeStudentRepo{profile: &models.StudentProfile{
		ID:          "a1",
		Nome:        "Ana",
		Preferencia: "desenhar",
	}}
	svc := NewLessonService(nil, studentRepo, nil)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{
		Assunto: "Frações",
		AlunoID: "a1",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Resumo.Exemplo, "desenhar")
}

func TestGenerateMaterialProfileLookupFailsOpen(t *testing.T) {
	studentRepo := &fakeStudentRepo{err: repositories.ErrNotFound}
	svc := NewLessonService(nil, studentRepo, nil)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{
		Assunto: "Frações",
		AlunoID: "inexistente",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SourceLocal, resp.Source)
}

func TestGenerateMaterialStandInProfileFromRoster(t *testing.T) {
	turmaRepo := &fakeTurmaRepo{
		turmas: []models.Turma{
			{ID: "t1", Nome: "6º A"},
			{ID: "t2", Nome: "7º A"},
		},
		aggregated: []models.TurmaAluno{
			{ID: "a1", Nome: "Bruno"},
			{ID: "a2", Nome: "Clara", Interesse: "vulcões"},
		},
	}
	svc := NewLessonService(nil, nil, turmaRepo)

	resp, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{
		Assunto: "Frações",
		Turma:   "6º A",
	})
	require.NoError(t, err)

	// o primeiro aluno com interesse/preferência vira o perfil substituto
	assert.Contains(t, resp.Resumo.Exemplo, "vulcões")
	assert.Equal(t, []string{"t1"}, turmaRepo.lastIDs)
}

func TestPreviewPromptAggregatesFuzzyMatches(t *testing.T) {
	turmaRepo := &fakeTurmaRepo{
		turmas: []models.Turma{
			{ID: "t1", Nome: "6º A"},
			{ID: "t2", Nome: "6º B"},
			{ID: "t3", Nome: "7º A"},
		},
		aggregated: []models.TurmaAluno{
			{ID: "a1", Nome: "Bruno"},
			{ID: "a2", Nome: "Clara"},
		},
	}
	svc := NewLessonService(nil, nil, turmaRepo)

	preview, err := svc.PreviewPrompt(context.Background(), models.GenerateMaterialRequest{
		Assunto: "Frações",
		Turma:   "turma do 6 ano",
	})
	require.NoError(t, err)

	require.NotNil(t, preview.Payload.TurmaContext)
	assert.Equal(t, "6º A, 6º B", preview.Payload.TurmaContext.Nome)
	// mais de uma turma casou: nenhum id único para apontar
	assert.Empty(t, preview.Payload.TurmaContext.TurmaID)
	assert.Equal(t, []string{"t1", "t2"}, turmaRepo.lastIDs)
	assert.Len(t, preview.Payload.TurmaContext.Alunos, 2)
}

func TestPreviewPromptSingleMatchKeepsTurmaID(t *testing.T) {
	turmaRepo := &fakeTurmaRepo{
		turmas:     []models.Turma{{ID: "t1", Nome: "6º A"}},
		aggregated: []models.TurmaAluno{{ID: "a1", Nome: "Bruno"}},
	}
	svc := NewLessonService(nil, nil, turmaRepo)

	preview, err := svc.PreviewPrompt(context.Background(), models.GenerateMaterialRequest{
		Assunto: "Frações",
		Turma:   "6º A",
	})
	require.NoError(t, err)

	require.NotNil(t, preview.Payload.TurmaContext)
	assert.Equal(t, "t1", preview.Payload.TurmaContext.TurmaID)
}

func TestPreviewPromptResolvesByTurmaID(t *testing.T) {
	turmaRepo := &fakeTurmaRepo{
		turma:  &models.Turma{ID: "t9", Nome: "9º C"},
		roster: []models.TurmaAluno{{ID: "a1", Nome: "Bruno"}},
	}
	svc := NewLessonService(nil, nil, turmaRepo)

	preview, err := svc.PreviewPrompt(context.Background(), models.GenerateMaterialRequest{
		Assunto: "Equações",
		TurmaID: "t9",
	})
	require.NoError(t, err)

	require.NotNil(t, preview.Payload.TurmaContext)
	assert.Equal(t, "t9", preview.Payload.TurmaContext.TurmaID)
	assert.Equal(t, "9º C", preview.Payload.TurmaContext.Nome)
}

func TestGenerateMaterialSendsContextToModel(t *testing.T) {
	client := &fakeOpenAIClient{content: validModelOutput}
	studentRepo := &fakeStudentRepo{profile: &models.StudentProfile{
		ID:        "a1",
		Nome:      "Ana",
		Interesse: "dinossauros",
	}}
	svc := NewLessonService(client, studentRepo, nil)

	_, err := svc.GenerateMaterial(context.Background(), models.GenerateMaterialRequest{
		Assunto: "Frações",
		AlunoID: "a1",
	})
	require.NoError(t, err)

	assert.Contains(t, client.lastUser, "dinossauros")
	assert.Contains(t, client.lastSystem, "JSON")
}
