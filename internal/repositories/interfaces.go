package repositories

import (
	"context"
	"errors"

	"github.com/andori/back/internal/models"
)

// ErrNotFound indica registro inexistente; os handlers traduzem para 404.
var ErrNotFound = errors.New("registro não encontrado")

type StudentRepository interface {
	// GetProfile carrega o recorte de personalização do aluno com o nome
	// da turma via LEFT JOIN.
	GetProfile(ctx context.Context, alunoID string) (*models.StudentProfile, error)
	ListSummaries(ctx context.Context, turmaID string, limit, offset int) ([]models.StudentSummary, error)

	Create(ctx context.Context, in models.EstudanteCreate) (*models.Estudante, error)
	GetByID(ctx context.Context, id string) (*models.Estudante, error)
	List(ctx context.Context) ([]models.Estudante, error)
	Update(ctx context.Context, id string, in models.EstudanteUpdate) (*models.Estudante, error)
	Delete(ctx context.Context, id string) error

	GetFamilyData(ctx context.Context, alunoID string) (*models.FamilyData, error)
	SaveDescription(ctx context.Context, alunoID, descricao string) (*models.DescriptionSaved, error)
	SaveObservacoes(ctx context.Context, alunoID, observacoes string) error
	GetObservacoes(ctx context.Context, alunoID string) (string, error)
}

type TurmaRepository interface {
	ListAll(ctx context.Context) ([]models.Turma, error)
	GetByID(ctx context.Context, id string) (*models.Turma, error)
	Professores(ctx context.Context, turmaID string) ([]models.Professor, error)
	// Roster carrega os alunos da turma ordenados por nome.
	Roster(ctx context.Context, turmaID string) ([]models.TurmaAluno, error)
	// RosterByTurmaIDs une os rosters das turmas informadas, ordenado por
	// nome, sem duplicar alunos.
	RosterByTurmaIDs(ctx context.Context, turmaIDs []string) ([]models.TurmaAluno, error)
}

type AulaRepository interface {
	Create(ctx context.Context, in models.AulaCreate) (*models.Aula, error)
	GetByID(ctx context.Context, id string) (*models.Aula, error)
	List(ctx context.Context, limit, offset int) ([]models.Aula, error)
	Update(ctx context.Context, id string, in models.AulaUpdate) (*models.Aula, error)
	Delete(ctx context.Context, id string) error

	SetFeedbackMaterial(ctx context.Context, arrmdID, feedback string) (*models.MaterialFeedback, error)
	GetFeedbackMaterial(ctx context.Context, arrmdID string) (*models.MaterialFeedback, error)
	SetRecomendacoesIA(ctx context.Context, arrmdID, recomendacoes string) error
	GetRecomendacoesIA(ctx context.Context, arrmdID string) (string, error)
}

type FeedbackRepository interface {
	CreateStudentFeedback(ctx context.Context, in models.StudentFeedbackCreate) (*models.StudentFeedback, error)
	ListStudentFeedback(ctx context.Context, idArrmd, alunoID string, limit, offset int) ([]models.StudentFeedback, error)
}

type MaterialRepository interface {
	Save(ctx context.Context, in models.MaterialCreate) (*models.SavedMaterial, error)
}
