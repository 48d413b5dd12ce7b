package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/andori/back/internal/models"
)

type PostgresTurmaRepository struct {
	db *sqlx.DB
}

func NewPostgresTurmaRepository(db *sqlx.DB) TurmaRepository {
	return &PostgresTurmaRepository{db: db}
}

func (r *PostgresTurmaRepository) ListAll(ctx context.Context) ([]models.Turma, error) {
	turmas := []models.Turma{}
	err := r.db.SelectContext(ctx, &turmas,
		`SELECT t.id, t.nome FROM public.turmas t ORDER BY t.nome`)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	return turmas, nil
}

func (r *PostgresTurmaRepository) GetByID(ctx context.Context, id string) (*models.Turma, error) {
	var turma models.Turma
	err := r.db.GetContext(ctx, &turma,
		`SELECT t.id, t.nome FROM public.turmas t WHERE t.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	return &turma, nil
}

func (r *PostgresTurmaRepository) Professores(ctx context.Context, turmaID string) ([]models.Professor, error) {
	query := `
		SELECT p.id, p.nome
		FROM public.turmas_professores tp
		JOIN public.professores p ON p.id = tp.professor_id
		WHERE tp.turma_id = $1
	`

	professores := []models.Professor{}
	if err := r.db.SelectContext(ctx, &professores, query, turmaID); err != nil {
		return nil, fmt.Errorf("failed to list class teachers: %w", err)
	}

	return professores, nil
}

const rosterColumns = `
	a.id,
	a.nome,
	COALESCE(a.interesse, '') AS interesse,
	COALESCE(a.preferencia, '') AS preferencia,
	COALESCE(a.dificuldade, '') AS dificuldade,
	COALESCE(a.laudo, '') AS laudo,
	COALESCE(a.observacoes, '') AS observacoes,
	COALESCE(a.nivel_de_suporte, '') AS nivel_de_suporte,
	COALESCE(a.descricao_do_aluno, '') AS descricao_do_aluno,
	COALESCE(a.turma_id::text, '') AS turma_id
`

func (r *PostgresTurmaRepository) Roster(ctx context.Context, turmaID string) ([]models.TurmaAluno, error) {
	query := `
		SELECT ` + rosterColumns + `
		FROM public.alunos a
		WHERE a.turma_id = $1
		ORDER BY a.nome
	`

	alunos := []models.TurmaAluno{}
	if err := r.db.SelectContext(ctx, &alunos, query, turmaID); err != nil {
		return nil, fmt.Errorf("failed to load class roster: %w", err)
	}

	return alunos, nil
}

func (r *PostgresTurmaRepository) RosterByTurmaIDs(ctx context.Context, turmaIDs []string) ([]models.TurmaAluno, error) {
	if len(turmaIDs) == 0 {
		return []models.TurmaAluno{}, nil
	}

	query := `
		SELECT ` + rosterColumns + `
		FROM public.alunos a
		WHERE a.turma_id = ANY($1)
		ORDER BY a.nome
	`

	alunos := []models.TurmaAluno{}
	if err := r.db.SelectContext(ctx, &alunos, query, pq.Array(turmaIDs)); err != nil {
		return nil, fmt.Errorf("failed to load aggregated roster: %w", err)
	}

	return alunos, nil
}
