package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/andori/back/internal/models"
)

type PostgresStudentRepository struct {
	db *sqlx.DB
}

func NewPostgresStudentRepository(db *sqlx.DB) StudentRepository {
	return &PostgresStudentRepository{db: db}
}

func (r *PostgresStudentRepository) GetProfile(ctx context.Context, alunoID string) (*models.StudentProfile, error) {
	query := `
		SELECT a.id,
		       a.nome,
		       COALESCE(a.interesse, '') AS interesse,
		       COALESCE(a.preferencia, '') AS preferencia,
		       COALESCE(a.dificuldade, '') AS dificuldade,
		       COALESCE(a.laudo, '') AS laudo,
		       COALESCE(a.observacoes, '') AS observacoes,
		       COALESCE(a.nivel_de_suporte, '') AS nivel_de_suporte,
		       COALESCE(a.descricao_do_aluno, '') AS descricao_do_aluno,
		       COALESCE(a.turma_id::text, '') AS turma_id,
		       COALESCE(t.nome, '') AS turma_nome
		FROM public.alunos a
		LEFT JOIN public.turmas t ON t.id = a.turma_id
		WHERE a.id = $1
	`

	var profile models.StudentProfile
	err := r.db.GetContext(ctx, &profile, query, alunoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student profile: %w", err)
	}

	return &profile, nil
}

func (r *PostgresStudentRepository) ListSummaries(ctx context.Context, turmaID string, limit, offset int) ([]models.StudentSummary, error) {
	query := `
		SELECT a.id,
		       a.nome,
		       COALESCE(a.turma_id::text, '') AS turma_id,
		       COALESCE(t.nome, '') AS turma_nome
		FROM public.alunos a
		LEFT JOIN public.turmas t ON t.id = a.turma_id
	`
	args := []interface{}{}
	if turmaID != "" {
		query += ` WHERE a.turma_id = $1 ORDER BY a.nome LIMIT $2 OFFSET $3`
		args = append(args, turmaID, limit, offset)
	} else {
		query += ` ORDER BY a.nome LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	summaries := []models.StudentSummary{}
	if err := r.db.SelectContext(ctx, &summaries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return summaries, nil
}

func (r *PostgresStudentRepository) Create(ctx context.Context, in models.EstudanteCreate) (*models.Estudante, error) {
	query := `
		INSERT INTO public.alunos (nome, serie_escolar, turma_id)
		VALUES ($1, $2, $3)
		RETURNING id, nome, COALESCE(serie_escolar, '') AS serie_escolar, COALESCE(turma_id::text, '') AS turma_id
	`

	var estudante models.Estudante
	err := r.db.GetContext(ctx, &estudante, query, in.Nome, in.SerieEscolar, nullIfEmpty(in.TurmaID))
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return &estudante, nil
}

func (r *PostgresStudentRepository) GetByID(ctx context.Context, id string) (*models.Estudante, error) {
	query := `
		SELECT id, nome, COALESCE(serie_escolar, '') AS serie_escolar, COALESCE(turma_id::text, '') AS turma_id
		FROM public.alunos
		WHERE id = $1
	`

	var estudante models.Estudante
	err := r.db.GetContext(ctx, &estudante, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return &estudante, nil
}

func (r *PostgresStudentRepository) List(ctx context.Context) ([]models.Estudante, error) {
	query := `
		SELECT id, nome, COALESCE(serie_escolar, '') AS serie_escolar, COALESCE(turma_id::text, '') AS turma_id
		FROM public.alunos
		ORDER BY nome
	`

	estudantes := []models.Estudante{}
	if err := r.db.SelectContext(ctx, &estudantes, query); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return estudantes, nil
}

// Update faz atualização parcial com COALESCE: campos não enviados mantêm
// o valor atual.
func (r *PostgresStudentRepository) Update(ctx context.Context, id string, in models.EstudanteUpdate) (*models.Estudante, error) {
	query := `
		UPDATE public.alunos
		SET
			nome = COALESCE($2, nome),
			serie_escolar = COALESCE($3, serie_escolar),
			turma_id = COALESCE($4, turma_id)
		WHERE id = $1
		RETURNING id, nome, COALESCE(serie_escolar, '') AS serie_escolar, COALESCE(turma_id::text, '') AS turma_id
	`

	var estudante models.Estudante
	err := r.db.GetContext(ctx, &estudante, query, id, in.Nome, in.SerieEscolar, in.TurmaID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	return &estudante, nil
}

func (r *PostgresStudentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM public.alunos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresStudentRepository) GetFamilyData(ctx context.Context, alunoID string) (*models.FamilyData, error) {
	query := `
		SELECT COALESCE(interesse, '') AS interesse,
		       COALESCE(preferencia, '') AS preferencia,
		       COALESCE(dificuldade, '') AS dificuldade,
		       COALESCE(laudo, '') AS laudo,
		       COALESCE(observacoes, '') AS observacoes,
		       COALESCE(nivel_de_suporte, '') AS nivel_de_suporte
		FROM public.alunos
		WHERE id = $1
	`

	var data models.FamilyData
	err := r.db.GetContext(ctx, &data, query, alunoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get family data: %w", err)
	}

	return &data, nil
}

func (r *PostgresStudentRepository) SaveDescription(ctx context.Context, alunoID, descricao string) (*models.DescriptionSaved, error) {
	query := `
		UPDATE public.alunos
		SET descricao_do_aluno = $2
		WHERE id = $1
		RETURNING id, COALESCE(descricao_do_aluno, '') AS descricao_do_aluno
	`

	var saved models.DescriptionSaved
	err := r.db.GetContext(ctx, &saved, query, alunoID, descricao)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save description: %w", err)
	}

	return &saved, nil
}

func (r *PostgresStudentRepository) SaveObservacoes(ctx context.Context, alunoID, observacoes string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE public.alunos SET observacoes = $2 WHERE id = $1`,
		alunoID, observacoes)
	if err != nil {
		return fmt.Errorf("failed to save observations: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresStudentRepository) GetObservacoes(ctx context.Context, alunoID string) (string, error) {
	var observacoes string
	err := r.db.GetContext(ctx, &observacoes,
		`SELECT COALESCE(observacoes, '') FROM public.alunos WHERE id = $1`, alunoID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get observations: %w", err)
	}

	return observacoes, nil
}

// nullIfEmpty converte string vazia em NULL para colunas uuid opcionais.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
