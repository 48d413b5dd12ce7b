package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/andori/back/internal/models"
)

type PostgresAulaRepository struct {
	db *sqlx.DB
}

func NewPostgresAulaRepository(db *sqlx.DB) AulaRepository {
	return &PostgresAulaRepository{db: db}
}

// scanAula decodifica a linha do arrmd, inclusive o jsonb livre de
// upload_arquivo.
func scanAula(row *sqlx.Row) (*models.Aula, error) {
	var aula models.Aula
	var uploadJSON []byte

	if err := row.Scan(&aula.ID, &aula.Assunto, &aula.Descricao, &uploadJSON); err != nil {
		return nil, err
	}

	if len(uploadJSON) > 0 {
		if err := json.Unmarshal(uploadJSON, &aula.UploadArquivo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal upload_arquivo: %w", err)
		}
	}

	return &aula, nil
}

func marshalUpload(upload map[string]interface{}) (interface{}, error) {
	if upload == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(upload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upload_arquivo: %w", err)
	}
	return encoded, nil
}

func (r *PostgresAulaRepository) Create(ctx context.Context, in models.AulaCreate) (*models.Aula, error) {
	uploadJSON, err := marshalUpload(in.UploadArquivo)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO public.arrmd (assunto, descricao, upload_arquivo)
		VALUES ($1, $2, $3)
		RETURNING id, assunto, COALESCE(descricao, '') AS descricao, upload_arquivo
	`

	row := r.db.QueryRowxContext(ctx, query, in.Assunto, in.Descricao, uploadJSON)
	aula, err := scanAula(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	return aula, nil
}

func (r *PostgresAulaRepository) GetByID(ctx context.Context, id string) (*models.Aula, error) {
	query := `
		SELECT id, assunto, COALESCE(descricao, '') AS descricao, upload_arquivo
		FROM public.arrmd
		WHERE id = $1
	`

	row := r.db.QueryRowxContext(ctx, query, id)
	aula, err := scanAula(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	return aula, nil
}

func (r *PostgresAulaRepository) List(ctx context.Context, limit, offset int) ([]models.Aula, error) {
	query := `
		SELECT id, assunto, COALESCE(descricao, '') AS descricao, upload_arquivo
		FROM public.arrmd
		ORDER BY assunto
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryxContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	defer rows.Close()

	aulas := []models.Aula{}
	for rows.Next() {
		var aula models.Aula
		var uploadJSON []byte
		if err := rows.Scan(&aula.ID, &aula.Assunto, &aula.Descricao, &uploadJSON); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		if len(uploadJSON) > 0 {
			if err := json.Unmarshal(uploadJSON, &aula.UploadArquivo); err != nil {
				return nil, fmt.Errorf("failed to unmarshal upload_arquivo: %w", err)
			}
		}
		aulas = append(aulas, aula)
	}

	return aulas, nil
}

func (r *PostgresAulaRepository) Update(ctx context.Context, id string, in models.AulaUpdate) (*models.Aula, error) {
	uploadJSON, err := marshalUpload(in.UploadArquivo)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE public.arrmd
		SET
			assunto = COALESCE($2, assunto),
			descricao = COALESCE($3, descricao),
			upload_arquivo = COALESCE($4, upload_arquivo)
		WHERE id = $1
		RETURNING id, assunto, COALESCE(descricao, '') AS descricao, upload_arquivo
	`

	row := r.db.QueryRowxContext(ctx, query, id, in.Assunto, in.Descricao, uploadJSON)
	aula, err := scanAula(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update lesson: %w", err)
	}

	return aula, nil
}

func (r *PostgresAulaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM public.arrmd WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
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

func (r *PostgresAulaRepository) SetFeedbackMaterial(ctx context.Context, arrmdID, feedback string) (*models.MaterialFeedback, error) {
	query := `
		UPDATE public.arrmd
		SET feedback_material = $2
		WHERE id = $1
		RETURNING id, COALESCE(feedback_material, '') AS feedback_material
	`

	var out models.MaterialFeedback
	err := r.db.GetContext(ctx, &out, query, arrmdID, feedback)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set material feedback: %w", err)
	}

	return &out, nil
}

func (r *PostgresAulaRepository) GetFeedbackMaterial(ctx context.Context, arrmdID string) (*models.MaterialFeedback, error) {
	query := `
		SELECT id, COALESCE(feedback_material, '') AS feedback_material
		FROM public.arrmd
		WHERE id = $1
	`

	var out models.MaterialFeedback
	err := r.db.GetContext(ctx, &out, query, arrmdID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get material feedback: %w", err)
	}

	return &out, nil
}

func (r *PostgresAulaRepository) SetRecomendacoesIA(ctx context.Context, arrmdID, recomendacoes string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE public.arrmd SET recomendacoes_ia = $2 WHERE id = $1`,
		arrmdID, recomendacoes)
	if err != nil {
		return fmt.Errorf("failed to set AI recommendations: %w", err)
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

func (r *PostgresAulaRepository) GetRecomendacoesIA(ctx context.Context, arrmdID string) (string, error) {
	var recomendacoes string
	err := r.db.GetContext(ctx, &recomendacoes,
		`SELECT COALESCE(recomendacoes_ia, '') FROM public.arrmd WHERE id = $1`, arrmdID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get AI recommendations: %w", err)
	}

	return recomendacoes, nil
}
