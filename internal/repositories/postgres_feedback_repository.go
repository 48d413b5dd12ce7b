package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/andori/back/internal/models"
)

type PostgresFeedbackRepository struct {
	db *sqlx.DB
}

func NewPostgresFeedbackRepository(db *sqlx.DB) FeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) CreateStudentFeedback(ctx context.Context, in models.StudentFeedbackCreate) (*models.StudentFeedback, error) {
	query := `
		INSERT INTO public.feedback_aluno_aula (id_arrmd, aluno_id, feedback)
		VALUES ($1, $2, $3)
		RETURNING id, id_arrmd, aluno_id, feedback
	`

	var out models.StudentFeedback
	err := r.db.GetContext(ctx, &out, query, in.IDArrmd, in.AlunoID, in.Feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to create student feedback: %w", err)
	}

	return &out, nil
}

func (r *PostgresFeedbackRepository) ListStudentFeedback(ctx context.Context, idArrmd, alunoID string, limit, offset int) ([]models.StudentFeedback, error) {
	query := `
		SELECT id, id_arrmd, aluno_id, feedback
		FROM public.feedback_aluno_aula
	`
	filters := []string{}
	args := []interface{}{}
	if idArrmd != "" {
		args = append(args, idArrmd)
		filters = append(filters, fmt.Sprintf("id_arrmd = $%d", len(args)))
	}
	if alunoID != "" {
		args = append(args, alunoID)
		filters = append(filters, fmt.Sprintf("aluno_id = $%d", len(args)))
	}
	for i, filter := range filters {
		if i == 0 {
			query += " WHERE " + filter
		} else {
			query += " AND " + filter
		}
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	items := []models.StudentFeedback{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list student feedback: %w", err)
	}

	return items, nil
}
