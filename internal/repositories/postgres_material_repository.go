package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/andori/back/internal/models"
)

type PostgresMaterialRepository struct {
	db *sqlx.DB
}

func NewPostgresMaterialRepository(db *sqlx.DB) MaterialRepository {
	return &PostgresMaterialRepository{db: db}
}

// Save persiste um material aceito pelo professor. Roteiro e resumo vão
// como jsonb para manter a forma original do artefato.
func (r *PostgresMaterialRepository) Save(ctx context.Context, in models.MaterialCreate) (*models.SavedMaterial, error) {
	roteiroJSON, err := json.Marshal(in.Roteiro)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roteiro: %w", err)
	}
	resumoJSON, err := json.Marshal(in.Resumo)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resumo: %w", err)
	}

	accepted := true
	if in.Accepted != nil {
		accepted = *in.Accepted
	}

	query := `
		INSERT INTO public.materiais (aula_id, roteiro, resumo, source, accepted, recomendacoes_ia, material_util, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, aula_id, COALESCE(source, '') AS source, accepted, created_at
	`

	var saved models.SavedMaterial
	err = r.db.GetContext(ctx, &saved, query,
		in.AulaID,
		roteiroJSON,
		resumoJSON,
		in.Source,
		accepted,
		in.RecomendacoesIA,
		in.MaterialUtil,
		in.Observacoes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save material: %w", err)
	}

	return &saved, nil
}
