package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andori/back/internal/models"
	"github.com/andori/back/internal/services"
	"github.com/andori/back/internal/utils"
)

type fakeLessonService struct {
	resp    *models.GenerateMaterialResponse
	preview *utils.PromptPreview
	err     error
}

func (f *fakeLessonService) GenerateMaterial(ctx context.Context, req models.GenerateMaterialRequest) (*models.GenerateMaterialResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeLessonService) PreviewPrompt(ctx context.Context, req models.GenerateMaterialRequest) (*utils.PromptPreview, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.preview, nil
}

func TestMaterialGenerateOK(t *testing.T) {
	svc := &fakeLessonService{resp: &models.GenerateMaterialResponse{
		Roteiro: models.Roteiro{Falas: []string{"fala"}, Topicos: []string{}, Exemplos: []string{}},
		Resumo:  models.Resumo{Texto: "texto", Exemplo: "exemplo"},
		Source:  models.SourceLocal,
	}}
	handler := NewMaterialHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/material/generate",
		strings.NewReader(`{"assunto": "Frações", "turma": "6º A"}`))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.GenerateMaterialResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.SourceLocal, body.Source)
	assert.Equal(t, []string{"fala"}, body.Roteiro.Falas)
}

func TestMaterialGenerateMissingAssunto(t *testing.T) {
	svc := &fakeLessonService{err: services.ErrAssuntoRequired}
	handler := NewMaterialHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/material/generate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}

func TestMaterialGenerateInvalidJSON(t *testing.T) {
	handler := NewMaterialHandler(&fakeLessonService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/material/generate", strings.NewReader(`{nope`))
	rec := httptest.NewRecorder()

	handler.Generate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMaterialSaveWithoutDatabase(t *testing.T) {
	handler := NewMaterialHandler(&fakeLessonService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/material",
		strings.NewReader(`{"aula_id": "x"}`))
	rec := httptest.NewRecorder()

	handler.Save(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgDBNotConfigured, body.Error)
}

func TestMaterialPreviewOK(t *testing.T) {
	svc := &fakeLessonService{preview: &utils.PromptPreview{
		System: "sistema",
		User:   "usuário",
	}}
	handler := NewMaterialHandler(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/material/preview",
		strings.NewReader(`{"assunto": "Frações"}`))
	rec := httptest.NewRecorder()

	handler.Preview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body utils.PromptPreview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "sistema", body.System)
}
