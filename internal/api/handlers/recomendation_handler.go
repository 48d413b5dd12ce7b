package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/andori/back/internal/models"
	"github.com/andori/back/internal/repositories"
	"github.com/andori/back/internal/services"
	"github.com/andori/back/internal/utils"
)

type RecomendationHandler struct {
	service     services.RecomendationService
	studentRepo repositories.StudentRepository
	aulaRepo    repositories.AulaRepository
}

func NewRecomendationHandler(
	service services.RecomendationService,
	studentRepo repositories.StudentRepository,
	aulaRepo repositories.AulaRepository,
) *RecomendationHandler {
	return &RecomendationHandler{
		service:     service,
		studentRepo: studentRepo,
		aulaRepo:    aulaRepo,
	}
}

// Handle atende POST /api/v1/recomendation (gera e grava recomendações) e
// GET /api/v1/recomendation?arrmd_id=|aluno_id= (consulta o que foi salvo).
func (h *RecomendationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.get(w, r)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
	}
}

func (h *RecomendationHandler) create(w http.ResponseWriter, r *http.Request) {
	var req models.RecomendationCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.Observacoes == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "observações são obrigatórias")
		return
	}
	if (req.AlunoID != "" || req.ArrmdID != "") && h.studentRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	result, err := h.service.GenerateRecommendations(r.Context(), req)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Registro não encontrado")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao gerar recomendações: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	log.Printf("💡 Recomendações geradas (aluno_id=%s arrmd_id=%s)", result.AlunoID, result.ArrmdID)
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

func (h *RecomendationHandler) get(w http.ResponseWriter, r *http.Request) {
	arrmdID := r.URL.Query().Get("arrmd_id")
	alunoID := r.URL.Query().Get("aluno_id")

	switch {
	case arrmdID != "":
		if h.aulaRepo == nil {
			writeDBNotConfigured(w)
			return
		}
		recomendacoes, err := h.aulaRepo.GetRecomendacoesIA(r.Context(), arrmdID)
		if errors.Is(err, repositories.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Aula não encontrada")
			return
		}
		if err != nil {
			log.Printf("❌ Falha ao buscar recomendações (arrmd_id=%s): %v", arrmdID, err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, map[string]string{
			"arrmd_id":         arrmdID,
			"recomendacoes_ia": recomendacoes,
		})
	case alunoID != "":
		if h.studentRepo == nil {
			writeDBNotConfigured(w)
			return
		}
		observacoes, err := h.studentRepo.GetObservacoes(r.Context(), alunoID)
		if errors.Is(err, repositories.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Aluno não encontrado")
			return
		}
		if err != nil {
			log.Printf("❌ Falha ao buscar observações (aluno_id=%s): %v", alunoID, err)
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, map[string]string{
			"aluno_id":    alunoID,
			"observacoes": observacoes,
		})
	default:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "informe arrmd_id ou aluno_id")
	}
}
