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

type MaterialHandler struct {
	lessonService services.LessonService
	materialRepo  repositories.MaterialRepository
}

// NewMaterialHandler monta o handler de material. materialRepo pode ser
// nil quando o banco não está configurado; só a persistência exige banco.
func NewMaterialHandler(lessonService services.LessonService, materialRepo repositories.MaterialRepository) *MaterialHandler {
	return &MaterialHandler{
		lessonService: lessonService,
		materialRepo:  materialRepo,
	}
}

// Generate executa a pipeline de geração. Nunca devolve erro por
// indisponibilidade do modelo: o gerador local garante resposta.
func (h *MaterialHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	log.Printf("📝 Geração de material solicitada (assunto=%q turma=%q aluno_id=%q)", req.Assunto, req.Turma, req.AlunoID)

	resp, err := h.lessonService.GenerateMaterial(r.Context(), req)
	if errors.Is(err, services.ErrAssuntoRequired) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("❌ Falha inesperada na geração: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// Preview devolve os artefatos de prompt sem chamar o modelo.
func (h *MaterialHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	preview, err := h.lessonService.PreviewPrompt(r.Context(), req)
	if errors.Is(err, services.ErrAssuntoRequired) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, preview)
}

// Save persiste um material aceito pelo professor.
func (h *MaterialHandler) Save(w http.ResponseWriter, r *http.Request) {
	if h.materialRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	var req models.MaterialCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.AulaID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "aula_id é obrigatório")
		return
	}

	saved, err := h.materialRepo.Save(r.Context(), req)
	if err != nil {
		log.Printf("❌ Falha ao salvar material (aula_id=%s): %v", req.AulaID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	log.Printf("💾 Material salvo (id=%s aula_id=%s source=%s)", saved.ID, saved.AulaID, saved.Source)
	utils.WriteJSONResponse(w, http.StatusCreated, saved)
}
