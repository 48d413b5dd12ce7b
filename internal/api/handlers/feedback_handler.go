package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/andori/back/internal/models"
	"github.com/andori/back/internal/repositories"
	"github.com/andori/back/internal/utils"
)

type FeedbackHandler struct {
	aulaRepo     repositories.AulaRepository
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackHandler(aulaRepo repositories.AulaRepository, feedbackRepo repositories.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{
		aulaRepo:     aulaRepo,
		feedbackRepo: feedbackRepo,
	}
}

// HandleMaterialFeedback atende POST /api/v1/feedback/material e
// GET /api/v1/feedback/material/{arrmd_id}: feedback do professor sobre o
// material gerado, guardado na própria aula.
func (h *FeedbackHandler) HandleMaterialFeedback(w http.ResponseWriter, r *http.Request) {
	if h.aulaRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	arrmdID := pathSuffix(r, "/api/v1/feedback/material")
	if arrmdID != "" && !isUUID(arrmdID) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "arrmd_id inválido")
		return
	}

	switch {
	case r.Method == http.MethodPost && arrmdID == "":
		h.setMaterialFeedback(w, r)
	case r.Method == http.MethodGet && arrmdID != "":
		h.getMaterialFeedback(w, r, arrmdID)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
	}
}

func (h *FeedbackHandler) setMaterialFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.MaterialFeedbackUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.ArrmdID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "arrmd_id é obrigatório")
		return
	}

	out, err := h.aulaRepo.SetFeedbackMaterial(r.Context(), req.ArrmdID, req.FeedbackMaterial)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aula não encontrada")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao salvar feedback do material (arrmd_id=%s): %v", req.ArrmdID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, out)
}

func (h *FeedbackHandler) getMaterialFeedback(w http.ResponseWriter, r *http.Request, arrmdID string) {
	out, err := h.aulaRepo.GetFeedbackMaterial(r.Context(), arrmdID)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aula não encontrada")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao buscar feedback do material (arrmd_id=%s): %v", arrmdID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, out)
}

// HandleStudentFeedback atende POST /api/v1/feedback/student e
// GET /api/v1/feedback/student[/{aluno_id}]: feedback individual de alunos
// sobre aulas, com filtros opcionais.
func (h *FeedbackHandler) HandleStudentFeedback(w http.ResponseWriter, r *http.Request) {
	if h.feedbackRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	alunoID := pathSuffix(r, "/api/v1/feedback/student")
	if alunoID != "" && !isUUID(alunoID) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "aluno_id inválido")
		return
	}

	switch {
	case r.Method == http.MethodPost && alunoID == "":
		h.createStudentFeedback(w, r)
	case r.Method == http.MethodGet:
		h.listStudentFeedback(w, r, alunoID)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
	}
}

func (h *FeedbackHandler) createStudentFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.StudentFeedbackCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.IDArrmd == "" || req.AlunoID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "id_arrmd e aluno_id são obrigatórios")
		return
	}

	out, err := h.feedbackRepo.CreateStudentFeedback(r.Context(), req)
	if err != nil {
		log.Printf("❌ Falha ao registrar feedback do aluno (aluno_id=%s): %v", req.AlunoID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, out)
}

func (h *FeedbackHandler) listStudentFeedback(w http.ResponseWriter, r *http.Request, alunoID string) {
	if alunoID == "" {
		alunoID = r.URL.Query().Get("aluno_id")
	}
	idArrmd := r.URL.Query().Get("id_arrmd")
	limit, offset := clampPagination(r, 100, 500)

	items, err := h.feedbackRepo.ListStudentFeedback(r.Context(), idArrmd, alunoID, limit, offset)
	if err != nil {
		log.Printf("❌ Falha ao listar feedback de alunos: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, items)
}
