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

type StudentHandler struct {
	studentRepo repositories.StudentRepository
}

func NewStudentHandler(studentRepo repositories.StudentRepository) *StudentHandler {
	return &StudentHandler{studentRepo: studentRepo}
}

// HandleStudents atende /api/v1/students e /api/v1/students/{id}: lista de
// resumos com paginação ou perfil completo de personalização.
func (h *StudentHandler) HandleStudents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
		return
	}
	if h.studentRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	id := pathSuffix(r, "/api/v1/students")
	if id == "" {
		h.listSummaries(w, r)
		return
	}
	if !isUUID(id) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "id inválido")
		return
	}

	profile, err := h.studentRepo.GetProfile(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aluno não encontrado")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao carregar perfil do aluno (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, profile)
}

func (h *StudentHandler) listSummaries(w http.ResponseWriter, r *http.Request) {
	limit, offset := clampPagination(r, 50, 200)
	turmaID := r.URL.Query().Get("turma_id")

	summaries, err := h.studentRepo.ListSummaries(r.Context(), turmaID, limit, offset)
	if err != nil {
		log.Printf("❌ Falha ao listar alunos: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, summaries)
}

// HandleEstudantes atende o CRUD em /api/v1/estudantes e
// /api/v1/estudantes/{id}.
func (h *StudentHandler) HandleEstudantes(w http.ResponseWriter, r *http.Request) {
	if h.studentRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	id := pathSuffix(r, "/api/v1/estudantes")
	if id != "" && !isUUID(id) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "id inválido")
		return
	}

	switch {
	case id == "" && r.Method == http.MethodPost:
		h.createEstudante(w, r)
	case id == "" && r.Method == http.MethodGet:
		h.listEstudantes(w, r)
	case id != "" && r.Method == http.MethodGet:
		h.getEstudante(w, r, id)
	case id != "" && r.Method == http.MethodPut:
		h.updateEstudante(w, r, id)
	case id != "" && r.Method == http.MethodDelete:
		h.deleteEstudante(w, r, id)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
	}
}

func (h *StudentHandler) createEstudante(w http.ResponseWriter, r *http.Request) {
	var req models.EstudanteCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.Nome == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "nome é obrigatório")
		return
	}

	estudante, err := h.studentRepo.Create(r.Context(), req)
	if err != nil {
		log.Printf("❌ Falha ao criar aluno: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	log.Printf("🧑‍🎓 Aluno criado (id=%s nome=%q)", estudante.ID, estudante.Nome)
	utils.WriteJSONResponse(w, http.StatusCreated, estudante)
}

func (h *StudentHandler) listEstudantes(w http.ResponseWriter, r *http.Request) {
	estudantes, err := h.studentRepo.List(r.Context())
	if err != nil {
		log.Printf("❌ Falha ao listar estudantes: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, estudantes)
}

func (h *StudentHandler) getEstudante(w http.ResponseWriter, r *http.Request, id string) {
	estudante, err := h.studentRepo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aluno não encontrado")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao buscar aluno (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, estudante)
}

func (h *StudentHandler) updateEstudante(w http.ResponseWriter, r *http.Request, id string) {
	var req models.EstudanteUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	estudante, err := h.studentRepo.Update(r.Context(), id, req)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aluno não encontrado")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao atualizar aluno (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, estudante)
}

func (h *StudentHandler) deleteEstudante(w http.ResponseWriter, r *http.Request, id string) {
	err := h.studentRepo.Delete(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aluno não encontrado")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao remover aluno (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleFamilyData atende GET /api/v1/familydata/{aluno_id}.
func (h *StudentHandler) HandleFamilyData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
		return
	}
	if h.studentRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	alunoID := pathSuffix(r, "/api/v1/familydata")
	if alunoID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "aluno_id é obrigatório")
		return
	}
	if !isUUID(alunoID) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "aluno_id inválido")
		return
	}

	data, err := h.studentRepo.GetFamilyData(r.Context(), alunoID)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aluno não encontrado")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao buscar dados da família (aluno_id=%s): %v", alunoID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// HandleDescription atende POST /api/v1/description: grava a descrição
// livre do aluno preenchida pela família.
func (h *StudentHandler) HandleDescription(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
		return
	}
	if h.studentRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	var req models.DescriptionCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.AlunoID == "" || req.Descricao == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "aluno_id e descricao são obrigatórios")
		return
	}

	saved, err := h.studentRepo.SaveDescription(r.Context(), req.AlunoID, req.Descricao)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aluno não encontrado")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao salvar descrição do aluno (aluno_id=%s): %v", req.AlunoID, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, saved)
}
