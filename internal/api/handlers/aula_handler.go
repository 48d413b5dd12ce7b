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

type AulaHandler struct {
	aulaRepo repositories.AulaRepository
}

func NewAulaHandler(aulaRepo repositories.AulaRepository) *AulaHandler {
	return &AulaHandler{aulaRepo: aulaRepo}
}

// HandleAulas atende o CRUD em /api/v1/aulas e /api/v1/aulas/{id}.
func (h *AulaHandler) HandleAulas(w http.ResponseWriter, r *http.Request) {
	if h.aulaRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	id := pathSuffix(r, "/api/v1/aulas")
	if id != "" && !isUUID(id) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "id inválido")
		return
	}

	switch {
	case id == "" && r.Method == http.MethodPost:
		h.create(w, r)
	case id == "" && r.Method == http.MethodGet:
		h.list(w, r)
	case id != "" && r.Method == http.MethodGet:
		h.get(w, r, id)
	case id != "" && r.Method == http.MethodPut:
		h.update(w, r, id)
	case id != "" && r.Method == http.MethodDelete:
		h.delete(w, r, id)
	default:
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
	}
}

func (h *AulaHandler) create(w http.ResponseWriter, r *http.Request) {
	var req models.AulaCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if req.Assunto == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "assunto é obrigatório")
		return
	}

	aula, err := h.aulaRepo.Create(r.Context(), req)
	if err != nil {
		log.Printf("❌ Falha ao criar aula: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	log.Printf("📚 Aula criada (id=%s assunto=%q)", aula.ID, aula.Assunto)
	utils.WriteJSONResponse(w, http.StatusCreated, aula)
}

func (h *AulaHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, offset := clampPagination(r, 50, 200)

	aulas, err := h.aulaRepo.List(r.Context(), limit, offset)
	if err != nil {
		log.Printf("❌ Falha ao listar aulas: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, aulas)
}

func (h *AulaHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	aula, err := h.aulaRepo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aula não encontrada")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao buscar aula (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, aula)
}

func (h *AulaHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	var req models.AulaUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	aula, err := h.aulaRepo.Update(r.Context(), id, req)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aula não encontrada")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao atualizar aula (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, aula)
}

func (h *AulaHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.aulaRepo.Delete(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Aula não encontrada")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao remover aula (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
