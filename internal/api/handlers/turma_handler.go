package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/andori/back/internal/models"
	"github.com/andori/back/internal/repositories"
	"github.com/andori/back/internal/utils"
)

type TurmaHandler struct {
	turmaRepo repositories.TurmaRepository
}

func NewTurmaHandler(turmaRepo repositories.TurmaRepository) *TurmaHandler {
	return &TurmaHandler{turmaRepo: turmaRepo}
}

// HandleTurmas atende /api/v1/turmas, /api/v1/turmas/{id} e
// /api/v1/turmas/{id}/students.
func (h *TurmaHandler) HandleTurmas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
		return
	}
	if h.turmaRepo == nil {
		writeDBNotConfigured(w)
		return
	}

	suffix := pathSuffix(r, "/api/v1/turmas")
	if suffix == "" {
		h.list(w, r)
		return
	}

	parts := strings.SplitN(suffix, "/", 2)
	id := parts[0]
	if !isUUID(id) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "id inválido")
		return
	}
	if len(parts) == 2 && parts[1] == "students" {
		h.roster(w, r, id)
		return
	}
	if len(parts) == 2 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Rota não encontrada")
		return
	}

	h.get(w, r, id)
}

func (h *TurmaHandler) list(w http.ResponseWriter, r *http.Request) {
	turmas, err := h.turmaRepo.ListAll(r.Context())
	if err != nil {
		log.Printf("❌ Falha ao listar turmas: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, turmas)
}

func (h *TurmaHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	turma, err := h.turmaRepo.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Turma não encontrada")
		return
	}
	if err != nil {
		log.Printf("❌ Falha ao buscar turma (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	professores, err := h.turmaRepo.Professores(r.Context(), id)
	if err != nil {
		log.Printf("❌ Falha ao listar professores da turma (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"id":          turma.ID,
		"nome":        turma.Nome,
		"professores": professores,
	})
}

func (h *TurmaHandler) roster(w http.ResponseWriter, r *http.Request, id string) {
	if _, err := h.turmaRepo.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Turma não encontrada")
			return
		}
		log.Printf("❌ Falha ao buscar turma (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}

	alunos, err := h.turmaRepo.Roster(r.Context(), id)
	if err != nil {
		log.Printf("❌ Falha ao listar alunos da turma (id=%s): %v", id, err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Erro interno do servidor")
		return
	}
	if alunos == nil {
		alunos = []models.TurmaAluno{}
	}

	utils.WriteJSONResponse(w, http.StatusOK, alunos)
}
