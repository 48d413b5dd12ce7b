package handlers

import (
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/andori/back/internal/utils"
)

type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler monta o handler de saúde. db pode ser nil quando o
// banco não está configurado.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health responde a liveness simples do processo.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// HealthDB verifica a conectividade real com o banco via SELECT 1.
func (h *HealthHandler) HealthDB(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeDBNotConfigured(w)
		return
	}

	var one int
	if err := h.db.GetContext(r.Context(), &one, "SELECT 1"); err != nil {
		log.Printf("❌ Banco de dados inacessível: %v", err)
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Banco de dados inacessível")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "ok",
	})
}
