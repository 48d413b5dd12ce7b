package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/andori/back/internal/utils"
)

// msgDBNotConfigured é a resposta das rotas que dependem do banco quando
// DATABASE_URL não foi configurada.
const msgDBNotConfigured = "Banco de dados não configurado."

func writeDBNotConfigured(w http.ResponseWriter) {
	utils.WriteErrorResponse(w, http.StatusServiceUnavailable, msgDBNotConfigured)
}

// pathSuffix extrai o resto do caminho depois do prefixo da rota, sem a
// barra inicial. Vazio quando a URL é o próprio prefixo.
func pathSuffix(r *http.Request, prefix string) string {
	suffix := strings.TrimPrefix(r.URL.Path, prefix)
	return strings.Trim(suffix, "/")
}

// isUUID valida ids de caminho antes de chegarem ao banco; id malformado
// vira 400, não erro de driver.
func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// clampPagination normaliza limit/offset da query string. Valores fora da
// faixa voltam para o padrão; offset negativo vira zero.
func clampPagination(r *http.Request, defaultLimit, maxLimit int) (int, int) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 && parsed <= maxLimit {
			limit = parsed
		}
	}

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	return limit, offset
}
