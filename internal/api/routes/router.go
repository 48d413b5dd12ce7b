package routes

import (
	"net/http"

	"github.com/andori/back/internal/api/handlers"
	"github.com/andori/back/internal/api/middleware"
	"github.com/andori/back/internal/utils"
)

// NewRouter registra todas as rotas da aplicação e aplica o CORS.
func NewRouter(
	materialHandler *handlers.MaterialHandler,
	studentHandler *handlers.StudentHandler,
	turmaHandler *handlers.TurmaHandler,
	aulaHandler *handlers.AulaHandler,
	feedbackHandler *handlers.FeedbackHandler,
	recomendationHandler *handlers.RecomendationHandler,
	healthHandler *handlers.HealthHandler,
	corsOrigins []string,
) http.Handler {
	mux := http.NewServeMux()

	// Saúde do processo e do banco
	mux.HandleFunc("/", healthHandler.Health)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/health/db", healthHandler.HealthDB)

	// Geração de material de aula
	mux.HandleFunc("/api/v1/material/generate", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST":
			materialHandler.Generate(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
		}
	})
	mux.HandleFunc("/api/v1/material/preview", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST":
			materialHandler.Preview(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
		}
	})
	mux.HandleFunc("/api/v1/material", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "POST":
			materialHandler.Save(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Método não permitido")
		}
	})

	// Perfis e cadastro de alunos
	mux.HandleFunc("/api/v1/students", studentHandler.HandleStudents)
	mux.HandleFunc("/api/v1/students/", studentHandler.HandleStudents)
	mux.HandleFunc("/api/v1/estudantes", studentHandler.HandleEstudantes)
	mux.HandleFunc("/api/v1/estudantes/", studentHandler.HandleEstudantes)

	// Turmas
	mux.HandleFunc("/api/v1/turmas", turmaHandler.HandleTurmas)
	mux.HandleFunc("/api/v1/turmas/", turmaHandler.HandleTurmas)

	// Aulas
	mux.HandleFunc("/api/v1/aulas", aulaHandler.HandleAulas)
	mux.HandleFunc("/api/v1/aulas/", aulaHandler.HandleAulas)

	// Feedback de material e de alunos
	mux.HandleFunc("/api/v1/feedback/material", feedbackHandler.HandleMaterialFeedback)
	mux.HandleFunc("/api/v1/feedback/material/", feedbackHandler.HandleMaterialFeedback)
	mux.HandleFunc("/api/v1/feedback/student", feedbackHandler.HandleStudentFeedback)
	mux.HandleFunc("/api/v1/feedback/student/", feedbackHandler.HandleStudentFeedback)

	// Dados da família e descrição do aluno
	mux.HandleFunc("/api/v1/familydata/", studentHandler.HandleFamilyData)
	mux.HandleFunc("/api/v1/description", studentHandler.HandleDescription)

	// Recomendações de mediação
	mux.HandleFunc("/api/v1/recomendation", recomendationHandler.Handle)

	return middleware.CORSMiddleware(corsOrigins, mux)
}
