package main

import (
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/andori/back/internal/api/handlers"
	"github.com/andori/back/internal/api/routes"
	"github.com/andori/back/internal/clients"
	"github.com/andori/back/internal/config"
	"github.com/andori/back/internal/repositories"
	"github.com/andori/back/internal/services"
)

func main() {
	// Variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: arquivo .env não encontrado: %v", err)
	}

	settings := config.LoadSettings()

	// Conexão com o banco (com retry). O servidor sobe mesmo sem banco:
	// as rotas de CRUD respondem 503 e a geração segue sem personalização.
	db := connectDatabase(settings)
	if db != nil {
		defer db.Close()
	}

	// Cliente do modelo remoto; sem chave, a geração cai no gerador local
	var openaiClient clients.OpenAIClient
	if settings.OpenAIAPIKey != "" {
		log.Printf("🤖 Cliente OpenAI inicializado (model=%s)", settings.OpenAIModel)
	} else {
		log.Printf("⚠️ OPENAI_API_KEY ausente; geração usará apenas o gerador local")
	}
	openaiClient = clients.NewOpenAIClient(settings.OpenAIAPIKey, settings.OpenAIModel, settings.OpenAITemperature)

	// Repositórios (nil quando o banco não está configurado)
	var studentRepo repositories.StudentRepository
	var turmaRepo repositories.TurmaRepository
	var aulaRepo repositories.AulaRepository
	var feedbackRepo repositories.FeedbackRepository
	var materialRepo repositories.MaterialRepository

	if db != nil {
		studentRepo = repositories.NewPostgresStudentRepository(db)
		turmaRepo = repositories.NewPostgresTurmaRepository(db)
		aulaRepo = repositories.NewPostgresAulaRepository(db)
		feedbackRepo = repositories.NewPostgresFeedbackRepository(db)
		materialRepo = repositories.NewPostgresMaterialRepository(db)
		log.Printf("✅ Repositórios Postgres inicializados")
	} else {
		log.Printf("⚠️ Banco de dados não configurado; rotas de CRUD responderão 503")
	}

	// Serviços
	lessonService := services.NewLessonService(openaiClient, studentRepo, turmaRepo)
	recomendationService := services.NewRecomendationService(openaiClient, studentRepo, aulaRepo)

	// Handlers
	materialHandler := handlers.NewMaterialHandler(lessonService, materialRepo)
	studentHandler := handlers.NewStudentHandler(studentRepo)
	turmaHandler := handlers.NewTurmaHandler(turmaRepo)
	aulaHandler := handlers.NewAulaHandler(aulaRepo)
	feedbackHandler := handlers.NewFeedbackHandler(aulaRepo, feedbackRepo)
	recomendationHandler := handlers.NewRecomendationHandler(recomendationService, studentRepo, aulaRepo)
	healthHandler := handlers.NewHealthHandler(db)

	// Rotas
	router := routes.NewRouter(
		materialHandler,
		studentHandler,
		turmaHandler,
		aulaHandler,
		feedbackHandler,
		recomendationHandler,
		healthHandler,
		settings.CORSOrigins,
	)

	log.Printf("🚀 Andori Backend iniciando na porta %s", settings.Port)
	log.Printf("📋 Endpoints disponíveis:")
	log.Printf("  - GET    /health")
	log.Printf("  - GET    /health/db")
	log.Printf("  - POST   /api/v1/material/generate")
	log.Printf("  - POST   /api/v1/material/preview")
	log.Printf("  - POST   /api/v1/material")
	log.Printf("  - GET    /api/v1/students[/{id}]")
	log.Printf("  - CRUD   /api/v1/estudantes[/{id}]")
	log.Printf("  - GET    /api/v1/turmas[/{id}[/students]]")
	log.Printf("  - CRUD   /api/v1/aulas[/{id}]")
	log.Printf("  - POST   /api/v1/feedback/material | GET /api/v1/feedback/material/{id}")
	log.Printf("  - POST   /api/v1/feedback/student | GET /api/v1/feedback/student[/{aluno_id}]")
	log.Printf("  - GET    /api/v1/familydata/{aluno_id}")
	log.Printf("  - POST   /api/v1/description")
	log.Printf("  - POST   /api/v1/recomendation | GET /api/v1/recomendation")

	if err := http.ListenAndServe(":"+settings.Port, router); err != nil {
		log.Fatal("Falha ao iniciar o servidor:", err)
	}
}

func connectDatabase(settings *config.Settings) *sqlx.DB {
	if settings.DBURL == "" {
		log.Printf("⚠️ DB_URL não configurada")
		return nil
	}

	db, err := config.NewDatabaseWithRetry(settings.DBURL)
	if err != nil {
		log.Printf("❌ Falha na conexão com o banco de dados: %v", err)
		return nil
	}

	return db
}
