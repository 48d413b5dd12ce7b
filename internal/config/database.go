package config

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// NewDatabaseWithRetry conecta ao Postgres com retry e executa as migrações.
// O servidor tolera a ausência do banco: quem chama decide seguir sem ele.
func NewDatabaseWithRetry(dbURL string) (*sqlx.DB, error) {
	maxRetries := 15
	retryInterval := 2 * time.Second

	log.Printf("📦 Iniciando conexão com o banco de dados...")

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		db, err := sqlx.Connect("postgres", dbURL)
		if err == nil {
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(5)

			if pingErr := db.Ping(); pingErr == nil {
				log.Printf("✅ Conexão com o banco de dados estabelecida")

				if migErr := runMigrations(db); migErr != nil {
					log.Printf("⚠️ Aviso de migração: %v", migErr)
				}

				return db, nil
			} else {
				db.Close()
				err = pingErr
			}
		}
		lastErr = err

		if i == 0 {
			log.Printf("⏳ Aguardando o banco de dados subir... (máximo de %d tentativas)", maxRetries)
		}
		if i < maxRetries-1 {
			log.Printf("⏳ Tentativa %d/%d: %v", i+1, maxRetries, err)
			time.Sleep(retryInterval)
		}
	}

	return nil, fmt.Errorf("falha ao conectar ao banco após %d tentativas: %w", maxRetries, lastErr)
}

// runMigrations executa os arquivos .sql do diretório migrations em ordem.
func runMigrations(db *sqlx.DB) error {
	return runMigrationFiles(db, "migrations")
}

func runMigrationFiles(db *sqlx.DB, migrationDir string) error {
	files, err := os.ReadDir(migrationDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️ Diretório de migrações não existe: %s", migrationDir)
			return nil
		}
		return fmt.Errorf("falha ao ler diretório de migrações: %w", err)
	}

	var sqlFiles []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".sql") {
			sqlFiles = append(sqlFiles, file.Name())
		}
	}
	sort.Strings(sqlFiles)

	if len(sqlFiles) == 0 {
		log.Printf("⚠️ Nenhum arquivo de migração encontrado")
		return nil
	}

	for _, filename := range sqlFiles {
		path := fmt.Sprintf("%s/%s", migrationDir, filename)
		log.Printf("📄 Executando migração: %s", filename)

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("falha ao ler migração %s: %w", filename, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("falha ao executar migração %s: %w", filename, err)
		}
	}

	log.Printf("🎉 Migrações concluídas")
	return nil
}
