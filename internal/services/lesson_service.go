package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/andori/back/internal/clients"
	"github.com/andori/back/internal/models"
	"github.com/andori/back/internal/repositories"
	"github.com/andori/back/internal/utils"
)

// ErrAssuntoRequired rejeita a requisição antes de qualquer trabalho de
// geração.
var ErrAssuntoRequired = errors.New("assunto é obrigatório")

type LessonService interface {
	// GenerateMaterial executa a pipeline completa: resolve contexto de
	// turma e perfil do aluno, tenta o modelo remoto e cai para o gerador
	// local. Nunca falha por indisponibilidade do modelo.
	GenerateMaterial(ctx context.Context, req models.GenerateMaterialRequest) (*models.GenerateMaterialResponse, error)
	// PreviewPrompt devolve os artefatos de prompt sem chamar o modelo.
	PreviewPrompt(ctx context.Context, req models.GenerateMaterialRequest) (*utils.PromptPreview, error)
}

type lessonService struct {
	openaiClient clients.OpenAIClient
	studentRepo  repositories.StudentRepository
	turmaRepo    repositories.TurmaRepository
}

// NewLessonService monta o serviço de geração. Os repositórios podem ser
// nil quando o banco não está configurado: a geração segue sem perfil nem
// contexto de turma.
func NewLessonService(
	openaiClient clients.OpenAIClient,
	studentRepo repositories.StudentRepository,
	turmaRepo repositories.TurmaRepository,
) LessonService {
	return &lessonService{
		openaiClient: openaiClient,
		studentRepo:  studentRepo,
		turmaRepo:    turmaRepo,
	}
}

func (s *lessonService) GenerateMaterial(ctx context.Context, req models.GenerateMaterialRequest) (*models.GenerateMaterialResponse, error) {
	if strings.TrimSpace(req.Assunto) == "" {
		return nil, ErrAssuntoRequired
	}

	profile, turmaCtx := s.resolveContext(ctx, req)
	hyperfocus := resolveHyperfocus(req, profile)

	nivel := ""
	if profile != nil {
		nivel = profile.NivelDeSuporte
	}
	strategies := SupportStrategies(nivel)

	material := s.tryRemote(ctx, req, profile, turmaCtx)
	source := models.SourceOpenAI
	if material == nil {
		log.Printf("🛟 Gerador remoto indisponível; usando gerador local (assunto=%q)", req.Assunto)
		local := LocalMaterial(req, hyperfocus, strategies)
		material = &local
		source = models.SourceLocal
	} else {
		log.Printf("✅ Material gerado pelo modelo remoto (assunto=%q)", req.Assunto)
	}

	return &models.GenerateMaterialResponse{
		Roteiro: material.Roteiro,
		Resumo:  material.Resumo,
		Source:  source,
	}, nil
}

func (s *lessonService) PreviewPrompt(ctx context.Context, req models.GenerateMaterialRequest) (*utils.PromptPreview, error) {
	if strings.TrimSpace(req.Assunto) == "" {
		return nil, ErrAssuntoRequired
	}

	profile, turmaCtx := s.resolveContext(ctx, req)

	return &utils.PromptPreview{
		Payload: utils.BuildLLMPayload(req, profile, turmaCtx),
		System:  utils.ChatSystemPrompt(),
		User:    utils.BuildUserMessage(req, profile, turmaCtx),
	}, nil
}

// resolveContext carrega perfil e contexto de turma. Leituras falham
// abertas: banco indisponível ou registro inexistente viram ausência, não
// erro — a geração precisa funcionar sem banco configurado.
func (s *lessonService) resolveContext(ctx context.Context, req models.GenerateMaterialRequest) (*models.StudentProfile, *models.TurmaContext) {
	profile := s.resolveStudentProfile(ctx, req.AlunoID)
	turmaCtx := s.resolveTurmaContext(ctx, req)

	// Sem perfil mas com turma: o primeiro aluno do roster com interesse
	// ou preferência vira perfil substituto (personalização degradada de
	// propósito, não erro).
	if profile == nil && turmaCtx != nil {
		for i := range turmaCtx.Alunos {
			aluno := turmaCtx.Alunos[i]
			if aluno.Interesse != "" || aluno.Preferencia != "" {
				log.Printf("👥 Sem perfil do aluno; usando perfil substituto do roster (aluno=%q)", aluno.Nome)
				profile = &models.StudentProfile{
					ID:               aluno.ID,
					Nome:             aluno.Nome,
					Interesse:        aluno.Interesse,
					Preferencia:      aluno.Preferencia,
					Dificuldade:      aluno.Dificuldade,
					Laudo:            aluno.Laudo,
					Observacoes:      aluno.Observacoes,
					NivelDeSuporte:   aluno.NivelDeSuporte,
					DescricaoDoAluno: aluno.DescricaoDoAluno,
					TurmaID:          aluno.TurmaID,
					TurmaNome:        turmaCtx.Nome,
				}
				break
			}
		}
	}

	return profile, turmaCtx
}

func (s *lessonService) resolveStudentProfile(ctx context.Context, alunoID string) *models.StudentProfile {
	if alunoID == "" || s.studentRepo == nil {
		return nil
	}

	profile, err := s.studentRepo.GetProfile(ctx, alunoID)
	if err != nil {
		log.Printf("⚠️ Perfil do aluno indisponível (aluno_id=%s): %v", alunoID, err)
		return nil
	}

	return profile
}

// resolveTurmaContext tenta primeiro o id exato; sem id (ou com lookup
// falho) casa o rótulo livre contra os nomes armazenados e agrega os
// rosters de todas as turmas que casarem.
func (s *lessonService) resolveTurmaContext(ctx context.Context, req models.GenerateMaterialRequest) *models.TurmaContext {
	if s.turmaRepo == nil {
		return nil
	}

	if req.TurmaID != "" {
		if turmaCtx := s.turmaContextByID(ctx, req.TurmaID); turmaCtx != nil {
			return turmaCtx
		}
	}

	if strings.TrimSpace(req.Turma) == "" {
		return nil
	}

	turmas, err := s.turmaRepo.ListAll(ctx)
	if err != nil {
		log.Printf("⚠️ Lista de turmas indisponível: %v", err)
		return nil
	}

	matched := FilterTurmas(req.Turma, turmas)
	if len(matched) == 0 {
		return nil
	}

	ids := make([]string, 0, len(matched))
	nomes := make([]string, 0, len(matched))
	for _, turma := range matched {
		ids = append(ids, turma.ID)
		nomes = append(nomes, turma.Nome)
	}

	alunos, err := s.turmaRepo.RosterByTurmaIDs(ctx, ids)
	if err != nil {
		log.Printf("⚠️ Roster agregado indisponível: %v", err)
		return nil
	}

	turmaCtx := &models.TurmaContext{
		Nome:   strings.Join(nomes, ", "),
		Alunos: alunos,
	}
	if len(matched) == 1 {
		turmaCtx.TurmaID = matched[0].ID
	}
	return turmaCtx
}

func (s *lessonService) turmaContextByID(ctx context.Context, turmaID string) *models.TurmaContext {
	turma, err := s.turmaRepo.GetByID(ctx, turmaID)
	if err != nil {
		log.Printf("⚠️ Turma não resolvida por id (turma_id=%s): %v", turmaID, err)
		return nil
	}

	alunos, err := s.turmaRepo.Roster(ctx, turma.ID)
	if err != nil {
		log.Printf("⚠️ Roster da turma indisponível (turma_id=%s): %v", turmaID, err)
		return nil
	}

	return &models.TurmaContext{
		TurmaID: turma.ID,
		Nome:    turma.Nome,
		Alunos:  alunos,
	}
}

// resolveHyperfocus aplica a prioridade: campo explícito da requisição,
// interesse do aluno, preferência do aluno, nenhum.
func resolveHyperfocus(req models.GenerateMaterialRequest, profile *models.StudentProfile) string {
	if strings.TrimSpace(req.Hyperfocus) != "" {
		return strings.TrimSpace(req.Hyperfocus)
	}
	if profile != nil {
		if profile.Interesse != "" {
			return profile.Interesse
		}
		if profile.Preferencia != "" {
			return profile.Preferencia
		}
	}
	return ""
}

// tryRemote tenta o modelo remoto. Qualquer falha — credencial ausente,
// rede, JSON malformado, chaves faltando — vira nil; quem chama decide
// cair para o gerador local. Nenhum erro do provedor atravessa esta
// fronteira.
func (s *lessonService) tryRemote(ctx context.Context, req models.GenerateMaterialRequest, profile *models.StudentProfile, turmaCtx *models.TurmaContext) *models.Material {
	if s.openaiClient == nil {
		return nil
	}

	system := utils.ChatSystemPrompt()
	user := utils.BuildUserMessage(req, profile, turmaCtx)

	content, err := s.openaiClient.GenerateJSON(ctx, system, user)
	if err != nil {
		if errors.Is(err, clients.ErrNoAPIKey) {
			log.Printf("ℹ️ Sem credencial do modelo; geração remota pulada")
		} else {
			log.Printf("⚠️ Chamada ao modelo falhou: %v", err)
		}
		return nil
	}

	material, err := ParseMaterialJSON(content)
	if err != nil {
		log.Printf("⚠️ Resposta do modelo fora do contrato: %v", err)
		return nil
	}

	return material
}
