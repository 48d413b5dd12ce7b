package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/andori/back/internal/clients"
	"github.com/andori/back/internal/models"
	"github.com/andori/back/internal/repositories"
	"github.com/andori/back/internal/utils"
)

const recommendationSystemPrompt = "Você é um especialista em inclusão escolar."

// fallbackRecommendations é a orientação genérica usada quando o modelo
// remoto está indisponível. O professor sempre recebe algo aplicável.
const fallbackRecommendations = "1) Ambiente e previsibilidade: mantenha rotina visível e antecipe mudanças.\n" +
	"2) Comunicação e instruções: frases curtas, uma instrução por vez, confirme entendimento.\n" +
	"3) Interações sociais e sensorial: permita pausas e reduza estímulos quando possível.\n" +
	"4) Adaptações e alternativas de participação: ofereça formas variadas de responder (oral, escrita, desenho).\n" +
	"5) Sinais de sobrecarga e como agir: observe agitação ou retraimento e ofereça um espaço calmo."

type RecomendationService interface {
	// GenerateRecommendations salva as observações dos pais no cadastro do
	// aluno, gera recomendações de mediação e as anexa à aula.
	GenerateRecommendations(ctx context.Context, in models.RecomendationCreate) (*models.RecomendationResult, error)
}

type recomendationService struct {
	openaiClient clients.OpenAIClient
	studentRepo  repositories.StudentRepository
	aulaRepo     repositories.AulaRepository
}

func NewRecomendationService(
	openaiClient clients.OpenAIClient,
	studentRepo repositories.StudentRepository,
	aulaRepo repositories.AulaRepository,
) RecomendationService {
	return &recomendationService{
		openaiClient: openaiClient,
		studentRepo:  studentRepo,
		aulaRepo:     aulaRepo,
	}
}

func (s *recomendationService) GenerateRecommendations(ctx context.Context, in models.RecomendationCreate) (*models.RecomendationResult, error) {
	if strings.TrimSpace(in.Observacoes) == "" {
		return nil, fmt.Errorf("observações são obrigatórias")
	}

	if in.AlunoID != "" && s.studentRepo != nil {
		if err := s.studentRepo.SaveObservacoes(ctx, in.AlunoID, in.Observacoes); err != nil {
			return nil, fmt.Errorf("failed to save parent notes: %w", err)
		}
	}

	recomendacoes := s.generateText(ctx, in.Observacoes)

	if in.ArrmdID != "" && s.aulaRepo != nil {
		if err := s.aulaRepo.SetRecomendacoesIA(ctx, in.ArrmdID, recomendacoes); err != nil {
			return nil, fmt.Errorf("failed to attach recommendations to lesson: %w", err)
		}
	}

	return &models.RecomendationResult{
		AlunoID:         in.AlunoID,
		ArrmdID:         in.ArrmdID,
		Observacoes:     in.Observacoes,
		RecomendacoesIA: recomendacoes,
	}, nil
}

// generateText tenta o modelo remoto e cai para a orientação fixa em
// qualquer falha.
func (s *recomendationService) generateText(ctx context.Context, observacoes string) string {
	if s.openaiClient == nil {
		return fallbackRecommendations
	}

	prompt := utils.BuildRecommendationPrompt(observacoes)
	text, err := s.openaiClient.GenerateText(ctx, recommendationSystemPrompt, prompt)
	if err != nil {
		log.Printf("⚠️ Recomendações via modelo falharam; usando orientação padrão: %v", err)
		return fallbackRecommendations
	}
	if strings.TrimSpace(text) == "" {
		return fallbackRecommendations
	}

	return text
}
