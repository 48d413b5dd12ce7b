package utils

import (
	"encoding/json"
	"strings"

	"github.com/andori/back/internal/models"
)

// Montagem determinística do prompt de geração de material. Nenhuma E/S:
// entradas iguais produzem exatamente o mesmo texto, o que sustenta o
// endpoint de preview e os testes de reprodutibilidade.

// LLMPayload é o payload de máquina enviado ao modelo e exposto no preview.
// Struct (e não mapa) para a serialização manter a ordem dos campos.
type LLMPayload struct {
	Disciplina     string                 `json:"disciplina"`
	Assunto        string                 `json:"assunto"`
	Descricao      string                 `json:"descricao"`
	Turma          string                 `json:"turma"`
	Data           string                 `json:"data"`
	Feedback       string                 `json:"feedback"`
	StudentProfile *models.StudentProfile `json:"student_profile"`
	TurmaContext   *models.TurmaContext   `json:"turma_context"`
}

// PromptPreview é o artefato de depuração devolvido sem chamar o modelo.
type PromptPreview struct {
	Payload LLMPayload `json:"payload"`
	System  string     `json:"system"`
	User    string     `json:"user"`
}

// ChatSystemPrompt fixa o contrato de saída (JSON estrito com roteiro e
// resumo), o tom e as regras de personalização do hiperfoco.
func ChatSystemPrompt() string {
	return "Você é uma IA pedagógica que prepara uma aula inclusiva para toda a turma. " +
		"Quando existir 'interesse' do student_profile, mencione esse interesse de forma explícita em 2 a 4 referências naturais (exemplos/analogias), mantendo a aula sobre o CONTEÚDO para a turma inteira. Evite estereótipos " +
		"e não exponha dados pessoais sensíveis no texto; generalize como recomendações de mediação. " +
		"Tom: professor acolhedor, envolvente, com linguagem clara. " +
		"Produza APENAS JSON VÁLIDO (sem markdown) com o formato: " +
		"{\"roteiro\": {\"topicos\": [strings OPCIONAL], \"falas\": [strings OU string], \"exemplos\": [strings OPCIONAL]}, " +
		"\"resumo\": {\"texto\": string, \"exemplo\": string}}. " +
		"A chave 'falas' pode ser UMA fala longa (um script coeso), evitando listas rígidas de passos. " +
		"Se houver vários interesses na 'turma_context', escolha 1-3 interesses mais representativos e ALTERNE os exemplos ao longo da fala. " +
		"Resumo: escreva um parágrafo consistente (≈150–220 palavras) para estudo em casa; recapitule a ideia central, termos-chave (mencione 3-5 no texto), relações entre conceitos, relevância prática, um mini-exercício de autoexplicação e uma dica de retenção. " +
		"Se não houver dados de interesse/preferência, os exemplos devem ser gerais e do cotidiano. " +
		"Se houver, inclua ao menos 1 exemplo alinhado ao interesse do público neurodivergente e o restante gerais. " +
		"Use apenas informações do student_profile e da turma_context quando fornecidos; não invente. " +
		"Nada de markdown, títulos ou explicações fora do JSON."
}

// BuildLLMPayload monta o payload de máquina a partir da requisição e do
// contexto resolvido. O rótulo da turma usa o texto do professor quando
// informado; senão, o nome resolvido do contexto.
func BuildLLMPayload(req models.GenerateMaterialRequest, profile *models.StudentProfile, turmaCtx *models.TurmaContext) LLMPayload {
	turma := req.Turma
	if turma == "" && turmaCtx != nil {
		turma = turmaCtx.Nome
	}

	return LLMPayload{
		Disciplina:     req.Disciplina,
		Assunto:        req.Assunto,
		Descricao:      req.Descricao,
		Turma:          turma,
		Data:           req.Data,
		Feedback:       req.Feedback,
		StudentProfile: profile,
		TurmaContext:   turmaCtx,
	}
}

// BuildUserMessage monta a mensagem de usuário: enquadramento da tarefa,
// regras de personalização e formato (reforçadas contra desvio do modelo)
// e o payload serializado.
func BuildUserMessage(req models.GenerateMaterialRequest, profile *models.StudentProfile, turmaCtx *models.TurmaContext) string {
	payload := BuildLLMPayload(req, profile, turmaCtx)
	encoded, _ := json.Marshal(payload)

	parts := []string{
		"Tarefa: Gere um material de aula convencional e inclusivo, com um roteiro falado que o professor pode usar em sala e um resumo para estudo em casa.",
		"Integre hiperfocos de forma NATURAL (2-4 referências) como exemplos/analogias, sem transformar a aula no tema do hiperfoco.",
		"Personalização obrigatória: " +
			"1) Reflita o assunto e a descrição fornecidos; " +
			"2) Ajuste linguagem e mediação considerando 'nivel_de_suporte' do aluno quando existir; " +
			"3) Se houver 'turma_context', consolide interesses distintos (sem citar nomes) e alterne exemplos; " +
			"4) Não invente dados; só use o que está em 'student_profile' e 'turma_context'; " +
			"5) Não exponha dados sensíveis individuais no texto final (generalize recomendações).",
		"Formato de saída (JSON VÁLIDO, sem markdown, sem comentários): " +
			"{\"roteiro\": {\"topicos\": [strings OPCIONAL], \"falas\": [strings OU string], \"exemplos\": [strings OPCIONAL]}, " +
			"\"resumo\": {\"texto\": string, \"exemplo\": string}}",
		"Limites: roteiro em fala coesa (ou 6-12 falas curtas); 0-4 tópicos; 3-5 exemplos. " +
			"Português do Brasil; linguagem clara, acolhedora e envolvente.",
		"IMPORTANTE: personalize de forma concreta ao ASSUNTO/DESCRIÇÃO; se 'student_profile.interesse' existir, inclua 2 referências alinhadas e os demais exemplos gerais/cotidianos.",
		"Entrada (JSON de referência para geração): " + string(encoded),
	}
	return strings.Join(parts, "\n")
}

// BuildRecommendationPrompt estrutura as observações dos pais em um pedido
// de orientação prática de mediação para o professor.
func BuildRecommendationPrompt(observacoes string) string {
	return "Você é um especialista em inclusão escolar e intervenção pedagógica para estudantes neurodivergentes.\n" +
		"A seguir estão observações dos pais sobre necessidades/cuidados do estudante.\n" +
		"Devolva uma orientação prática e estruturada para o professor aplicar na aula.\n" +
		"Formato esperado (texto curto, em tópicos numerados):\n" +
		"1) Ambiente e previsibilidade\n" +
		"2) Comunicação e instruções\n" +
		"3) Interações sociais e sensorial\n" +
		"4) Adaptações e alternativas de participação\n" +
		"5) Sinais de sobrecarga e como agir\n\n" +
		"Observações dos pais: " + observacoes + "\n" +
		"Responda em português brasileiro."
}
