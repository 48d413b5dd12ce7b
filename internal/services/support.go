package services

import "strings"

// Estratégias de mediação por nível de suporte. Os valores "alto" e
// "medio"/"médio" vêm do formulário da família; qualquer outro rótulo
// (inclusive vazio) recebe só a lista base.

var baseSupportStrategies = []string{
	"Antecipação da agenda e objetivos",
	"Instruções passo a passo com exemplos visuais",
	"Linguagem direta, sem ambiguidades",
	"Tempo extra para resposta e pausas curtas",
	"Opções de participação com baixa sobrecarga sensorial",
}

var highSupportStrategies = []string{
	"Apoio individual próximo durante as atividades",
	"Redução de estímulos sensoriais e pausas programadas",
	"Comunicação alternativa (gestos ou cartões) quando necessário",
}

var mediumSupportStrategies = []string{
	"Checagem de compreensão a cada etapa com perguntas curtas",
}

// SupportStrategies mapeia o nível de suporte para a lista ordenada de
// estratégias. Função pura; normaliza o rótulo na borda (trim, minúsculas,
// "médio" e "medio" são equivalentes).
func SupportStrategies(nivel string) []string {
	normalized := strings.ToLower(strings.TrimSpace(nivel))

	strategies := make([]string, 0, len(baseSupportStrategies)+len(highSupportStrategies))
	strategies = append(strategies, baseSupportStrategies...)

	switch normalized {
	case "alto":
		strategies = append(strategies, highSupportStrategies...)
	case "medio", "médio":
		strategies = append(strategies, mediumSupportStrategies...)
	}

	return strategies
}
