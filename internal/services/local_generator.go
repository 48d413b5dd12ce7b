package services

import (
	"fmt"
	"strings"

	"github.com/andori/back/internal/models"
)

// Gerador local de material. É o fallback terminal da pipeline: função pura
// de (requisição, hiperfoco resolvido, estratégias de suporte), sem rede e
// sem condições de falha.

// LocalMaterial sintetiza um material completo no mesmo formato do modelo
// remoto: tópicos mínimos, uma fala narrativa coesa, 2–3 exemplos e um
// resumo de estudo com exemplo ilustrativo.
func LocalMaterial(req models.GenerateMaterialRequest, hyperfocus string, strategies []string) models.Material {
	header := req.Assunto
	if req.Turma != "" {
		header = fmt.Sprintf("%s — %s", req.Assunto, req.Turma)
	}
	if req.Data != "" {
		header = fmt.Sprintf("%s (%s)", header, req.Data)
	}

	topicos := []string{
		fmt.Sprintf("Abertura: %s", header),
		fmt.Sprintf("Desenvolvimento: ideias centrais de %s", req.Assunto),
		"Exemplos e analogias",
		"Fechamento e tarefa curta",
	}

	var fala strings.Builder
	fala.WriteString(fmt.Sprintf("Pessoal, hoje vamos conversar sobre %s. ", req.Assunto))
	if req.Descricao != "" {
		fala.WriteString(fmt.Sprintf("A ideia da aula é a seguinte: %s. ", req.Descricao))
	}
	if hyperfocus != "" {
		fala.WriteString(fmt.Sprintf(
			"Ao longo da conversa vou trazer alguns exemplos ligados a %s, porque é um assunto que ajuda a gente a visualizar as ideias — mas o foco continua sendo %s. ",
			hyperfocus, req.Assunto))
		fala.WriteString(fmt.Sprintf(
			"Pensem comigo: se a gente fosse explicar %s usando %s, por onde começaríamos? ",
			req.Assunto, hyperfocus))
	} else {
		fala.WriteString(fmt.Sprintf(
			"Vou usar situações do dia a dia para aproximar %s da experiência de vocês. ",
			req.Assunto))
	}
	fala.WriteString("Vamos por partes, sem pressa: primeiro a ideia central, depois os exemplos, e no final cada um me conta o que ficou mais claro. ")
	if req.Feedback != "" {
		fala.WriteString(fmt.Sprintf("Nesta versão da aula também ajustei o combinado: %s. ", req.Feedback))
	}
	if len(strategies) > 0 {
		fala.WriteString("Dicas de mediação para o professor: ")
		fala.WriteString(strings.Join(strategies, "; "))
		fala.WriteString(".")
	}

	var exemplos []string
	if hyperfocus != "" {
		exemplos = []string{
			fmt.Sprintf("Comparar %s com algo do universo de %s que a turma reconheça.", req.Assunto, hyperfocus),
			fmt.Sprintf("Propor um desafio rápido em que cada conceito de %s vira uma peça de %s.", req.Assunto, hyperfocus),
			fmt.Sprintf("Pedir que um estudante explique %s usando um exemplo próprio de %s.", req.Assunto, hyperfocus),
		}
	} else {
		exemplos = []string{
			fmt.Sprintf("Relacionar %s com uma situação cotidiana da turma.", req.Assunto),
			fmt.Sprintf("Montar em dupla um mini-esquema com as palavras-chave de %s.", req.Assunto),
		}
	}

	texto := fmt.Sprintf(
		"Nesta aula estudamos %s. Releia os tópicos anotados, destaque 3 a 5 palavras-chave e explique cada uma com suas próprias palavras. ",
		req.Assunto)
	if req.Descricao != "" {
		texto += fmt.Sprintf("Use esta descrição como guia de estudo: \"%s\". ", req.Descricao)
	}
	texto += "Para fixar, escreva duas frases ligando os conceitos entre si e uma situação em que eles aparecem na prática."

	var exemplo string
	if hyperfocus != "" {
		exemplo = fmt.Sprintf(
			"Para revisar em casa, explique %s usando um exemplo de %s: escolha uma cena ou elemento de %s e mostre onde cada conceito aparece.",
			req.Assunto, hyperfocus, hyperfocus)
	} else {
		exemplo = fmt.Sprintf(
			"Para revisar em casa, escolha uma situação do seu dia e mostre onde %s aparece nela.",
			req.Assunto)
	}

	return models.Material{
		Roteiro: models.Roteiro{
			Topicos:  topicos,
			Falas:    []string{fala.String()},
			Exemplos: exemplos,
		},
		Resumo: models.Resumo{
			Texto:   texto,
			Exemplo: exemplo,
		},
	}
}
