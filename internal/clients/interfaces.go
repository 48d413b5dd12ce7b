package clients

import (
	"context"
	"errors"
)

// ErrNoAPIKey sinaliza ausência de credencial configurada. Não é uma falha:
// a pipeline trata como "remoto indisponível" e segue para o gerador local.
var ErrNoAPIKey = errors.New("chave da API OpenAI não configurada")

// OpenAIClient define a interface para chamadas de chat-completions.
type OpenAIClient interface {
	// GenerateJSON pede uma resposta em JSON estrito (response_format
	// json_object) e devolve o conteúdo bruto da primeira escolha.
	GenerateJSON(ctx context.Context, system, user string) (string, error)
	// GenerateText pede uma resposta em texto livre.
	GenerateText(ctx context.Context, system, user string) (string, error)
}
