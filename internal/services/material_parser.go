package services

import (
	"encoding/json"
	"fmt"

	"github.com/andori/back/internal/models"
)

// O modelo remoto nem sempre respeita o formato pedido: listas podem vir
// como escalar, null ou ausentes. Este parser tolera essas variações e
// converte para o Material tipado; qualquer coisa fora disso é erro e o
// chamador cai para o gerador local.

// ParseMaterialJSON valida e converte o conteúdo JSON devolvido pelo modelo.
// Exige as chaves de topo "roteiro" e "resumo".
func ParseMaterialJSON(content string) (*models.Material, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &top); err != nil {
		return nil, fmt.Errorf("resposta não é JSON válido: %w", err)
	}

	rawRoteiro, ok := top["roteiro"]
	if !ok {
		return nil, fmt.Errorf("resposta sem a chave 'roteiro'")
	}
	rawResumo, ok := top["resumo"]
	if !ok {
		return nil, fmt.Errorf("resposta sem a chave 'resumo'")
	}

	var roteiro map[string]interface{}
	if err := json.Unmarshal(rawRoteiro, &roteiro); err != nil {
		return nil, fmt.Errorf("'roteiro' não é um objeto: %w", err)
	}
	var resumo map[string]interface{}
	if err := json.Unmarshal(rawResumo, &resumo); err != nil {
		return nil, fmt.Errorf("'resumo' não é um objeto: %w", err)
	}

	material := &models.Material{
		Roteiro: models.Roteiro{
			Topicos:  coerceStringList(roteiro["topicos"]),
			Falas:    coerceStringList(roteiro["falas"]),
			Exemplos: coerceStringList(roteiro["exemplos"]),
		},
		Resumo: models.Resumo{
			Texto:   coerceString(resumo["texto"]),
			Exemplo: coerceString(resumo["exemplo"]),
		},
	}

	return material, nil
}

// coerceStringList aceita null (lista vazia), escalar (lista de um) ou
// lista (elemento a elemento convertido para string).
func coerceStringList(v interface{}) []string {
	switch value := v.(type) {
	case nil:
		return []string{}
	case []interface{}:
		out := make([]string, 0, len(value))
		for _, item := range value {
			out = append(out, coerceString(item))
		}
		return out
	default:
		return []string{coerceString(value)}
	}
}

func coerceString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		// json.Unmarshal entrega números como float64
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprintf("%g", value)
	case bool:
		return fmt.Sprintf("%t", value)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(b)
	}
}
