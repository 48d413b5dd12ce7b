package models

import "time"

// Roteiro é a parte falada do material gerado: tópicos na lousa, falas
// prontas para o professor e exemplos para usar em sala.
type Roteiro struct {
	Topicos  []string `json:"topicos"`
	Falas    []string `json:"falas"`
	Exemplos []string `json:"exemplos"`
}

// Resumo é a parte de estudo em casa do material gerado.
type Resumo struct {
	Texto   string `json:"texto"`
	Exemplo string `json:"exemplo"`
}

// Material é o artefato completo de aula. As listas nunca são nil para não
// empurrar checagens de null para os consumidores.
type Material struct {
	Roteiro Roteiro `json:"roteiro"`
	Resumo  Resumo  `json:"resumo"`
}

const (
	// SourceOpenAI indica material produzido pelo modelo remoto.
	SourceOpenAI = "openai"
	// SourceLocal indica material sintetizado pelo gerador local.
	SourceLocal = "local"
)

type GenerateMaterialRequest struct {
	Assunto    string `json:"assunto"`
	Disciplina string `json:"disciplina,omitempty"`
	Descricao  string `json:"descricao"`
	Turma      string `json:"turma"`
	TurmaID    string `json:"turma_id,omitempty"`
	Data       string `json:"data"`
	Feedback   string `json:"feedback,omitempty"`
	Hyperfocus string `json:"hyperfocus,omitempty"`
	AlunoID    string `json:"aluno_id,omitempty"`
}

type GenerateMaterialResponse struct {
	Roteiro Roteiro `json:"roteiro"`
	Resumo  Resumo  `json:"resumo"`
	Source  string  `json:"source"`
}

// MaterialCreate persiste um material aceito pelo professor.
type MaterialCreate struct {
	AulaID          string  `json:"aula_id"`
	Roteiro         Roteiro `json:"roteiro"`
	Resumo          Resumo  `json:"resumo"`
	Source          string  `json:"source,omitempty"`
	Accepted        *bool   `json:"accepted,omitempty"`
	RecomendacoesIA string  `json:"recomendacoes_ia,omitempty"`
	MaterialUtil    string  `json:"material_util,omitempty"`
	Observacoes     string  `json:"observacoes,omitempty"`
}

type SavedMaterial struct {
	ID        string    `json:"id" db:"id"`
	AulaID    string    `json:"aula_id" db:"aula_id"`
	Source    string    `json:"source" db:"source"`
	Accepted  bool      `json:"accepted" db:"accepted"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
