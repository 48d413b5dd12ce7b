package models

// FamilyData é o formulário preenchido pela família do aluno.
type FamilyData struct {
	Interesse      string `json:"interesse" db:"interesse"`
	Preferencia    string `json:"preferencia" db:"preferencia"`
	Dificuldade    string `json:"dificuldade" db:"dificuldade"`
	Laudo          string `json:"laudo" db:"laudo"`
	Observacoes    string `json:"observacoes" db:"observacoes"`
	NivelDeSuporte string `json:"nivel_de_suporte" db:"nivel_de_suporte"`
}

type DescriptionCreate struct {
	AlunoID   string `json:"aluno_id"`
	Descricao string `json:"descricao"`
}

type DescriptionSaved struct {
	AlunoID   string `json:"aluno_id" db:"id"`
	Descricao string `json:"descricao" db:"descricao_do_aluno"`
}

// RecomendationCreate salva observações dos pais e dispara a geração de
// recomendações de mediação para o professor.
type RecomendationCreate struct {
	AlunoID     string `json:"aluno_id"`
	ArrmdID     string `json:"arrmd_id"`
	Observacoes string `json:"observacoes"`
}

type RecomendationResult struct {
	AlunoID         string `json:"aluno_id"`
	ArrmdID         string `json:"arrmd_id"`
	Observacoes     string `json:"observacoes"`
	RecomendacoesIA string `json:"recomendacoes_ia"`
}
