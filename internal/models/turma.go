package models

type Turma struct {
	ID   string `json:"id" db:"id"`
	Nome string `json:"nome" db:"nome"`
}

type Professor struct {
	ID   string `json:"id" db:"id"`
	Nome string `json:"nome" db:"nome"`
}

// TurmaAluno é a entrada de roster usada no contexto de turma: o mesmo
// recorte do StudentProfile, sem o nome da turma desnormalizado.
type TurmaAluno struct {
	ID               string `json:"id" db:"id"`
	Nome             string `json:"nome" db:"nome"`
	Interesse        string `json:"interesse" db:"interesse"`
	Preferencia      string `json:"preferencia" db:"preferencia"`
	Dificuldade      string `json:"dificuldade" db:"dificuldade"`
	Laudo            string `json:"laudo" db:"laudo"`
	Observacoes      string `json:"observacoes" db:"observacoes"`
	NivelDeSuporte   string `json:"nivel_de_suporte" db:"nivel_de_suporte"`
	DescricaoDoAluno string `json:"descricao_do_aluno" db:"descricao_do_aluno"`
	TurmaID          string `json:"turma_id" db:"turma_id"`
}

// TurmaContext agrega uma ou mais turmas resolvidas para a geração.
// TurmaID fica vazio quando o contexto veio de várias turmas; Nome vira a
// lista de nomes separada por vírgula nesse caso.
type TurmaContext struct {
	TurmaID string       `json:"turma_id,omitempty"`
	Nome    string       `json:"nome"`
	Alunos  []TurmaAluno `json:"alunos"`
}
