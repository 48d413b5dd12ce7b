package models

// StudentProfile é o recorte do aluno relevante para personalização,
// com o nome da turma desnormalizado via LEFT JOIN.
type StudentProfile struct {
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
	TurmaNome        string `json:"turma_nome" db:"turma_nome"`
}

type StudentSummary struct {
	ID        string `json:"id" db:"id"`
	Nome      string `json:"nome" db:"nome"`
	TurmaID   string `json:"turma_id" db:"turma_id"`
	TurmaNome string `json:"turma_nome" db:"turma_nome"`
}

type Estudante struct {
	ID           string `json:"id" db:"id"`
	Nome         string `json:"nome" db:"nome"`
	SerieEscolar string `json:"serie_escolar" db:"serie_escolar"`
	TurmaID      string `json:"turma_id" db:"turma_id"`
}

type EstudanteCreate struct {
	Nome         string `json:"nome"`
	SerieEscolar string `json:"serie_escolar"`
	TurmaID      string `json:"turma_id"`
}

// EstudanteUpdate usa ponteiros para distinguir "não enviado" de "vazio";
// a atualização parcial no banco usa COALESCE.
type EstudanteUpdate struct {
	Nome         *string `json:"nome"`
	SerieEscolar *string `json:"serie_escolar"`
	TurmaID      *string `json:"turma_id"`
}
