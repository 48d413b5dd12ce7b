package models

// Aula é o registro de aula (tabela arrmd). UploadArquivo é um mapa livre
// com chaves conhecidas turma_id, turma, data e arquivo; chaves extras do
// chamador são toleradas e preservadas.
type Aula struct {
	ID            string                 `json:"id" db:"id"`
	Assunto       string                 `json:"assunto" db:"assunto"`
	Descricao     string                 `json:"descricao" db:"descricao"`
	UploadArquivo map[string]interface{} `json:"upload_arquivo"`
}

type AulaCreate struct {
	Assunto       string                 `json:"assunto"`
	Descricao     string                 `json:"descricao"`
	UploadArquivo map[string]interface{} `json:"upload_arquivo"`
}

type AulaUpdate struct {
	Assunto       *string                `json:"assunto"`
	Descricao     *string                `json:"descricao"`
	UploadArquivo map[string]interface{} `json:"upload_arquivo"`
}
