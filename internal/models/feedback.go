package models

// Feedback do professor sobre o material gerado (arrmd.feedback_material).
type MaterialFeedbackUpdate struct {
	ArrmdID          string `json:"arrmd_id"`
	FeedbackMaterial string `json:"feedback_material"`
}

type MaterialFeedback struct {
	ID               string `json:"id" db:"id"`
	FeedbackMaterial string `json:"feedback_material" db:"feedback_material"`
}

// Feedback individual de um aluno sobre uma aula (feedback_aluno_aula).
type StudentFeedbackCreate struct {
	IDArrmd  string `json:"id_arrmd"`
	AlunoID  string `json:"aluno_id"`
	Feedback string `json:"feedback"`
}

type StudentFeedback struct {
	ID       string `json:"id" db:"id"`
	IDArrmd  string `json:"id_arrmd" db:"id_arrmd"`
	AlunoID  string `json:"aluno_id" db:"aluno_id"`
	Feedback string `json:"feedback" db:"feedback"`
}
