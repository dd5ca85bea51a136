package models

// QAPair is one cached question/answer entry about a note.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NoteAIModel caches generated metadata for a note, at most one record per note.
type NoteAIModel struct {
	Base
	NoteID      string      `json:"-"            gorm:"uniqueIndex;not null"`
	Summary     string      `json:"summary"      gorm:"type:longtext"`
	Keywords    StringSlice `json:"keywords"     gorm:"type:json;serializer:json"`
	Topics      StringSlice `json:"topics"       gorm:"type:json;serializer:json"`
	Embedding   []float64   `json:"-"            gorm:"type:json;serializer:json"`
	QACache     []QAPair    `json:"qa_cache"     gorm:"type:json;serializer:json"`
	GeneratedBy string      `json:"generated_by"`
}

func (NoteAIModel) TableName() string { return "note_ai" }
