package model

import "time"

// NoResponse is the sentinel stored for a question the user left blank.
const NoResponse = "No Response"

// MaxQuestionsPerSurvey is the ceiling implied by the answer id scheme:
// ids for one result occupy the block [result.id*1000, result.id*1000+999],
// so a survey may hold at most 1000 questions. Enforced at authoring time.
const MaxQuestionsPerSurvey = 1000

// Answer is one question's answer within a Result. Ids are assigned by
// AnswerID rather than the database sequence so that a result's answers
// form a contiguous, deterministic block.
type Answer struct {
	ID         uint      `gorm:"primarykey;autoIncrement:false" json:"id"`
	ResultID   uint      `json:"result_id" gorm:"not null;index"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Value      string    `json:"answer" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

// AnswerID derives the id for the answer at the given 0-based position in
// the survey's question order. Offsets never collide across results as long
// as surveys stay under MaxQuestionsPerSurvey questions.
func AnswerID(resultID uint, offset int) uint {
	return resultID*1000 + uint(offset)
}
