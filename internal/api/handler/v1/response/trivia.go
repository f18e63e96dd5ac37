package response

import "github.com/fsnd-projects/fsnd-api/internal/domain"

type CategoriesResponse struct {
	Success         bool            `json:"success"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories"`
}

type QuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int64             `json:"total_questions"`
	Categories      map[uint]string   `json:"categories"`
	CurrentCategory *string           `json:"current_category"`
}

type SearchQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *string           `json:"current_category"`
}

type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
}

type QuestionCreatedResponse struct {
	Success        bool              `json:"success"`
	CreatedID      uint              `json:"created_id"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int64             `json:"total_questions"`
}

type QuestionDeletedResponse struct {
	Success           bool `json:"success"`
	DeletedQuestionID uint `json:"deleted_question_id"`
}

// QuizResponse carries a null question once the player has seen them all.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}
