package request

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

const defaultDifficulty = 1

type CreateQuestionRequest struct {
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Category   json.Number `json:"category"`
	Difficulty int         `json:"difficulty"`
}

func (req *CreateQuestionRequest) Validate() error {
	if req.Difficulty == 0 {
		req.Difficulty = defaultDifficulty
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.Question, validation.Required),
		validation.Field(&req.Answer, validation.Required),
		validation.Field(&req.Category, validation.Required, validation.By(validID)),
		validation.Field(&req.Difficulty, validation.Min(1), validation.Max(5)),
	)
}

// CategoryID is the parsed category. Call it after Validate.
func (req *CreateQuestionRequest) CategoryID() uint {
	id, _ := parseID(req.Category.String())
	return id
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type QuizCategory struct {
	Type string      `json:"type"`
	ID   json.Number `json:"id"`
}

// QuizRequest accepts ids as JSON numbers or numeric strings, the way the
// quiz frontend sends them.
type QuizRequest struct {
	PreviousQuestions []json.Number `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Parse returns the category (0 for every category) and the previous
// question ids.
func (req *QuizRequest) Parse() (uint, []uint, error) {
	var category uint
	if req.QuizCategory != nil && req.QuizCategory.ID != "" {
		id, err := parseID(req.QuizCategory.ID.String())
		if err != nil {
			return 0, nil, fmt.Errorf("quiz_category.id: %w", err)
		}
		category = id
	}

	previous := make([]uint, 0, len(req.PreviousQuestions))
	for _, n := range req.PreviousQuestions {
		id, err := parseID(n.String())
		if err != nil {
			return 0, nil, fmt.Errorf("previous_questions: %w", err)
		}
		previous = append(previous, id)
	}

	return category, previous, nil
}

// ParseQuizQuery reads the query form of a quiz request:
// ?category=2&prevQuestions=1,5,9
func ParseQuizQuery(category, prevQuestions string) (uint, []uint, error) {
	req := QuizRequest{}
	if category != "" {
		req.QuizCategory = &QuizCategory{ID: json.Number(category)}
	}

	for _, s := range strings.Split(prevQuestions, ",") {
		if s = strings.TrimSpace(s); s != "" {
			req.PreviousQuestions = append(req.PreviousQuestions, json.Number(s))
		}
	}

	return req.Parse()
}

func validID(value interface{}) error {
	n, _ := value.(json.Number)
	_, err := parseID(n.String())

	return err
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid id", s)
	}

	return uint(id), nil
}
