package domain

type Category struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

type Question struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryMap indexes category types by id, the shape the trivia frontend
// expects for its category sidebar.
func CategoryMap(categories []Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}

	return m
}

// QuestionPage is one page of questions plus the total across all pages.
type QuestionPage struct {
	Questions []Question
	Total     int64
}
