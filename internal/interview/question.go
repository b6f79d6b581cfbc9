package interview

// Category classifies a question as technical or behavioral.
type Category string

const (
	Technical  Category = "technical"
	Behavioral Category = "behavioral"
)

// Question is a single interview question. The selector creates questions
// once per session with sequential ids; they are never mutated afterwards.
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}
