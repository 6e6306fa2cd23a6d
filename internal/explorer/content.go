package explorer

import (
	"errors"
	"strings"
)

// ErrEmptyQuestion is returned by Ask for a question that is blank after
// trimming whitespace.
var ErrEmptyQuestion = errors.New("explorer: empty question")

// PendingAnswer is the answer recorded for a newly asked question.
const PendingAnswer = "Thank you for your question! Our team will respond shortly."

// Question is a question with its answer.
type Question struct {
	Question string
	Answer   string
}

// Application is one field where the z-transform is applied.
type Application struct {
	Title       string
	Description string
}

// Member is one member of the project team. Role may be empty.
type Member struct {
	Name string
	Role string
}

var faq = []Question{
	{
		Question: "What is a Z-transform?",
		Answer: "The Z-transform converts a discrete-time signal into a complex frequency-domain " +
			"representation, similar to how the Laplace transform works for continuous-time signals.",
	},
	{
		Question: "How does the difference equation relate to Z-transform?",
		Answer: "The difference equation in the time domain becomes an algebraic equation in the Z-domain, " +
			"making it easier to analyze and solve complex signal processing problems.",
	},
	{
		Question: "What are the practical applications?",
		Answer: "Z-transforms are used in digital filters, control systems, audio processing, and image " +
			"processing to analyze and manipulate discrete-time signals.",
	},
}

var applications = []Application{
	{Title: "Digital Filters", Description: "Design and analysis of digital filters in signal processing"},
	{Title: "Control Systems", Description: "Stability analysis and controller design in discrete-time systems"},
	{Title: "Signal Analysis", Description: "Analysis of discrete-time signals and systems"},
}

var team = []Member{
	{Name: "Prof. Aakash Darade", Role: "Subject Incharge"},
	{Name: "Smiti Patil"},
	{Name: "Uday Patil", Role: "Full Stack Developer"},
	{Name: "Shreya Pawar"},
	{Name: "Renuka Pokharkar"},
	{Name: "Shivam Prajapati"},
}

// Overview describes what the two charts show.
const Overview = "This interactive demo shows how Z-transform helps solve linear difference equations. " +
	"The top section shows a continuous-time signal, while the bottom section demonstrates how " +
	"difference equations process discrete-time signals. By adjusting the coefficients, you can see " +
	"how the system responds to different inputs and how the Z-transform helps analyze the system's behavior."

var keyConcepts = []string{
	"Linear difference equations",
	"System response to sinusoidal inputs",
	"Transfer function analysis",
	"Z-transform application in digital signal processing",
}

// FAQ returns the questions answered next to the explorer.
func FAQ() []Question {
	return append([]Question(nil), faq...)
}

// Applications returns the application areas shown on the landing page.
func Applications() []Application {
	return append([]Application(nil), applications...)
}

// Team returns the project team.
func Team() []Member {
	return append([]Member(nil), team...)
}

// KeyConcepts returns the concepts the explorer demonstrates.
func KeyConcepts() []string {
	return append([]string(nil), keyConcepts...)
}

func seededQuestions() []Question {
	return []Question{
		{
			Question: "What is the basic formula for Z-transform?",
			Answer:   "The basic formula is X(z) = Σ x[n]z⁻ⁿ, where n goes from -∞ to ∞",
		},
		{
			Question: "How is Z-transform used in digital filters?",
			Answer: "Z-transform converts difference equations into algebraic equations, " +
				"making it easier to analyze and design digital filters",
		},
	}
}

// Ask records q with PendingAnswer. The question is stored as given; only the
// blank check trims it.
func (s *Session) Ask(q string) (Question, error) {
	if strings.TrimSpace(q) == "" {
		return Question{}, ErrEmptyQuestion
	}
	entry := Question{Question: q, Answer: PendingAnswer}
	s.questions = append(s.questions, entry)
	return entry, nil
}

// Questions returns the seeded questions followed by those asked, oldest first.
func (s *Session) Questions() []Question {
	return append([]Question(nil), s.questions...)
}
