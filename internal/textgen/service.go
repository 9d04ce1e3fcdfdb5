package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/educhain-backend/internal/connection"
)

// Difficulty of a generated quiz.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Language is a translation target.
type Language string

const (
	English Language = "english"
	Hausa   Language = "hausa"
)

func (l Language) Valid() bool {
	return l == English || l == Hausa
}

// ErrInvalidRequest reports a malformed feature request.
var ErrInvalidRequest = errors.New("invalid generation request")

const (
	explainApologyFormat = "We couldn't generate an explanation for %q at this time. Please try again later or check your internet connection."
	useCaseApologyFormat = "We couldn't generate a use case for %q at this time. Please try again later or check your internet connection."
)

// Question is one multiple choice question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is a generated set of questions. Fallback is set when the model
// answer could not be used and a canned quiz was returned instead.
type Quiz struct {
	Questions []Question `json:"questions"`
	Fallback  bool       `json:"fallback"`
}

var (
	jsonFence  = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")
	plainFence = regexp.MustCompile("(?s)```\\s*\\n(.*?)\\n\\s*```")
	bareObject = regexp.MustCompile(`(?s)\{.*\}`)
)

// Service builds the learning features on top of a Generator. Every feature
// fails fast with connection.ErrOffline while the network is down.
type Service struct {
	gen    Generator
	online OnlineChecker
	logger *zap.Logger
}

// NewService wires gen behind the online gate.
func NewService(gen Generator, online OnlineChecker, logger *zap.Logger) (*Service, error) {
	if gen == nil {
		return nil, errors.New("text generator is required")
	}
	if online == nil {
		return nil, errors.New("online checker is required")
	}
	return &Service{gen: gen, online: online, logger: logger.Named("features")}, nil
}

func (s *Service) gate() error {
	if !s.online.IsOnline() {
		return connection.ErrOffline
	}
	return nil
}

// Quiz generates five questions on topic. A failed generation or an
// unparseable answer yields the fallback quiz.
func (s *Service) Quiz(ctx context.Context, topic string, difficulty Difficulty) (Quiz, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" || !difficulty.Valid() {
		return Quiz{}, fmt.Errorf("%w: topic and difficulty are required", ErrInvalidRequest)
	}
	if err := s.gate(); err != nil {
		return Quiz{}, err
	}

	prompt := fmt.Sprintf(`Generate a %s level quiz about %s with 5 multiple choice questions.
Respond with JSON only, in this format:
{"questions":[{"question":"...","options":["...","...","...","..."],"correctAnswer":0,"explanation":"..."}]}
correctAnswer is the zero based index of the right option.`, difficulty, topic)

	text, err := s.gen.Generate(ctx, "quiz", prompt)
	if err != nil {
		if ctx.Err() != nil {
			return Quiz{}, ctx.Err()
		}
		s.logger.Warn("quiz generation failed, using fallback", zap.String("topic", topic), zap.Error(err))
		return fallbackQuiz(), nil
	}

	quiz, err := ParseQuiz(text)
	if err != nil {
		s.logger.Warn("quiz answer unusable, using fallback", zap.String("topic", topic), zap.Error(err))
		return fallbackQuiz(), nil
	}
	return quiz, nil
}

// ParseQuiz extracts a quiz from a model answer that may wrap the JSON in a
// code fence or surrounding prose.
func ParseQuiz(text string) (Quiz, error) {
	raw := strings.TrimSpace(text)
	switch {
	case jsonFence.MatchString(raw):
		raw = jsonFence.FindStringSubmatch(raw)[1]
	case plainFence.MatchString(raw):
		raw = plainFence.FindStringSubmatch(raw)[1]
	case bareObject.MatchString(raw):
		raw = bareObject.FindString(raw)
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return Quiz{}, fmt.Errorf("decode quiz: %w", err)
	}
	if len(quiz.Questions) == 0 {
		return Quiz{}, errors.New("quiz has no questions")
	}
	for i, q := range quiz.Questions {
		if q.Question == "" || len(q.Options) < 2 {
			return Quiz{}, fmt.Errorf("question %d is incomplete", i)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return Quiz{}, fmt.Errorf("question %d answer index %d out of range", i, q.CorrectAnswer)
		}
	}
	quiz.Fallback = false
	return quiz, nil
}

func fallbackQuiz() Quiz {
	return Quiz{
		Fallback: true,
		Questions: []Question{
			{
				Question: "What is blockchain?",
				Options: []string{
					"A type of cryptocurrency",
					"A distributed ledger technology",
					"A programming language",
					"A cloud storage service",
				},
				CorrectAnswer: 1,
				Explanation:   "Blockchain is a distributed ledger technology that maintains a continuously growing list of records called blocks.",
			},
		},
	}
}

// Explain describes concept in simple terms. Generation failures return an
// apology rather than an error.
func (s *Service) Explain(ctx context.Context, concept string) (string, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return "", fmt.Errorf("%w: concept is required", ErrInvalidRequest)
	}
	if err := s.gate(); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Explain the blockchain concept %q in simple terms for a beginner in Nigeria. Use short paragraphs and a relatable local example.", concept)
	text, err := s.gen.Generate(ctx, "explain", prompt)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Warn("explanation failed", zap.String("concept", concept), zap.Error(err))
		return fmt.Sprintf(explainApologyFormat, concept), nil
	}
	return text, nil
}

// LocalUseCase suggests how concept applies to an industry in region.
func (s *Service) LocalUseCase(ctx context.Context, concept, region, industry string) (string, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return "", fmt.Errorf("%w: concept is required", ErrInvalidRequest)
	}
	if region = strings.TrimSpace(region); region == "" {
		region = "Northern Nigeria"
	}
	if industry = strings.TrimSpace(industry); industry == "" {
		industry = "agriculture"
	}
	if err := s.gate(); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Describe a practical use case of %s for the %s industry in %s. Mention the problem it solves and the first steps to adopt it.", concept, industry, region)
	text, err := s.gen.Generate(ctx, "usecase", prompt)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Warn("use case failed", zap.String("concept", concept), zap.Error(err))
		return fmt.Sprintf(useCaseApologyFormat, industry), nil
	}
	return text, nil
}

// Translate renders content in target. On failure the input is returned
// unchanged.
func (s *Service) Translate(ctx context.Context, content string, target Language) (string, error) {
	if strings.TrimSpace(content) == "" || !target.Valid() {
		return "", fmt.Errorf("%w: content and a supported language are required", ErrInvalidRequest)
	}
	if err := s.gate(); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("Translate the following educational text into %s. Keep technical terms that have no translation in English.\n\n%s", target, content)
	text, err := s.gen.Generate(ctx, "translate", prompt)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Warn("translation failed", zap.String("language", string(target)), zap.Error(err))
		return content, nil
	}
	return text, nil
}
