package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"wishlink/internal/pkg/errs"
)

// TextGenerator is the outbound port to a text-generation model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Idea is one suggested gift. Field names follow the JSON contract the model
// is prompted to produce.
type Idea struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageQuery  string  `json:"imageQuery"`
}

type IdeasUseCase interface {
	GenerateIdeas(ctx context.Context, request string) ([]Idea, error)
}

type ideasUseCaseImpl struct {
	generator TextGenerator
}

func NewIdeasUseCase(generator TextGenerator) IdeasUseCase {
	return &ideasUseCaseImpl{generator: generator}
}

const ideasPromptTemplate = `You are a gift recommendation assistant. Based on the following request, suggest 3 gift ideas.
Request: %s

Respond with ONLY a JSON array, no other text. Each element must have exactly these fields:
"name" (string), "price" (number, approximate price), "description" (string, one sentence), "imageQuery" (string, short image search query).`

func (uc *ideasUseCaseImpl) GenerateIdeas(ctx context.Context, request string) ([]Idea, error) {
	raw, err := uc.generator.Generate(ctx, fmt.Sprintf(ideasPromptTemplate, request))
	if err != nil {
		if errs.Is(err, errs.ErrAPIKeyMissing) {
			return nil, errs.ErrAPIKeyMissing
		}
		return nil, errs.Mark(err, errs.ErrGeneration)
	}

	ideas, err := parseIdeas(raw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGeneration)
	}
	return ideas, nil
}

var jsonArrayPattern = regexp.MustCompile(`\[[\s\S]*\]`)

// parseIdeas tolerates the two common failure modes of model output: markdown
// code fences around the JSON, and prose surrounding the array.
func parseIdeas(raw string) ([]Idea, error) {
	cleaned := stripCodeFences(raw)

	var ideas []Idea
	if err := json.Unmarshal([]byte(cleaned), &ideas); err == nil {
		return ideas, nil
	}

	match := jsonArrayPattern.FindString(cleaned)
	if match == "" {
		return nil, errs.New("model output contained no JSON array")
	}
	if err := json.Unmarshal([]byte(match), &ideas); err != nil {
		return nil, errs.Wrap(err, "model output was not a valid idea array")
	}
	return ideas, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
