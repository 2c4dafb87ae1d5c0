package briefing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/granitechief/avybrief/internal/infra/llm/gemini"
	apperrors "github.com/granitechief/avybrief/pkg/errors"
)

const (
	missingKeyMessage       = "Error: GEMINI_API_KEY not found. Please ensure it is set correctly in your '.env' file at the project root."
	generationFailedMessage = "LLM generation failed."
)

// Service exposes briefing generation capabilities.
type Service interface {
	Summary(ctx context.Context, req Request) (Response, error)
}

// TextGenerator abstracts the generative API call.
type TextGenerator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateContentRequest) (gemini.GenerateContentResponse, error)
}

type service struct {
	generator TextGenerator
	logger    *slog.Logger
}

// NewService wires up the briefing domain.
func NewService(generator TextGenerator, logger *slog.Logger) Service {
	return &service{
		generator: generator,
		logger:    logger.With("component", "briefing.service"),
	}
}

// Summary builds a prompt from the caller-supplied cleaned forecast and asks
// the generative API for a briefing. Generation failures are not errors: they
// come back as descriptive text in the response so clients always have
// something to render. The only error condition is a missing payload.
func (s *service) Summary(ctx context.Context, req Request) (Response, error) {
	if req.CleanedData == nil {
		return Response{}, apperrors.Wrap("missing_payload", "Missing cleanedData payload for LLM generation.", nil)
	}

	prompt := BuildPrompt(req.CleanedData)
	return Response{LLMSummary: s.generate(ctx, prompt)}, nil
}

func (s *service) generate(ctx context.Context, prompt PromptPair) string {
	resp, err := s.generator.GenerateContent(ctx, gemini.GenerateContentRequest{
		Contents:          []gemini.Content{{Parts: []gemini.Part{{Text: prompt.UserQuery}}}},
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: prompt.SystemInstruction}}},
	})
	switch {
	case errors.Is(err, gemini.ErrMissingAPIKey):
		s.logger.Warn("briefing skipped", "reason", "missing api key")
		return missingKeyMessage
	case err != nil:
		status := "N/A"
		var statusErr *gemini.StatusError
		if errors.As(err, &statusErr) {
			status = strconv.Itoa(statusErr.Code)
		}
		s.logger.Error("briefing generation failed", "status", status, "error", err)
		return fmt.Sprintf("Error: Failed to generate summary from LLM (%s - %v). Check the API key and ensure the Generative Language API is enabled.", status, err)
	}

	text, ok := resp.FirstText()
	if !ok || text == "" {
		s.logger.Warn("briefing response had no candidate text")
		return generationFailedMessage
	}

	if !resp.UsageMetadata.IsZero() {
		s.logger.Debug("llm token usage",
			"prompt", resp.UsageMetadata.PromptTokens,
			"candidates", resp.UsageMetadata.CandidateTokens,
			"total", resp.UsageMetadata.TotalTokens)
	}
	return text
}
