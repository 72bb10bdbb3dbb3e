package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"travelpal/internal/domain"
	"travelpal/internal/llm"
)

// ItineraryService sintetiza itinerarios completos con una sola llamada
// al proveedor en modo JSON estructurado.
type ItineraryService struct {
	logger    *zap.Logger
	llmClient llm.Client
}

// Errores con texto apto para el usuario: los callers distinguen la
// causa solo por el contenido del mensaje.
var (
	ErrInvalidGenerateInput = errors.New("destination, preferences and a positive duration are required")

	ErrGenerationQuota       = errors.New("AI capabilities are temporarily unavailable due to API usage limits. Please try again later.")
	ErrGenerationRateLimited = errors.New("Currently handling too many requests. Please try again in a moment.")
	ErrGenerationAuth        = errors.New("Authentication issues detected. Please verify API credentials.")
	ErrGenerationFailed      = errors.New("Failed to generate itinerary. Please try again.")
)

func NewItineraryService(logger *zap.Logger, llmClient llm.Client) *ItineraryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryService{logger: logger, llmClient: llmClient}
}

type GenerateInput struct {
	Destination  string
	DurationDays int
	Preferences  string
	Budget       *int
}

// Generate construye el prompt con la forma JSON requerida, pide la
// completion estructurada y parsea el resultado como ItineraryContent.
// El destino de entrada siempre sobreescribe mapLocation para que el
// render del mapa tenga valor sin importar lo que produjo el modelo.
func (s *ItineraryService) Generate(ctx context.Context, input GenerateInput) (domain.ItineraryContent, error) {
	input.Destination = strings.TrimSpace(input.Destination)
	input.Preferences = strings.TrimSpace(input.Preferences)
	if input.Destination == "" || input.Preferences == "" || input.DurationDays <= 0 {
		return domain.ItineraryContent{}, ErrInvalidGenerateInput
	}

	raw, err := s.llmClient.CompleteJSON(ctx, buildItineraryPrompt(input))
	if err != nil {
		s.logger.Error("itinerary completion failed", zap.Error(err))
		switch {
		case errors.Is(err, llm.ErrQuotaExhausted):
			return domain.ItineraryContent{}, ErrGenerationQuota
		case errors.Is(err, llm.ErrRateLimited):
			return domain.ItineraryContent{}, ErrGenerationRateLimited
		case errors.Is(err, llm.ErrAuthFailed):
			return domain.ItineraryContent{}, ErrGenerationAuth
		default:
			return domain.ItineraryContent{}, ErrGenerationFailed
		}
	}

	candidate := extractFirstJSONObject(cleanModelJSON(raw))
	if candidate == "" {
		candidate = cleanModelJSON(raw)
	}

	var content domain.ItineraryContent
	if err := json.Unmarshal([]byte(candidate), &content); err != nil {
		// Un resultado malformado no tiene sustituto razonable.
		s.logger.Error("itinerary content unparseable", zap.Error(err))
		return domain.ItineraryContent{}, fmt.Errorf("parse itinerary content: %w", err)
	}

	if !daysSequential(content.Days) {
		// Se almacena tal cual; solo dejamos rastro del productor indisciplinado.
		s.logger.Warn("itinerary day numbers not sequential from 1",
			zap.String("destination", input.Destination),
			zap.Int("days", len(content.Days)),
		)
	}

	content.MapLocation = input.Destination
	return content, nil
}

func buildItineraryPrompt(input GenerateInput) string {
	budgetLine := ""
	if input.Budget != nil {
		budgetLine = fmt.Sprintf("The budget is approximately $%d.", *input.Budget)
	}

	return fmt.Sprintf(`Create a detailed %d-day travel itinerary for %s with these preferences: %s. %s
Format the response as a JSON object with the following structure:
{
  "destination": "Destination name",
  "duration": number of days,
  "summary": "Brief description of the trip",
  "days": [
    {
      "day": day number,
      "title": "Title for this day",
      "activities": [
        {
          "type": "accommodation/food/activity/transportation",
          "title": "Name of place or activity",
          "description": "Brief description",
          "cost": estimated cost in USD,
          "icon": "suggested Font Awesome icon class"
        }
      ]
    }
  ],
  "budget": {
    "accommodation": total accommodation cost,
    "food": total food cost,
    "activities": total activities cost,
    "transportation": total transportation cost,
    "miscellaneous": miscellaneous costs,
    "total": total trip cost
  }
}`, input.DurationDays, input.Destination, input.Preferences, budgetLine)
}

// daysSequential verifica la disciplina del productor: numeros de dia
// 1-based y consecutivos.
func daysSequential(days []domain.ItineraryDay) bool {
	for i, d := range days {
		if d.Day != i+1 {
			return false
		}
	}
	return true
}
