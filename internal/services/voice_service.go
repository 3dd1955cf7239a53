package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/pkg/utils"

	"github.com/tmc/langchaingo/llms"
)

// ResolvedLine is one (menu item, quantity) pair extracted from a spoken
// transcript. Quantity defaults to 1 when the utterance names none.
type ResolvedLine struct {
	ItemID   string `json:"id"`
	Quantity int    `json:"quantity"`
}

// VoiceOrderService maps a free-text utterance to menu items constrained
// to the candidate menu it is given. This is the only suspending operation
// in the system: one external LLM call per invocation, no retries. It fails
// closed: any error at all yields an empty result, never a raised error,
// and the caller shows its own "not understood" feedback.
type VoiceOrderService interface {
	Resolve(ctx context.Context, transcript string, candidateMenu []models.MenuItem) []ResolvedLine
}

type voiceOrderService struct {
	model llms.Model // nil when no LLM backend is configured
}

// NewVoiceOrderService creates a new instance of VoiceOrderService. A nil
// model is valid and makes every Resolve return empty.
func NewVoiceOrderService(model llms.Model) VoiceOrderService {
	return &voiceOrderService{model: model}
}

func (s *voiceOrderService) Resolve(ctx context.Context, transcript string, candidateMenu []models.MenuItem) []ResolvedLine {
	if s.model == nil {
		utils.LogDebug("Voice resolver skipped: no LLM backend configured")
		return []ResolvedLine{}
	}
	if utils.IsEmpty(transcript) || len(candidateMenu) == 0 {
		return []ResolvedLine{}
	}

	reply, err := llms.GenerateFromSinglePrompt(ctx, s.model, buildPrompt(transcript, candidateMenu),
		llms.WithJSONMode())
	if err != nil {
		utils.LogError(err, "Voice resolver: LLM call failed")
		return []ResolvedLine{}
	}

	parsed := parseReply(reply)
	// Resolved ids are validated against the menu as it is NOW; anything
	// stale or hallucinated is silently dropped rather than force-applied.
	valid := make(map[string]bool, len(candidateMenu))
	for _, item := range candidateMenu {
		valid[item.ID] = true
	}
	lines := make([]ResolvedLine, 0, len(parsed))
	for _, l := range parsed {
		if !valid[l.ItemID] {
			continue
		}
		if l.Quantity <= 0 {
			l.Quantity = 1
		}
		lines = append(lines, l)
	}
	return lines
}

func buildPrompt(transcript string, menu []models.MenuItem) string {
	entries := make([]string, 0, len(menu))
	for _, p := range menu {
		entries = append(entries, fmt.Sprintf("%s: %s (%s)", p.ID, p.Name, p.LocalName))
	}
	return fmt.Sprintf(`You are an ordering assistant for a restaurant.
Menu Items: [%s]

User Request: %q

Task: Extract items and quantities. Map loosely matched names to the specific IDs provided in the menu.
If a quantity is not specified, assume 1.
Return ONLY a JSON object of the form {"items": [{"id": "...", "quantity": 1}]}.`,
		strings.Join(entries, ", "), transcript)
}

func parseReply(reply string) []ResolvedLine {
	cleaned := strings.TrimSpace(reply)
	// Some backends wrap JSON mode output in a markdown fence anyway.
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	var payload struct {
		Items []ResolvedLine `json:"items"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		utils.LogDebug("Voice resolver: malformed LLM reply", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return payload.Items
}
