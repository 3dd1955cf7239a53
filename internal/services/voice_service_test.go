package services

import (
	"context"
	"errors"
	"testing"

	"haveli_pos_backend/internal/models"

	"github.com/tmc/langchaingo/llms"
)

// stubModel replays a canned reply (or error) for every prompt.
type stubModel struct {
	reply string
	err   error
}

func (m *stubModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.reply}},
	}, nil
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

var voiceMenu = []models.MenuItem{
	{ID: "m1", Name: "Butter Chicken", LocalName: "Murgh Makhani", Price: 320, IsAvailable: true},
	{ID: "m2", Name: "Tandoori Roti", LocalName: "Roti", Price: 25, IsAvailable: true},
}

func TestResolveMapsTranscriptToMenuItems(t *testing.T) {
	svc := NewVoiceOrderService(&stubModel{
		reply: `{"items": [{"id": "m1", "quantity": 2}, {"id": "m2", "quantity": 4}]}`,
	})

	lines := svc.Resolve(context.Background(), "do butter chicken aur char roti", voiceMenu)
	if len(lines) != 2 {
		t.Fatalf("lines: got %d, want 2", len(lines))
	}
	if lines[0].ItemID != "m1" || lines[0].Quantity != 2 {
		t.Errorf("first line: got %+v", lines[0])
	}
	if lines[1].ItemID != "m2" || lines[1].Quantity != 4 {
		t.Errorf("second line: got %+v", lines[1])
	}
}

func TestResolveDropsHallucinatedIDs(t *testing.T) {
	svc := NewVoiceOrderService(&stubModel{
		reply: `{"items": [{"id": "m1", "quantity": 1}, {"id": "ghost", "quantity": 3}]}`,
	})

	lines := svc.Resolve(context.Background(), "butter chicken", voiceMenu)
	if len(lines) != 1 {
		t.Fatalf("lines: got %d, want 1 (unknown id dropped)", len(lines))
	}
	if lines[0].ItemID != "m1" {
		t.Errorf("kept line: got %+v", lines[0])
	}
}

func TestResolveDefaultsQuantityToOne(t *testing.T) {
	svc := NewVoiceOrderService(&stubModel{
		reply: `{"items": [{"id": "m2", "quantity": 0}]}`,
	})

	lines := svc.Resolve(context.Background(), "ek roti", voiceMenu)
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Errorf("got %+v, want quantity 1", lines)
	}
}

func TestResolveStripsMarkdownFence(t *testing.T) {
	svc := NewVoiceOrderService(&stubModel{
		reply: "```json\n{\"items\": [{\"id\": \"m1\", \"quantity\": 1}]}\n```",
	})

	lines := svc.Resolve(context.Background(), "butter chicken", voiceMenu)
	if len(lines) != 1 {
		t.Errorf("fenced reply: got %d lines, want 1", len(lines))
	}
}

func TestResolveFailsClosed(t *testing.T) {
	tests := []struct {
		name       string
		svc        VoiceOrderService
		transcript string
		menu       []models.MenuItem
	}{
		{"no backend", NewVoiceOrderService(nil), "butter chicken", voiceMenu},
		{"backend error", NewVoiceOrderService(&stubModel{err: errors.New("quota exceeded")}), "butter chicken", voiceMenu},
		{"malformed reply", NewVoiceOrderService(&stubModel{reply: "two butter chickens, coming up!"}), "butter chicken", voiceMenu},
		{"empty transcript", NewVoiceOrderService(&stubModel{reply: `{"items": []}`}), "   ", voiceMenu},
		{"empty menu", NewVoiceOrderService(&stubModel{reply: `{"items": []}`}), "butter chicken", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := tt.svc.Resolve(context.Background(), tt.transcript, tt.menu)
			if len(lines) != 0 {
				t.Errorf("got %d lines, want 0", len(lines))
			}
		})
	}
}
