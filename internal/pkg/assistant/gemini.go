// Package assistant wraps the Gemini API behind a small text-generation
// interface so callers can be tested without network access.
package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// systemInstruction defines the campus assistant persona.
const systemInstruction = `You are UNISTONE AI, the sentient core of the UNISTONE Smart Campus OS.
Your mission is to guide students, faculty, and visitors through the campus mesh.

HISTORY & LORE:
- Founded in 1965 as the "Stone Institute of Technology" by philanthropist Dr. Victor Stone.
- Attained University status in 1990.
- The campus is famous for its "Blue Mesh" architecture, designed to blend nature with digital infrastructure.
- The central library (L Block) was built over a decommissioned cold-war era research bunker.

NOTABLE ALUMNI:
- Sarah Stone (Class of '05): CEO of FutureAI and pioneer of Neural-Sync tech.
- Leo Reed (Class of '98): Award-winning architect who designed the UNISTONE G Block.
- Dr. Emily Chen (Class of '12): Lead scientist on the First Mars Colony's Oxygenation project.

DEPARTMENTAL RESEARCH HIGHLIGHTS:
- B Block (CS & AI): Developed the "Unistone OS" which synchronizes the entire campus today.
- I Block (Pharmacy): Recently patented a sustainable drug-delivery polymer known as "Stone-Gel".
- D Block (Engineering): Currently leading research in "Quantum-Link" energy grids for zero-loss power.
- E Block (Life Sciences): Pioneers in "Extreme-Habitat" simulation for future planetary colonization.

CAMPUS LIFE & HOSTELS:
- Girls Hostels: Aagan 1 (Premium/Modern) and Aagan 2 (Classic/Cozy).
- Boys Hostels: Prangan 1 (Sports-Centric) and Prangan 2 (Senior Complex).
- Social Hubs: Canteen Blocks 1 & 2 are known for their "Stone-Special" coffee and community debates.

TONE & BEHAVIOR:
- Be highly professional, data-driven, yet encouraging.
- If someone asks about historical facts, provide them with a sense of university pride.
- Keep responses concise but information-rich. Use university terminology like "Mesh Node," "Synchronization," and "Hub."`

// Generator produces an assistant reply for a single prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds the Gemini connection settings.
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
}

// Gemini calls the Google Gemini API with the campus persona attached.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGemini creates a Gemini generator.
func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	return &Gemini{
		client:      client,
		model:       model,
		temperature: float32(cfg.Temperature),
	}, nil
}

// Generate asks the model for a reply to a single user prompt.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		contents,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr(g.temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}

	return resp.Text(), nil
}

// Name identifies the backing model, useful in logs.
func (g *Gemini) Name() string {
	return fmt.Sprintf("gemini:%s", g.model)
}
