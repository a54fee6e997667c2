package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-console/internal/models"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

var stats = models.DailyStats{
	TotalRevenue:      decimal.RequireFromString("150"),
	ServicesCompleted: 3,
	AverageTicket:     decimal.RequireFromString("50"),
}

func TestSummarizeReturnsGeneratedText(t *testing.T) {
	gen := &fakeGenerator{text: "  Ótimo dia!  "}
	s := New(gen, "Hugo Barbearia")

	assert.Equal(t, "Ótimo dia!", s.Summarize(context.Background(), stats))
	assert.Contains(t, gen.prompt, `"Hugo Barbearia"`)
	assert.Contains(t, gen.prompt, "Faturamento Total: R$ 150.00")
	assert.Contains(t, gen.prompt, "Serviços Concluídos: 3")
	assert.Contains(t, gen.prompt, "Ticket Médio: R$ 50.00")
}

func TestSummarizeFallsBack(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"error", &fakeGenerator{err: errors.New("quota exceeded")}},
		{"empty", &fakeGenerator{text: "   "}},
		{"no generator", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.gen, "Hugo Barbearia")
			assert.Equal(t, Fallback, s.Summarize(context.Background(), stats))
		})
	}
}
