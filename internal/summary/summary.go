package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-console/internal/models"
)

// Fallback is returned whenever the summary cannot be generated.
const Fallback = "Desculpe, não foi possível gerar o resumo neste momento. Por favor, tente novamente mais tarde."

// Generator turns a prompt into free text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Summarizer struct {
	gen      Generator
	shopName string
}

// New returns a Summarizer. gen may be nil, in which case every call
// returns Fallback.
func New(gen Generator, shopName string) *Summarizer {
	return &Summarizer{gen: gen, shopName: shopName}
}

// Summarize never fails: errors and empty answers become Fallback.
func (s *Summarizer) Summarize(ctx context.Context, stats models.DailyStats) string {
	if s.gen == nil {
		return Fallback
	}

	text, err := s.gen.Generate(ctx, Prompt(s.shopName, stats))
	if err != nil {
		log.Error().Err(err).Msg("error generating summary")
		return Fallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn().Msg("empty summary response")
		return Fallback
	}
	return text
}

// Prompt builds the request text for the day's numbers.
func Prompt(shopName string, stats models.DailyStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Você é um assistente de negócios para o proprietário de uma barbearia chamada %q.\n", shopName)
	b.WriteString("Analise os dados de desempenho do dia e forneça um resumo amigável e perspicaz em português.\n")
	b.WriteString("Seja conciso e termine com uma nota motivacional.\n\n")
	b.WriteString("Dados de hoje:\n")
	fmt.Fprintf(&b, "- Faturamento Total: R$ %s\n", stats.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "- Serviços Concluídos: %d\n", stats.ServicesCompleted)
	fmt.Fprintf(&b, "- Ticket Médio: R$ %s\n\n", stats.AverageTicket.StringFixed(2))
	b.WriteString("Seu resumo deve estar em um único parágrafo.")

	return b.String()
}
