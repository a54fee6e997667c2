package report

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-console/internal/models"
	"github.com/BruksfildServices01/barber-console/internal/timezone"
)

type TransactionLister interface {
	List() []models.Transaction
}

type Export struct {
	Filename   string
	Data       []byte
	ArchiveKey string // empty when not archived
}

// Exporter builds the XLSX report and, when an archiver is set, uploads a
// copy. A failed upload is logged; the export is still returned.
type Exporter struct {
	transactions TransactionLister
	archiver     Archiver
	clock        timezone.Clock
}

func NewExporter(transactions TransactionLister, archiver Archiver, clock timezone.Clock) *Exporter {
	return &Exporter{transactions: transactions, archiver: archiver, clock: clock}
}

func (uc *Exporter) Execute(ctx context.Context) (*Export, error) {
	data, err := WriteXLSX(uc.transactions.List())
	if err != nil {
		return nil, fmt.Errorf("export transactions: %w", err)
	}

	today := uc.clock.Today()
	out := &Export{
		Filename: fmt.Sprintf("transacoes-%s.xlsx", today),
		Data:     data,
	}

	if uc.archiver == nil {
		return out, nil
	}

	key := ArchiveKey(today)
	if err := uc.archiver.Archive(ctx, key, data); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error archiving report")
		return out, nil
	}

	out.ArchiveKey = key
	return out, nil
}
