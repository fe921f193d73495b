// Package service assembles workbook exports from the accumulated books
package service

import (
	"context"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"tallybook/internal/adapters/xlsxbook"
	perr "tallybook/internal/platform/errors"
	slipsdom "tallybook/internal/services/slips/domain"
)

// Service implements domain.ExportPort over the slips ledger reads
type Service struct {
	ledgers slipsdom.LedgerReadPort
}

// New constructs an exports service
func New(ledgers slipsdom.LedgerReadPort) *Service {
	if ledgers == nil {
		panic("exports.Service requires a non nil LedgerReadPort")
	}
	return &Service{ledgers: ledgers}
}

// Workbook implements domain.ExportPort. The ledger port validates the
// bazar code and the day; an unknown bazar surfaces as a validation
// error before any rows are read
func (s *Service) Workbook(ctx context.Context, bazar string, day time.Time) (*excelize.File, string, error) {
	bazar = strings.ToUpper(strings.TrimSpace(bazar))
	q := slipsdom.LedgerQuery{Bazar: bazar, Day: day}

	panas, err := s.ledgers.PanaLedger(ctx, q)
	if err != nil {
		return nil, "", err
	}
	times, err := s.ledgers.TimeLedger(ctx, q)
	if err != nil {
		return nil, "", err
	}
	jodis, err := s.ledgers.JodiLedger(ctx, q)
	if err != nil {
		return nil, "", err
	}
	summary, err := s.ledgers.Summary(ctx, slipsdom.SummaryQuery{Bazar: bazar, Since: day, Until: day})
	if err != nil {
		return nil, "", err
	}

	f, err := xlsxbook.Render(xlsxbook.Book{
		Bazar:   bazar,
		Day:     day,
		Panas:   panas,
		Times:   times,
		Jodis:   jodis,
		Summary: summary,
	})
	if err != nil {
		return nil, "", perr.Wrapf(err, perr.ErrorCodeUnknown, "exports: render %s %s", bazar, day.Format("2006-01-02"))
	}
	return f, xlsxbook.Filename(bazar, day), nil
}
