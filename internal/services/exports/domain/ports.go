// Package domain defines the contracts for workbook exports
package domain

import (
	"context"
	"time"

	"github.com/xuri/excelize/v2"

	slipsdom "tallybook/internal/services/slips/domain"
)

// ExportPort renders one bazar day's books as a workbook. The returned
// name is the suggested file name for the download or the CLI target
type ExportPort interface {
	Workbook(ctx context.Context, bazar string, day time.Time) (*excelize.File, string, error)
}

// Ports are dependencies injected into the exports module
type Ports struct {
	Ledgers slipsdom.LedgerReadPort // required
}
