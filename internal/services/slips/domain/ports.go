package domain

import (
	"context"

	bazarsdom "tallybook/internal/services/bazars/domain"
	customersdom "tallybook/internal/services/customers/domain"
	ledgerdom "tallybook/internal/services/ledger/domain"
	refdom "tallybook/internal/services/reftables/domain"
)

// SlipPort is the submission surface: parse, gate, persist
type SlipPort interface {
	Preview(ctx context.Context, in PreviewInput) (Preview, error)
	Submit(ctx context.Context, in SubmitInput) (Receipt, error)
	PreviewJodi(ctx context.Context, in PreviewInput) (JodiPreview, error)
	SubmitJodi(ctx context.Context, in SubmitInput) (Receipt, error)
	Get(ctx context.Context, id string) (Slip, error)
	List(ctx context.Context, q ListQuery) ([]Slip, error)
}

// LedgerReadPort reads the accumulated books back for display and export
type LedgerReadPort interface {
	PanaLedger(ctx context.Context, q LedgerQuery) ([]PanaLedgerRow, error)
	TimeLedger(ctx context.Context, q LedgerQuery) ([]TimeLedgerRow, error)
	JodiLedger(ctx context.Context, q LedgerQuery) ([]JodiLedgerRow, error)
	Summary(ctx context.Context, q SummaryQuery) ([]SummaryRow, error)
}

// Ports are dependencies injected into the slips module
type Ports struct {
	Tables    refdom.ProviderPort      // required
	Customers customersdom.ServicePort // required
	Bazars    bazarsdom.ServicePort    // required
	Entries   ledgerdom.WriterPort     // required; may be a disabled writer
}
