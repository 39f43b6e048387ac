package importer

import (
	"io"

	"github.com/bolsofacil/api/internal/transaction"
)

type Bank string

const (
	BankNubank Bank = "nubank"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
