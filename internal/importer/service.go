package importer

import (
	"fmt"
	"io"

	"github.com/bolsofacil/api/internal/importer/nubank"
	"github.com/bolsofacil/api/internal/transaction"
)

type Service struct {
	nubankImporter Importer
}

func NewService() *Service {
	return &Service{
		nubankImporter: nubank.New(),
	}
}

func (s *Service) Parse(bank Bank, r io.Reader) ([]transaction.CreateParams, error) {
	var imp Importer

	switch bank {
	case BankNubank:
		imp = s.nubankImporter
	default:
		return nil, fmt.Errorf("unknown bank: %s", bank)
	}

	return imp.Parse(r)
}
