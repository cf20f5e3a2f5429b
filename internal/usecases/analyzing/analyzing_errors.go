package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análise de vendas.
// Todos os erros de validação embrulham ErrInvalidInput, permitindo
// que chamadores testem a categoria com errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input data")

	ErrNilData            = fmt.Errorf("%w: data is required", ErrInvalidInput)
	ErrMissingSellers     = fmt.Errorf("%w: sellers collection is required", ErrInvalidInput)
	ErrMissingProducts    = fmt.Errorf("%w: products collection is required", ErrInvalidInput)
	ErrMissingPurchases   = fmt.Errorf("%w: purchase_records collection is required", ErrInvalidInput)
	ErrMissingRevenueCalc = fmt.Errorf("%w: revenue strategy is required", ErrInvalidInput)
	ErrMissingBonusCalc   = fmt.Errorf("%w: bonus strategy is required", ErrInvalidInput)
	ErrUnknownPolicy      = fmt.Errorf("%w: unknown sales count policy", ErrInvalidInput)
)
