package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
)

// checkMoney rejects values the numeric(20,8) columns cannot store.
func checkMoney(field string, d decimal.Decimal) error {
	if d.Abs().GreaterThanOrEqual(models.MaxMoney) {
		return apperrors.WithMessage(apperrors.ErrAmountOutOfRange,
			fmt.Sprintf("%s must be below %s in magnitude", field, models.MaxMoney.String()))
	}
	return nil
}
