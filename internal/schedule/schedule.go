// Package schedule derives the fixed 6-installment payment schedule of a
// credit from its amount and issue date. The computation is pure: the same
// inputs always produce the same integer amounts.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acazacu/credit-docs/internal/models"
)

// DateLayout is the fixed calendar format of issued and payment dates.
const DateLayout = "02.01.2006"

const (
	installmentCount = 6
	periodDays       = 30
)

// ErrBadIssuedDate is reported when the issue date does not parse under
// DateLayout. Generation must fail, never default to another date.
var ErrBadIssuedDate = errors.New("issued date does not match dd.MM.yyyy")

var (
	annualRate  = decimal.NewFromFloat(0.5)
	daysPerYear = decimal.NewFromInt(365)
	periodLen   = decimal.NewFromInt(periodDays)
)

// policy maps installment index to its principal and commission shares.
// No principal is repaid in the first row; half comes due in the second
// and the rest in decreasing steps, covering the full amount by row six.
var policy = [installmentCount]struct {
	bodyShare       decimal.Decimal
	commissionShare decimal.Decimal
}{
	{decimal.Zero, decimal.NewFromFloat(0.072)},
	{decimal.NewFromFloat(0.5), decimal.Zero},
	{decimal.NewFromFloat(0.2), decimal.Zero},
	{decimal.NewFromFloat(0.1), decimal.Zero},
	{decimal.NewFromFloat(0.1), decimal.Zero},
	{decimal.NewFromFloat(0.1), decimal.Zero},
}

// Build computes the schedule for the given amount and issue date.
// All monetary amounts are rounded to whole units, half away from zero.
func Build(amount float64, issuedDate string) (*models.Schedule, error) {
	issued, err := time.Parse(DateLayout, issuedDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadIssuedDate, issuedDate)
	}

	amt := decimal.NewFromFloat(amount)
	remainder := amt
	prevBody := decimal.Zero

	s := &models.Schedule{
		IssuedDate:   issued,
		FinishDate:   issued.AddDate(0, 0, periodDays*installmentCount),
		Installments: make([]models.Installment, 0, installmentCount),
	}

	for i := 0; i < installmentCount; i++ {
		// Interest accrues on the principal still outstanding after the
		// previous installment's body; the first row sees the full amount.
		if i > 0 {
			remainder = remainder.Sub(prevBody)
		}

		body := amt.Mul(policy[i].bodyShare).Round(0)
		interest := remainder.Mul(annualRate).Div(daysPerYear).Mul(periodLen).Round(0)
		commission := amt.Mul(policy[i].commissionShare).Round(0)
		total := body.Add(interest).Add(commission)

		s.Installments = append(s.Installments, models.Installment{
			Number:     i + 1,
			Date:       issued.AddDate(0, 0, periodDays*(i+1)),
			Body:       body.IntPart(),
			Interest:   interest.IntPart(),
			Commission: commission.IntPart(),
			Total:      total.IntPart(),
		})

		s.BodySubtotal += body.IntPart()
		s.InterestSubtotal += interest.IntPart()
		s.CommissionSubtotal += commission.IntPart()
		s.TotalSubtotal += total.IntPart()

		prevBody = body
	}

	return s, nil
}
