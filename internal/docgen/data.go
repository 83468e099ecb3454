package docgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/divan/num2words"

	"github.com/acazacu/credit-docs/internal/models"
	"github.com/acazacu/credit-docs/internal/schedule"
)

// Data is the flat data set a template consumes: scalar placeholders plus
// the installment table rows.
type Data struct {
	Fields   map[string]string
	Payments []map[string]string
}

// BuildTemplateData flattens the case and its computed schedule into the
// placeholder set the contract template expects. Identity, contact and
// address fields are forwarded as submitted, only the schedule columns
// are computed values.
func BuildTemplateData(rec *models.CaseRecord, sched *models.Schedule) *Data {
	residence := rec.Addresses.Residence
	defacto := rec.Addresses.Defacto

	amount, _ := strconv.ParseFloat(strings.TrimSpace(rec.Credit.Amount), 64)

	fields := map[string]string{
		"creditID":         rec.Credit.ID,
		"creditAmount":     strconv.FormatFloat(amount, 'f', -1, 64),
		"creditAmountText": amountInWords(int(amount)),
		"creditIssuedDate": rec.Credit.IssuedDate,
		"creditFinishDate": sched.FinishDate.Format(schedule.DateLayout),

		"creditBodySubtotal":       formatAmount(sched.BodySubtotal),
		"creditInterestSubtotal":   formatAmount(sched.InterestSubtotal),
		"creditCommissionSubtotal": formatAmount(sched.CommissionSubtotal),
		"creditTotalSubtotal":      formatAmount(sched.TotalSubtotal),
		"creditTotalText":          amountInWords(int(sched.TotalSubtotal)),

		"personFirstName": rec.PersonalData.FirstName,
		"personLastName":  rec.PersonalData.LastName,
		"personFullName":  rec.PersonalData.FirstName + " " + rec.PersonalData.LastName,
		"personBirthday":  rec.PersonalData.BirthDate,

		"contactNumber": rec.ContactData.MainNumber,
		"contactEmail":  rec.ContactData.Email,

		"addressResidence": formatAddress(residence),
		"addressDefacto":   formatAddress(defacto),

		"bulletinSeries":     rec.Identification.Bulletin.Series,
		"bulletinIssuedDate": rec.Identification.Bulletin.IssuedAt,
		"bulletinIDNP":       rec.Identification.Bulletin.IDNP,
	}

	payments := make([]map[string]string, 0, len(sched.Installments))
	for _, inst := range sched.Installments {
		payments = append(payments, map[string]string{
			"number":     strconv.Itoa(inst.Number),
			"date":       inst.Date.Format(schedule.DateLayout),
			"body":       formatAmount(inst.Body),
			"interest":   formatAmount(inst.Interest),
			"commission": formatAmount(inst.Commission),
			"total":      formatAmount(inst.Total),
		})
	}

	return &Data{Fields: fields, Payments: payments}
}

func formatAddress(a models.Address) string {
	return fmt.Sprintf("%s, %s, %s, %s", a.Region, a.City, a.Street, a.Number)
}

func formatAmount(v int64) string {
	return strconv.FormatInt(v, 10)
}

func amountInWords(v int) string {
	return num2words.Convert(v)
}
