package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acazacu/credit-docs/internal/models"
	"github.com/acazacu/credit-docs/internal/schedule"
)

func caseFixture() *models.CaseRecord {
	return &models.CaseRecord{
		Credit: models.CreditTerms{
			ID:         "1234567",
			Amount:     "10000",
			IssuedDate: "01.01.2024",
		},
		Identification: models.Identification{
			Bulletin: models.Bulletin{
				IDNP:     "2004567890123",
				Series:   "A01234567",
				IssuedAt: "15.03.2015",
			},
		},
		Addresses: models.Addresses{
			Residence: models.Address{
				Region: "Centru",
				City:   "Chisinau",
				Street: "Stefan cel Mare",
				Number: "124",
			},
			Defacto: models.Address{
				Region: "Botanica",
				City:   "Chisinau",
				Street: "Dacia",
				Number: "5",
			},
		},
		ContactData: models.ContactData{
			MainNumber: "069123456",
			Email:      "ion.popescu@example.com",
		},
		PersonalData: models.PersonalData{
			FirstName: "Ion",
			LastName:  "Popescu",
			BirthDate: "02.04.1990",
		},
	}
}

func TestBuildTemplateData(t *testing.T) {
	rec := caseFixture()
	sched, err := schedule.Build(10000, rec.Credit.IssuedDate)
	require.NoError(t, err)

	data := BuildTemplateData(rec, sched)

	assert.Equal(t, "1234567", data.Fields["creditID"])
	assert.Equal(t, "10000", data.Fields["creditAmount"])
	assert.Equal(t, "01.01.2024", data.Fields["creditIssuedDate"])
	assert.Equal(t, "29.06.2024", data.Fields["creditFinishDate"])

	assert.Equal(t, "10000", data.Fields["creditBodySubtotal"])
	assert.Equal(t, "720", data.Fields["creditCommissionSubtotal"])

	assert.Equal(t, "Ion Popescu", data.Fields["personFullName"])
	assert.Equal(t, "02.04.1990", data.Fields["personBirthday"])
	assert.Equal(t, "069123456", data.Fields["contactNumber"])

	assert.Equal(t, "Centru, Chisinau, Stefan cel Mare, 124", data.Fields["addressResidence"])
	assert.Equal(t, "Botanica, Chisinau, Dacia, 5", data.Fields["addressDefacto"])

	assert.Equal(t, "A01234567", data.Fields["bulletinSeries"])
	assert.Equal(t, "15.03.2015", data.Fields["bulletinIssuedDate"])
	assert.Equal(t, "2004567890123", data.Fields["bulletinIDNP"])

	// Amount-in-words placeholders are derived, not forwarded.
	assert.NotEmpty(t, data.Fields["creditAmountText"])
	assert.NotEmpty(t, data.Fields["creditTotalText"])
}

func TestBuildTemplateData_PaymentRows(t *testing.T) {
	rec := caseFixture()
	sched, err := schedule.Build(10000, rec.Credit.IssuedDate)
	require.NoError(t, err)

	data := BuildTemplateData(rec, sched)
	require.Len(t, data.Payments, 6)

	first := data.Payments[0]
	assert.Equal(t, "1", first["number"])
	assert.Equal(t, "31.01.2024", first["date"])
	assert.Equal(t, "0", first["body"])
	assert.Equal(t, "411", first["interest"])
	assert.Equal(t, "720", first["commission"])
	assert.Equal(t, "1131", first["total"])

	last := data.Payments[5]
	assert.Equal(t, "6", last["number"])
	assert.Equal(t, "29.06.2024", last["date"])
	assert.Equal(t, "1000", last["body"])
}
