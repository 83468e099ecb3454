package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acazacu/credit-docs/internal/models"
)

func validCase() *models.CaseRecord {
	return &models.CaseRecord{
		Credit: models.CreditTerms{
			ID:         "1234567",
			Amount:     "10000",
			IssuedDate: "01.01.2024",
		},
		Identification: models.Identification{
			Bulletin: models.Bulletin{
				IDNP:       "2004567890123",
				Series:     "A01234567",
				IssuedAt:   "15.03.2015",
				Expiration: "15.03.2035",
				IssuedBy:   "ASP Chisinau",
			},
		},
		Addresses: models.Addresses{
			Residence: models.Address{
				Region: "Centru",
				City:   "Chisinau",
				Street: "Stefan cel Mare",
				Number: "124",
			},
		},
		ContactData: models.ContactData{
			MainNumber: "069123456",
		},
		PersonalData: models.PersonalData{
			FirstName: "Ion",
			LastName:  "Popescu",
			BirthDate: "02.04.1990",
		},
	}
}

func kindOf(v Violations, path string) (Kind, bool) {
	for _, fe := range v {
		if fe.Path == path {
			return fe.Kind, true
		}
	}
	return "", false
}

func TestValidateCase_ValidRecord(t *testing.T) {
	v := ValidateCase(validCase())
	require.Empty(t, v, "expected a fully valid record, got: %v", v)
}

func TestValidateCase_AmountBoundary(t *testing.T) {
	rec := validCase()
	rec.Credit.Amount = "1000"
	assert.Empty(t, ValidateCase(rec), "amount 1000 is the allowed minimum")

	rec.Credit.Amount = "999"
	v := ValidateCase(rec)
	kind, found := kindOf(v, "credit.amount")
	require.True(t, found, "amount 999 must be rejected")
	assert.Equal(t, KindMinValue, kind)
}

func TestValidateCase_NonFiniteAmount(t *testing.T) {
	// ParseFloat accepts these, but they are not amounts and must fail
	// coercion before the minimum comparison (NaN < 1000 is false).
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "inf", "Infinity"} {
		rec := validCase()
		rec.Credit.Amount = raw
		v := ValidateCase(rec)
		kind, found := kindOf(v, "credit.amount")
		require.True(t, found, "amount %q must be rejected", raw)
		assert.Equal(t, KindType, kind, "amount %q", raw)
	}
}

func TestValidateCase_NonFiniteDigitFields(t *testing.T) {
	rec := validCase()
	rec.Credit.ID = "NaN"
	v := ValidateCase(rec)
	kind, found := kindOf(v, "credit.id")
	require.True(t, found)
	assert.Equal(t, KindType, kind, "non-finite input fails coercion, not the digit count")

	rec = validCase()
	rec.Identification.Bulletin.IDNP = "Inf"
	v = ValidateCase(rec)
	kind, found = kindOf(v, "identification.bulletin.idnp")
	require.True(t, found)
	assert.Equal(t, KindType, kind)
}

func TestValidateCase_AmountType(t *testing.T) {
	rec := validCase()
	rec.Credit.Amount = "ten thousand"
	v := ValidateCase(rec)
	kind, found := kindOf(v, "credit.amount")
	require.True(t, found)
	assert.Equal(t, KindType, kind)
}

func TestValidateCase_IDNPDigitCount(t *testing.T) {
	cases := []struct {
		idnp string
		ok   bool
	}{
		{"123456789012", false},   // 12 digits
		{"2004567890123", true},   // 13 digits
		{"20045678901234", false}, // 14 digits
		{"0123456789012", false},  // leading zero collapses to 12 digits
	}
	for _, tc := range cases {
		rec := validCase()
		rec.Identification.Bulletin.IDNP = tc.idnp
		v := ValidateCase(rec)
		if tc.ok {
			assert.False(t, v.Has("identification.bulletin.idnp"), "idnp %q must pass", tc.idnp)
		} else {
			kind, found := kindOf(v, "identification.bulletin.idnp")
			require.True(t, found, "idnp %q must fail", tc.idnp)
			assert.Equal(t, KindLength, kind, "idnp %q", tc.idnp)
		}
	}
}

func TestValidateCase_TypeCheckPrecedesDigitCount(t *testing.T) {
	rec := validCase()
	rec.Credit.ID = "12a4567"
	v := ValidateCase(rec)
	kind, found := kindOf(v, "credit.id")
	require.True(t, found)
	assert.Equal(t, KindType, kind, "non-numeric input fails coercion before any length test")
}

func TestValidateCase_MissingMainNumber(t *testing.T) {
	rec := validCase()
	rec.ContactData.MainNumber = ""
	v := ValidateCase(rec)
	kind, found := kindOf(v, "contactData.mainNumber")
	require.True(t, found, "missing mainNumber must be rejected")
	assert.Equal(t, KindRequired, kind)
}

func TestValidateCase_EmptyDefactoPasses(t *testing.T) {
	rec := validCase()
	rec.Addresses.Defacto = models.Address{}
	v := ValidateCase(rec)
	for _, fe := range v {
		assert.NotContains(t, fe.Path, "addresses.defacto", "empty defacto block must not produce violations")
	}
	assert.Empty(t, v)
}

func TestValidateCase_DefactoUpperBounds(t *testing.T) {
	rec := validCase()
	rec.Addresses.Defacto.City = "0123456789012345678901234567890" // 31 chars
	v := ValidateCase(rec)
	kind, found := kindOf(v, "addresses.defacto.city")
	require.True(t, found)
	assert.Equal(t, KindMax, kind)
}

func TestValidateCase_Email(t *testing.T) {
	rec := validCase()
	rec.ContactData.Email = ""
	assert.Empty(t, ValidateCase(rec), "empty email is allowed")

	rec.ContactData.Email = "ion.popescu@example.com"
	assert.Empty(t, ValidateCase(rec), "valid email is allowed")

	rec.ContactData.Email = "not-an-email"
	v := ValidateCase(rec)
	kind, found := kindOf(v, "contactData.email")
	require.True(t, found)
	assert.Equal(t, KindEmail, kind)
}

func TestValidateCase_PersonalBounds(t *testing.T) {
	rec := validCase()
	rec.PersonalData.FirstName = "I"
	v := ValidateCase(rec)
	kind, found := kindOf(v, "personalData.firstName")
	require.True(t, found)
	assert.Equal(t, KindMin, kind)

	rec = validCase()
	rec.PersonalData.BirthDate = "2.4.1990"
	v = ValidateCase(rec)
	kind, found = kindOf(v, "personalData.birthDate")
	require.True(t, found)
	assert.Equal(t, KindLength, kind)
}

func TestValidateCase_CollectsAllViolations(t *testing.T) {
	rec := &models.CaseRecord{}
	v := ValidateCase(rec)

	// Every required field across the record must be reported at once.
	for _, path := range []string{
		"credit.id",
		"credit.amount",
		"credit.issuedDate",
		"identification.bulletin.idnp",
		"identification.bulletin.series",
		"identification.bulletin.issuedAt",
		"identification.bulletin.expiration",
		"addresses.residence.region",
		"addresses.residence.city",
		"addresses.residence.street",
		"addresses.residence.number",
		"contactData.mainNumber",
		"personalData.birthDate",
		"personalData.firstName",
		"personalData.lastName",
	} {
		assert.True(t, v.Has(path), "expected a violation for %s", path)
	}
}
