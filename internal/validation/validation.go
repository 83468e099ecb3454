package validation

import (
	"fmt"
	"math"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/acazacu/credit-docs/internal/models"
)

// Kind classifies a validation rule so callers can react to the rule
// class even when message text changes.
type Kind string

const (
	KindRequired Kind = "required"
	KindMin      Kind = "min"
	KindMax      Kind = "max"
	KindLength   Kind = "length"
	KindType     Kind = "type"
	KindMinValue Kind = "min_value"
	KindEmail    Kind = "email"
)

// FieldError is one violation, scoped to a field path like "credit.amount".
type FieldError struct {
	Path    string `json:"path"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Violations is the full set of field errors found in one record.
type Violations []FieldError

func (v Violations) Error() string {
	if len(v) == 0 {
		return "no violations"
	}
	paths := make([]string, len(v))
	for i, fe := range v {
		paths[i] = fe.Path
	}
	return fmt.Sprintf("validation failed for %d field(s): %s", len(v), strings.Join(paths, ", "))
}

// Has reports whether the set contains a violation for the given path.
func (v Violations) Has(path string) bool {
	for _, fe := range v {
		if fe.Path == path {
			return true
		}
	}
	return false
}

// ValidateCase runs every field rule over the record and returns all
// violations found. The record never reaches the calculator unless the
// returned set is empty.
func ValidateCase(rec *models.CaseRecord) Violations {
	var v Violations
	validateCredit(&v, rec.Credit)
	validateBulletin(&v, rec.Identification.Bulletin)
	validateResidence(&v, rec.Addresses.Residence)
	validateDefacto(&v, rec.Addresses.Defacto)
	validateContact(&v, rec.ContactData)
	validatePersonal(&v, rec.PersonalData)
	return v
}

func validateCredit(v *Violations, credit models.CreditTerms) {
	if credit.ID == "" {
		add(v, "credit.id", KindRequired, "ID обязателен")
	} else if digits, ok := decimalForm(credit.ID); !ok {
		add(v, "credit.id", KindType, "ID должен состоять только из цифр")
	} else if len(digits) != 7 {
		add(v, "credit.id", KindLength, "ID должен состоять из 7 цифр")
	}

	if credit.Amount == "" {
		add(v, "credit.amount", KindRequired, "Сумма кредита обязательна")
	} else if amount, ok := parseAmount(credit.Amount); !ok {
		add(v, "credit.amount", KindType, "Сумма кредита должна состоять только из цифр")
	} else if amount < 1000 {
		add(v, "credit.amount", KindMinValue, "Минимум 1000")
	}

	if credit.IssuedDate == "" {
		add(v, "credit.issuedDate", KindRequired, "Дата контракта обязательна")
	} else if utf8.RuneCountInString(credit.IssuedDate) != 10 {
		add(v, "credit.issuedDate", KindLength, "Дата контракта должна состоять из 10 символов")
	}
}

func validateBulletin(v *Violations, b models.Bulletin) {
	if b.IDNP == "" {
		add(v, "identification.bulletin.idnp", KindRequired, "IDNP обязателен")
	} else if digits, ok := decimalForm(b.IDNP); !ok {
		add(v, "identification.bulletin.idnp", KindType, "IDNP должен состоять только из цифр")
	} else if len(digits) != 13 {
		add(v, "identification.bulletin.idnp", KindLength, "IDNP должен состоять 13 цифр")
	}

	if b.Series == "" {
		add(v, "identification.bulletin.series", KindRequired, "Серия обязательна")
	} else if utf8.RuneCountInString(b.Series) != 9 {
		add(v, "identification.bulletin.series", KindLength, "Серия должна состоять 9 цифр")
	}

	if b.IssuedAt == "" {
		add(v, "identification.bulletin.issuedAt", KindRequired, "Дата выдачи обязательна")
	} else if utf8.RuneCountInString(b.IssuedAt) != 10 {
		add(v, "identification.bulletin.issuedAt", KindLength, "Дата выдачи должна состоять из 10 символов")
	}

	if b.Expiration == "" {
		add(v, "identification.bulletin.expiration", KindRequired, "Срок действия обязателен")
	} else if utf8.RuneCountInString(b.Expiration) != 10 {
		add(v, "identification.bulletin.expiration", KindLength, "Срок действия должен состоять из 10 символов")
	}

	if utf8.RuneCountInString(b.IssuedBy) > 30 {
		add(v, "identification.bulletin.issuedBy", KindMax, "Максимум 30 символов")
	}
}

func validateResidence(v *Violations, a models.Address) {
	requiredBounded(v, "addresses.residence.region", a.Region, "Район обязателен", 3, 30)
	requiredBounded(v, "addresses.residence.city", a.City, "Город обязателен", 3, 30)
	requiredBounded(v, "addresses.residence.street", a.Street, "Улица обязательна", 3, 30)
	requiredBounded(v, "addresses.residence.number", a.Number, "Номер улицы обязателен", 1, 10)
}

// validateDefacto applies only upper bounds: the defacto block is
// optional in its entirety and must pass when every field is empty.
func validateDefacto(v *Violations, a models.Address) {
	boundedMax(v, "addresses.defacto.region", a.Region, 30)
	boundedMax(v, "addresses.defacto.city", a.City, 30)
	boundedMax(v, "addresses.defacto.street", a.Street, 30)
	boundedMax(v, "addresses.defacto.number", a.Number, 10)
}

func validateContact(v *Violations, c models.ContactData) {
	if c.MainNumber == "" {
		add(v, "contactData.mainNumber", KindRequired, "Телефон обязателен")
	} else if n := utf8.RuneCountInString(c.MainNumber); n < 9 {
		add(v, "contactData.mainNumber", KindMin, "Минимум 9 символов")
	} else if n > 11 {
		add(v, "contactData.mainNumber", KindMax, "Максимум 11 символов")
	}

	if c.Email != "" && !validEmail(c.Email) {
		add(v, "contactData.email", KindEmail, "Некорректный адрес электронной почты")
	}
}

func validatePersonal(v *Violations, p models.PersonalData) {
	if p.BirthDate == "" {
		add(v, "personalData.birthDate", KindRequired, "Дата рождения обязательна")
	} else if utf8.RuneCountInString(p.BirthDate) != 10 {
		add(v, "personalData.birthDate", KindLength, "Дата рождения должна состоять из 10 символов")
	}

	if p.FirstName == "" {
		add(v, "personalData.firstName", KindRequired, "Имя обязательно")
	} else if n := utf8.RuneCountInString(p.FirstName); n < 2 {
		add(v, "personalData.firstName", KindMin, "Минимум 2 символа")
	} else if n > 20 {
		add(v, "personalData.firstName", KindMax, "Максимум 20 символов")
	}

	if p.LastName == "" {
		add(v, "personalData.lastName", KindRequired, "Фамилия обязательна")
	} else if n := utf8.RuneCountInString(p.LastName); n < 2 {
		add(v, "personalData.lastName", KindMin, "Минимум 2 символа")
	} else if n > 20 {
		add(v, "personalData.lastName", KindMax, "Максимум 20 символов")
	}
}

func requiredBounded(v *Violations, path, val, requiredMsg string, min, max int) {
	if val == "" {
		add(v, path, KindRequired, requiredMsg)
		return
	}
	if n := utf8.RuneCountInString(val); n < min {
		if min == 1 {
			add(v, path, KindMin, "Минимум 1 символ")
		} else {
			add(v, path, KindMin, fmt.Sprintf("Минимум %d символа", min))
		}
	} else if n > max {
		add(v, path, KindMax, fmt.Sprintf("Максимум %d символов", max))
	}
}

func boundedMax(v *Violations, path, val string, max int) {
	if utf8.RuneCountInString(val) > max {
		add(v, path, KindMax, fmt.Sprintf("Максимум %d символов", max))
	}
}

func add(v *Violations, path string, kind Kind, msg string) {
	*v = append(*v, FieldError{Path: path, Kind: kind, Message: msg})
}

// parseAmount coerces the raw value to a finite number. ParseFloat
// accepts NaN and the infinities, which are not amounts and must fail
// the type check, not slip past the minimum comparison.
func parseAmount(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// decimalForm coerces the raw value to a number and returns its decimal
// string representation. The type check is a precondition of every
// digit-count test: non-numeric or non-finite input must fail here, and
// leading zeros collapse before counting.
func decimalForm(raw string) (string, bool) {
	f, ok := parseAmount(raw)
	if !ok {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject display-name forms; the field holds a bare address.
	return addr.Address == s
}
