package models

// CaseRecord aggregates everything submitted for one document generation.
// It lives only for the duration of the request and is never persisted.
type CaseRecord struct {
	Credit         CreditTerms    `json:"credit"`
	Identification Identification `json:"identification"`
	Addresses      Addresses      `json:"addresses"`
	ContactData    ContactData    `json:"contactData"`
	PersonalData   PersonalData   `json:"personalData"`
}

// CreditTerms holds the credit fields as submitted by the form.
// Values stay raw strings; the validator owns type coercion.
type CreditTerms struct {
	ID         string `json:"id"`
	Amount     string `json:"amount"`
	IssuedDate string `json:"issuedDate"` // dd.MM.yyyy
}

// Identification wraps the identity documents of the client.
type Identification struct {
	Bulletin Bulletin `json:"bulletin"`
}

// Bulletin is the identity-document record.
type Bulletin struct {
	IDNP       string `json:"idnp"`
	Series     string `json:"series"`
	IssuedAt   string `json:"issuedAt"`
	Expiration string `json:"expiration"`
	IssuedBy   string `json:"issuedBy"`
}

// Addresses holds the registered and the actual-living addresses.
// Residence is mandatory, defacto may be entirely empty.
type Addresses struct {
	Residence Address `json:"residence"`
	Defacto   Address `json:"defacto"`
}

// Address is one postal address block.
type Address struct {
	Region         string `json:"region"`
	City           string `json:"city"`
	Street         string `json:"street"`
	Number         string `json:"number"`
	BuildingNumber string `json:"buildingNumber"`
	Apartment      string `json:"apartment"`
}

// ContactData holds client contact details.
type ContactData struct {
	MainNumber string `json:"mainNumber"`
	Email      string `json:"email"`
}

// PersonalData holds client personal details.
type PersonalData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"`
}
