package entities

// StoreRegistration is one merchant submission after validation and
// sanitization. It exists only for the duration of a single intake.
//
// Document, Phone and PostalCode hold digits only; free-text fields are
// trimmed and HTML-escaped before they reach this struct.
type StoreRegistration struct {
	StoreName        string
	OwnerName        string
	Document         string
	Email            string
	Phone            string
	PostalCode       string
	Street           string
	Number           string
	Complement       string
	Neighborhood     string
	ShortDescription string
	LongDescription  string
	LogoURL          string
	StorefrontURL    string
}
