package entities

// CustomerPayload is the customer-creation body sent to the billing
// provider. The provider owns the Customer entity; this service only
// resolves a reference to it (create-if-absent, else look up by document).
//
// Field names follow the Asaas /customers schema.
type CustomerPayload struct {
	Name                 string `json:"name"`
	CpfCnpj              string `json:"cpfCnpj"`
	Email                string `json:"email"`
	MobilePhone          string `json:"mobilePhone"`
	Address              string `json:"address"`
	AddressNumber        string `json:"addressNumber"`
	Complement           string `json:"complement"`
	Province             string `json:"province"`
	PostalCode           string `json:"postalCode"`
	ExternalReference    string `json:"externalReference"`
	NotificationDisabled bool   `json:"notificationDisabled"`
	Observations         string `json:"observations"`
}
