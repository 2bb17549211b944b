// Package keys names every generator-type-key a matcher can emit.
package keys

// person
const (
	FirstName     = "first_name"
	MiddleName    = "middle_name"
	LastName      = "last_name"
	FullName      = "full_name"
	NameTitle     = "name_title"
	NameSuffix    = "name_suffix"
	Gender        = "gender"
	BirthDate     = "birth_date"
	NationalID    = "national_id"
	Username      = "username"
	JobTitle      = "job_title"
	MaritalStatus = "marital_status"
	Age           = "age"
)

// contact and internet
const (
	Email        = "email"
	PhoneNumber  = "phone_number"
	URL          = "url"
	IPAddress    = "ip_address"
	MACAddress   = "mac_address"
	Hostname     = "hostname"
	PasswordHash = "password_hash"
)

// locale
const (
	TimeZone = "time_zone"
	Locale   = "locale"
	Language = "language"
)

// address and geography
const (
	AddressLine1        = "address_line1"
	AddressLine2        = "address_line2"
	AddressCity         = "address_city"
	AddressState        = "address_state"
	AddressStateCode    = "address_state_code"
	AddressPostalCode   = "address_postal_code"
	AddressCountry      = "address_country"
	AddressCountryCode2 = "address_country_code2"
	AddressCountryCode3 = "address_country_code3"
	AddressCounty       = "address_county"
	AddressRegion       = "address_region"
	Latitude            = "latitude"
	Longitude           = "longitude"
)

// payment
const (
	CreditCardNumber  = "credit_card_number"
	CreditCardType    = "credit_card_type"
	CreditCardExpiry  = "credit_card_expiry"
	CreditCardCVV     = "credit_card_cvv"
	BankAccountNumber = "bank_account_number"
	RoutingNumber     = "routing_number"
	TaxID             = "tax_id"
)

// commerce
const (
	ProductName    = "product_name"
	ProductCode    = "product_code"
	CompanyName    = "company_name"
	DepartmentName = "department_name"
	CurrencyCode   = "currency_code"
	Price          = "price"
	Quantity       = "quantity"
	Color          = "color"
	Size           = "size"
	Description    = "description"
	Notes          = "notes"
)

// temporal and type-driven
const (
	AuditTimestamp = "audit_timestamp"
	Year           = "year"
	EnumValue      = "enum_value"
	SetValue       = "set_value"
)

// fallbacks, one per SQL category
const (
	AnyString    = "any_string"
	AnyInteger   = "any_integer"
	AnyDecimal   = "any_decimal"
	AnyDate      = "any_date"
	AnyTime      = "any_time"
	AnyBinary    = "any_binary"
	AnyBoolean   = "any_boolean"
	AnyGUID      = "any_guid"
	AnySpatial   = "any_spatial"
	AnyJSON      = "any_json"
	AnyXML       = "any_xml"
	AnyHierarchy = "any_hierarchy"
	AnyEnum      = "any_enum"
	AnySet       = "any_set"
	AnyValue     = "any_value"
)
