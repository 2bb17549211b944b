package matcher

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/pkg/models"
)

func column(schema, table, name, dataType string, maxLength int64) (models.ColumnMetadata, models.TableMetadata) {
	col := models.ColumnMetadata{
		Schema:    schema,
		Table:     table,
		Name:      name,
		DataType:  dataType,
		MaxLength: maxLength,
	}
	return col, models.TableMetadata{Schema: schema, Name: table, Columns: []models.ColumnMetadata{col}}
}

// firstKey evaluates the default bank the way the classifier does
func firstKey(t *testing.T, col models.ColumnMetadata, table models.TableMetadata) string {
	t.Helper()
	bank := DefaultBank()
	sort.SliceStable(bank, func(i, j int) bool { return bank[i].Priority() > bank[j].Priority() })
	for _, m := range bank {
		if key, ok := Resolve(m, col, table); ok {
			return key
		}
	}
	t.Fatalf("no matcher accepted %s", col.QualifiedName())
	return ""
}

func findRule(t *testing.T, id string) Matcher {
	t.Helper()
	for _, m := range DefaultBank() {
		if m.Name() == id {
			return m
		}
	}
	t.Fatalf("matcher %s not registered", id)
	return nil
}

func TestDefaultBankClassification(t *testing.T) {
	tests := []struct {
		schema, table, name, dataType string
		maxLength                     int64
		want                          string
	}{
		{"dbo", "orders", "city", "nvarchar", 50, keys.AddressCity},
		{"Person", "Address", "City", "nvarchar", 30, keys.AddressCity},
		{"Sales", "Customer", "BillingCity", "varchar", 60, keys.AddressCity},
		{"Person", "Address", "CountryRegion", "nvarchar", 50, keys.AddressCountry},
		{"Person", "CountryRegion", "CountryRegionCode", "nvarchar", 3, keys.AddressCountryCode3},
		{"dbo", "Customer", "CountryCode", "char", 2, keys.AddressCountryCode2},
		{"Production", "Product", "Name", "nvarchar", 50, keys.ProductName},
		{"Person", "Person", "Name", "nvarchar", 50, keys.FullName},
		{"dbo", "Widget", "Name", "nvarchar", 50, keys.AnyString},
		{"Person", "StateProvince", "[Name]", "nvarchar", 50, keys.AddressState},
		{"Person", "CountryRegion", "Name", "nvarchar", 50, keys.AddressCountry},
		{"Person", "Person", "FirstName", "nvarchar", 50, keys.FirstName},
		{"Person", "Person", "LastName", "nvarchar", 50, keys.LastName},
		{"Person", "Person", "MiddleName", "nvarchar", 50, keys.MiddleName},
		{"Person", "Person", "Title", "nvarchar", 8, keys.NameTitle},
		{"Person", "Person", "Suffix", "nvarchar", 10, keys.NameSuffix},
		{"HumanResources", "Employee", "JobTitle", "nvarchar", 50, keys.JobTitle},
		{"HumanResources", "Employee", "BirthDate", "date", 0, keys.BirthDate},
		{"HumanResources", "Employee", "Gender", "nchar", 1, keys.Gender},
		{"HumanResources", "Employee", "MaritalStatus", "nchar", 1, keys.MaritalStatus},
		{"HumanResources", "Employee", "NationalIDNumber", "nvarchar", 15, keys.NationalID},
		{"dbo", "Users", "SSN", "char", 11, keys.NationalID},
		{"dbo", "Users", "user_name", "varchar", 40, keys.Username},
		{"Person", "EmailAddress", "EmailAddress", "nvarchar", 50, keys.Email},
		{"dbo", "Vendor", "CompanyPhone", "varchar", 25, keys.PhoneNumber},
		{"dbo", "Vendor", "CompanyName", "varchar", 80, keys.CompanyName},
		{"dbo", "Vendor", "WebsiteURL", "nvarchar", 255, keys.URL},
		{"dbo", "Sessions", "ip_address", "varchar", 45, keys.IPAddress},
		{"public", "sessions", "client_addr", "inet", 0, keys.IPAddress},
		{"Person", "Password", "PasswordHash", "varchar", 128, keys.PasswordHash},
		{"Person", "Address", "AddressLine1", "nvarchar", 60, keys.AddressLine1},
		{"Person", "Address", "AddressLine2", "nvarchar", 60, keys.AddressLine2},
		{"Person", "Address", "PostalCode", "nvarchar", 15, keys.AddressPostalCode},
		{"dbo", "Customer", "State", "nvarchar", 50, keys.AddressState},
		{"dbo", "Customer", "State", "char", 2, keys.AddressStateCode},
		{"dbo", "Orders", "OrderState", "nvarchar", 50, keys.AnyString},
		{"dbo", "Workflow", "State", "nvarchar", 50, keys.AnyString},
		{"dbo", "Stores", "latitude", "decimal", 0, keys.Latitude},
		{"dbo", "Stores", "longitude", "decimal", 0, keys.Longitude},
		{"Sales", "CreditCard", "CardNumber", "nvarchar", 25, keys.CreditCardNumber},
		{"Sales", "CreditCard", "CardType", "nvarchar", 50, keys.CreditCardType},
		{"Sales", "CreditCard", "ExpMonth", "tinyint", 0, keys.CreditCardExpiry},
		{"Sales", "CreditCard", "ExpYear", "tinyint", 0, keys.CreditCardExpiry},
		{"Production", "Product", "ModelYear", "tinyint", 0, keys.Year},
		{"Sales", "Payment", "cvv", "char", 3, keys.CreditCardCVV},
		{"dbo", "Accounts", "iban", "varchar", 34, keys.BankAccountNumber},
		{"Production", "Product", "ProductNumber", "nvarchar", 25, keys.ProductCode},
		{"Production", "Product", "Color", "nvarchar", 15, keys.Color},
		{"Production", "Product", "Size", "nvarchar", 5, keys.Size},
		{"Production", "Product", "ListPrice", "money", 0, keys.Price},
		{"Sales", "SalesOrderDetail", "OrderQty", "smallint", 0, keys.Quantity},
		{"Sales", "Currency", "CurrencyCode", "nchar", 3, keys.CurrencyCode},
		{"HumanResources", "Department", "Name", "nvarchar", 50, keys.DepartmentName},
		{"Production", "ProductDescription", "Description", "nvarchar", 400, keys.Description},
		{"dbo", "Tickets", "notes", "text", models.Unbounded, keys.Notes},
		{"Person", "Person", "ModifiedDate", "datetime", 0, keys.AuditTimestamp},
		{"Person", "Person", "rowguid", "uniqueidentifier", 0, keys.AnyGUID},
		{"dbo", "films", "release_year", "year", 0, keys.Year},
		{"dbo", "Users", "TimeZone", "nvarchar", 50, keys.TimeZone},
		{"dbo", "Stores", "tz", "varchar", 40, keys.TimeZone},
		{"dbo", "Users", "TimeZoneId", "int", 0, keys.AnyInteger},
		{"dbo", "Users", "Locale", "varchar", 10, keys.Locale},
		{"dbo", "Users", "LanguageTag", "varchar", 10, keys.Locale},
		{"dbo", "Users", "PreferredLanguage", "nvarchar", 30, keys.Language},
		{"dbo", "Users", "LanguageCode", "char", 2, keys.Language},
		{"dbo", "Servers", "HostName", "varchar", 255, keys.Hostname},
		{"dbo", "Deployments", "server", "varchar", 100, keys.Hostname},
		{"dbo", "Deployments", "HostIP", "varchar", 45, keys.IPAddress},
		{"dbo", "Vendor", "TaxID", "varchar", 20, keys.TaxID},
		{"dbo", "Vendor", "EIN", "char", 10, keys.TaxID},
		{"dbo", "Vendor", "VATNumber", "varchar", 15, keys.TaxID},
		{"Sales", "SalesTaxRate", "TaxRate", "smallmoney", 0, keys.AnyDecimal},
		{"dbo", "Warehouse", "Capacity", "nvarchar", 20, keys.AnyString},
		{"dbo", "Classes", "ClassName", "nvarchar", 50, keys.AnyString},
		{"dbo", "Widget", "Payload", "sql_variant", 0, keys.AnyValue},
		{"dbo", "Widget", "Thing", "", 0, keys.AnyValue},
	}

	for _, tt := range tests {
		t.Run(tt.table+"."+tt.name+"/"+tt.dataType, func(t *testing.T) {
			col, table := column(tt.schema, tt.table, tt.name, tt.dataType, tt.maxLength)
			assert.Equal(t, tt.want, firstKey(t, col, table))
		})
	}
}

func TestTypeDrivenMatchers(t *testing.T) {
	col, table := column("dbo", "shop", "size", "enum", 0)
	col.ColumnType = "enum('s','m','l')"
	assert.Equal(t, keys.EnumValue, firstKey(t, col, table))

	col.DataType, col.ColumnType = "set", "set('red','green')"
	assert.Equal(t, keys.SetValue, firstKey(t, col, table))

	// without a member list there is nothing to pick from
	col.DataType, col.ColumnType = "enum", "enum"
	assert.Equal(t, keys.AnyEnum, firstKey(t, col, table))
}

func TestCountryRegionIsNotCountyOrRegion(t *testing.T) {
	col, table := column("Person", "Address", "CountryRegion", "nvarchar", 50)

	assert.False(t, findRule(t, "CountyMatcher").Matches(col, table))
	assert.False(t, findRule(t, "RegionMatcher").Matches(col, table))
	assert.True(t, findRule(t, "CountryMatcher").Matches(col, table))
}

func TestLookalikesInsideOneToken(t *testing.T) {
	city := findRule(t, "CityMatcher")

	for _, name := range []string{"Capacityinfo", "VELOCITYKMH", "electricity_usage", "capacity"} {
		col, table := column("dbo", "Warehouse", name, "nvarchar", 50)
		assert.False(t, city.Matches(col, table), name)
	}

	for _, name := range []string{"HomeCity", "shipcity", "CityName"} {
		col, table := column("dbo", "Customer", name, "nvarchar", 50)
		assert.True(t, city.Matches(col, table), name)
	}
}

func TestNameInPluralTables(t *testing.T) {
	tests := []struct {
		table string
		want  string
	}{
		{"Countries", keys.AddressCountry},
		{"Cities", keys.AddressCity},
		{"Municipalities", keys.AddressCity},
		{"Counties", keys.AddressCounty},
		{"Parishes", keys.AddressCounty},
		{"Territories", keys.AddressRegion},
		{"Companies", keys.CompanyName},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			col, table := column("dbo", tt.table, "Name", "nvarchar", 50)
			assert.Equal(t, tt.want, firstKey(t, col, table))
		})
	}
}

func TestLengthGates(t *testing.T) {
	code2 := findRule(t, "CountryCodeAlpha2Matcher")

	col, table := column("dbo", "Customer", "CountryCode", "char", 2)
	assert.True(t, code2.Matches(col, table))

	col, table = column("dbo", "Customer", "CountryCode", "char", 3)
	assert.False(t, code2.Matches(col, table))

	title := findRule(t, "NameTitleMatcher")
	col, table = column("Person", "Person", "Title", "nvarchar", models.Unbounded)
	assert.False(t, title.Matches(col, table), "unbounded columns fail a max length gate")

	email := findRule(t, "EmailMatcher")
	col, table = column("dbo", "Users", "Email", "varchar", 3)
	assert.False(t, email.Matches(col, table))

	// length gates only apply to string columns
	age := findRule(t, "AgeMatcher")
	col, table = column("dbo", "Patients", "Age", "int", 0)
	assert.True(t, age.Matches(col, table))
}

func TestTypeGate(t *testing.T) {
	email := findRule(t, "EmailMatcher")
	col, table := column("dbo", "Users", "Email", "int", 0)
	assert.False(t, email.Matches(col, table))

	birth := findRule(t, "BirthDateMatcher")
	col, table = column("dbo", "Users", "BirthDate", "varchar", 20)
	assert.False(t, birth.Matches(col, table))
}

func TestStopSchemas(t *testing.T) {
	city := findRule(t, "CityMatcher")

	col, table := column("dbo", "Customer", "City", "nvarchar", 50)
	assert.True(t, city.Matches(col, table))

	col, table = column("Logging", "Customer", "City", "nvarchar", 50)
	assert.False(t, city.Matches(col, table))
}

func TestExclusionBeatsStrongMatch(t *testing.T) {
	phone := findRule(t, "PhoneNumberMatcher")

	col, table := column("Production", "Product", "HeadphoneModel", "nvarchar", 50)
	assert.False(t, phone.Matches(col, table))

	col, table = column("dbo", "Contacts", "MobilePhone", "nvarchar", 20)
	assert.True(t, phone.Matches(col, table))
}

func TestSpecialNameMatcher(t *testing.T) {
	m := NewSpecialNameMatcher()

	col, table := column("Production", "Product", "Name", "nvarchar", 50)
	key, ok := m.Resolve(col, table)
	require.True(t, ok)
	assert.Equal(t, keys.ProductName, key)

	col, table = column("Person", "Person", "NAME", "nvarchar", 50)
	key, ok = m.Resolve(col, table)
	require.True(t, ok)
	assert.Equal(t, keys.FullName, key)

	for _, name := range []string{"FirstName", "NameStyle", "name_1"} {
		col, table = column("Person", "Person", name, "nvarchar", 50)
		_, ok = m.Resolve(col, table)
		assert.False(t, ok, name)
	}

	col, table = column("dbo", "Widget", "Name", "nvarchar", 50)
	_, ok = m.Resolve(col, table)
	assert.False(t, ok)
	assert.False(t, m.Matches(col, table))

	col, table = column("Production", "Product", "Name", "int", 0)
	_, ok = m.Resolve(col, table)
	assert.False(t, ok, "non-string columns are ignored")

	assert.Equal(t, keys.ProductName, m.GeneratorKey())
	assert.Contains(t, m.GeneratorKeys(), keys.AddressCounty)
}

func TestFallbacksAreTotal(t *testing.T) {
	types := []string{
		"nvarchar", "int", "decimal", "datetime", "time", "varbinary", "bit",
		"uniqueidentifier", "geography", "json", "xml", "hierarchyid", "enum",
		"set", "sql_variant", "", "made up type",
	}
	names := []string{"", "x", "Name", "CountryRegion", "zzz_123"}
	tables := []models.TableMetadata{{}, {Schema: "sys", Name: "objects"}, {Name: "Person"}}

	for _, dt := range types {
		for _, name := range names {
			for _, table := range tables {
				col := models.ColumnMetadata{Name: name, DataType: dt}
				assert.NotEmpty(t, firstKey(t, col, table))
			}
		}
	}
}

func TestZeroValueMetadataDoesNotPanic(t *testing.T) {
	for _, m := range DefaultBank() {
		assert.NotPanics(t, func() {
			Resolve(m, models.ColumnMetadata{}, models.TableMetadata{})
		}, m.Name())
	}
}

func TestBankNamesAndKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range DefaultBank() {
		assert.False(t, seen[m.Name()], "duplicate matcher name %s", m.Name())
		seen[m.Name()] = true
		for _, key := range KeysOf(m) {
			assert.NotEmpty(t, key)
		}
	}
	assert.Equal(t, keys.AnyValue, FallbackKey(0))
}
