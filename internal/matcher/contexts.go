package matcher

// Table and schema words that make an ambiguous column name meaningful.
var (
	personContext = []string{
		"person", "people", "customer", "client", "contact", "employee", "user",
		"member", "patient", "student", "staff", "author", "individual", "owner",
		"guest", "passenger", "traveler", "applicant", "candidate", "subscriber",
		"account", "profile", "party", "recipient", "teacher", "doctor",
	}

	honorificContext = []string{
		"person", "people", "customer", "client", "contact", "member", "patient",
		"student", "guest", "passenger", "individual", "subscriber", "recipient",
	}

	employeeContext = []string{
		"employee", "staff", "worker", "personnel", "job", "position", "hr",
		"humanresource", "humanresources", "emp", "payroll",
	}

	addressContext = []string{
		"address", "addresses", "location", "customer", "person", "people",
		"contact", "employee", "user", "member", "vendor", "store", "shipping",
		"billing", "client", "patient", "supplier", "site", "branch", "office",
		"warehouse", "shipment", "mailing", "residence", "facility", "venue",
		"student", "account", "profile", "company", "organization", "companies",
		"facilities", "branches",
	}

	productContext = []string{
		"product", "item", "sku", "merchandise", "goods", "article", "catalog",
		"part", "model", "offering", "listing",
	}

	companyContext = []string{
		"company", "vendor", "supplier", "store", "business", "organization",
		"organisation", "manufacturer", "shipper", "carrier", "firm", "employer",
		"partner", "retailer", "distributor", "companies", "businesses",
	}

	departmentContext = []string{"department", "dept", "division", "unit", "team"}

	// -ies and -es plurals are spelled out, ContextTokens only strips a trailing s
	countryContext = []string{"country", "countries", "nation", "countryregion"}
	stateContext   = []string{"state", "province", "stateprovince", "prefecture"}
	regionContext  = []string{"region", "territory", "territories", "zone"}
	cityContext    = []string{"city", "cities", "town", "municipality", "municipalities"}
	countyContext  = []string{"county", "counties", "parish", "parishes", "borough"}
)
