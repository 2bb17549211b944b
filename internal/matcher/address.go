package matcher

import (
	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
)

// cityLookalikes end in "city" without meaning one
var cityLookalikes = []string{
	"capacity", "velocity", "ethnicity", "electricity", "publicity", "elasticity",
	"authenticity", "complexity", "simplicity", "opacity", "toxicity", "scarcity",
	"veracity", "viscosity", "specificity", "periodicity", "multiplicity", "felicity",
	"ferocity", "atrocity", "audacity", "tenacity", "capacities", "velocities",
	"reciprocity", "rhythmicity", "plasticity", "eccentricity", "domesticity",
}

// stateLookalikes are machine or workflow states, not provinces
var stateLookalikes = []string{
	"workflow", "order", "status", "machine", "session", "application", "app",
	"job", "task", "process", "flow", "transaction", "payment", "approval",
	"document", "ticket", "request", "run", "connection", "lifecycle", "statement",
	"statements", "current", "previous", "next", "initial", "final", "ui", "view",
}

func addressMatchers() []Matcher {
	return []Matcher{
		&Rule{
			ID:          "AddressLine2Matcher",
			Key:         keys.AddressLine2,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   3,
			StopSchemas: true,
			Exclude:     []string{"email", "ip", "mac", "web", "url", "type", "id"},
			Strong:      []string{"addressline2", "address2", "street2", "addr2", "streetline2", "secondaryaddress", "aptnumber", "apartmentnumber", "suitenumber", "unitnumber"},
			Combos:      [][]string{{"address", "line", "2"}, {"address", "2"}, {"street", "2"}},
			Tokens:      []string{"suite", "apartment", "apt"},
		},
		&Rule{
			ID:          "AddressLine1Matcher",
			Key:         keys.AddressLine1,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   5,
			StopSchemas: true,
			Exclude: []string{
				"email", "ip", "mac", "web", "url", "type", "id", "city", "state", "zip",
				"postal", "code", "country", "2", "3", "verified", "validated", "count",
				"hardware", "memory", "bitcoin", "wallet", "remote", "server", "host",
			},
			Strong: []string{
				"addressline1", "streetaddress", "address1", "street1", "addr1",
				"billingaddress", "shippingaddress", "mailingaddress", "homeaddress",
				"streetline1", "postaladdress", "workaddress", "deliveryaddress",
			},
			Combos: [][]string{{"address", "line"}, {"street", "address"}, {"street", "name"}},
			Tokens: []string{"street", "address", "addr", "addressline"},
		},
		&Rule{
			ID:          "CityMatcher",
			Key:         keys.AddressCity,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   3,
			StopSchemas: true,
			Exclude:     append([]string{"id", "code", "count", "population", "flag"}, cityLookalikes...),
			Strong:      []string{"billingcity", "shippingcity", "mailingcity", "homecity", "cityname", "townname", "birthcity"},
			Tokens:      []string{"city", "town", "municipality", "locality"},
			Contains:    []string{"city"},
		},
		&Rule{
			ID:          "StateCodeMatcher",
			Key:         keys.AddressStateCode,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   2,
			MaxLength:   3,
			StopSchemas: true,
			Exclude:     stateLookalikes,
			Strong:      []string{"statecode", "stateabbr", "stateabbreviation", "provincecode", "stateprovincecode", "statecd"},
			Combos:      [][]string{{"state", "code"}, {"state", "abbr"}, {"province", "code"}},
			Tokens:      []string{"province"},
			Context:     addressContext,
			GatedTokens: []string{"state"},
		},
		&Rule{
			ID:          "StateMatcher",
			Key:         keys.AddressState,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   4,
			StopSchemas: true,
			Exclude:     append([]string{"code", "abbr", "abbreviation", "id", "cd"}, stateLookalikes...),
			Strong:      []string{"stateprovince", "billingstate", "shippingstate", "mailingstate", "homestate", "statename", "provincename"},
			Combos:      [][]string{{"state", "province"}, {"state", "name"}},
			Tokens:      []string{"province", "prefecture"},
			Context:     addressContext,
			GatedTokens: []string{"state"},
		},
		&Rule{
			ID:          "PostalCodeMatcher",
			Key:         keys.AddressPostalCode,
			Rank:        PriorityDefault,
			Categories:  []sqltype.Category{sqltype.String, sqltype.Integer},
			MinLength:   5,
			StopSchemas: true,
			Exclude:     []string{"gzip", "unzip", "zipped", "zipfile", "file", "archive", "compressed"},
			Strong:      []string{"postalcode", "zipcode", "postcode", "zip", "postal"},
			Tokens:      []string{"zip", "postcode", "postal", "plz"},
		},
		&Rule{
			ID:          "CountryCodeAlpha2Matcher",
			Key:         keys.AddressCountryCode2,
			Rank:        PriorityHigh,
			Categories:  text,
			ExactLength: 2,
			Exclude:     []string{"phone", "dialing", "calling", "language"},
			Strong:      []string{"countrycode", "countryregioncode", "countryiso", "isocountry", "countryabbr", "iso2"},
			Combos:      [][]string{{"country", "code"}, {"country", "iso"}},
			Tokens:      []string{"country", "nation", "nationality"},
		},
		&Rule{
			ID:          "CountryCodeAlpha3Matcher",
			Key:         keys.AddressCountryCode3,
			Rank:        PriorityHigh,
			Categories:  text,
			ExactLength: 3,
			Exclude:     []string{"phone", "dialing", "calling", "language", "currency"},
			Strong:      []string{"countrycode", "countryregioncode", "countryiso", "isocountry", "countryabbr", "iso3"},
			Combos:      [][]string{{"country", "code"}, {"country", "iso"}},
			Tokens:      []string{"country", "nation", "nationality"},
		},
		&Rule{
			ID:         "CountryMatcher",
			Key:        keys.AddressCountry,
			Rank:       PriorityDefault,
			Categories: text,
			MinLength:  4,
			Exclude:    []string{"code", "iso", "abbr", "id", "count", "phone", "dialing", "calling", "cd"},
			Strong:     []string{"countryname", "countryregion", "billingcountry", "shippingcountry", "mailingcountry", "homecountry"},
			Tokens:     []string{"country", "nation", "nationality"},
		},
		&Rule{
			ID:          "CountyMatcher",
			Key:         keys.AddressCounty,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   3,
			StopSchemas: true,
			Exclude:     []string{"country", "countries", "id", "code", "fips"},
			Strong:      []string{"countyname"},
			Tokens:      []string{"county", "parish", "borough"},
			Contains:    []string{"county"},
		},
		&Rule{
			ID:         "RegionMatcher",
			Key:        keys.AddressRegion,
			Rank:       PriorityDefault,
			Categories: text,
			MinLength:  3,
			Exclude:    []string{"country", "code", "id", "state", "aws", "azure", "gcp", "cloud", "datacenter", "server", "memory"},
			Strong:     []string{"regionname", "salesregion", "geographicregion", "territoryname"},
			Tokens:     []string{"region", "territory"},
		},
		&Rule{
			ID:         "LatitudeMatcher",
			Key:        keys.Latitude,
			Rank:       PriorityDefault,
			Categories: []sqltype.Category{sqltype.Decimal, sqltype.String},
			Strong:     []string{"latitude"},
			Tokens:     []string{"lat", "latitude"},
		},
		&Rule{
			ID:         "LongitudeMatcher",
			Key:        keys.Longitude,
			Rank:       PriorityDefault,
			Categories: []sqltype.Category{sqltype.Decimal, sqltype.String},
			Strong:     []string{"longitude"},
			Tokens:     []string{"lon", "lng", "longitude"},
			Context:    []string{"location", "geo", "address", "place", "site", "coordinate", "coordinates", "point", "store"},
			GatedTokens: []string{
				"long",
			},
		},
	}
}
