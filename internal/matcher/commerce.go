package matcher

import (
	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
)

func commerceMatchers() []Matcher {
	return []Matcher{
		&Rule{
			ID:         "ProductNameMatcher",
			Key:        keys.ProductName,
			Rank:       PriorityDefault,
			Categories: text,
			MinLength:  3,
			Exclude:    []string{"id", "code", "number", "no", "sku", "type", "count"},
			Strong:     []string{"productname", "itemname", "producttitle", "itemtitle", "merchandisename"},
			Combos:     [][]string{{"product", "name"}, {"item", "name"}, {"product", "title"}, {"item", "title"}},
		},
		&Rule{
			ID:         "ProductCodeMatcher",
			Key:        keys.ProductCode,
			Rank:       PriorityDefault,
			Categories: text,
			MinLength:  4,
			Exclude:    []string{"type", "description", "name", "count"},
			Strong: []string{
				"productnumber", "productcode", "itemcode", "itemnumber", "partnumber",
				"modelnumber", "serialnumber", "barcode", "stockcode", "catalognumber",
			},
			Combos: [][]string{{"product", "number"}, {"product", "code"}, {"item", "number"}, {"item", "code"}, {"part", "number"}, {"part", "no"}, {"model", "number"}, {"serial", "number"}},
			Tokens: []string{"sku", "upc", "ean", "gtin", "barcode", "isbn", "mpn"},
		},
		&Rule{
			ID:         "CompanyNameMatcher",
			Key:        keys.CompanyName,
			Rank:       PriorityDefault,
			Categories: text,
			MinLength:  3,
			Exclude:    []string{"id", "code", "type", "size", "count", "number", "no", "phone", "url", "email", "address", "city", "logo"},
			Strong: []string{
				"companyname", "businessname", "organizationname", "organisationname",
				"employer", "firmname", "vendorname", "suppliername", "storename",
				"manufacturername", "shippername", "carriername", "brandname", "legalentity",
			},
			Combos: [][]string{
				{"company", "name"}, {"business", "name"}, {"organization", "name"},
				{"vendor", "name"}, {"supplier", "name"}, {"store", "name"}, {"shipper", "name"},
			},
			Tokens: []string{"company", "employer", "organization", "organisation", "manufacturer"},
		},
		&Rule{
			ID:         "DepartmentNameMatcher",
			Key:        keys.DepartmentName,
			Rank:       PriorityDefault,
			Categories: text,
			MinLength:  3,
			Exclude:    []string{"id", "code", "number", "no", "head", "manager", "count", "type"},
			Strong:     []string{"departmentname", "deptname", "divisionname"},
			Combos:     [][]string{{"department", "name"}, {"dept", "name"}, {"division", "name"}},
			Tokens:     []string{"department", "dept", "division"},
		},
		&Rule{
			ID:          "CurrencyCodeMatcher",
			Key:         keys.CurrencyCode,
			Rank:        PriorityHigh,
			Categories:  text,
			ExactLength: 3,
			Exclude:     []string{"rate", "symbol"},
			Strong:      []string{"currencycode", "isocurrency", "currencyiso"},
			Combos:      [][]string{{"currency", "code"}, {"currency", "iso"}},
			Tokens:      []string{"currency", "ccy", "curr"},
		},
		&Rule{
			ID:         "PriceMatcher",
			Key:        keys.Price,
			Rank:       PriorityWeak,
			Categories: []sqltype.Category{sqltype.Decimal},
			Exclude:    []string{"id", "percent", "pct", "ratio", "rate", "factor", "weight", "tax", "count", "lat", "latitude", "lon", "lng", "longitude"},
			Strong:     []string{"listprice", "unitprice", "standardcost", "totaldue", "linetotal", "subtotal", "saleprice", "unitcost"},
			Tokens: []string{
				"price", "cost", "amount", "amt", "total", "subtotal", "fee", "charge",
				"freight", "salary", "wage", "balance", "payment", "revenue", "value", "budget",
			},
		},
		&Rule{
			ID:         "QuantityMatcher",
			Key:        keys.Quantity,
			Rank:       PriorityWeak,
			Categories: []sqltype.Category{sqltype.Integer},
			Exclude:    []string{"id", "type", "code"},
			Strong:     []string{"orderqty", "quantity", "qty", "unitsinstock", "unitsonorder", "reorderlevel", "reorderpoint", "safetystocklevel"},
			Tokens:     []string{"qty", "quantity", "units", "stock", "onhand"},
			Combos:     [][]string{{"item", "count"}, {"unit", "count"}},
		},
		&Rule{
			ID:         "ColorMatcher",
			Key:        keys.Color,
			Rank:       PriorityDefault,
			Categories: text,
			MinLength:  3,
			Exclude:    []string{"id", "scheme", "depth", "profile", "mode", "space", "count"},
			Strong:     []string{"color", "colour"},
			Tokens:     []string{"color", "colour", "hue"},
		},
		&Rule{
			ID:         "SizeMatcher",
			Key:        keys.Size,
			Rank:       PriorityDefault,
			Categories: text,
			MaxLength:  20,
			Exclude: []string{
				"unit", "measure", "font", "file", "page", "batch", "chunk", "buffer", "pool",
				"max", "min", "code", "disk", "memory", "heap", "window", "sample", "step",
				"company", "population", "bytes", "kb", "mb", "gb",
			},
			Tokens: []string{"size", "sizes"},
			Combos: [][]string{{"shoe", "size"}, {"dress", "size"}, {"garment", "size"}},
		},
		&Rule{
			ID:         "DescriptionMatcher",
			Key:        keys.Description,
			Rank:       PriorityWeak,
			Categories: text,
			MinLength:  20,
			Exclude:    []string{"id", "code", "type", "short"},
			Strong:     []string{"description", "summary", "biography", "abstract", "overview"},
			Tokens:     []string{"description", "desc", "summary", "details", "bio", "biography", "abstract", "overview", "body", "content"},
		},
		&Rule{
			ID:         "NotesMatcher",
			Key:        keys.Notes,
			Rank:       PriorityWeak,
			Categories: text,
			MinLength:  10,
			Exclude:    []string{"id", "count", "type", "flag"},
			Tokens:     []string{"notes", "note", "comment", "comments", "remarks", "remark", "memo", "instructions", "feedback", "review", "message"},
		},
	}
}
