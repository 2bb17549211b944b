package generator

// Reference sets for generators whose domain is a closed list.

type usState struct {
	name string
	code string
}

var usStates = []usState{
	{"Alabama", "AL"}, {"Alaska", "AK"}, {"Arizona", "AZ"}, {"Arkansas", "AR"},
	{"California", "CA"}, {"Colorado", "CO"}, {"Connecticut", "CT"}, {"Delaware", "DE"},
	{"Florida", "FL"}, {"Georgia", "GA"}, {"Hawaii", "HI"}, {"Idaho", "ID"},
	{"Illinois", "IL"}, {"Indiana", "IN"}, {"Iowa", "IA"}, {"Kansas", "KS"},
	{"Kentucky", "KY"}, {"Louisiana", "LA"}, {"Maine", "ME"}, {"Maryland", "MD"},
	{"Massachusetts", "MA"}, {"Michigan", "MI"}, {"Minnesota", "MN"}, {"Mississippi", "MS"},
	{"Missouri", "MO"}, {"Montana", "MT"}, {"Nebraska", "NE"}, {"Nevada", "NV"},
	{"New Hampshire", "NH"}, {"New Jersey", "NJ"}, {"New Mexico", "NM"}, {"New York", "NY"},
	{"North Carolina", "NC"}, {"North Dakota", "ND"}, {"Ohio", "OH"}, {"Oklahoma", "OK"},
	{"Oregon", "OR"}, {"Pennsylvania", "PA"}, {"Rhode Island", "RI"}, {"South Carolina", "SC"},
	{"South Dakota", "SD"}, {"Tennessee", "TN"}, {"Texas", "TX"}, {"Utah", "UT"},
	{"Vermont", "VT"}, {"Virginia", "VA"}, {"Washington", "WA"}, {"West Virginia", "WV"},
	{"Wisconsin", "WI"}, {"Wyoming", "WY"},
}

type country struct {
	name   string
	alpha2 string
	alpha3 string
}

var countries = []country{
	{"Argentina", "AR", "ARG"}, {"Australia", "AU", "AUS"}, {"Austria", "AT", "AUT"},
	{"Belgium", "BE", "BEL"}, {"Brazil", "BR", "BRA"}, {"Canada", "CA", "CAN"},
	{"Chile", "CL", "CHL"}, {"China", "CN", "CHN"}, {"Colombia", "CO", "COL"},
	{"Czechia", "CZ", "CZE"}, {"Denmark", "DK", "DNK"}, {"Egypt", "EG", "EGY"},
	{"Finland", "FI", "FIN"}, {"France", "FR", "FRA"}, {"Germany", "DE", "DEU"},
	{"Greece", "GR", "GRC"}, {"Hungary", "HU", "HUN"}, {"India", "IN", "IND"},
	{"Indonesia", "ID", "IDN"}, {"Ireland", "IE", "IRL"}, {"Israel", "IL", "ISR"},
	{"Italy", "IT", "ITA"}, {"Japan", "JP", "JPN"}, {"Kenya", "KE", "KEN"},
	{"Mexico", "MX", "MEX"}, {"Netherlands", "NL", "NLD"}, {"New Zealand", "NZ", "NZL"},
	{"Nigeria", "NG", "NGA"}, {"Norway", "NO", "NOR"}, {"Peru", "PE", "PER"},
	{"Philippines", "PH", "PHL"}, {"Poland", "PL", "POL"}, {"Portugal", "PT", "PRT"},
	{"Singapore", "SG", "SGP"}, {"South Africa", "ZA", "ZAF"}, {"South Korea", "KR", "KOR"},
	{"Spain", "ES", "ESP"}, {"Sweden", "SE", "SWE"}, {"Switzerland", "CH", "CHE"},
	{"Thailand", "TH", "THA"}, {"Turkey", "TR", "TUR"}, {"Ukraine", "UA", "UKR"},
	{"United Kingdom", "GB", "GBR"}, {"United States", "US", "USA"}, {"Vietnam", "VN", "VNM"},
}

var counties = []string{
	"Adams", "Allegheny", "Baldwin", "Barnstable", "Bergen", "Broward", "Bucks",
	"Clark", "Cook", "Cuyahoga", "Dallas", "DuPage", "Essex", "Fairfax", "Franklin",
	"Fulton", "Hamilton", "Harris", "Hennepin", "Jefferson", "King", "Lake",
	"Maricopa", "Middlesex", "Monroe", "Montgomery", "Orange", "Riverside",
	"Sacramento", "Suffolk", "Travis", "Wake", "Washington", "Wayne", "Worcester",
}

var regions = []string{
	"Northeast", "Southeast", "Midwest", "Southwest", "Northwest", "Central",
	"Pacific", "Mountain", "New England", "Great Lakes", "Gulf Coast", "Mid-Atlantic",
}

var nameTitles = []string{"Mr.", "Mrs.", "Ms.", "Miss", "Mx.", "Dr.", "Prof.", "Rev.", "Sr.", "Sra."}

var nameSuffixes = []string{"Jr.", "Sr.", "II", "III", "IV", "V", "PhD", "MD", "DDS", "Esq."}

var (
	genderCodes = []string{"M", "F"}
	genders     = []string{"Male", "Female", "Non-binary"}
)

var (
	maritalCodes    = []string{"S", "M", "D", "W"}
	maritalStatuses = []string{"Single", "Married", "Divorced", "Widowed", "Separated"}
)

var emailDomains = []string{"example.com", "example.net", "example.org", "mail.test", "inbox.test"}

var hostRoles = []string{"web", "app", "api", "db", "cache", "mail", "proxy", "worker", "batch", "build", "vpn", "files"}

var ianaTimeZones = []string{
	"UTC", "Europe/London", "Europe/Dublin", "Europe/Lisbon", "Europe/Paris", "Europe/Berlin",
	"Europe/Madrid", "Europe/Rome", "Europe/Amsterdam", "Europe/Stockholm", "Europe/Warsaw",
	"Europe/Athens", "Europe/Istanbul", "Europe/Moscow", "Africa/Cairo", "Africa/Lagos",
	"Africa/Johannesburg", "Africa/Nairobi", "Asia/Dubai", "Asia/Karachi", "Asia/Kolkata",
	"Asia/Dhaka", "Asia/Bangkok", "Asia/Jakarta", "Asia/Shanghai", "Asia/Hong_Kong",
	"Asia/Singapore", "Asia/Tokyo", "Asia/Seoul", "Australia/Perth", "Australia/Sydney",
	"Pacific/Auckland", "Pacific/Honolulu", "America/Anchorage", "America/Los_Angeles",
	"America/Denver", "America/Phoenix", "America/Chicago", "America/Mexico_City",
	"America/New_York", "America/Toronto", "America/Bogota", "America/Lima",
	"America/Santiago", "America/Sao_Paulo", "America/Argentina/Buenos_Aires",
}

var utcOffsets = []string{
	"-10:00", "-09:00", "-08:00", "-07:00", "-06:00", "-05:00", "-04:00", "-03:00",
	"+00:00", "+01:00", "+02:00", "+03:00", "+04:00", "+05:00", "+05:30", "+06:00",
	"+07:00", "+08:00", "+09:00", "+10:00", "+12:00",
}

// localeCodes are BCP 47 tags with a region
var localeCodes = []string{
	"en-US", "en-GB", "en-CA", "en-AU", "fr-FR", "fr-CA", "de-DE", "de-AT", "it-IT",
	"es-ES", "es-MX", "pt-BR", "pt-PT", "nl-NL", "sv-SE", "da-DK", "nb-NO", "fi-FI",
	"pl-PL", "cs-CZ", "hu-HU", "el-GR", "tr-TR", "ru-RU", "uk-UA", "ja-JP", "ko-KR",
	"zh-CN", "zh-TW", "hi-IN", "th-TH", "vi-VN", "id-ID", "ar-SA", "he-IL",
}

var cardTypes = []string{"Visa", "MasterCard", "American Express", "Discover", "Diners Club", "JCB"}

var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "NZD", "CNY", "HKD", "SGD",
	"SEK", "NOK", "DKK", "PLN", "CZK", "HUF", "MXN", "BRL", "ARS", "INR", "ZAR",
	"KRW", "TRY", "ILS",
}

var departments = []string{
	"engineering", "tool design", "sales", "marketing", "purchasing",
	"research and development", "production", "production control",
	"human resources", "finance", "information services", "document control",
	"quality assurance", "facilities and maintenance", "shipping and receiving",
	"executive", "customer support", "legal",
}

var (
	productAdjectives = []string{
		"Classic", "Compact", "Deluxe", "Ergonomic", "Lightweight", "Portable",
		"Premium", "Rugged", "Sleek", "Smart", "Ultra", "Vintage",
	}
	productMaterials = []string{
		"aluminum", "bamboo", "carbon", "ceramic", "cotton", "granite",
		"leather", "steel", "titanium", "wooden", "wool", "glass",
	}
	productNouns = []string{
		"backpack", "bottle", "chair", "clock", "crankset", "desk", "frame",
		"helmet", "jersey", "lamp", "pedal", "saddle", "speaker", "wheel",
	}
)

var sizes = []string{"XS", "S", "M", "L", "XL", "XXL", "38", "40", "42", "44", "46", "48", "50", "52"}

var jsonTags = struct {
	categories []string
	features   []string
}{
	categories: []string{"electronics", "clothing", "home", "books", "sports"},
	features:   []string{"new", "sale", "popular", "trending", "limited"},
}
