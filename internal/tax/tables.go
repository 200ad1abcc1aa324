package tax

// euVATSchedule is the EU VAT rate schedule, one row per member state plus
// Great Britain. Snapshot of the published 2024 rates.
var euVATSchedule = []struct {
	country      string
	standard     string
	reduced      []string
	superReduced string
	parking      string
}{
	{country: "AT", standard: "20", reduced: []string{"10", "13"}, parking: "13"},
	{country: "BE", standard: "21", reduced: []string{"6", "12"}, parking: "12"},
	{country: "BG", standard: "20", reduced: []string{"9"}},
	{country: "CY", standard: "19", reduced: []string{"5", "9"}},
	{country: "CZ", standard: "21", reduced: []string{"12"}},
	{country: "DE", standard: "19", reduced: []string{"7"}},
	{country: "DK", standard: "25"},
	{country: "EE", standard: "22", reduced: []string{"9"}},
	{country: "EL", standard: "24", reduced: []string{"6", "13"}},
	{country: "ES", standard: "21", reduced: []string{"10"}, superReduced: "4"},
	{country: "FI", standard: "25.5", reduced: []string{"10", "14"}},
	{country: "FR", standard: "20", reduced: []string{"5.5", "10"}, superReduced: "2.1"},
	{country: "HR", standard: "25", reduced: []string{"5", "13"}},
	{country: "HU", standard: "27", reduced: []string{"5", "18"}},
	{country: "IE", standard: "23", reduced: []string{"9", "13.5"}, superReduced: "4.8", parking: "13.5"},
	{country: "IT", standard: "22", reduced: []string{"5", "10"}, superReduced: "4"},
	{country: "LT", standard: "21", reduced: []string{"5", "9"}},
	{country: "LU", standard: "17", reduced: []string{"8", "14"}, superReduced: "3", parking: "14"},
	{country: "LV", standard: "21", reduced: []string{"5", "12"}},
	{country: "MT", standard: "18", reduced: []string{"5", "7"}},
	{country: "NL", standard: "21", reduced: []string{"9"}},
	{country: "PL", standard: "23", reduced: []string{"5", "8"}},
	{country: "PT", standard: "23", reduced: []string{"6", "13"}, parking: "13"},
	{country: "RO", standard: "19", reduced: []string{"5", "9"}},
	{country: "SE", standard: "25", reduced: []string{"6", "12"}},
	{country: "SI", standard: "22", reduced: []string{"5", "9.5"}},
	{country: "SK", standard: "20", reduced: []string{"10"}},
	{country: "UK", standard: "20", reduced: []string{"5"}},
}

// EUVATCodes returns the EU VAT catalogue: per-country standard and tiered
// codes plus the universal reverse-charge code.
func EUVATCodes() []string {
	var codes []string
	for _, row := range euVATSchedule {
		geo := "EU-" + row.country
		codes = append(codes, geo+":vat:"+row.standard)
		for _, r := range row.reduced {
			codes = append(codes, geo+":vat:reduced:"+r)
		}
		if row.superReduced != "" {
			codes = append(codes, geo+":vat:super-reduced:"+row.superReduced)
		}
		if row.parking != "" {
			codes = append(codes, geo+":vat:parking:"+row.parking)
		}
	}
	codes = append(codes, "EU:vat;r:0")
	return codes
}

// usSalesTaxSchedule lists the state-level sales tax rates. States with no
// state sales tax (AK, DE, MT, NH, OR) are absent.
var usSalesTaxSchedule = []struct {
	state string
	rate  string
}{
	{"AL", "4"},
	{"AR", "6.5"},
	{"AZ", "5.6"},
	{"CA", "7.25"},
	{"CO", "2.9"},
	{"CT", "6.35"},
	{"DC", "6"},
	{"FL", "6"},
	{"GA", "4"},
	{"HI", "4"},
	{"IA", "6"},
	{"ID", "6"},
	{"IL", "6.25"},
	{"IN", "7"},
	{"KS", "6.5"},
	{"KY", "6"},
	{"LA", "4.45"},
	{"MA", "6.25"},
	{"MD", "6"},
	{"ME", "5.5"},
	{"MI", "6"},
	{"MN", "6.875"},
	{"MO", "4.225"},
	{"MS", "7"},
	{"NC", "4.75"},
	{"ND", "5"},
	{"NE", "5.5"},
	{"NJ", "6.625"},
	{"NM", "4.875"},
	{"NV", "6.85"},
	{"NY", "4"},
	{"OH", "5.75"},
	{"OK", "4.5"},
	{"PA", "6"},
	{"RI", "7"},
	{"SC", "6"},
	{"SD", "4.2"},
	{"TN", "7"},
	{"TX", "6.25"},
	{"UT", "4.85"},
	{"VA", "4.3"},
	{"VT", "6"},
	{"WA", "6.5"},
	{"WI", "5"},
	{"WV", "6"},
	{"WY", "4"},
}

// USSalesTaxCodes returns sales and use tax codes for every state with a
// state-level rate.
func USSalesTaxCodes() []string {
	var codes []string
	for _, row := range usSalesTaxSchedule {
		geo := "US-" + row.state
		codes = append(codes, geo+":st:"+row.rate)
		codes = append(codes, geo+":ut:"+row.rate)
	}
	return codes
}

// OtherCodes returns the flat catalogue outside the EU and US schedules:
// AU and CA federal and provincial codes, plus the universal zero-rate and
// exempt codes.
func OtherCodes() []string {
	return []string{
		"AU:gst:10",
		"CA:gst:5",
		"CA-BC:pst:7",
		"CA-MB:pst:7",
		"CA-NB:hst:15",
		"CA-NL:hst:15",
		"CA-NS:hst:15",
		"CA-ON:hst:13",
		"CA-PE:hst:15",
		"CA-QC:qst:9.975",
		"CA-SK:pst:6",
		":zero:0",
		":exempt:0",
	}
}

// AllCodes returns every catalogued tax code.
func AllCodes() []string {
	codes := EUVATCodes()
	codes = append(codes, USSalesTaxCodes()...)
	codes = append(codes, OtherCodes()...)
	return codes
}
