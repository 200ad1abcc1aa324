package tax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode_ThreeField(t *testing.T) {
	c := ParseCode("EU-AT:vat:20")
	assert.Equal(t, []string{"EU", "AT"}, c.Geo)
	assert.Equal(t, "vat", c.Type())
	assert.Empty(t, c.Variant)
	assert.Equal(t, "20", c.Rate)
	assert.False(t, c.Reverse)
}

func TestParseCode_FourFieldWithVariant(t *testing.T) {
	c := ParseCode("EU-FR:vat:super-reduced:2.1")
	assert.Equal(t, []string{"EU", "FR"}, c.Geo)
	assert.Equal(t, "super-reduced", c.Variant)
	assert.Equal(t, "2.1", c.Rate)
}

func TestParseCode_ReverseCharge(t *testing.T) {
	c := ParseCode("EU:vat;r:0")
	assert.True(t, c.Reverse)
	assert.Equal(t, "vat", c.Type())
}

func TestParseCode_UniversalCode(t *testing.T) {
	c := ParseCode(":zero:0")
	assert.Equal(t, []string{""}, c.Geo)
	assert.Equal(t, "zero", c.Type())
	assert.Equal(t, "0", c.Rate)
}

func TestParseCode_BogusStringsNeverPanic(t *testing.T) {
	for _, bogus := range []string{"", ":", "::", ":::", "x", "a-b-c", ";;;", "a:b:c:d:e:f"} {
		c := ParseCode(bogus)
		require.NotEmpty(t, c.Geo, "input %q", bogus)
		require.NotEmpty(t, c.TypeParts, "input %q", bogus)
	}
}

func TestParseCode_Empty(t *testing.T) {
	c := ParseCode("")
	assert.Equal(t, []string{""}, c.Geo)
	assert.Equal(t, "", c.Type())
	assert.Equal(t, "", c.Rate)
	assert.False(t, c.Reverse)
}

func TestLabel_EUStandard(t *testing.T) {
	assert.Equal(t, "Austria VAT 20%", Label("EU-AT:vat:20"))
}

func TestLabel_NonISOCountryCodes(t *testing.T) {
	assert.Equal(t, "Greece VAT 24%", Label("EU-EL:vat:24"))
	assert.Equal(t, "Great Britain VAT 20%", Label("EU-UK:vat:20"))
}

func TestLabel_USState(t *testing.T) {
	assert.Equal(t, "California sales tax 7.25%", Label("US-CA:st:7.25"))
	assert.Equal(t, "New York use tax 4%", Label("US-NY:ut:4"))
}

func TestLabel_CanadaScoping(t *testing.T) {
	// CA is Canada at the top level, California under US.
	assert.Equal(t, "Canada GST 5%", Label("CA:gst:5"))
	assert.Equal(t, "Canada Quebec QST 9.975%", Label("CA-QC:qst:9.975"))
}

func TestLabel_ReverseChargeAndVariant(t *testing.T) {
	assert.Equal(t, "Austria VAT reverse charged (reduced) 10%", Label("EU-AT:vat;r:reduced:10"))
	assert.Equal(t, "VAT reverse charged 0%", Label("EU:vat;r:0"))
}

func TestLabel_UnknownGeographyOmitted(t *testing.T) {
	assert.Equal(t, "VAT 20%", Label("XX-YY:vat:20"))
}

func TestLabel_UniversalCodes(t *testing.T) {
	assert.Equal(t, "zero-rated 0%", Label(":zero:0"))
	assert.Equal(t, "tax exempt 0%", Label(":exempt:0"))
}

func TestLabel_UnknownTypeShownRaw(t *testing.T) {
	assert.Equal(t, "Austria excise 5%", Label("EU-AT:excise:5"))
}

func TestWithRate_PreservesFieldCount(t *testing.T) {
	assert.Equal(t, ":::10", WithRate(":::abc", "10"))
	assert.Equal(t, "::10", WithRate("::abc", "10"))
}

func TestWithRate_WellFormedCodes(t *testing.T) {
	assert.Equal(t, "EU-AT:vat:21", WithRate("EU-AT:vat:20", "21"))
	assert.Equal(t, "EU-AT:vat:reduced:12", WithRate("EU-AT:vat:reduced:10", "12"))
}

func TestWithRate_PadsShortInput(t *testing.T) {
	assert.Equal(t, "abc::10", WithRate("abc", "10"))
	assert.Equal(t, "::10", WithRate("", "10"))
}

func TestParseRate_Valid(t *testing.T) {
	d, err := ParseRate("9.975")
	require.NoError(t, err)
	assert.Equal(t, "9.975", d.String())
}

func TestParseRate_Invalid(t *testing.T) {
	for _, bad := range []string{"", "abc", "-1", "1.0001"} {
		_, err := ParseRate(bad)
		assert.ErrorIs(t, err, ErrInvalidTaxRate, "input %q", bad)
	}
}

func TestCatalogues_AllCodesParseAndLabel(t *testing.T) {
	codes := AllCodes()
	require.NotEmpty(t, codes)
	for _, code := range codes {
		c := ParseCode(code)
		rate := c.Rate
		require.NotEmpty(t, rate, "code %q has no rate", code)
		_, err := ParseRate(rate)
		require.NoError(t, err, "code %q", code)

		label := Label(code)
		require.NotEmpty(t, label, "code %q", code)
		assert.True(t, strings.HasSuffix(label, rate+"%"), "label %q for %q", label, code)
	}
}

func TestCatalogues_SpotCheckRates(t *testing.T) {
	codes := AllCodes()
	assert.Contains(t, codes, "EU-DE:vat:19")
	assert.Contains(t, codes, "EU-HU:vat:27")
	assert.Contains(t, codes, "EU-FR:vat:super-reduced:2.1")
	assert.Contains(t, codes, "EU:vat;r:0")
	assert.Contains(t, codes, "US-CA:st:7.25")
	assert.Contains(t, codes, "US-CA:ut:7.25")
	assert.Contains(t, codes, "AU:gst:10")
	assert.Contains(t, codes, "CA-ON:hst:13")
	assert.Contains(t, codes, ":zero:0")
}
