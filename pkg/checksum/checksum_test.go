package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/checksum"
)

func TestLuhn(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers", func(t *testing.T) {
		valid := []string{
			"4111 1111 1111 1111",
			"4242424242424242",
			"79927398713",
			"4111-1111-1111-1111",
		}
		for _, v := range valid {
			assert.True(t, checksum.Luhn(v), "should pass Luhn: %q", v)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		invalid := []string{
			"4111 1111 1111 1112",
			"1234567812345678",
			"",
			"   ",
			"4111a11111111111",
		}
		for _, v := range invalid {
			assert.False(t, checksum.Luhn(v), "should fail Luhn: %q", v)
		}
	})
}

func TestISBN(t *testing.T) {
	t.Parallel()

	t.Run("isbn-10", func(t *testing.T) {
		assert.True(t, checksum.ISBN("0-306-40615-2"))
		assert.True(t, checksum.ISBN("0306406152"))
		assert.True(t, checksum.ISBN("097522980X"), "X check character represents 10")
		assert.False(t, checksum.ISBN("0-306-40615-1"))
		assert.False(t, checksum.ISBN("030640615X"), "wrong check character")
	})

	t.Run("isbn-13", func(t *testing.T) {
		assert.True(t, checksum.ISBN("978-3-16-148410-0"))
		assert.True(t, checksum.ISBN("9780306406157"))
		assert.False(t, checksum.ISBN("978-3-16-148410-1"))
	})

	t.Run("malformed", func(t *testing.T) {
		assert.False(t, checksum.ISBN(""))
		assert.False(t, checksum.ISBN("12345"))
		assert.False(t, checksum.ISBN("97803064061570"), "14 digits")
		assert.False(t, checksum.ISBN("978030640615a"))
	})
}

func TestISSN(t *testing.T) {
	t.Parallel()

	assert.True(t, checksum.ISSN("0378-5955"))
	assert.True(t, checksum.ISSN("2049-3630"))
	assert.True(t, checksum.ISSN("03785955"))
	assert.False(t, checksum.ISSN("0378-5954"))
	assert.False(t, checksum.ISSN("0378595"))
	assert.False(t, checksum.ISSN("0378-595a"))
	assert.False(t, checksum.ISSN(""))
}

func TestIBAN(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		valid := []string{
			"GB82WEST12345698765432",
			"GB82 WEST 1234 5698 7654 32",
			"DE89370400440532013000",
			"gb82west12345698765432",
		}
		for _, v := range valid {
			assert.True(t, checksum.IBAN(v), "should pass IBAN: %q", v)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		invalid := []string{
			"GB82WEST12345698765431",
			"DE89370400440532013001",
			"",
			"GB82",
			"GB82WEST1234569876543212345678901234567890",
			"G!82WEST12345698765432",
			"1282WEST12345698765432",
		}
		for _, v := range invalid {
			assert.False(t, checksum.IBAN(v), "should fail IBAN: %q", v)
		}
	})
}

func TestEAN13(t *testing.T) {
	t.Parallel()

	assert.True(t, checksum.EAN13("4006381333931"))
	assert.True(t, checksum.EAN13("9780306406157"))
	assert.False(t, checksum.EAN13("4006381333930"))
	assert.False(t, checksum.EAN13("400638133393"), "12 digits")
	assert.False(t, checksum.EAN13("400638133393a"))
	assert.False(t, checksum.EAN13(""))
}

func TestUPCA(t *testing.T) {
	t.Parallel()

	assert.True(t, checksum.UPCA("036000291452"))
	assert.True(t, checksum.UPCA("012345678905"))
	assert.False(t, checksum.UPCA("036000291453"))
	assert.False(t, checksum.UPCA("03600029145"), "11 digits")
	assert.False(t, checksum.UPCA("03600029145a"))
	assert.False(t, checksum.UPCA(""))
}

func TestVIN(t *testing.T) {
	t.Parallel()

	assert.True(t, checksum.VIN("1HGCM82633A004352"))
	assert.True(t, checksum.VIN("11111111111111111"))
	assert.True(t, checksum.VIN("1hgcm82633a004352"), "case-insensitive")
	assert.False(t, checksum.VIN("1HGCM82633A004353"))
	assert.False(t, checksum.VIN("1HGCM82633A00435"), "16 characters")
	assert.False(t, checksum.VIN("1HGCM82633A0043521"), "18 characters")
	assert.False(t, checksum.VIN("IHGCM82633A004352"), "I is not a VIN character")
	assert.False(t, checksum.VIN(""))
}
