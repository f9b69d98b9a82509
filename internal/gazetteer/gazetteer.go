// Package gazetteer holds the static Turkish lookup tables used by the
// detectors: first names, surnames, honorifics, bank names and codes,
// city plate codes, phone prefixes and month names.
package gazetteer

import "strings"

// CityCodes lists valid Turkish license plate province codes (01-81).
var CityCodes = buildCityCodes()

func buildCityCodes() map[string]bool {
	codes := make(map[string]bool, 81)
	for i := 1; i <= 81; i++ {
		codes[twoDigit(i)] = true
	}
	return codes
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

// GSMPrefixes lists Turkish mobile operator prefixes.
var GSMPrefixes = toSet([]string{
	"530", "531", "532", "533", "534", "535", "536", "537", "538", "539",
	"540", "541", "542", "543", "544", "545", "546", "547", "548", "549",
	"550", "551", "552", "553", "554", "555", "556", "557", "558", "559",
	"560", "561",
	"500", "501", "502", "503", "504", "505", "506", "507", "508", "509",
})

// LandlinePrefixes lists area codes of major Turkish provinces.
var LandlinePrefixes = toSet([]string{
	"212", "216", "312", "232", "224", "322", "242", "352", "362", "442",
	"462", "222", "262", "324", "342", "252", "332", "272", "282", "412",
})

// Banks lists Turkish bank and payment institution names, lowercase.
var Banks = []string{
	"ziraat", "ziraat bankası", "t.c. ziraat bankası",
	"halkbank", "halk bankası", "türkiye halk bankası",
	"vakıfbank", "vakıf bankası", "türkiye vakıflar bankası",
	"iş bankası", "işbank", "isbank", "türkiye iş bankası",
	"garanti", "garanti bbva", "garanti bankası",
	"akbank",
	"yapı kredi", "yapıkredi", "ykb",
	"qnb finansbank", "finansbank",
	"denizbank",
	"teb", "türk ekonomi bankası",
	"ing", "ing bank", "ing türkiye",
	"hsbc",
	"şekerbank",
	"anadolubank",
	"fibabanka",
	"alternatifbank", "alternatif bank",
	"odeabank",
	"kuveyt türk", "kuveyttürk",
	"albaraka", "albaraka türk",
	"türkiye finans",
	"ziraat katılım",
	"vakıf katılım",
	"emlak katılım",
	"ptt", "ptt bank",
	"enpara", "enpara.com",
	"papara",
	"ininal",
}

// BankCodes lists the four digit national bank codes that follow the
// check digits in a Turkish IBAN.
var BankCodes = toSet([]string{
	"0001", "0004", "0006", "0010", "0012", "0015", "0032", "0046", "0059",
	"0062", "0064", "0067", "0091", "0096", "0099", "0103", "0108",
	"0109", "0111", "0115", "0122", "0123", "0124", "0125", "0129",
	"0132", "0134", "0135", "0137", "0142", "0143", "0146", "0203",
	"0205", "0206", "0208", "0209", "0210",
})

// Months maps lowercase Turkish month names to their two digit numbers.
var Months = map[string]string{
	"ocak": "01", "şubat": "02", "mart": "03", "nisan": "04",
	"mayıs": "05", "haziran": "06", "temmuz": "07", "ağustos": "08",
	"eylül": "09", "ekim": "10", "kasım": "11", "aralık": "12",
}

// ToLower lowercases a string using Turkish casing rules: dotted capital
// İ maps to i and dotless capital I maps to ı. strings.ToLower would map
// I to i, which breaks gazetteer lookups for words like IŞIK.
func ToLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case 'İ':
			b.WriteRune('i')
		case 'I':
			b.WriteRune('ı')
		case 'Ğ':
			b.WriteRune('ğ')
		case 'Ü':
			b.WriteRune('ü')
		case 'Ş':
			b.WriteRune('ş')
		case 'Ö':
			b.WriteRune('ö')
		case 'Ç':
			b.WriteRune('ç')
		default:
			if r >= 'A' && r <= 'Z' {
				b.WriteRune(r + ('a' - 'A'))
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
