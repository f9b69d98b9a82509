package detect

import (
	"strings"
	"testing"

	"github.com/trustmask/trustmask/internal/entity"
	"github.com/trustmask/trustmask/internal/gazetteer"
)

func findByType(entities []entity.Detected, t entity.Type) []entity.Detected {
	var out []entity.Detected
	for _, e := range entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func requireSpan(t *testing.T, entities []entity.Detected, typ entity.Type, substr string) entity.Detected {
	t.Helper()
	for _, e := range findByType(entities, typ) {
		if strings.Contains(e.Value, substr) {
			return e
		}
	}
	t.Fatalf("no %s entity containing %q in %v", typ, substr, entities)
	return entity.Detected{}
}

func TestValidTCID(t *testing.T) {
	cases := []struct {
		id    string
		valid bool
	}{
		{"10000000146", true},
		{"12345678901", false},
		{"01000000146", false},
		{"1000000014", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidTCID(c.id); got != c.valid {
			t.Errorf("ValidTCID(%q) = %v, want %v", c.id, got, c.valid)
		}
	}
}

func TestNationalID(t *testing.T) {
	d := NewNationalID(false)

	t.Run("keyword anchored", func(t *testing.T) {
		got := d.Detect("TC Kimlik No: 10000000146")
		e := requireSpan(t, got, entity.TypeTCID, "10000000146")
		if e.Confidence != 0.98 {
			t.Errorf("confidence = %v, want 0.98", e.Confidence)
		}
	})

	t.Run("plain with valid checksum", func(t *testing.T) {
		got := d.Detect("Sistemde 10000000146 kayıtlı.")
		e := requireSpan(t, got, entity.TypeTCID, "10000000146")
		if e.Confidence != 0.85 {
			t.Errorf("confidence = %v, want 0.85", e.Confidence)
		}
	})

	t.Run("potential without checksum", func(t *testing.T) {
		got := d.Detect("Kod 98765432109 burada.")
		e := requireSpan(t, got, entity.TypeTCID, "98765432109")
		if e.Confidence != 0.60 {
			t.Errorf("confidence = %v, want 0.60", e.Confidence)
		}
	})

	t.Run("strict drops unverified", func(t *testing.T) {
		strict := NewNationalID(true)
		if got := strict.Detect("Kod 98765432109 burada."); len(got) != 0 {
			t.Errorf("strict mode kept %v", got)
		}
	})
}

func TestPhone(t *testing.T) {
	d := NewPhone()

	t.Run("mobile with trunk zero", func(t *testing.T) {
		got := d.Detect("Beni 0532 123 45 67 numarasından arayabilirsiniz.")
		requireSpan(t, got, entity.TypeMobilePhone, "0532 123 45 67")
	})

	t.Run("landline with trunk zero", func(t *testing.T) {
		got := d.Detect("Ofis hattı 0212 345 67 89 şeklinde.")
		requireSpan(t, got, entity.TypeLandline, "0212 345 67 89")
	})

	t.Run("international", func(t *testing.T) {
		got := d.Detect("+90 532 123 45 67")
		e := requireSpan(t, got, entity.TypeMobilePhone, "532")
		if e.Confidence != 0.98 {
			t.Errorf("confidence = %v, want 0.98", e.Confidence)
		}
	})

	t.Run("invalid prefix skipped", func(t *testing.T) {
		got := d.Detect("Kod 0999 123 45 67 geçersiz.")
		if len(findByType(got, entity.TypeMobilePhone)) != 0 {
			t.Errorf("999 prefix should not classify as mobile: %v", got)
		}
	})
}

func TestEmail(t *testing.T) {
	d := NewEmail()

	t.Run("keyword anchored", func(t *testing.T) {
		got := d.Detect("E-posta adresim: ahmet.yilmaz@example.com")
		e := requireSpan(t, got, entity.TypeEmail, "ahmet.yilmaz@example.com")
		if e.Confidence != 0.99 {
			t.Errorf("confidence = %v, want 0.99", e.Confidence)
		}
	})

	t.Run("bare address", func(t *testing.T) {
		got := d.Detect("Gönderen ayse@firma.com.tr oldu.")
		requireSpan(t, got, entity.TypeEmail, "ayse@firma.com.tr")
	})

	t.Run("shape checks", func(t *testing.T) {
		if !validEmail("a@b.co") {
			t.Error("a@b.co should be valid")
		}
		if validEmail("a@b") {
			t.Error("a@b should be invalid")
		}
		if validEmail("@x.com") {
			t.Error("empty local part should be invalid")
		}
	})
}

func TestValidIBAN(t *testing.T) {
	if !ValidIBAN("TR330006100519786457841326") {
		t.Error("known good IBAN rejected")
	}
	if ValidIBAN("TR330006100519786457841327") {
		t.Error("corrupted check digits accepted")
	}
	if ValidIBAN("DE330006100519786457841326") {
		t.Error("non-TR prefix accepted")
	}
	if ValidIBAN("TR33") {
		t.Error("short string accepted")
	}
}

func TestIBANDetect(t *testing.T) {
	d := NewIBAN()

	t.Run("keyword anchored", func(t *testing.T) {
		got := d.Detect("IBAN: TR33 0006 1005 1978 6457 8413 26")
		e := requireSpan(t, got, entity.TypeBankInfo, "TR33")
		if e.Confidence != 0.99 {
			t.Errorf("confidence = %v, want 0.99", e.Confidence)
		}
	})

	t.Run("account number", func(t *testing.T) {
		got := d.Detect("Hesap numaram 12345678901234 olacak.")
		requireSpan(t, got, entity.TypeBankInfo, "12345678901234")
	})

	t.Run("bank code rescues failed checksum", func(t *testing.T) {
		// Check digits corrupted (33 -> 34), no banking keyword nearby,
		// but 0006 is a known national bank code.
		got := d.Detect("Numara TR340006100519786457841326 olarak geçiyor.")
		e := requireSpan(t, got, entity.TypeBankInfo, "TR340006100519786457841326")
		if e.Confidence != 0.85 {
			t.Errorf("confidence = %v, want 0.85", e.Confidence)
		}
		if e.Context != "bank_code" {
			t.Errorf("context = %q, want bank_code", e.Context)
		}
	})

	t.Run("failed checksum with unknown bank code dropped", func(t *testing.T) {
		got := d.Detect("Numara TR349999100519786457841326 olarak geçiyor.")
		if len(findByType(got, entity.TypeBankInfo)) != 0 {
			t.Errorf("expected no entities, got %v", got)
		}
	})
}

func TestValidCardNumber(t *testing.T) {
	if !ValidCardNumber("4532015112830366") {
		t.Error("known good card number rejected")
	}
	if ValidCardNumber("4532015112830367") {
		t.Error("bad Luhn digit accepted")
	}
	if ValidCardNumber("1234567812345670") {
		t.Error("unknown issuer digit accepted")
	}
}

func TestCard(t *testing.T) {
	d := NewCard()

	t.Run("keyword anchored", func(t *testing.T) {
		got := d.Detect("Kart numaram 4532 0151 1283 0366")
		requireSpan(t, got, entity.TypeCardInfo, "4532")
	})

	t.Run("masked", func(t *testing.T) {
		got := d.Detect("İşlem 4532 **** **** 0366 ile yapıldı.")
		e := requireSpan(t, got, entity.TypeCardInfo, "****")
		if e.Confidence != 0.90 {
			t.Errorf("confidence = %v, want 0.90", e.Confidence)
		}
	})

	t.Run("expiry and cvv", func(t *testing.T) {
		got := d.Detect("Son kullanma 08/27, CVV: 123")
		if len(findByType(got, entity.TypeCardInfo)) < 2 {
			t.Errorf("expected expiry and cvv hits, got %v", got)
		}
	})
}

func TestDate(t *testing.T) {
	d := NewDate()

	t.Run("birth date keyword", func(t *testing.T) {
		got := d.Detect("Doğum tarihim 15.05.1985")
		e := requireSpan(t, got, entity.TypeBirthDate, "15.05.1985")
		if e.Confidence != 0.99 {
			t.Errorf("confidence = %v, want 0.99", e.Confidence)
		}
	})

	t.Run("calendrically invalid still reported", func(t *testing.T) {
		got := d.Detect("Doğum tarihim 32/13/2004")
		requireSpan(t, got, entity.TypeBirthDate, "32/13/2004")
	})

	t.Run("month name", func(t *testing.T) {
		got := d.Detect("12 Mayıs 1990 tarihinde kayıt oldu.")
		requireSpan(t, got, entity.TypeBirthDate, "12 Mayıs 1990")
	})

	t.Run("every month name", func(t *testing.T) {
		for name := range gazetteer.Months {
			got := d.Detect("3 " + name + " 1990 tarihli belge")
			requireSpan(t, got, entity.TypeBirthDate, "3 "+name+" 1990")
		}
	})

	t.Run("age statement", func(t *testing.T) {
		got := d.Detect("25 yaşındayım")
		e := requireSpan(t, got, entity.TypeBirthDate, "25")
		if e.Context != "age" {
			t.Errorf("context = %q, want age", e.Context)
		}
	})
}

func TestAddress(t *testing.T) {
	d := NewAddress()

	t.Run("full street address", func(t *testing.T) {
		got := d.Detect("Adresim: Barbaros Mahallesi, Deniz Sokak No:12 Daire:5")
		requireSpan(t, got, entity.TypeAddress, "Deniz Sokak")
	})

	t.Run("home address keyword", func(t *testing.T) {
		got := d.Detect("Ev adresim Çamlık Mahallesi Gül Sokak No 7 Kadıköy")
		requireSpan(t, got, entity.TypeHomeAddress, "Çamlık")
	})

	t.Run("city district pair", func(t *testing.T) {
		got := d.Detect("Beşiktaş/İstanbul tarafında oturuyorum.")
		requireSpan(t, got, entity.TypeCityDistrict, "Beşiktaş")
	})

	t.Run("longest span wins", func(t *testing.T) {
		got := d.Detect("Adresim: Barbaros Mahallesi, Deniz Sokak No:12 Daire:5")
		for i, a := range got {
			for j, b := range got {
				if i != j && a.Overlaps(b) {
					t.Fatalf("overlapping results %v and %v", a, b)
				}
			}
		}
	})
}

func TestPlate(t *testing.T) {
	d := NewPlate()

	t.Run("keyword anchored", func(t *testing.T) {
		got := d.Detect("Plakam 34 ABC 123")
		e := requireSpan(t, got, entity.TypePlate, "34")
		if e.Confidence != 0.98 {
			t.Errorf("confidence = %v, want 0.98", e.Confidence)
		}
	})

	t.Run("bare plate", func(t *testing.T) {
		got := d.Detect("Aracın 06 XYZ 4567 olduğu görüldü.")
		requireSpan(t, got, entity.TypePlate, "06 XYZ 4567")
	})

	t.Run("invalid province code", func(t *testing.T) {
		if got := d.Detect("Kod 99 ABC 123 geçersiz."); len(got) != 0 {
			t.Errorf("99 is not a province code: %v", got)
		}
	})
}

func TestIP(t *testing.T) {
	d := NewIP()

	t.Run("keyword anchored", func(t *testing.T) {
		got := d.Detect("Sunucu IP adresi: 192.168.1.100")
		requireSpan(t, got, entity.TypeIPAddress, "192.168.1.100")
	})

	t.Run("loopback skipped", func(t *testing.T) {
		if got := d.Detect("Servis 127.0.0.1 üzerinden dinliyor."); len(got) != 0 {
			t.Errorf("loopback should be ignored: %v", got)
		}
	})

	t.Run("ipv6", func(t *testing.T) {
		got := d.Detect("Adres 2001:0db8:85a3:0000:0000:8a2e:0370:7334 olarak kaydedildi.")
		requireSpan(t, got, entity.TypeIPAddress, "2001:0db8")
	})
}

func TestCustomerID(t *testing.T) {
	d := NewCustomerID()

	t.Run("customer number", func(t *testing.T) {
		got := d.Detect("Müşteri numaram: 1234567890")
		requireSpan(t, got, entity.TypeCustomerID, "1234567890")
	})

	t.Run("subscription number", func(t *testing.T) {
		got := d.Detect("Abone no: ABN-123456")
		requireSpan(t, got, entity.TypeSubscriptionID, "ABN-123456")
	})

	t.Run("contract number", func(t *testing.T) {
		got := d.Detect("Sözleşme numarası: SOZ-2024-001234")
		requireSpan(t, got, entity.TypeContractID, "SOZ-2024-001234")
	})

	t.Run("operator prefix", func(t *testing.T) {
		got := d.Detect("Referansınız VOD-ABC12345")
		requireSpan(t, got, entity.TypeCustomerID, "VOD-ABC12345")
	})
}

func TestGender(t *testing.T) {
	d := NewGender()

	t.Run("keyword anchored word", func(t *testing.T) {
		got := d.Detect("Cinsiyetim: Erkek")
		requireSpan(t, got, entity.TypeGender, "Erkek")
	})

	t.Run("single letter shorthand", func(t *testing.T) {
		got := d.Detect("Cinsiyet: K")
		requireSpan(t, got, entity.TypeGender, "K")
	})
}

func TestParentName(t *testing.T) {
	d := NewParentName()

	t.Run("mother", func(t *testing.T) {
		got := d.Detect("Anne adı: Fatma")
		e := requireSpan(t, got, entity.TypeParentName, "Fatma")
		if e.Context != "anne_adi" {
			t.Errorf("context = %q, want anne_adi", e.Context)
		}
	})

	t.Run("father", func(t *testing.T) {
		got := d.Detect("Baba adı: Mehmet Ali")
		e := requireSpan(t, got, entity.TypeParentName, "Mehmet")
		if e.Context != "baba_adi" {
			t.Errorf("context = %q, want baba_adi", e.Context)
		}
	})

	t.Run("maiden name", func(t *testing.T) {
		got := d.Detect("Annenizin kızlık soyadı: Demir")
		requireSpan(t, got, entity.TypeParentName, "Demir")
	})
}

func TestBankName(t *testing.T) {
	d := NewBankName()

	t.Run("known bank", func(t *testing.T) {
		got := d.Detect("Ziraat Bankası hesabımdan ödedim.")
		requireSpan(t, got, entity.TypeBankName, "Ziraat Bankası")
	})

	t.Run("turkish case folding", func(t *testing.T) {
		got := d.Detect("İŞ BANKASI şubesine gittim.")
		if len(findByType(got, entity.TypeBankName)) == 0 {
			t.Errorf("uppercase bank name missed: %v", got)
		}
	})
}

func TestCallRecord(t *testing.T) {
	d := NewCallRecord()

	got := d.Detect("Çağrı kayıt CR-2024-ABC123 incelendi.")
	e := requireSpan(t, got, entity.TypeCallRecordID, "CR-2024-ABC123")
	if e.Value != "CR-2024-ABC123" {
		t.Errorf("value = %q, want only the identifier", e.Value)
	}
}

func TestPartialData(t *testing.T) {
	d := NewPartialData()

	t.Run("birth year answer", func(t *testing.T) {
		text := "Doğum yılınızı söyler misiniz?\n1985"
		got := d.Detect(text)
		e := requireSpan(t, got, entity.TypeBirthYear, "1985")
		if want := strings.Index(text, "1985"); e.Start != want {
			t.Errorf("start = %d, want %d", e.Start, want)
		}
	})

	t.Run("tc last digits answer", func(t *testing.T) {
		text := "TC kimlik numaranızın son 2 hanesini söyleyin\n29"
		got := d.Detect(text)
		requireSpan(t, got, entity.TypeTCID, "29")
	})

	t.Run("year not mistaken for tc digits", func(t *testing.T) {
		text := "TC kimlik numaranızın son hanelerini söyleyin\n1985"
		got := d.Detect(text)
		if len(findByType(got, entity.TypeTCID)) != 0 {
			t.Errorf("a plausible year should not be read as identity digits: %v", got)
		}
	})

	t.Run("inline card digits", func(t *testing.T) {
		got := d.Detect("Kartınızın son 4 hanesi: 0366")
		requireSpan(t, got, entity.TypeCardInfo, "0366")
	})
}
