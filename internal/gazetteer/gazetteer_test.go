package gazetteer

import "testing"

func TestCityCodes(t *testing.T) {
	if len(CityCodes) != 81 {
		t.Fatalf("expected 81 city codes, got %d", len(CityCodes))
	}
	for _, code := range []string{"01", "06", "34", "81"} {
		if !CityCodes[code] {
			t.Errorf("missing city code %s", code)
		}
	}
	for _, code := range []string{"00", "82", "99"} {
		if CityCodes[code] {
			t.Errorf("unexpected city code %s", code)
		}
	}
}

func TestToLower(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"AHMET", "ahmet"},
		{"İSTANBUL", "istanbul"},
		{"IŞIK", "ışık"},
		{"ÇAĞLAR", "çağlar"},
		{"GÜLŞEN", "gülşen"},
		{"ÖZGÜR", "özgür"},
		{"Yılmaz", "yılmaz"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToLower(tt.in); got != tt.want {
			t.Errorf("ToLower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNameSets(t *testing.T) {
	if !FirstNames["ahmet"] {
		t.Error("ahmet should be a first name")
	}
	if !FirstNames["ayşe"] {
		t.Error("ayşe should be a first name")
	}
	if !Surnames["yılmaz"] {
		t.Error("yılmaz should be a surname")
	}
	if NameLikeCommonWords["ahmet"] {
		t.Error("ahmet should not be a common word")
	}
	if !NameLikeCommonWords["merhaba"] {
		t.Error("merhaba should be a common word")
	}
}

func TestBankCodes(t *testing.T) {
	for _, code := range []string{"0001", "0006", "0046", "0064"} {
		if !BankCodes[code] {
			t.Errorf("missing bank code %s", code)
		}
	}
	if BankCodes["9999"] {
		t.Error("9999 is not a bank code")
	}
}

func TestMonths(t *testing.T) {
	if len(Months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(Months))
	}
	if Months["ocak"] != "01" || Months["aralık"] != "12" {
		t.Errorf("month numbers wrong: %v", Months)
	}
}

func TestPhonePrefixes(t *testing.T) {
	if !GSMPrefixes["532"] || !GSMPrefixes["505"] {
		t.Error("missing GSM prefix")
	}
	if GSMPrefixes["599"] {
		t.Error("599 is not a GSM prefix")
	}
	if !LandlinePrefixes["212"] || !LandlinePrefixes["312"] {
		t.Error("missing landline prefix")
	}
}
