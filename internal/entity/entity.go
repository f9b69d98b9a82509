// Package entity defines the personal data categories recognized by the
// anonymization pipeline and the value types shared by detectors, the
// overlap resolver and the rewriter.
package entity

// Type identifies a category of personal data.
type Type string

const (
	TypeName        Type = "NAME"
	TypeSurname     Type = "SURNAME"
	TypeFullName    Type = "FULL_NAME"
	TypeParentName  Type = "PARENT_NAME"
	TypeTCID        Type = "TC_ID"
	TypePassport    Type = "PASSPORT"
	TypeBirthDate   Type = "BIRTH_DATE"
	TypeBirthYear   Type = "BIRTH_YEAR"
	TypeGender      Type = "GENDER"
	TypePhone       Type = "PHONE"
	TypeMobilePhone Type = "MOBILE_PHONE"
	TypeLandline    Type = "LANDLINE"
	TypeEmail       Type = "EMAIL"
	TypeAddress     Type = "ADDRESS"
	TypeHomeAddress Type = "HOME_ADDRESS"
	TypeWorkAddress Type = "WORK_ADDRESS"
	TypeCityDistrict Type = "CITY_DISTRICT"
	TypeBankInfo    Type = "BANK_INFO"
	TypeBankName    Type = "BANK_NAME"
	TypeCardInfo    Type = "CARD_INFO"
	TypeCustomerID  Type = "CUSTOMER_ID"
	TypeSubscriptionID Type = "SUBSCRIPTION_ID"
	TypeContractID  Type = "CONTRACT_ID"
	TypeCallRecordID Type = "CALL_RECORD_ID"
	TypeIPAddress   Type = "IP_ADDRESS"
	TypePlate       Type = "PLATE"
)

// Detected is a single detector hit. Start and End are byte offsets into
// the scanned text, half-open: text[Start:End] == Value.
type Detected struct {
	Type       Type    `json:"type"`
	Value      string  `json:"value"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
	// Context records which rule produced the hit (e.g. "checksum",
	// "keyword_context"). Informational only.
	Context string `json:"context,omitempty"`
}

// Length returns the byte length of the matched span.
func (d Detected) Length() int {
	return d.End - d.Start
}

// Overlaps reports whether two spans share at least one byte. Touching
// spans (a.End == b.Start) do not overlap.
func (d Detected) Overlaps(other Detected) bool {
	return d.Start < other.End && d.End > other.Start
}

// Result is the outcome of one anonymization pass.
type Result struct {
	IsPersonalDataDetected bool       `json:"is_personal_data_detected"`
	DetectedDataTypes      []Type     `json:"detected_data_types"`
	SanitizedText          string     `json:"sanitized_text"`
	Entities               []Detected `json:"entities,omitempty"`
}

// placeholders maps each category to the token that replaces its matches.
var placeholders = map[Type]string{
	TypeName:           "[AD]",
	TypeSurname:        "[SOYAD]",
	TypeFullName:       "[AD_SOYAD]",
	TypeParentName:     "[EBEVEYN_ADI]",
	TypeTCID:           "[TC_KIMLIK]",
	TypePassport:       "[PASAPORT]",
	TypeBirthDate:      "[DOGUM_TARIHI]",
	TypeBirthYear:      "[DOGUM_YILI]",
	TypeGender:         "[CINSIYET]",
	TypePhone:          "[TELEFON]",
	TypeMobilePhone:    "[CEP_TELEFONU]",
	TypeLandline:       "[SABIT_HAT]",
	TypeEmail:          "[EPOSTA]",
	TypeAddress:        "[ADRES]",
	TypeHomeAddress:    "[EV_ADRESI]",
	TypeWorkAddress:    "[IS_ADRESI]",
	TypeCityDistrict:   "[IL_ILCE]",
	TypeBankInfo:       "[IBAN]",
	TypeBankName:       "[BANKA_ADI]",
	TypeCardInfo:       "[KART_BILGISI]",
	TypeCustomerID:     "[MUSTERI_NO]",
	TypeSubscriptionID: "[ABONELIK_NO]",
	TypeContractID:     "[SOZLESME_NO]",
	TypeCallRecordID:   "[CAGRI_KAYIT_NO]",
	TypeIPAddress:      "[IP_ADRESI]",
	TypePlate:          "[PLAKA]",
}

// fallbackPlaceholder replaces matches of categories without a dedicated
// placeholder.
const fallbackPlaceholder = "[FİLTRELENDİ]"

// Placeholder returns the masking token for a category.
func Placeholder(t Type) string {
	if p, ok := placeholders[t]; ok {
		return p
	}
	return fallbackPlaceholder
}

// priorities orders categories for overlap resolution. Lower wins when
// span position, length and confidence tie.
var priorities = map[Type]int{
	TypeTCID:           1,
	TypePhone:          2,
	TypeMobilePhone:    2,
	TypeLandline:       2,
	TypeEmail:          3,
	TypeCustomerID:     4,
	TypeSubscriptionID: 4,
	TypeContractID:     4,
	TypeCallRecordID:   4,
	TypeBankInfo:       5,
	TypeCardInfo:       6,
	TypeFullName:       7,
	TypeName:           8,
	TypeSurname:        9,
	TypeParentName:     9,
	TypeHomeAddress:    10,
	TypeWorkAddress:    10,
	TypeAddress:        11,
	TypeCityDistrict:   12,
	TypePlate:          13,
	TypeBirthDate:      14,
	TypeBirthYear:      14,
	TypeIPAddress:      15,
	TypeGender:         16,
	TypeBankName:       17,
}

// defaultPriority applies to categories missing from the table.
const defaultPriority = 99

// Priority returns the overlap resolution rank of a category.
func Priority(t Type) int {
	if p, ok := priorities[t]; ok {
		return p
	}
	return defaultPriority
}
