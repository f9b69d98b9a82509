package detect

import (
	"regexp"

	"github.com/trustmask/trustmask/internal/entity"
)

// CustomerID detects customer, subscription, contract and call record
// reference numbers, both keyword-anchored and operator-prefixed forms.
type CustomerID struct{}

var (
	customerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:müşteri\s*(?:no|numarası|numaram|numaranız))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:müşteri\s*(?:no|numarası|numaram|numaranız))[\s:\.#]*(\d{6,20})`),
		regexp.MustCompile(`(?i)(?:hesap\s*bilgilerinize|hesap\s*bilgileriniz)[\s:\.]+[^\.]*?müşteri\s*numaranız[\s:\.]*(\d{6,20})`),
		regexp.MustCompile(`(?i)müşteri\s*numaranız\s+(\d{6,20})`),
	}
	subscriptionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:abone\s*(?:no|numarası|numaram|numaranız))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:abonelik\s*(?:no|numarası|numaram|numaranız))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:abonelik\s*(?:no|numarası|numaram|numaranız))[\s:\.#]*([A-Z]{2,4}[\-]?[A-Z0-9]{4,15})`),
	}
	contractPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:sözleşme\s*(?:no|numarası|numaram|numaranız))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:kontrat\s*(?:no|numarası|numaram|numaranız))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:sözleşme\s*(?:no|numarası|numaram))[\s:\.#]*([A-Z]{2,4}[\-]?\d{4}[\-]?[A-Z0-9]{4,15})`),
	}
	callRecordPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:çağrı\s*kayıt|çağrı\s*kaydı|çağrı\s*(?:no|numarası|numaram|numaranız))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:arama\s*kayıt|arama\s*(?:no|numarası|numaram|numaranız))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:görüşme\s*(?:no|numarası|kaydı|numaranız))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:çağrı\s*kayıt|görüşmeye\s*ait)[\s:\.#]*([A-Z]{2}[\-]?\d{4}[\-]?[A-Z0-9]{4,15})`),
		regexp.MustCompile(`(?i)\b(CR[\-]?\d{4}[\-]?[A-Z0-9]{4,15})\b`),
	}
	otherIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:hesap\s*(?:no|numarası|numaram))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:referans\s*(?:no|numarası))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:sipariş\s*(?:no|numarası))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:takip\s*(?:no|numarası))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:kayıt\s*(?:no|numarası))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:hizmet\s*(?:no|numarası))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:hat\s*(?:no|numarası|numaram))[\s:\.#]*([A-Z0-9\-]{4,20})`),
		regexp.MustCompile(`(?i)(?:ticket|tiket|talep\s*(?:no|numarası))[\s:\.#]*([A-Z0-9\-]{4,20})`),
	}
	operatorIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(VOD[\-]?[A-Z0-9]{6,15})\b`),
		regexp.MustCompile(`(?i)\b(TC[\-]?[A-Z0-9]{6,15})\b`),
		regexp.MustCompile(`(?i)\b(TT[\-]?[A-Z0-9]{6,15})\b`),
		regexp.MustCompile(`(?i)\b(CRM[\-]?[A-Z0-9]{6,15})\b`),
		regexp.MustCompile(`(?i)\b(TKT[\-]?[A-Z0-9]{6,15})\b`),
		regexp.MustCompile(`(?i)\b(ABN[\-]?[A-Z0-9]{6,15})\b`),
		regexp.MustCompile(`(?i)\b(SOZ[\-]?[A-Z0-9]{6,15})\b`),
		regexp.MustCompile(`(?i)\b(CR[\-]?[A-Z0-9]{6,15})\b`),
	}
)

func NewCustomerID() *CustomerID { return &CustomerID{} }

func (d *CustomerID) Name() string { return "customer_id" }

func (d *CustomerID) Detect(text string) []entity.Detected {
	var entities []entity.Detected

	add := func(patterns []*regexp.Regexp, t entity.Type, conf float64) {
		for _, p := range patterns {
			for _, loc := range p.FindAllStringIndex(text, -1) {
				entities = append(entities, entity.Detected{
					Type:       t,
					Value:      text[loc[0]:loc[1]],
					Start:      loc[0],
					End:        loc[1],
					Confidence: conf,
				})
			}
		}
	}

	add(customerPatterns, entity.TypeCustomerID, 0.98)
	add(subscriptionPatterns, entity.TypeSubscriptionID, 0.98)
	add(contractPatterns, entity.TypeContractID, 0.98)
	add(callRecordPatterns, entity.TypeCallRecordID, 0.98)
	add(otherIDPatterns, entity.TypeCustomerID, 0.95)
	add(operatorIDPatterns, entity.TypeCustomerID, 0.90)

	return dedupe(entities)
}
