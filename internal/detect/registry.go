package detect

import (
	"fmt"
	"sort"
)

// builders lists every rule detector by name. The national ID detector
// is the only one that takes configuration.
func builders(strict bool) map[string]func() Detector {
	return map[string]func() Detector{
		"national_id":  func() Detector { return NewNationalID(strict) },
		"phone":        func() Detector { return NewPhone() },
		"email":        func() Detector { return NewEmail() },
		"iban":         func() Detector { return NewIBAN() },
		"card":         func() Detector { return NewCard() },
		"date":         func() Detector { return NewDate() },
		"address":      func() Detector { return NewAddress() },
		"plate":        func() Detector { return NewPlate() },
		"ip":           func() Detector { return NewIP() },
		"customer_id":  func() Detector { return NewCustomerID() },
		"gender":       func() Detector { return NewGender() },
		"parent_name":  func() Detector { return NewParentName() },
		"bank_name":    func() Detector { return NewBankName() },
		"call_record":  func() Detector { return NewCallRecord() },
		"partial_data": func() Detector { return NewPartialData() },
		"name":         func() Detector { return NewName() },
	}
}

// Names returns the available rule detector names, sorted.
func Names() []string {
	b := builders(false)
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All constructs the full rule detector set.
func All(strict bool) []Detector {
	b := builders(strict)
	detectors := make([]Detector, 0, len(b))
	for _, name := range Names() {
		detectors = append(detectors, b[name]())
	}
	return detectors
}

// FromNames constructs the named detectors. The name "all" expands to
// the full set; unknown names are an error.
func FromNames(names []string, strict bool) ([]Detector, error) {
	b := builders(strict)
	seen := make(map[string]bool, len(names))
	var detectors []Detector
	for _, name := range names {
		if name == "all" {
			return All(strict), nil
		}
		build, ok := b[name]
		if !ok {
			return nil, fmt.Errorf("unknown detector: %s", name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		detectors = append(detectors, build())
	}
	return detectors, nil
}
