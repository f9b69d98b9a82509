package anonymizer

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/detect"
	"github.com/trustmask/trustmask/internal/entity"
)

func newTestPipeline(t *testing.T) *Anonymizer {
	t.Helper()
	return New(detect.All(false), 0.5, zap.NewNop())
}

func TestResolve(t *testing.T) {
	t.Run("longer span wins at same start", func(t *testing.T) {
		got := Resolve([]entity.Detected{
			{Type: entity.TypeAddress, Start: 0, End: 5, Confidence: 0.99},
			{Type: entity.TypeTCID, Start: 0, End: 11, Confidence: 0.60},
		})
		if len(got) != 1 || got[0].Type != entity.TypeTCID {
			t.Fatalf("got %v, want single TC_ID span", got)
		}
	})

	t.Run("priority breaks full ties", func(t *testing.T) {
		got := Resolve([]entity.Detected{
			{Type: entity.TypeBirthDate, Start: 3, End: 14, Confidence: 0.90},
			{Type: entity.TypeTCID, Start: 3, End: 14, Confidence: 0.90},
		})
		if len(got) != 1 || got[0].Type != entity.TypeTCID {
			t.Fatalf("got %v, want TC_ID to outrank BIRTH_DATE", got)
		}
	})

	t.Run("invalid spans dropped", func(t *testing.T) {
		got := Resolve([]entity.Detected{
			{Type: entity.TypeName, Start: 5, End: 5},
			{Type: entity.TypeName, Start: 7, End: 3},
			{Type: entity.TypeName, Start: -1, End: 4},
		})
		if len(got) != 0 {
			t.Fatalf("got %v, want empty", got)
		}
	})

	t.Run("disjoint spans all kept in order", func(t *testing.T) {
		got := Resolve([]entity.Detected{
			{Type: entity.TypeEmail, Start: 20, End: 35, Confidence: 0.98},
			{Type: entity.TypeName, Start: 0, End: 5, Confidence: 0.80},
			{Type: entity.TypePhone, Start: 6, End: 19, Confidence: 0.95},
		})
		if len(got) != 3 {
			t.Fatalf("got %d spans, want 3", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Start < got[i-1].End {
				t.Errorf("results out of order or overlapping: %v", got)
			}
		}
	})
}

func TestRewrite(t *testing.T) {
	t.Run("single span", func(t *testing.T) {
		text := "TC: 12345678901"
		got := Rewrite(text, []entity.Detected{
			{Type: entity.TypeTCID, Start: 4, End: 15},
		})
		if got != "TC: [TC_KIMLIK]" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("multiple spans keep surrounding text", func(t *testing.T) {
		text := "Ali 0532 123 45 67 aradı"
		got := Rewrite(text, []entity.Detected{
			{Type: entity.TypeName, Start: 0, End: 3},
			{Type: entity.TypeMobilePhone, Start: 4, End: 18},
		})
		if got != "[AD] [CEP_TELEFONU] aradı" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("empty set is identity", func(t *testing.T) {
		if got := Rewrite("dokunulmadı", nil); got != "dokunulmadı" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("out of bounds span ignored", func(t *testing.T) {
		if got := Rewrite("kısa", []entity.Detected{{Type: entity.TypeName, Start: 2, End: 40}}); got != "kısa" {
			t.Errorf("got %q", got)
		}
	})
}

func TestAnonymize(t *testing.T) {
	a := newTestPipeline(t)

	t.Run("masks name and phone", func(t *testing.T) {
		result := a.Anonymize("Merhaba, ben Ahmet Yılmaz. Telefonum 0532 123 45 67.", -1)
		if !result.IsPersonalDataDetected {
			t.Fatal("no personal data detected")
		}
		if strings.Contains(result.SanitizedText, "Ahmet") {
			t.Errorf("name leaked: %q", result.SanitizedText)
		}
		if strings.Contains(result.SanitizedText, "0532") {
			t.Errorf("phone leaked: %q", result.SanitizedText)
		}
		if !strings.Contains(result.SanitizedText, "[AD_SOYAD]") {
			t.Errorf("missing name placeholder: %q", result.SanitizedText)
		}
		if !strings.Contains(result.SanitizedText, "[CEP_TELEFONU]") {
			t.Errorf("missing phone placeholder: %q", result.SanitizedText)
		}
	})

	t.Run("category list sorted and unique", func(t *testing.T) {
		result := a.Anonymize("Ali Kaya ve Ayşe Demir görüşmede.", -1)
		for i := 1; i < len(result.DetectedDataTypes); i++ {
			if result.DetectedDataTypes[i] <= result.DetectedDataTypes[i-1] {
				t.Errorf("types not sorted unique: %v", result.DetectedDataTypes)
			}
		}
	})

	t.Run("resolved entities never overlap", func(t *testing.T) {
		result := a.Anonymize("TC kimlik no: 10000000146, IBAN: TR33 0006 1005 1978 6457 8413 26", -1)
		for i, a := range result.Entities {
			for j, b := range result.Entities {
				if i != j && a.Overlaps(b) {
					t.Fatalf("overlap between %v and %v", a, b)
				}
			}
		}
	})

	t.Run("whitespace short-circuit", func(t *testing.T) {
		result := a.Anonymize("   \n\t", -1)
		if result.IsPersonalDataDetected || result.SanitizedText != "   \n\t" {
			t.Errorf("whitespace input altered: %+v", result)
		}
	})

	t.Run("clean text passes through", func(t *testing.T) {
		text := "Faturanızı uygulamadan görüntüleyebilirsiniz."
		result := a.Anonymize(text, -1)
		if result.IsPersonalDataDetected {
			t.Errorf("false positives: %v", result.Entities)
		}
		if result.SanitizedText != text {
			t.Errorf("clean text altered: %q", result.SanitizedText)
		}
	})

	t.Run("higher threshold filters more", func(t *testing.T) {
		text := "Merhaba, ben Ahmet Yılmaz. Telefonum 0532 123 45 67."
		loose := a.Anonymize(text, 0.5)
		tight := a.Anonymize(text, 0.99)
		if len(tight.Entities) > len(loose.Entities) {
			t.Errorf("threshold 0.99 found more than 0.5: %d > %d",
				len(tight.Entities), len(loose.Entities))
		}
	})

	t.Run("second pass is stable", func(t *testing.T) {
		first := a.Anonymize("Merhaba, ben Ahmet Yılmaz. Telefonum 0532 123 45 67.", -1)
		second := a.Anonymize(first.SanitizedText, -1)
		if second.SanitizedText != first.SanitizedText {
			t.Errorf("masking not stable: %q -> %q", first.SanitizedText, second.SanitizedText)
		}
	})
}

func TestClamp(t *testing.T) {
	a := New(detect.All(false), 0.7, zap.NewNop())

	cases := []struct {
		in, want float64
	}{
		{0, 0}, // explicit zero keeps every hit
		{0.3, 0.3},
		{1, 1},
		{-1, 0.7},
		{1.5, 0.7},
	}
	for _, c := range cases {
		if got := a.clamp(c.in); got != c.want {
			t.Errorf("clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAnonymizeZeroThreshold(t *testing.T) {
	a := New(detect.All(false), 0.99, zap.NewNop())

	// 0.60 potential identity number: below the instance default, kept
	// when the caller asks for threshold zero.
	text := "Sistemde 98765432109 kayıtlı."
	if got := a.Anonymize(text, -1); got.IsPersonalDataDetected {
		t.Fatalf("default threshold 0.99 should drop the 0.60 hit: %v", got.Entities)
	}
	if got := a.Anonymize(text, 0); !got.IsPersonalDataDetected {
		t.Fatal("explicit zero threshold should keep every hit")
	}
}

func TestStats(t *testing.T) {
	a := newTestPipeline(t)

	stats := a.Stats("TC kimlik no: 10000000146", -1)
	if stats.TotalEntities != 1 {
		t.Fatalf("total = %d, want 1", stats.TotalEntities)
	}
	if stats.ByType[entity.TypeTCID] != 1 {
		t.Errorf("by_type = %v, want one TC_ID", stats.ByType)
	}
	if stats.ReductionRatio <= 0 {
		t.Errorf("reduction ratio = %v, want > 0", stats.ReductionRatio)
	}
}

func BenchmarkAnonymize(b *testing.B) {
	a := New(detect.All(false), 0.5, zap.NewNop())
	text := "Merhaba, ben Ahmet Yılmaz. TC kimlik no: 10000000146, " +
		"telefonum 0532 123 45 67, e-posta adresim ahmet.yilmaz@example.com. " +
		"IBAN: TR33 0006 1005 1978 6457 8413 26. Adresim: Barbaros Mahallesi, " +
		"Deniz Sokak No:12 Daire:5 Beşiktaş/İstanbul."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Anonymize(text, -1)
	}
}
