package sitemaps

import "testing"

func noItems() ([]ContentItem, error) { return nil, nil }

func TestRegisterIsIdempotent(t *testing.T) {
	r := NewExtraRegistry()
	r.Register("Event", FreqWeekly, noItems)
	r.Register("Event", FreqDaily, noItems)

	regs := r.Registrations()
	if len(regs) != 1 {
		t.Fatalf("Registrations() length = %d, want 1", len(regs))
	}
	if regs[0].ChangeFreq != FreqWeekly {
		t.Errorf("re-registration should not overwrite: freq = %q, want %q", regs[0].ChangeFreq, FreqWeekly)
	}
}

func TestRegisterPreservesOrder(t *testing.T) {
	r := NewExtraRegistry()
	r.Register("Event", FreqWeekly, noItems)
	r.Register("Document", "", noItems)
	r.Register("Gallery", FreqYearly, noItems)

	regs := r.Registrations()
	want := []string{"Event", "Document", "Gallery"}
	if len(regs) != len(want) {
		t.Fatalf("Registrations() length = %d, want %d", len(regs), len(want))
	}
	for i, id := range want {
		if regs[i].Type != id {
			t.Errorf("Registrations()[%d].Type = %q, want %q", i, regs[i].Type, id)
		}
	}
}

func TestRegisterDefaultFreq(t *testing.T) {
	r := NewExtraRegistry()
	r.Register("Document", "", noItems)
	if got := r.Registrations()[0].ChangeFreq; got != FreqMonthly {
		t.Errorf("default freq = %q, want %q", got, FreqMonthly)
	}
}

func TestIsRegistered(t *testing.T) {
	r := NewExtraRegistry()
	if r.IsRegistered("Event") {
		t.Error("empty registry should not report Event as registered")
	}
	r.Register("Event", FreqWeekly, noItems)
	if !r.IsRegistered("Event") {
		t.Error("Event should be registered")
	}
}
