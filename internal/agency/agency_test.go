package agency

import (
	"testing"
	"time"
)

func TestLookupKnownAgencies(t *testing.T) {
	for _, code := range Codes() {
		a, ok := Lookup(code)
		if !ok {
			t.Fatalf("Lookup(%q) not found", code)
		}
		if a.Code != code {
			t.Errorf("Lookup(%q).Code = %q", code, a.Code)
		}
		if a.Name == "" || a.Address == "" || a.NameHindi == "" {
			t.Errorf("Lookup(%q) has empty fields: %+v", code, a)
		}
		if a.PIODesignation == "" || a.ParentMinistry == "" {
			t.Errorf("Lookup(%q) missing PIO or ministry: %+v", code, a)
		}
		if a.FeeCategory == "" {
			t.Errorf("Lookup(%q) has no fee category", code)
		}
		if a.AppellateAuthority == "" || a.SecondAppealForum == "" {
			t.Errorf("Lookup(%q) missing appeal authorities: %+v", code, a)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("unknown"); ok {
		t.Fatal("Lookup(unknown) should not be found")
	}
}

func TestCodesOrder(t *testing.T) {
	want := []string{"awbi", "fssai", "cpcb", "dahd", "nlm", "rgm"}
	got := Codes()
	if len(got) != len(want) {
		t.Fatalf("Codes() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Codes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveFee(t *testing.T) {
	awbi, _ := Lookup("awbi")

	tests := []struct {
		name  string
		state string
		bpl   bool
		want  int
	}{
		{"bpl exempt", "", true, 0},
		{"bpl exempt overrides state", "gujarat", true, 0},
		{"gujarat override", "gujarat", false, 20},
		{"maharashtra", "maharashtra", false, 10},
		{"unknown state falls back to category", "narnia", false, 10},
		{"no state uses category", "", false, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveFee(awbi, tt.state, tt.bpl); got != tt.want {
				t.Errorf("ResolveFee(awbi, %q, %v) = %d, want %d", tt.state, tt.bpl, got, tt.want)
			}
		})
	}
}

func TestDeadlineChain(t *testing.T) {
	filed := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	if got := ResponseDeadline(filed); !got.Equal(time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ResponseDeadline = %v", got)
	}
	if got := FirstAppealDeadline(filed); !got.Equal(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("FirstAppealDeadline = %v", got)
	}
	if got := SecondAppealDeadline(filed); !got.Equal(time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("SecondAppealDeadline = %v", got)
	}
}

func TestAppealWindowsDivergeFromChain(t *testing.T) {
	filed := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	appealed := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	fromChain := FirstAppealDeadline(filed)
	fromAppeal := AppealWindowFrom(appealed)
	if fromChain.Equal(fromAppeal) {
		t.Fatal("appeal window should be recomputed from the actual appeal date")
	}
	if want := appealed.AddDate(0, 0, 30); !fromAppeal.Equal(want) {
		t.Errorf("AppealWindowFrom = %v, want %v", fromAppeal, want)
	}
	if want := appealed.AddDate(0, 0, 90); !SecondAppealWindowFrom(appealed).Equal(want) {
		t.Errorf("SecondAppealWindowFrom = %v, want %v", SecondAppealWindowFrom(appealed), want)
	}
}
