package validation

import "testing"

func TestViolations(t *testing.T) {
	v := make(Violations)
	if !v.Empty() {
		t.Fatal("new Violations should be empty")
	}

	Required("name", "  ", v)
	Required("phone", "555-1111", v)
	MaxLen("description", string(make([]rune, 201)), 200, v)
	PositiveID("id_account", 0, v)
	NonNegative("work_hours", -1, v)

	want := map[string]string{
		"name":        "required",
		"description": "too_long",
		"id_account":  "required",
		"work_hours":  "must_be_non_negative",
	}
	if len(v) != len(want) {
		t.Fatalf("got %d violations, want %d: %v", len(v), len(want), v)
	}
	for field, code := range want {
		if v[field] != code {
			t.Errorf("%s = %q, want %q", field, v[field], code)
		}
	}
}
