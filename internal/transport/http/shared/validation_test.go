package shared

import (
	"testing"
	"time"
)

func TestValidatorCollectsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("name", "", "name is required")
	v.Enum("kind", "weird", []string{"paid", "unpaid"}, "kind must be paid or unpaid")
	v.IntRange("month", 13, 1, 12, "month must be between 1 and 12")

	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(issues))
	}
}

func TestValidatorEnumAcceptsCaseInsensitive(t *testing.T) {
	v := NewValidator()
	v.Enum("kind", "Paid", []string{"paid", "unpaid"}, "kind must be paid or unpaid")

	if v.HasIssues() {
		t.Fatalf("unexpected issues: %v", v.Issues())
	}
}

func TestValidatorDate(t *testing.T) {
	v := NewValidator()

	parsed, ok := v.Date("startDate", "2024-03-01")
	if !ok {
		t.Fatalf("unexpected issues: %v", v.Issues())
	}
	if !parsed.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", parsed)
	}

	if _, ok := v.Date("endDate", "not-a-date"); ok {
		t.Fatal("expected invalid date to fail")
	}
	if !v.HasIssues() {
		t.Fatal("expected issue recorded for invalid date")
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	v.DateOrder("startDate", start, "endDate", end)
	if !v.HasIssues() {
		t.Fatal("expected reversed dates to be rejected")
	}
}

func TestValidatorIssuesSorted(t *testing.T) {
	v := NewValidator()
	v.Add("zulu", "last")
	v.Add("alpha", "first")

	issues := v.Issues()
	if issues[0].Field != "alpha" || issues[1].Field != "zulu" {
		t.Fatalf("expected issues sorted by field, got %v", issues)
	}
}
