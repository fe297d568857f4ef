package payroll_test

import (
	"errors"
	"testing"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// LINE ITEM TESTS
// =============================================================================

func TestProcessLineItems_FixedAndPercent(t *testing.T) {
	// GIVEN: A fixed $200 health deduction and a 5% 401k contribution
	// WHEN: Processing against $2,000 gross
	// THEN: health = 200.00, 401k = 100.00, subtotals split by kind

	items := []payroll.LineItem{
		{Name: "health", Kind: payroll.KindDeduction, Mode: payroll.AmountFixed, Amount: payroll.NewMoney(200), PreTax: true},
		{Name: "401k", Kind: payroll.KindContribution, Mode: payroll.AmountPercentOfGross, Amount: payroll.NewMoney(5), PreTax: true},
	}

	result, err := payroll.ProcessLineItems(payroll.NewMoney(2000), items, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertMoney(t, "health", "200.00", result.Items[0].Amount)
	assertMoney(t, "401k", "100.00", result.Items[1].Amount)
	assertMoney(t, "deductions", "200.00", result.Deductions)
	assertMoney(t, "contributions", "100.00", result.Contributions)
	assertMoney(t, "pre-tax", "300.00", result.PreTax)
	assertMoney(t, "post-tax", "0.00", result.PostTax)
}

func TestProcessLineItems_PreTaxPostTaxSplit(t *testing.T) {
	// GIVEN: One pre-tax and one post-tax item
	// WHEN: Processing
	// THEN: Subtotals track the flag independently of kind

	items := []payroll.LineItem{
		{Name: "hsa", Kind: payroll.KindContribution, Mode: payroll.AmountFixed, Amount: payroll.NewMoney(50), PreTax: true},
		{Name: "union dues", Kind: payroll.KindDeduction, Mode: payroll.AmountFixed, Amount: payroll.NewMoney(30), PreTax: false},
	}

	result, err := payroll.ProcessLineItems(payroll.NewMoney(1500), items, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMoney(t, "pre-tax", "50.00", result.PreTax)
	assertMoney(t, "post-tax", "30.00", result.PostTax)
}

func TestProcessLineItems_EmployerMatch_FullMatchUnderCeiling(t *testing.T) {
	// GIVEN: 4% 401k contribution, employer matches 100% up to 6% of gross
	// WHEN: Processing against $2,000 gross
	// THEN: employee = 80.00, under the 120.00 ceiling, match = 80.00

	items := []payroll.LineItem{
		{Name: "401k", Kind: payroll.KindContribution, Mode: payroll.AmountPercentOfGross, Amount: payroll.NewMoney(4), PreTax: true},
	}
	rules := []payroll.EmployerMatchRule{
		{Target: "401k", MatchUpToPercent: payroll.NewMoney(6), MatchPercent: payroll.NewMoney(100)},
	}

	result, err := payroll.ProcessLineItems(payroll.NewMoney(2000), items, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMoney(t, "match", "80.00", result.Matches[0].Amount)
	assertMoney(t, "employer match total", "80.00", result.EmployerMatch)
}

func TestProcessLineItems_EmployerMatch_CappedAtCeiling(t *testing.T) {
	// GIVEN: 10% contribution but the employer only matches up to 6% of gross
	// WHEN: Processing against $2,000 gross
	// THEN: matchable = min(200, 120) = 120, at 50% match rate = 60.00

	items := []payroll.LineItem{
		{Name: "401k", Kind: payroll.KindContribution, Mode: payroll.AmountPercentOfGross, Amount: payroll.NewMoney(10), PreTax: true},
	}
	rules := []payroll.EmployerMatchRule{
		{Target: "401k", MatchUpToPercent: payroll.NewMoney(6), MatchPercent: payroll.NewMoney(50)},
	}

	result, err := payroll.ProcessLineItems(payroll.NewMoney(2000), items, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMoney(t, "match", "60.00", result.Matches[0].Amount)
}

func TestProcessLineItems_EmployerMatch_NoContribution_NoMatch(t *testing.T) {
	// GIVEN: A match rule but no matching contribution line
	// WHEN: Processing
	// THEN: The match is exactly zero, never inferred

	rules := []payroll.EmployerMatchRule{
		{Target: "401k", MatchUpToPercent: payroll.NewMoney(6), MatchPercent: payroll.NewMoney(100)},
	}

	result, err := payroll.ProcessLineItems(payroll.NewMoney(2000), nil, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMoney(t, "match", "0.00", result.Matches[0].Amount)
}

func TestProcessLineItems_EmployerMatch_IgnoresDeductionsWithSameName(t *testing.T) {
	// GIVEN: A deduction sharing the match target's name
	// WHEN: Processing
	// THEN: Only contribution items count toward the employee amount

	items := []payroll.LineItem{
		{Name: "401k", Kind: payroll.KindDeduction, Mode: payroll.AmountFixed, Amount: payroll.NewMoney(100), PreTax: true},
	}
	rules := []payroll.EmployerMatchRule{
		{Target: "401k", MatchUpToPercent: payroll.NewMoney(6), MatchPercent: payroll.NewMoney(100)},
	}

	result, err := payroll.ProcessLineItems(payroll.NewMoney(2000), items, rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMoney(t, "match", "0.00", result.Matches[0].Amount)
}

func TestProcessLineItems_NegativeAmount_Rejected(t *testing.T) {
	// GIVEN: A negative line-item amount
	// WHEN: Processing
	// THEN: InvalidInputError

	items := []payroll.LineItem{
		{Name: "health", Kind: payroll.KindDeduction, Mode: payroll.AmountFixed, Amount: payroll.NewMoney(-10)},
	}
	_, err := payroll.ProcessLineItems(payroll.NewMoney(2000), items, nil)
	if !errors.Is(err, payroll.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProcessLineItems_PercentOfZeroGross_Zero(t *testing.T) {
	// GIVEN: A percent item against a zero-gross period
	// WHEN: Processing
	// THEN: The item resolves to exactly zero

	items := []payroll.LineItem{
		{Name: "401k", Kind: payroll.KindContribution, Mode: payroll.AmountPercentOfGross, Amount: payroll.NewMoney(5), PreTax: true},
	}
	result, err := payroll.ProcessLineItems(payroll.Zero(), items, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMoney(t, "401k", "0.00", result.Items[0].Amount)
}
