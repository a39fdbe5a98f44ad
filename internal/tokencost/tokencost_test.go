package tokencost

import (
	"math"
	"testing"
)

func TestPricingUsage(t *testing.T) {
	p := Pricing{InputPerMillion: 0.10, OutputPerMillion: 0.40, USDToINR: 86}

	usage := p.Usage(1_000_000, 500_000)

	if usage.InputTokens != 1_000_000 || usage.OutputTokens != 500_000 {
		t.Errorf("token counts not preserved: %+v", usage)
	}
	if usage.TotalTokens != 1_500_000 {
		t.Errorf("total tokens = %d, want 1500000", usage.TotalTokens)
	}
	// 1M input at $0.10/M + 0.5M output at $0.40/M = $0.30, times 86.
	want := 0.30 * 86
	if math.Abs(usage.CostINR-want) > 1e-9 {
		t.Errorf("cost = %f INR, want %f", usage.CostINR, want)
	}
}

func TestPricingUsage_Zero(t *testing.T) {
	p := Pricing{InputPerMillion: 0.10, OutputPerMillion: 0.40, USDToINR: 86}
	usage := p.Usage(0, 0)
	if usage.TotalTokens != 0 || usage.CostINR != 0 {
		t.Errorf("zero tokens should cost nothing: %+v", usage)
	}
}

func TestEstimate(t *testing.T) {
	text := "Extract the following attributes for manufacturer part number ABC-1234."
	got := Estimate(text)
	if got <= 0 {
		t.Errorf("Estimate(%q) = %d, want > 0", text, got)
	}

	longer := text + " Respond with a JSON object keyed by attribute name."
	if Estimate(longer) <= got {
		t.Error("longer text should estimate at least as many tokens")
	}
}
