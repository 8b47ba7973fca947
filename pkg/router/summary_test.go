package router

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleResults() []Result {
	return []Result{
		{Source: "EE1_1.1.pdf", Level: "EE1", Module: "E1.1", Target: "/a/EE1/E1.1/2018.pdf", Outcome: OutcomeCopied},
		{Source: "EE1_1.2.pdf", Level: "EE1", Module: "E1.2", Target: "/a/EE1/E1.2/2018.pdf", Outcome: OutcomeCopied},
		{Source: "EE1_9.9.pdf", Level: "EE1", ModuleNumber: "9.9", Outcome: OutcomeNotFound},
	}
}

func TestCountOutcomes(t *testing.T) {
	counts := CountOutcomes(sampleResults())
	if counts[OutcomeCopied] != 2 || counts[OutcomeNotFound] != 1 || counts[OutcomeExists] != 0 {
		t.Errorf("counts = %v", counts)
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(sampleResults())
	for _, want := range []string{"EE1_1.1.pdf", "EE1/E1.1/2018.pdf", "EE1_9.9.pdf", "not found"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestResult_JsonUsesNames(t *testing.T) {
	b, err := json.Marshal(Result{Source: "EE1_1.1_solutions.pdf", Variant: VariantSolutions, Outcome: OutcomeExists})
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.Contains(s, `"variant":"solutions"`) || !strings.Contains(s, `"outcome":"exists"`) {
		t.Errorf("unexpected json: %s", s)
	}
}
