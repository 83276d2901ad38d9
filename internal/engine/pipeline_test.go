package engine

import "testing"

func TestPipelineExecutesInOrder(t *testing.T) {
	pipe := Pipeline{Model: "demo", Stages: []Stage{
		{Name: "base", Fn: func(r *Run) (interface{}, error) { return 2.0, nil }},
		{Name: "series", Fn: func(r *Run) (interface{}, error) { return []float64{1, 2, 3}, nil }},
		{Name: "combined", Fn: func(r *Run) (interface{}, error) {
			return r.Scalar("base") * sumSeries(r.Series("series")), nil
		}},
	}}

	stages, err := pipe.Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := []string{"base", "series", "combined"}
	if len(stages) != len(names) {
		t.Fatalf("expected %d stages, got %d", len(names), len(stages))
	}
	for i, name := range names {
		if stages[i].Name != name {
			t.Fatalf("stage %d: expected %q, got %q", i, name, stages[i].Name)
		}
	}
	if got := stages[2].Value.(float64); got != 12 {
		t.Fatalf("combined stage: expected 12, got %v", got)
	}
}

func TestPipelineErrorNamesModelAndStage(t *testing.T) {
	pipe := Pipeline{Model: "demo", Stages: []Stage{
		{Name: "ok", Fn: func(r *Run) (interface{}, error) { return 1.0, nil }},
		{Name: "boom", Fn: func(r *Run) (interface{}, error) {
			return nil, divisionByZeroErrorf("denominator is zero")
		}},
		{Name: "unreached", Fn: func(r *Run) (interface{}, error) {
			t.Fatal("stage after failure must not run")
			return nil, nil
		}},
	}}

	_, err := pipe.Execute()
	engErr, ok := AsEngineError(err)
	if !ok {
		t.Fatalf("expected engine error, got %v", err)
	}
	if engErr.Model != "demo" || engErr.Stage != "boom" {
		t.Fatalf("expected demo/boom, got %s/%s", engErr.Model, engErr.Stage)
	}
	if engErr.Kind != KindDivisionByZero {
		t.Fatalf("expected DIVISION_BY_ZERO, got %s", engErr.Kind)
	}
}

func TestPipelineWrapsPlainErrors(t *testing.T) {
	pipe := Pipeline{Model: "demo", Stages: []Stage{
		{Name: "plain", Fn: func(r *Run) (interface{}, error) {
			return nil, errPlain{}
		}},
	}}
	_, err := pipe.Execute()
	engErr, ok := AsEngineError(err)
	if !ok || engErr.Kind != KindValidation || engErr.Stage != "plain" {
		t.Fatalf("expected wrapped VALIDATION error naming the stage, got %v", err)
	}
}

type errPlain struct{}

func (errPlain) Error() string { return "plain failure" }
