package engine

import "FinModels/internal/domain/models"

// Stage is one named step of a pipeline. Fn receives the run so it can read
// prior stage values, and returns exactly one value (float64 or []float64).
type Stage struct {
	Name string
	Fn   func(r *Run) (interface{}, error)
}

// Run accumulates stage results in execution order and indexes them by name
// for later stages.
type Run struct {
	stages []models.StageResult
	index  map[string]interface{}
}

func (r *Run) record(name string, value interface{}) {
	r.stages = append(r.stages, models.StageResult{Name: name, Value: value})
	r.index[name] = value
}

// Scalar returns a prior stage's float64 value. A miss is a programming
// error in the stage list, so it returns the zero value rather than failing.
func (r *Run) Scalar(name string) float64 {
	v, _ := r.index[name].(float64)
	return v
}

// Series returns a prior stage's []float64 value.
func (r *Run) Series(name string) []float64 {
	v, _ := r.index[name].([]float64)
	return v
}

// Pipeline is a declarative ordered stage list for one model. The runner is
// the only control flow: adding a model means declaring a new list.
type Pipeline struct {
	Model  string
	Stages []Stage
}

// Execute runs the stages in order. The first failing stage aborts the run;
// the returned error always names the model and stage.
func (p Pipeline) Execute() ([]models.StageResult, error) {
	run := &Run{index: make(map[string]interface{}, len(p.Stages))}
	for _, stage := range p.Stages {
		value, err := stage.Fn(run)
		if err != nil {
			engErr, ok := AsEngineError(err)
			if !ok {
				engErr = newError(KindValidation, "%s", err.Error())
			}
			if engErr.Model == "" {
				engErr.Model = p.Model
			}
			if engErr.Stage == "" {
				engErr.Stage = stage.Name
			}
			return nil, engErr
		}
		run.record(stage.Name, value)
	}
	return run.stages, nil
}
