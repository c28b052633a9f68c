package validation

// Messages carried in Result.Errors for engine-level rejections, as opposed
// to rule error messages which come from the spec table.
const (
	MsgLoopDetected      = "validation loop detected"
	MsgValidatorNotFound = "validator not found"
)

// Result is the outcome of a single validation. It is produced fresh per
// call and never mutated afterwards.
type Result struct {
	Valid  bool           `json:"valid"`
	Errors []string       `json:"errors"`
	JSONLD map[string]any `json:"jsonld,omitempty"`

	loopDetected bool
}

// LoopDetected reports whether the result is a loop-guard rejection rather
// than a rule outcome. Such results are transient: retrying after the loop
// window expires is safe.
func (r Result) LoopDetected() bool {
	return r.loopDetected
}

// Batch is the outcome of validating a list of values against one rule.
// Results preserve input order; Valid aggregates them.
type Batch struct {
	Valid   bool     `json:"valid"`
	Results []Result `json:"results"`
}

func validResult() Result {
	return Result{Valid: true, Errors: []string{}}
}

func invalidResult(errs ...string) Result {
	return Result{Valid: false, Errors: errs}
}

func loopDetectedResult() Result {
	return Result{Valid: false, Errors: []string{MsgLoopDetected}, loopDetected: true}
}
