package executor

import "strconv"

// Path addresses a value inside the response data: field response names as
// strings, list offsets as ints.
type Path []PathElement

type PathElement any

func appendPath(path Path, elem PathElement) Path {
	next := make(Path, len(path)+1)
	copy(next, path)
	next[len(path)] = elem
	return next
}

func (p Path) String() string {
	out := ""
	for i, elem := range p {
		switch v := elem.(type) {
		case string:
			if i > 0 {
				out += "."
			}
			out += v
		case int:
			out += "[" + strconv.Itoa(v) + "]"
		}
	}
	return out
}

// Error is an execution-time failure tied to a position in the response.
type Error struct {
	Message string `json:"message"`
	Path    Path   `json:"path,omitempty"`
}

func (e Error) Error() string {
	return e.Message
}

// Result is the envelope produced by one execute action. Data and Errors
// may both be present: a failed field nulls out its slot while the rest of
// the response survives.
type Result struct {
	Data   any     `json:"data"`
	Errors []Error `json:"errors,omitempty"`
}

// HasErrors reports whether any execution error was recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

func errorResult(message string) *Result {
	return &Result{Errors: []Error{{Message: message}}}
}
