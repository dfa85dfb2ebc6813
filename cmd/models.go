package cmd

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type ValidationError struct {
	Message   string     `json:"message"`
	Rule      string     `json:"rule,omitempty"`
	Locations []Location `json:"locations,omitempty"`
}

// PaneReport is the json shape for one pane's classification: "ok",
// "not_applicable", or "invalid" with the error list.
type PaneReport struct {
	Status string            `json:"status"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationReport is the cross-validation section of a check report. It is
// omitted entirely when either pane holds no artifact, which is a different
// state from "valid with zero errors".
type ValidationReport struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type CheckReport struct {
	Schema     PaneReport        `json:"schema"`
	Operations PaneReport        `json:"operations"`
	Validation *ValidationReport `json:"validation,omitempty"`
}

type GeneratorInfo struct {
	Namespace string `json:"namespace"`
	Function  string `json:"function"`
}
