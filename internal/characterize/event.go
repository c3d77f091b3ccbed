package characterize

import (
	"encoding/json"
	"io"
)

// eventNote is the machine-readable failure record the host pipeline
// expects on standard error.
type eventNote struct {
	EventOutcomeInformation string  `json:"eventOutcomeInformation"`
	EventOutcomeDetailNote  string  `json:"eventOutcomeDetailNote"`
	Stdout                  *string `json:"stdout"`
}

// WriteFailureNote emits the failure event for err to w
func WriteFailureNote(w io.Writer, err error) {
	note := eventNote{
		EventOutcomeInformation: "fail",
		EventOutcomeDetailNote:  err.Error(),
	}
	enc := json.NewEncoder(w)
	_ = enc.Encode(note)
}
