package response_models

// LocationAck carries the advisory zone alert, if the reported point fell
// inside a danger zone. The polling client shows Alert verbatim.
type LocationAck struct {
	Alert string `json:"alert,omitempty"`
}
