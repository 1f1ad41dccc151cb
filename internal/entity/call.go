package entity

// Call é o registro de uma chamada ofertada. Os três campos vão sempre no payload.
type Call struct {
	Number       string `json:"number"`
	IsVideo      bool   `json:"isVideo"`
	CallDuration int    `json:"callDuration"`
}

func NewCall(number string, isVideo bool, callDuration int) Call {
	return Call{
		Number:       number,
		IsVideo:      isVideo,
		CallDuration: callDuration,
	}
}

func (c Call) ToMap() map[string]any {
	return map[string]any{
		"number":       c.Number,
		"isVideo":      c.IsVideo,
		"callDuration": c.CallDuration,
	}
}
