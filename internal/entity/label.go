package entity

import "errors"

type LabelAction string

const (
	LabelAdd    LabelAction = "add"
	LabelRemove LabelAction = "remove"
)

var ErrInvalidLabelAction = errors.New("action must be 'add' or 'remove'")

// Label associa (ou remove) uma etiqueta de um chat.
type Label struct {
	Number  string      `json:"number"`
	LabelID string      `json:"labelId"`
	Action  LabelAction `json:"action"`
}

// NewLabel valida a action na construção. Comparação exata: sem trim, sem case-folding.
func NewLabel(number, labelID, action string) (Label, error) {
	switch LabelAction(action) {
	case LabelAdd, LabelRemove:
	default:
		return Label{}, ErrInvalidLabelAction
	}

	return Label{
		Number:  number,
		LabelID: labelID,
		Action:  LabelAction(action),
	}, nil
}

func (l Label) ToMap() map[string]any {
	return map[string]any{
		"number":  l.Number,
		"labelId": l.LabelID,
		"action":  string(l.Action),
	}
}
