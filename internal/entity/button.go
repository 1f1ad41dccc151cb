package entity

import "encoding/json"

// Button é um botão interativo (reply, url, call, pix...).
// Attributes são mesclados por cima de type/displayText: em colisão de chave, o atributo vence.
type Button struct {
	Type        string
	DisplayText string
	Attributes  map[string]any
}

func NewButton(buttonType, displayText string, attributes map[string]any) Button {
	attrs := make(map[string]any, len(attributes))
	for k, v := range attributes {
		attrs[k] = v
	}

	return Button{
		Type:        buttonType,
		DisplayText: displayText,
		Attributes:  attrs,
	}
}

func (b Button) ToMap() map[string]any {
	data := map[string]any{
		"type":        b.Type,
		"displayText": b.DisplayText,
	}
	for k, v := range b.Attributes {
		data[k] = v
	}
	return data
}

func (b Button) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ToMap())
}
