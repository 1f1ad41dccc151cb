package entity

import (
	"encoding/json"
	"maps"
)

// QuotedMessage referencia a mensagem sendo respondida.
// Key vai sempre (nil vira {}); Message só vai quando não é nil, mesmo que vazio.
// Os mapas são copiados na construção e no ToMap (maps.Clone preserva nil).
type QuotedMessage struct {
	Key     map[string]any
	Message map[string]any
}

func NewQuotedMessage(key, message map[string]any) QuotedMessage {
	return QuotedMessage{Key: maps.Clone(key), Message: maps.Clone(message)}
}

func (q QuotedMessage) ToMap() map[string]any {
	key := maps.Clone(q.Key)
	if key == nil {
		key = map[string]any{}
	}

	data := map[string]any{"key": key}
	if q.Message != nil {
		data["message"] = maps.Clone(q.Message)
	}
	return data
}

func (q QuotedMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.ToMap())
}
