package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonMergesAttributes(t *testing.T) {
	button := NewButton("url", "Visit Website", map[string]any{
		"url":         "https://example.com",
		"customField": "custom_value",
	})
	data := button.ToMap()

	assert.Equal(t, "url", data["type"])
	assert.Equal(t, "Visit Website", data["displayText"])
	assert.Equal(t, "https://example.com", data["url"])
	assert.Equal(t, "custom_value", data["customField"])
	assert.Len(t, data, 4)
}

func TestButtonWithoutAttributes(t *testing.T) {
	assert.Len(t, NewButton("reply", "Simple", nil).ToMap(), 2)
	assert.Len(t, NewButton("reply", "Empty", map[string]any{}).ToMap(), 2)
}

func TestButtonAttributeOverridesBaseKey(t *testing.T) {
	data := NewButton("reply", "Yes", map[string]any{"type": "copy"}).ToMap()

	assert.Equal(t, "copy", data["type"])
	assert.Equal(t, "Yes", data["displayText"])
}

func TestButtonCopiesAttributes(t *testing.T) {
	attrs := map[string]any{"id": "btn-yes"}
	button := NewButton("reply", "Yes", attrs)
	attrs["id"] = "changed"

	assert.Equal(t, "btn-yes", button.ToMap()["id"])
}

func TestCallAlwaysHasThreeKeys(t *testing.T) {
	data := NewCall("", false, 0).ToMap()

	assert.Equal(t, map[string]any{"number": "", "isVideo": false, "callDuration": 0}, data)

	body, err := json.Marshal(NewCall("5511888888888", true, 120))
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":"5511888888888","isVideo":true,"callDuration":120}`, string(body))
}

func TestContactOptionalFields(t *testing.T) {
	t.Run("required only", func(t *testing.T) {
		data := NewContact("John Doe", "5511999999999", "5511999999999").ToMap()
		assert.Len(t, data, 3)
		assert.NotContains(t, data, "organization")
		assert.NotContains(t, data, "email")
		assert.NotContains(t, data, "url")
	})

	t.Run("all fields", func(t *testing.T) {
		data := NewContact("Jane Smith", "5511888888888", "5511888888888",
			WithOrganization("ACME Corp"), WithEmail("jane@acme.com"), WithURL("https://acme.com")).ToMap()
		assert.Len(t, data, 6)
		assert.Equal(t, "ACME Corp", data["organization"])
		assert.Equal(t, "jane@acme.com", data["email"])
		assert.Equal(t, "https://acme.com", data["url"])
	})

	t.Run("email only", func(t *testing.T) {
		data := NewContact("Alice", "1", "1", WithEmail("alice@example.com")).ToMap()
		assert.Len(t, data, 4)
		assert.NotContains(t, data, "organization")
		assert.NotContains(t, data, "url")
	})

	t.Run("empty strings are kept", func(t *testing.T) {
		data := NewContact("Test User", "123456", "123456", WithOrganization(""), WithEmail(""), WithURL("")).ToMap()
		assert.Len(t, data, 6)
		assert.Equal(t, "", data["organization"])
		assert.Equal(t, "", data["email"])
		assert.Equal(t, "", data["url"])
	})
}

func TestContactMarshalJSON(t *testing.T) {
	body, err := json.Marshal(NewContact("José María", "55", "+55 (11) 4444-4444", WithURL("")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"fullName":"José María","wuid":"55","phoneNumber":"+55 (11) 4444-4444","url":""}`, string(body))
}

func TestNewLabel(t *testing.T) {
	for _, action := range []string{"add", "remove"} {
		label, err := NewLabel("5511999999999", "label_123", action)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"number":  "5511999999999",
			"labelId": "label_123",
			"action":  action,
		}, label.ToMap())
	}
}

func TestNewLabelRejectsInvalidAction(t *testing.T) {
	for _, action := range []string{"", "ADD", " add ", "Remove", "delete", "update", "invalid"} {
		_, err := NewLabel("5511999999999", "label_123", action)
		assert.ErrorIs(t, err, ErrInvalidLabelAction, "action %q", action)
	}
}

func TestLabelMarshalJSON(t *testing.T) {
	label, err := NewLabel("", "", "remove")
	require.NoError(t, err)

	body, err := json.Marshal(label)
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":"","labelId":"","action":"remove"}`, string(body))
}

func TestListRow(t *testing.T) {
	data := NewListRow("Opção 1", "", "opt1").ToMap()

	assert.Equal(t, map[string]any{"title": "Opção 1", "description": "", "rowId": "opt1"}, data)
}

func TestListSectionMixedRows(t *testing.T) {
	section := NewListSection("Mixed Section",
		NewListRow("Object Row", "Object Description", "obj_row"),
		RowMap{"title": "Array Row", "description": "Array Description", "rowId": "arr_row"},
		NewListRow("Last", "Last Description", "last"),
	)
	data := section.ToMap()

	rows := data["rows"].([]map[string]any)
	require.Len(t, rows, 3)
	assert.Equal(t, "Mixed Section", data["title"])
	assert.Equal(t, "obj_row", rows[0]["rowId"])
	assert.Equal(t, map[string]any{"title": "Array Row", "description": "Array Description", "rowId": "arr_row"}, rows[1])
	assert.Equal(t, "last", rows[2]["rowId"])
}

func TestListSectionEmptyRows(t *testing.T) {
	section := NewListSection("Empty Section")
	data := section.ToMap()

	assert.Len(t, data, 2)
	assert.NotNil(t, data["rows"])
	assert.Len(t, data["rows"], 0)

	body, err := json.Marshal(section)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Empty Section","rows":[]}`, string(body))
}

func TestListSectionIsStable(t *testing.T) {
	section := NewListSection("Stable", NewListRow("A", "a", "1"))

	first := section.ToMap()
	first["rows"].([]map[string]any)[0] = map[string]any{"title": "mutated"}

	assert.Equal(t, "A", section.ToMap()["rows"].([]map[string]any)[0]["title"])

	// Alterar o mapa da linha devolvida também não pode vazar para a seção.
	section.Rows()[0]["title"] = "hacked"
	section.ToMap()["rows"].([]map[string]any)[0]["rowId"] = "99"

	assert.Equal(t, map[string]any{"title": "A", "description": "a", "rowId": "1"}, section.Rows()[0])
}

func TestListSectionRowMapIsCopied(t *testing.T) {
	raw := RowMap{"title": "Raw", "rowId": "r1"}
	section := NewListSection("Copy", raw)

	raw["title"] = "changed"

	assert.Equal(t, "Raw", section.Rows()[0]["title"])
}

func TestListSectionNilRow(t *testing.T) {
	var missing Row

	assert.NotPanics(t, func() {
		section := NewListSection("Nil", NewListRow("A", "a", "1"), missing, RowMap{"rowId": "last"})
		rows := section.Rows()

		require.Len(t, rows, 3)
		assert.Equal(t, map[string]any{}, rows[1])
		assert.Equal(t, "last", rows[2]["rowId"])
	})

	body, err := json.Marshal(NewListSection("t", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","rows":[{}]}`, string(body))
}

func TestQuotedMessage(t *testing.T) {
	key := map[string]any{"remoteJid": "5511999999999@c.us", "fromMe": false, "id": "12345"}

	t.Run("nil message is omitted", func(t *testing.T) {
		data := NewQuotedMessage(key, nil).ToMap()
		assert.Len(t, data, 1)
		assert.Equal(t, key, data["key"])
		assert.NotContains(t, data, "message")
	})

	t.Run("empty message is kept", func(t *testing.T) {
		data := NewQuotedMessage(key, map[string]any{}).ToMap()
		assert.Len(t, data, 2)
		assert.Equal(t, map[string]any{}, data["message"])
	})

	t.Run("nil key becomes empty object", func(t *testing.T) {
		body, err := json.Marshal(NewQuotedMessage(nil, map[string]any{"conversation": "oi"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"key":{},"message":{"conversation":"oi"}}`, string(body))
	})

	t.Run("maps are not shared", func(t *testing.T) {
		input := map[string]any{"id": "ABC"}
		message := map[string]any{"conversation": "oi"}
		quoted := NewQuotedMessage(input, message)

		input["id"] = "changed"
		message["conversation"] = "changed"
		quoted.ToMap()["key"].(map[string]any)["id"] = "mutated"
		quoted.ToMap()["message"].(map[string]any)["conversation"] = "mutated"

		data := quoted.ToMap()
		assert.Equal(t, map[string]any{"id": "ABC"}, data["key"])
		assert.Equal(t, map[string]any{"conversation": "oi"}, data["message"])
	})
}

func TestNewDelivery(t *testing.T) {
	d, err := NewDelivery("main", "sendText", "5511999999999", map[string]any{"text": "oi"})
	require.NoError(t, err)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, DeliveryPending, d.Status)
	assert.False(t, d.CreatedAt.IsZero())

	_, err = NewDelivery("", "sendText", "1", map[string]any{})
	assert.EqualError(t, err, "instance is required")

	_, err = NewDelivery("main", "sendText", "1", nil)
	assert.EqualError(t, err, "body is required")
}
