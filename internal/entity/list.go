package entity

import (
	"encoding/json"
	"maps"
)

// ListRow é uma opção dentro de uma seção de lista.
type ListRow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RowID       string `json:"rowId"`
}

func NewListRow(title, description, rowID string) ListRow {
	return ListRow{Title: title, Description: description, RowID: rowID}
}

func (r ListRow) ToMap() map[string]any {
	return map[string]any{
		"title":       r.Title,
		"description": r.Description,
		"rowId":       r.RowID,
	}
}

func (r ListRow) rowMap() map[string]any { return r.ToMap() }

// RowMap é uma linha já montada pelo chamador; vai para o payload como está.
type RowMap map[string]any

func (r RowMap) rowMap() map[string]any {
	data := make(map[string]any, len(r))
	maps.Copy(data, r)
	return data
}

// Row é fechado: só ListRow e RowMap o implementam.
type Row interface {
	rowMap() map[string]any
}

// ListSection agrupa linhas sob um título. As linhas são normalizadas na construção, na ordem recebida.
type ListSection struct {
	Title string
	rows  []map[string]any
}

func NewListSection(title string, rows ...Row) ListSection {
	normalized := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			// Row nil vira linha vazia para não deslocar as posições seguintes.
			normalized = append(normalized, map[string]any{})
			continue
		}
		normalized = append(normalized, row.rowMap())
	}
	return ListSection{Title: title, rows: normalized}
}

// Rows devolve cópias: mexer no resultado não altera a seção.
func (s ListSection) Rows() []map[string]any {
	rows := make([]map[string]any, len(s.rows))
	for i, row := range s.rows {
		rows[i] = maps.Clone(row)
	}
	return rows
}

func (s ListSection) ToMap() map[string]any {
	return map[string]any{
		"title": s.Title,
		"rows":  s.Rows(),
	}
}

func (s ListSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToMap())
}
