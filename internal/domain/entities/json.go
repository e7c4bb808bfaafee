package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap representa uma coluna jsonb com chaves dinâmicas
// (ex: categoryScores, onde as categorias vêm do template e não de um enum).
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("jsonmap: tipo de coluna não suportado")
	}
	return json.Unmarshal(data, m)
}
