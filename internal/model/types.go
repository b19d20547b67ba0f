package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// RGB is an average color as three 8-bit channels. Valid is false when
// the moment has no color, which maps to a NULL column and a JSON null.
type RGB struct {
	R, G, B uint8
	Valid   bool
}

func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b, Valid: true}
}

func (c RGB) Channels() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

func (c RGB) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal([3]uint8{c.R, c.G, c.B})
}

func (c *RGB) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = RGB{}
		return nil
	}
	var arr [3]uint8
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("unmarshal RGB: %w", err)
	}
	*c = RGB{R: arr[0], G: arr[1], B: arr[2], Valid: true}
	return nil
}

func (c RGB) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return pq.Int64Array{int64(c.R), int64(c.G), int64(c.B)}.Value()
}

func (c *RGB) Scan(src interface{}) error {
	if src == nil {
		*c = RGB{}
		return nil
	}
	var arr pq.Int64Array
	if err := arr.Scan(src); err != nil {
		return fmt.Errorf("RGB.Scan: %w", err)
	}
	if len(arr) != 3 {
		return fmt.Errorf("RGB.Scan: expected 3 channels, got %d", len(arr))
	}
	*c = RGB{R: uint8(arr[0]), G: uint8(arr[1]), B: uint8(arr[2]), Valid: true}
	return nil
}

// Embedding wraps a pgvector column that may be NULL for moments
// not yet embedded.
type Embedding struct {
	Vector pgvector.Vector
	Valid  bool
}

func NewEmbedding(vals []float32) Embedding {
	return Embedding{Vector: pgvector.NewVector(vals), Valid: true}
}

func (e Embedding) Slice() []float32 {
	if !e.Valid {
		return nil
	}
	return e.Vector.Slice()
}

func (e Embedding) Value() (driver.Value, error) {
	if !e.Valid {
		return nil, nil
	}
	return e.Vector.Value()
}

func (e *Embedding) Scan(src interface{}) error {
	if src == nil {
		*e = Embedding{}
		return nil
	}
	if err := e.Vector.Scan(src); err != nil {
		return fmt.Errorf("Embedding.Scan: %w", err)
	}
	e.Valid = true
	return nil
}

// FeatureMap is the opaque detailed-feature document attached to a
// moment; stored as JSONB, never interpreted.
type FeatureMap map[string]any

func (f FeatureMap) Value() (driver.Value, error) {
	if f == nil {
		f = FeatureMap{}
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal FeatureMap: %w", err)
	}
	return b, nil
}

func (f *FeatureMap) Scan(src interface{}) error {
	if src == nil {
		*f = FeatureMap{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("FeatureMap.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, f); err != nil {
		return fmt.Errorf("unmarshal FeatureMap: %w", err)
	}
	return nil
}
