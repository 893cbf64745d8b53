package printify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidShape marks an upstream payload whose data field is missing or
// not an array. Callers are expected to fall back to the mock catalog.
var ErrInvalidShape = errors.New("upstream payload has missing or non-array data field")

// ProductsPage is one page of the upstream product listing.
type ProductsPage struct {
	Data        []RawProduct `json:"data"`
	CurrentPage int          `json:"current_page"`
	LastPage    int          `json:"last_page"`
	Total       int          `json:"total"`
}

// RawProduct is an upstream product record as returned by the print-on-demand
// catalog API. Fields are loosely typed on purpose; normalization happens in
// the catalog package.
type RawProduct struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Images      []RawImage   `json:"images"`
	Variants    []RawVariant `json:"variants"`
	Options     []RawOption  `json:"options"`
	Tags        []string     `json:"tags"`
}

type RawImage struct {
	Src       string `json:"src"`
	IsDefault bool   `json:"is_default"`
	Position  string `json:"position"`
	Alt       string `json:"alt"`
}

type RawVariant struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	// Price arrives untagged; upstream sends the smallest currency fraction.
	Price         float64                `json:"price"`
	IsEnabled     *bool                  `json:"is_enabled"`
	StockQuantity *int                   `json:"quantity"`
	ImageIndex    *int                   `json:"image_index"`
	Options       map[string]OptionValue `json:"options"`
}

type RawOption struct {
	Name   string        `json:"name"`
	Type   string        `json:"type"`
	Values []OptionValue `json:"values"`
}

// OptionValueKind discriminates the shapes an upstream option value can take.
type OptionValueKind int

const (
	KindNull OptionValueKind = iota
	KindString
	KindRecord
	KindList
)

// OptionValue models the loosely typed option values the upstream API emits:
// sometimes a plain string, sometimes an object with a display property
// buried somewhere, sometimes an array of either.
type OptionValue struct {
	Kind   OptionValueKind
	Str    string
	Record map[string]any
	List   []OptionValue
}

func StringValue(s string) OptionValue {
	return OptionValue{Kind: KindString, Str: s}
}

func RecordValue(fields map[string]any) OptionValue {
	return OptionValue{Kind: KindRecord, Record: fields}
}

func ListValue(values ...OptionValue) OptionValue {
	return OptionValue{Kind: KindList, List: values}
}

func (v *OptionValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = OptionValue{Kind: KindNull}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("unmarshal option value string: %w", err)
		}
		*v = OptionValue{Kind: KindString, Str: s}
	case '[':
		var list []OptionValue
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("unmarshal option value list: %w", err)
		}
		*v = OptionValue{Kind: KindList, List: list}
	case '{':
		var record map[string]any
		if err := json.Unmarshal(trimmed, &record); err != nil {
			return fmt.Errorf("unmarshal option value object: %w", err)
		}
		*v = OptionValue{Kind: KindRecord, Record: record}
	default:
		// Numbers and booleans carry their literal text as the display value.
		*v = OptionValue{Kind: KindString, Str: string(trimmed)}
	}
	return nil
}

func (v OptionValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindRecord:
		return json.Marshal(v.Record)
	case KindList:
		list := v.List
		if list == nil {
			list = []OptionValue{}
		}
		return json.Marshal(list)
	default:
		return []byte("null"), nil
	}
}

// ParseProductsPage validates and unmarshals one upstream listing page.
// A payload without an array-valued data field wraps ErrInvalidShape so the
// caller can distinguish a malformed batch from a transport failure.
func ParseProductsPage(data []byte) (*ProductsPage, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("unmarshal products payload: %w", err)
	}

	rawData, ok := shape["data"]
	if !ok {
		return nil, fmt.Errorf("parse products page: %w", ErrInvalidShape)
	}
	if trimmed := bytes.TrimSpace(rawData); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("parse products page: %w", ErrInvalidShape)
	}

	var page ProductsPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("unmarshal products page: %w", err)
	}
	if page.Data == nil {
		page.Data = []RawProduct{}
	}
	return &page, nil
}
