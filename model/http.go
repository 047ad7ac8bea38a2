package model

type ChordSummary struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Key     string   `json:"key"`
	Offsets []int    `json:"offsets"`
	Presets []string `json:"presets"`
}

type OperatorSummary struct {
	Shape uint8 `json:"shape"`
	Ratio uint8 `json:"ratio"`
	Fine  uint8 `json:"fine"`
}

type PresetSummary struct {
	File      string            `json:"file"`
	Name      string            `json:"name"`
	Kind      string            `json:"kind"`
	Offsets   []int             `json:"offsets,omitempty"`
	Algorithm uint8             `json:"algorithm"`
	Operators []OperatorSummary `json:"operators,omitempty"`
	Table     [][]uint8         `json:"table,omitempty"`
}

type ChordDetail struct {
	ChordSummary
	Voicings []PresetSummary `json:"voicings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
