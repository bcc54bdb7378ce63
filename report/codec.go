package report

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Encode returns the compact JSON encoding of r.
func Encode(r *Report) ([]byte, error) {
	data, err := sonic.ConfigStd.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	return data, nil
}

// EncodeIndent returns the JSON encoding of r indented by two spaces.
func EncodeIndent(r *Report) ([]byte, error) {
	data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	return data, nil
}

// Decode parses a JSON report as produced by Encode.
func Decode(data []byte) (*Report, error) {
	var r Report
	if err := sonic.ConfigStd.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	return &r, nil
}
