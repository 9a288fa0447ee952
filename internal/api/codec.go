package api

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/yourusername/tienlen-rules/internal/tienlen"
)

// decodePayload parses an RPC JSON payload into out. The payload must be a JSON object
// and may only carry the keys out declares.
func decodePayload(payload string, out interface{}) error {
	if strings.TrimSpace(payload) == "" {
		payload = "{}"
	}

	var st structpb.Struct
	if err := protojson.Unmarshal([]byte(payload), &st); err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		TagName:     "json",
		Result:      out,
	})
	if err != nil {
		return fmt.Errorf("failed to build payload decoder: %w", err)
	}
	if err := decoder.Decode(st.AsMap()); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

// encodeResponse serialises a response map as JSON.
func encodeResponse(resp map[string]interface{}) (string, error) {
	st, err := structpb.NewStruct(resp)
	if err != nil {
		return "", fmt.Errorf("failed to build response: %w", err)
	}
	data, err := protojson.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(data), nil
}

func classificationFields(c tienlen.Classification) map[string]interface{} {
	return map[string]interface{}{
		"rank":      c.Rank.String(),
		"strength":  c.Rank.Strength(),
		"tie_break": c.TieBreak.String(),
	}
}
