package wheel

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// File is the on-disk wheel layout
//
//	segments: [LOSE_TURN, BANKRUPT, 500, 550, ...]
//
// Integers are cash values. The legacy sentinels -1 and 0 mean BANKRUPT and
// LOSE A TURN respectively, so a $0 wedge is written with its dollar sign.
type File struct {
	Segments []string `yaml:"segments"`
}

// LoadFile reads a wheel layout from a YAML file
func LoadFile(path string) ([]model.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading wheel file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML wheel layout
func Parse(data []byte) ([]model.Segment, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parsing wheel: %w", model.ErrConfiguration, err)
	}
	if len(f.Segments) == 0 {
		return nil, fmt.Errorf("%w: wheel has no segments", model.ErrConfiguration)
	}

	segments := make([]model.Segment, 0, len(f.Segments))
	for i, raw := range f.Segments {
		s, err := ParseSegment(raw)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segments = append(segments, s)
	}
	return segments, nil
}

// ParseSegment decodes a single wedge
func ParseSegment(raw string) (model.Segment, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	name, dollars := strings.CutPrefix(name, "$")
	if !dollars {
		switch strings.NewReplacer(" ", "_", "-", "_").Replace(name) {
		case "BANKRUPT", "-1":
			return model.Bankrupt, nil
		case "LOSE_TURN", "LOSE_A_TURN", "0":
			return model.LoseTurn, nil
		}
	}

	value, err := strconv.Atoi(name)
	if err != nil || value < 0 || (value == 0 && !dollars) {
		return model.Segment{}, fmt.Errorf("%w: invalid segment %q", model.ErrConfiguration, raw)
	}
	return model.Cash(value), nil
}

// Marshal encodes segments in the file layout
func Marshal(segments []model.Segment) ([]byte, error) {
	f := File{Segments: make([]string, len(segments))}
	for i, s := range segments {
		switch s.Kind {
		case model.SegmentBankrupt:
			f.Segments[i] = "BANKRUPT"
		case model.SegmentLoseTurn:
			f.Segments[i] = "LOSE_TURN"
		default:
			f.Segments[i] = "$" + strconv.Itoa(s.Value)
		}
	}
	return yaml.Marshal(f)
}
