package interval

import (
	"encoding/json"
	"time"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// UnmarshalJSON accepts either a number of seconds or a duration string like "1h30m".
func (i *Interval) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return xerrors.Errorf("interval: %w", err)
		}
		return i.parse(s)
	}

	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return xerrors.Errorf("interval: %w", err)
	}
	*i = Interval(seconds)
	return nil
}

// UnmarshalYAML accepts either a number of seconds or a duration string like "1h30m".
func (i *Interval) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!str" {
		return i.parse(value.Value)
	}

	var seconds float64
	if err := value.Decode(&seconds); err != nil {
		return xerrors.Errorf("interval: %w", err)
	}
	*i = Interval(seconds)
	return nil
}

func (i *Interval) parse(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return xerrors.Errorf("interval: %w", err)
	}
	*i = FromDuration(d)
	return nil
}
