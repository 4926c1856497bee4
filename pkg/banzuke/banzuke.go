// Copyright © 2025 the sumo-ilp authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package banzuke loads wrestler rosters and disallowed-matchup lists for
// the scheduler. A names file lists exactly N entries of the form
// [name, rank, east?]; a conflicts file lists exactly N entries, entry i
// holding the indices j > i that wrestler i may not face. Both formats are
// accepted as JSON (the canonical layout) or YAML, chosen by file extension.
package banzuke

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/slyubomirsky/sumo-ilp/pkg/basho"
)

var (
	// ErrInvalidRoster indicates a malformed or wrong-length names file.
	ErrInvalidRoster = errors.New("banzuke: invalid names file")
	// ErrInvalidConflicts indicates a malformed or wrong-length conflicts file.
	ErrInvalidConflicts = errors.New("banzuke: invalid conflicts file")
)

// Rikishi is one roster entry in banzuke order: lower position means higher
// rank.
type Rikishi struct {
	Name string
	Rank string
	East bool
}

// UnmarshalJSON accepts the [name, rank, east] triple layout.
func (r *Rikishi) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: entry must be [name, rank, true if east else false]", ErrInvalidRoster)
	}
	if err := json.Unmarshal(raw[0], &r.Name); err != nil {
		return fmt.Errorf("%w: name must be a string", ErrInvalidRoster)
	}
	if err := json.Unmarshal(raw[1], &r.Rank); err != nil {
		return fmt.Errorf("%w: rank must be a string", ErrInvalidRoster)
	}
	if err := json.Unmarshal(raw[2], &r.East); err != nil {
		return fmt.Errorf("%w: side must be a boolean", ErrInvalidRoster)
	}
	return nil
}

// UnmarshalYAML accepts the same triple layout from YAML rosters.
func (r *Rikishi) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw []interface{}
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: entry must be [name, rank, true if east else false]", ErrInvalidRoster)
	}
	name, nameOK := raw[0].(string)
	rank, rankOK := raw[1].(string)
	east, eastOK := raw[2].(bool)
	if !nameOK || !rankOK || !eastOK {
		return fmt.Errorf("%w: entry must be [name, rank, true if east else false]", ErrInvalidRoster)
	}
	r.Name, r.Rank, r.East = name, rank, east
	return nil
}

// LoadNames reads a roster of exactly n wrestlers from path.
func LoadNames(path string, n int) ([]Rikishi, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	var roster []Rikishi
	if err := unmarshalByExt(path, data, &roster); err != nil {
		if errors.Is(err, ErrInvalidRoster) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	if len(roster) != n {
		return nil, fmt.Errorf("%w: there must be %d names, %d provided", ErrInvalidRoster, n, len(roster))
	}
	return roster, nil
}

// LoadConflicts reads disallowed matchups for exactly n wrestlers from path
// and returns them as canonical pairs.
func LoadConflicts(path string, n int) ([]basho.Pair, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	var entries [][]int
	if err := unmarshalByExt(path, data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConflicts, err)
	}
	if len(entries) != n {
		return nil, fmt.Errorf("%w: there must be %d entries, %d provided", ErrInvalidConflicts, n, len(entries))
	}

	var pairs []basho.Pair
	for i, conflicts := range entries {
		for _, j := range conflicts {
			if j <= i {
				return nil, fmt.Errorf("%w: entry %d of conflicts for %d is not greater than %d",
					ErrInvalidConflicts, j, i, i)
			}
			if j >= n {
				return nil, fmt.Errorf("%w: entry %d of conflicts for %d is not a wrestler index",
					ErrInvalidConflicts, j, i)
			}
			pairs = append(pairs, basho.Pair{Low: i, High: j})
		}
	}
	return pairs, nil
}

func unmarshalByExt(path string, data []byte, v interface{}) error {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}

func readConfigFile(path string) ([]byte, error) {
	return os.ReadFile(Resolve(path))
}
