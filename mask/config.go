/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mask

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML shape accepted by LoadRules.
type ruleFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Placeholder string `yaml:"placeholder"`
}

// LoadRules decodes rules from YAML.
//
// Structural problems (unknown keys, missing pattern or placeholder) are
// reported as errors. A pattern that does not compile is not: the rule is
// returned as a no-op and can be detected with Rule.Valid.
//
// An empty document yields no rules and no error.
func LoadRules(r io.Reader) ([]Rule, error) {
	var f ruleFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("mask: decode rules: %w", err)
	}

	rules := make([]Rule, 0, len(f.Rules))
	for i, s := range f.Rules {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("rule[%d]", i)
		}
		if s.Pattern == "" {
			return nil, fmt.Errorf("mask: rule %q: empty pattern", name)
		}
		if s.Placeholder == "" {
			return nil, fmt.Errorf("mask: rule %q: empty placeholder", name)
		}
		rules = append(rules, NewRule(name, s.Pattern, s.Placeholder))
	}
	return rules, nil
}

// LoadFile reads rules from a YAML file, see LoadRules.
func LoadFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mask: open rules: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadRules(f)
}
