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

// Package logrusx plugs the chain format into github.com/sirupsen/logrus.
//
//	log.AddHook(logrusx.NewHook(""))
//	log.WithError(err).Error("create order")
//
// The hook replaces the error field with the formatted chain and adds the
// masked grouping key and the error code next to it.
package logrusx

import (
	"github.com/sirupsen/logrus"

	"dirpx.dev/derrfmt/adapter"
	"dirpx.dev/derrfmt/chain"
)

// Field suffixes appended to the error key.
const (
	GroupSuffix = "_group"
	CodeSuffix  = "_code"
)

// Hook rewrites error fields of log entries.
type Hook struct {
	key    string
	levels []logrus.Level
}

// NewHook returns a hook for the given field key, logrus.ErrorKey when
// empty, firing at levels, or at every level when none are given.
func NewHook(key string, levels ...logrus.Level) *Hook {
	if key == "" {
		key = logrus.ErrorKey
	}
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{key: key, levels: append([]logrus.Level(nil), levels...)}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire implements logrus.Hook. Entries whose field is not an error are left
// untouched.
func (h *Hook) Fire(e *logrus.Entry) error {
	err, ok := e.Data[h.key].(error)
	if !ok || err == nil {
		return nil
	}
	p := chain.Split(err)
	e.Data[h.key] = p.String()
	e.Data[h.key+GroupSuffix] = p.Group
	e.Data[h.key+CodeSuffix] = adapter.CodeOf(err).String()
	return nil
}

var _ logrus.Hook = (*Hook)(nil)
