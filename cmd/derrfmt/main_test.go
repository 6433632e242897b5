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

package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const ipRules = `
rules:
  - name: ipv4
    pattern: '\d+\.\d+\.\d+\.\d+'
    placeholder: '#.#.#.#'
`

func TestMask_Stdin(t *testing.T) {
	in := "read 42 bytes at 0xdeadbeef\nrequest " + uuid.NewString() + " failed\n"

	out, _, err := run(t, in, "mask")

	require.NoError(t, err)
	assert.Equal(t, "read### bytes at 0x######\nrequest ########-####-####-####-############ failed\n", out)
}

func TestMask_Files(t *testing.T) {
	a := writeFile(t, "a.log", "t=2025-01-02T03:04:05Z x\n")
	b := writeFile(t, "b.log", "plain\n")

	out, _, err := run(t, "", "mask", a, b)

	require.NoError(t, err)
	assert.Equal(t, "t=####-##-##T##:##:##+#### x\nplain\n", out)
}

func TestMask_RulesFlagAndEnv(t *testing.T) {
	rules := writeFile(t, "rules.yaml", ipRules)

	out, _, err := run(t, "from 10.0.0.1\n", "mask", "--rules", rules)
	require.NoError(t, err)
	assert.Equal(t, "from #.#.#.#\n", out)

	t.Setenv("DERRFMT_RULES", rules)
	out, _, err = run(t, "from 10.0.0.2\n", "mask")
	require.NoError(t, err)
	assert.Equal(t, "from #.#.#.#\n", out)
}

func TestMask_ConfigFile(t *testing.T) {
	rules := writeFile(t, "rules.yaml", ipRules)
	cfg := writeFile(t, "derrfmt.yaml", "rules: "+rules+"\n")

	out, _, err := run(t, "from 10.0.0.1\n", "--config", cfg, "mask")

	require.NoError(t, err)
	assert.Equal(t, "from #.#.#.#\n", out)
}

func TestMask_InvalidRuleIsReported(t *testing.T) {
	rules := writeFile(t, "rules.yaml", "rules:\n  - name: broken\n    pattern: '(['\n    placeholder: x\n")

	out, stderr, err := run(t, "0x1\n", "mask", "--rules", rules)

	require.NoError(t, err)
	assert.Equal(t, "0x######\n", out)
	assert.Contains(t, stderr, "rule=broken")
}

func TestMask_Errors(t *testing.T) {
	_, _, err := run(t, "", "mask", filepath.Join(t.TempDir(), "missing.log"))
	assert.Error(t, err)

	bad := writeFile(t, "rules.yaml", "rules:\n  - nope: 1\n")
	_, _, err = run(t, "", "mask", "--rules", bad)
	assert.Error(t, err)

	_, _, err = run(t, "", "--config", filepath.Join(t.TempDir(), "none.yaml"), "mask")
	assert.Error(t, err)
}

func TestErrorsCarryNoSourceLocation(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.log")
	_, _, err := run(t, "", "mask", missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, strings.HasPrefix(err.Error(), "open "+missing), err.Error())

	_, _, err = run(t, "", "--config", missing, "mask")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "read config "+missing), err.Error())

	bad := writeFile(t, "rules.yaml", "rules:\n  - nope: 1\n")
	_, _, err = run(t, "", "mask", "--rules", bad)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "mask: decode rules"), err.Error())
}

func TestGroup(t *testing.T) {
	in := strings.Join([]string{
		"timeout after 10 bytes at 0x1",
		"timeout after 20 bytes at 0x2",
		"request " + uuid.NewString() + " rejected",
		"timeout after 30 bytes at 0x3",
		"request " + uuid.NewString() + " rejected",
		"boot",
	}, "\n")

	out, _, err := run(t, in, "group")

	require.NoError(t, err)
	assert.Equal(t,
		"3\ttimeout after### bytes at 0x######\n"+
			"2\trequest ########-####-####-####-############ rejected\n"+
			"1\tboot\n",
		out)

	out, _, err = run(t, in, "group", "--min", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "boot")
}

func TestVerbose(t *testing.T) {
	f := writeFile(t, "a.log", "x\n")

	_, stderr, err := run(t, "", "mask", "-v", f)

	require.NoError(t, err)
	assert.Contains(t, stderr, "input read")
}
