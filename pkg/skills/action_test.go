package skills

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pythonAction = `#!/usr/bin/env python3
import math
print(math.pi)
`

func newTestSkill(t *testing.T) Layout {
	t.Helper()
	layout := NewLayout(t.TempDir())
	require.NoError(t, CreateSkill(layout, "math-tools", "Mathematical helpers"))
	return layout
}

func TestImplementAction(t *testing.T) {
	t.Run("writes executable script verbatim", func(t *testing.T) {
		layout := newTestSkill(t)

		result, err := ImplementAction(layout, "math-tools", "calculate_pi", "Print pi", pythonAction)
		require.NoError(t, err)

		expected := filepath.Join(layout.ScriptsDir("math-tools"), "calculate_pi.py")
		assert.Equal(t, expected, result.ScriptPath)

		content, err := os.ReadFile(result.ScriptPath)
		require.NoError(t, err)
		assert.Equal(t, pythonAction, string(content))

		info, err := os.Stat(result.ScriptPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})

	t.Run("appends documentation block", func(t *testing.T) {
		layout := newTestSkill(t)

		result, err := ImplementAction(layout, "math-tools", "calculate_pi", "Print pi", pythonAction)
		require.NoError(t, err)
		assert.True(t, result.DocUpdated)

		content, err := os.ReadFile(layout.SkillFile("math-tools"))
		require.NoError(t, err)

		doc := string(content)
		assert.Contains(t, doc, "### Calculate Pi")
		assert.Contains(t, doc, "Print pi")
		assert.Contains(t, doc, "```bash\n{baseDir}/scripts/calculate_pi.py\n```")
	})

	t.Run("duplicate action overwrites script but documents once", func(t *testing.T) {
		layout := newTestSkill(t)

		_, err := ImplementAction(layout, "math-tools", "calculate_pi", "Print pi", pythonAction)
		require.NoError(t, err)

		updated := "#!/usr/bin/env python3\nprint(3.14159)\n"
		result, err := ImplementAction(layout, "math-tools", "calculate_pi", "Print pi", updated)
		require.NoError(t, err)
		assert.True(t, result.DocSkipped)
		assert.False(t, result.DocUpdated)

		content, err := os.ReadFile(result.ScriptPath)
		require.NoError(t, err)
		assert.Equal(t, updated, string(content))

		doc, err := os.ReadFile(layout.SkillFile("math-tools"))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(doc), "### Calculate Pi"))
	})

	t.Run("missing skill creates nothing", func(t *testing.T) {
		layout := NewLayout(t.TempDir())

		_, err := ImplementAction(layout, "nope", "calculate_pi", "Print pi", pythonAction)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSkillNotFound)

		_, statErr := os.Stat(layout.SkillDir("nope"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("recreates missing scripts directory", func(t *testing.T) {
		layout := newTestSkill(t)
		require.NoError(t, os.RemoveAll(layout.ScriptsDir("math-tools")))

		result, err := ImplementAction(layout, "math-tools", "calculate_pi", "Print pi", pythonAction)
		require.NoError(t, err)
		assert.FileExists(t, result.ScriptPath)
	})

	t.Run("inserts Actions heading when absent", func(t *testing.T) {
		layout := NewLayout(t.TempDir())
		require.NoError(t, os.MkdirAll(layout.SkillDir("bare"), 0o755))
		bare := "---\nname: bare\ndescription: No actions section yet\n---\n\n# Bare\n\nNo actions section yet\n"
		require.NoError(t, os.WriteFile(layout.SkillFile("bare"), []byte(bare), 0o644))

		result, err := ImplementAction(layout, "bare", "do_thing", "Do the thing", "echo done")
		require.NoError(t, err)
		assert.True(t, result.DocUpdated)

		doc, err := os.ReadFile(layout.SkillFile("bare"))
		require.NoError(t, err)
		assert.Contains(t, string(doc), "\n## Actions\n")
		assert.Contains(t, string(doc), "### Do Thing")
	})

	t.Run("SKILL.md failure is non-fatal", func(t *testing.T) {
		layout := newTestSkill(t)
		require.NoError(t, os.Remove(layout.SkillFile("math-tools")))

		result, err := ImplementAction(layout, "math-tools", "calculate_pi", "Print pi", pythonAction)
		require.NoError(t, err)
		assert.Error(t, result.DocErr)
		assert.False(t, result.DocUpdated)
		assert.FileExists(t, result.ScriptPath)
	})
}

func TestScriptExt(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"python shebang", "#!/usr/bin/env python3\nprint('hi')", ".py"},
		{"python import", "import os\nprint(os.getcwd())", ".py"},
		{"node shebang", "#!/usr/bin/env node\nconsole.log('hi')", ".js"},
		{"js const", "const fs = require('fs')", ".js"},
		{"bash shebang", "#!/bin/bash\necho hi", ".sh"},
		{"unrecognized shebang", "#!/usr/bin/env ruby\nputs 'hi'", ".sh"},
		{"plain text", "echo hi", ".sh"},
		{"leading whitespace trimmed", "\n\n#!/usr/bin/env python\nprint('hi')", ".py"},
		{"empty code", "", ".sh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScriptExt(tt.code))
		})
	}
}
