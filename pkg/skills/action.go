package skills

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrSkillNotFound indicates that the named skill directory does not exist
// under the skills root. Detect it with errors.Is.
var ErrSkillNotFound = errors.New("skill not found")

// extRule maps a literal code prefix to a script file extension.
type extRule struct {
	marker string
	ext    string
}

// extRules is the ordered classification table for script content sniffing.
// First match wins; anything unrecognized falls back to a shell script.
var extRules = []extRule{
	{marker: "#!/usr/bin/env python", ext: ".py"},
	{marker: "import ", ext: ".py"},
	{marker: "#!/usr/bin/env node", ext: ".js"},
	{marker: "const ", ext: ".js"},
}

const defaultScriptExt = ".sh"

// ScriptExt infers a file extension from the leading content of code. This is
// a best-effort heuristic over the trimmed prefix, not a syntax check.
func ScriptExt(code string) string {
	trimmed := strings.TrimSpace(code)
	for _, rule := range extRules {
		if strings.HasPrefix(trimmed, rule.marker) {
			return rule.ext
		}
	}
	return defaultScriptExt
}

// ActionResult reports what ImplementAction wrote.
type ActionResult struct {
	ScriptPath string // path of the executable script that was written
	DocUpdated bool   // a new documentation block was appended to SKILL.md
	DocSkipped bool   // the action's heading was already present, append skipped
	DocErr     error  // non-fatal SKILL.md update failure, script still written
}

// ImplementAction adds a named action to an existing skill: it writes code
// verbatim to an executable script in the skill's scripts directory and
// appends a documentation block to SKILL.md.
//
// The script write is the critical path; any failure there is returned as an
// error. The SKILL.md update is best effort: a duplicate heading or an I/O
// failure is reported on the result without failing the operation, so the
// script artifact always survives.
func ImplementAction(layout Layout, skillName, actionName, description, code string) (*ActionResult, error) {
	skillDir := layout.SkillDir(skillName)
	if _, err := os.Stat(skillDir); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSkillNotFound, "%q at %s", skillName, skillDir)
		}
		return nil, errors.Wrap(err, "failed to stat skill directory")
	}

	// Older scaffolds may predate the scripts directory.
	scriptsDir := layout.ScriptsDir(skillName)
	if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create scripts directory")
	}

	fileName := actionName + ScriptExt(code)
	scriptPath := filepath.Join(scriptsDir, fileName)
	if err := os.WriteFile(scriptPath, []byte(code), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to write action script")
	}
	// WriteFile only applies the mode on creation; keep overwrites executable.
	if err := os.Chmod(scriptPath, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to mark action script executable")
	}

	result := &ActionResult{ScriptPath: scriptPath}
	if err := appendActionDoc(layout.SkillFile(skillName), actionName, description, fileName, result); err != nil {
		result.DocErr = err
	}
	return result, nil
}

// appendActionDoc appends the action's documentation block to SKILL.md,
// inserting an Actions heading first when the document lacks one. A document
// that already contains the action's heading is left untouched.
func appendActionDoc(skillFile, actionName, description, fileName string, result *ActionResult) error {
	data, err := os.ReadFile(skillFile)
	if err != nil {
		return errors.Wrap(err, "failed to read SKILL.md")
	}
	content := string(data)

	heading := "### " + titleize(actionName, '_')
	if strings.Contains(content, heading) {
		result.DocSkipped = true
		return nil
	}

	var block strings.Builder
	if !strings.Contains(content, actionsHeading) {
		block.WriteString("\n" + actionsHeading + "\n")
	}
	block.WriteString("\n")
	block.WriteString(heading + "\n")
	block.WriteString(description + "\n")
	block.WriteString("```bash\n")
	block.WriteString("{baseDir}/" + scriptsDirName + "/" + fileName + "\n")
	block.WriteString("```\n")

	f, err := os.OpenFile(skillFile, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to open SKILL.md for append")
	}
	defer f.Close()

	if _, err := f.WriteString(block.String()); err != nil {
		return errors.Wrap(err, "failed to append to SKILL.md")
	}

	result.DocUpdated = true
	return nil
}
