package domain

import (
	"fmt"
	"regexp"
)

// variablePattern matches {{name}} placeholders; surrounding blanks inside the braces are allowed.
var variablePattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_.-]*)\s*\}\}`)

// Variable is a named placeholder of a command template.
type Variable struct {
	Default string
	Name    string
}

// CommandTask is the executable unit of a leaf: a template plus its placeholders
// in first-occurrence order.
type CommandTask struct {
	Template  string
	Variables []Variable
}

// ParseCommandTask extracts the placeholders of template.
// Repeated placeholders map to a single variable.
func ParseCommandTask(template string) CommandTask {
	task := CommandTask{Template: template}
	seen := make(map[string]bool)
	for _, match := range variablePattern.FindAllStringSubmatch(template, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		task.Variables = append(task.Variables, Variable{Name: name})
	}
	return task
}

// WithDefaults returns a copy of the task with default values attached.
// Every key of defaults must name a variable of the template.
func (t CommandTask) WithDefaults(defaults map[string]string) (CommandTask, error) {
	vars := make([]Variable, len(t.Variables))
	copy(vars, t.Variables)

	for _, name := range sortedKeys(defaults) {
		idx := t.indexOf(name)
		if idx < 0 {
			return t, fmt.Errorf("default for %q: %w", name, ErrUnknownVariable)
		}
		vars[idx].Default = defaults[name]
	}

	t.Variables = vars
	return t, nil
}

// HasVariables reports whether the task needs form input before it can run.
func (t CommandTask) HasVariables() bool {
	return len(t.Variables) > 0
}

// HasVariable reports whether name is a declared placeholder.
func (t CommandTask) HasVariable(name string) bool {
	return t.indexOf(name) >= 0
}

// InitialValues maps every variable to its default (empty when none was given).
func (t CommandTask) InitialValues() map[string]string {
	values := make(map[string]string, len(t.Variables))
	for _, v := range t.Variables {
		values[v.Name] = v.Default
	}
	return values
}

// ToExecutableString substitutes values verbatim into the template.
// Values are not escaped; see ToShellString for a quoting variant.
func (t CommandTask) ToExecutableString(values map[string]string) (string, error) {
	return t.ToShellString(values, nil)
}

// ToShellString substitutes values into the template, passing each value through
// quote when quote is not nil. A variable without a value yields a TemplateError.
func (t CommandTask) ToShellString(values map[string]string, quote func(string) string) (string, error) {
	for _, v := range t.Variables {
		if _, ok := values[v.Name]; !ok {
			return "", &TemplateError{Variable: v.Name}
		}
	}

	return variablePattern.ReplaceAllStringFunc(t.Template, func(placeholder string) string {
		name := variablePattern.FindStringSubmatch(placeholder)[1]
		value := values[name]
		if quote != nil {
			return quote(value)
		}
		return value
	}), nil
}

func (t CommandTask) indexOf(name string) int {
	for i, v := range t.Variables {
		if v.Name == name {
			return i
		}
	}
	return -1
}
