package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// Command tree field names.
const (
	fieldShortcut = "shortcut"
	fieldName     = "name"
	fieldCmd      = "cmd"
	fieldChildren = "children"
	fieldDefaults = "defaults"
)

// DecodeCommandTree builds the command tree from a generic value as produced by
// JSON, YAML or TOML decoders. path prefixes error locations, e.g. "commands".
//
// An entry with "cmd" is a leaf, an entry with "children" is a node; an entry
// with both or neither is rejected. The root may omit its shortcut.
func DecodeCommandTree(value any, path string) (Command, error) {
	return decodeCommand(value, path, true)
}

func decodeCommand(value any, path string, root bool) (Command, error) {
	fields, ok := asMap(value)
	if !ok {
		return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("expected an object, got %T", value)}
	}

	for key := range fields {
		switch key {
		case fieldShortcut, fieldName, fieldCmd, fieldChildren, fieldDefaults:
		default:
			return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("unknown field %q", key)}
		}
	}

	_, hasCmd := fields[fieldCmd]
	_, hasChildren := fields[fieldChildren]
	switch {
	case hasCmd && hasChildren:
		return nil, &ConfigError{Path: path, Reason: "entry has both \"cmd\" and \"children\""}
	case !hasCmd && !hasChildren:
		return nil, &ConfigError{Path: path, Reason: "entry needs either \"cmd\" or \"children\""}
	}

	shortcut, err := decodeShortcut(fields, path, root)
	if err != nil {
		return nil, err
	}

	name, err := optionalString(fields, fieldName, path)
	if err != nil {
		return nil, err
	}
	if name == "" && !root {
		return nil, &ConfigError{Path: path, Reason: "missing \"name\""}
	}

	if hasCmd {
		return decodeLeaf(fields, path, shortcut, name)
	}

	if _, ok := fields[fieldDefaults]; ok {
		return nil, &ConfigError{Path: path, Reason: "\"defaults\" is only allowed on entries with \"cmd\""}
	}
	return decodeNode(fields, path, shortcut, name)
}

func decodeShortcut(fields map[string]any, path string, root bool) (KeyChord, error) {
	raw, ok := fields[fieldShortcut]
	if !ok {
		if root {
			return KeyChord{}, nil
		}
		return KeyChord{}, &ConfigError{Path: path, Reason: "missing \"shortcut\""}
	}

	s, ok := scalarString(raw)
	if !ok {
		return KeyChord{}, &ConfigError{Path: path + "." + fieldShortcut, Reason: fmt.Sprintf("expected a string, got %T", raw)}
	}

	chord, err := ParseKeyChord(s)
	if err != nil {
		return KeyChord{}, &ConfigError{Path: path + "." + fieldShortcut, Reason: "invalid shortcut", Err: err}
	}
	return chord, nil
}

func decodeLeaf(fields map[string]any, path string, shortcut KeyChord, name string) (Command, error) {
	template, ok := fields[fieldCmd].(string)
	if !ok {
		return nil, &ConfigError{Path: path + "." + fieldCmd, Reason: fmt.Sprintf("expected a string, got %T", fields[fieldCmd])}
	}
	if template == "" {
		return nil, &ConfigError{Path: path + "." + fieldCmd, Reason: "empty command"}
	}

	task := ParseCommandTask(template)

	if raw, ok := fields[fieldDefaults]; ok {
		defaultsPath := path + "." + fieldDefaults
		m, ok := asMap(raw)
		if !ok {
			return nil, &ConfigError{Path: defaultsPath, Reason: fmt.Sprintf("expected an object, got %T", raw)}
		}

		defaults := make(map[string]string, len(m))
		for k, v := range m {
			s, ok := scalarString(v)
			if !ok {
				return nil, &ConfigError{Path: defaultsPath + "." + k, Reason: fmt.Sprintf("expected a scalar, got %T", v)}
			}
			defaults[k] = s
		}

		withDefaults, err := task.WithDefaults(defaults)
		if err != nil {
			return nil, &ConfigError{Path: defaultsPath, Reason: "default does not match the command", Err: err}
		}
		task = withDefaults
	}

	return NewLeaf(shortcut, name, task), nil
}

func decodeNode(fields map[string]any, path string, shortcut KeyChord, name string) (Command, error) {
	childrenPath := path + "." + fieldChildren
	items, ok := asList(fields[fieldChildren])
	if !ok {
		return nil, &ConfigError{Path: childrenPath, Reason: fmt.Sprintf("expected a list, got %T", fields[fieldChildren])}
	}

	children := make([]Command, 0, len(items))
	seen := make(map[KeyChord]int, len(items))
	for i, item := range items {
		childPath := fmt.Sprintf("%s[%d]", childrenPath, i)
		child, err := decodeCommand(item, childPath, false)
		if err != nil {
			return nil, err
		}

		if prev, dup := seen[child.Shortcut()]; dup {
			return nil, &ConfigError{
				Path:   childPath,
				Reason: fmt.Sprintf("shortcut %q already used by %s[%d]", child.Shortcut(), childrenPath, prev),
			}
		}
		seen[child.Shortcut()] = i
		children = append(children, child)
	}

	return NewNode(shortcut, name, children...), nil
}

func optionalString(fields map[string]any, key, path string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &ConfigError{Path: path + "." + key, Reason: fmt.Sprintf("expected a string, got %T", raw)}
	}
	return s, nil
}

// asMap accepts the map shapes produced by the supported decoders.
func asMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// asList accepts generic lists and TOML arrays of tables.
func asList(value any) ([]any, bool) {
	switch l := value.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

// scalarString renders strings, booleans and whole numbers; YAML and TOML turn
// an unquoted 1 into an integer.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
