package ros

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	Sep      = "/"
	GlobalNS = "/"
	Remap    = ":="
)

// NameMap maps a launch argument or remapping source to its value.
type NameMap map[string]string

var (
	nodeNamePattern  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	namespacePattern = regexp.MustCompile(`^/([a-zA-Z_][a-zA-Z0-9_]*(/[a-zA-Z_][a-zA-Z0-9_]*)*)?$`)
)

// ParseArguments splits command line words into name:=value pairs and
// everything else. Only the first ":=" separates key and value, so values
// may themselves contain ":=".
func ParseArguments(args []string) (NameMap, []string, error) {
	mapping := make(NameMap)
	rest := make([]string, 0)
	for _, arg := range args {
		idx := strings.Index(arg, Remap)
		if idx < 0 {
			rest = append(rest, arg)
			continue
		}
		key := arg[:idx]
		value := arg[idx+len(Remap):]
		if len(key) == 0 {
			return nil, nil, errors.Errorf("malformed launch argument %q: empty name", arg)
		}
		mapping[key] = value
	}
	return mapping, rest, nil
}

// IsValidNodeName reports whether name is a valid base node name.
func IsValidNodeName(name string) bool {
	return nodeNamePattern.MatchString(name)
}

// IsValidNamespace reports whether ns is a valid fully qualified namespace.
func IsValidNamespace(ns string) bool {
	return namespacePattern.MatchString(ns)
}

func isGlobalName(name string) bool {
	return len(name) > 0 && name[0:1] == GlobalNS
}

// CanonicalizeName removes repeated and trailing separators.
func CanonicalizeName(name string) string {
	if name == "" || name == GlobalNS {
		return name
	}
	components := []string{}
	for _, word := range strings.Split(name, Sep) {
		if len(word) > 0 {
			components = append(components, word)
		}
	}
	if isGlobalName(name) {
		return GlobalNS + strings.Join(components, Sep)
	}
	return strings.Join(components, Sep)
}

// ExpandNamespace turns a relative namespace into a global one.
// An empty namespace stays empty, meaning "no namespace requested".
func ExpandNamespace(ns string) string {
	if ns == "" {
		return ""
	}
	canon := CanonicalizeName(ns)
	if !isGlobalName(canon) {
		canon = GlobalNS + canon
	}
	return canon
}

// QualifiedNodeName joins a namespace and node name.
func QualifiedNodeName(ns, name string) string {
	ns = ExpandNamespace(ns)
	if ns == "" || ns == GlobalNS {
		return GlobalNS + name
	}
	return ns + Sep + name
}
