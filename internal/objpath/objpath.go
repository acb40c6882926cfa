// Package objpath resolves dotted/bracketed property paths against nested
// maps, slices and scalars. Resolution never fails: a path that walks off
// the data yields nothing instead of an error.
package objpath

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	plainKeyRe   = regexp.MustCompile(`^\w*$`)
	pathSyntaxRe = regexp.MustCompile(`\.|\[`)
)

// Resolve walks the reference along the given path and returns the value it
// lands on, or nil if the path does not resolve. The path is either a string
// expression or a pre-split []string used verbatim.
func Resolve(reference any, path any) any {
	v, _ := Lookup(reference, path)
	return v
}

// Lookup is Resolve with an explicit second return reporting whether the
// final key was actually present. A nil value with found == true means the
// data really holds a null there.
func Lookup(reference any, path any) (any, bool) {
	keys := castPath(reference, path)
	if len(keys) == 0 {
		// no path is not "root value"
		return nil, false
	}
	cur := reference
	found := false
	for _, key := range keys {
		if cur == nil {
			return nil, false
		}
		cur, found = indexKey(cur, key)
	}
	return cur, found
}

// castPath turns a path expression into its key sequence. Strings that are
// safe to use as a single key (plain identifiers, numbers, boolean-ish
// literals, or literal keys of a map reference) skip tokenization.
func castPath(reference any, path any) []string {
	switch p := path.(type) {
	case []string:
		return p
	case string:
		if isSimpleKey(p, reference) {
			return []string{p}
		}
		return normalize(p)
	case nil:
		return nil
	default:
		// non-string keys coerce to their string form
		return []string{fmt.Sprint(p)}
	}
}

func isSimpleKey(path string, reference any) bool {
	switch path {
	case "true", "false", "null", "undefined":
		return true
	}
	if _, err := strconv.ParseFloat(path, 64); err == nil {
		return true
	}
	if plainKeyRe.MatchString(path) {
		return true
	}
	if !pathSyntaxRe.MatchString(path) {
		return true
	}
	// keys that literally contain dots or brackets
	_, ok := indexKey(reference, path)
	return ok
}

// tokenize splits a compound path on dot and bracket boundaries. Quoted
// bracket contents keep separators literal, with backslash escapes
// unescaped. Consecutive separators contribute empty-string segments, and a
// leading dot contributes an empty first segment.
func tokenize(path string) []string {
	var keys []string
	i, n := 0, len(path)
	if n > 0 && path[0] == '.' {
		keys = append(keys, "")
		i++
	}
	for i < n {
		switch c := path[i]; {
		case c == '[':
			i++
			if i < n && (path[i] == '"' || path[i] == '\'') {
				quote := path[i]
				i++
				var sb strings.Builder
				for i < n && path[i] != quote {
					if path[i] == '\\' && i+1 < n {
						i++
					}
					sb.WriteByte(path[i])
					i++
				}
				if i < n {
					i++ // closing quote
				}
				keys = append(keys, sb.String())
			} else {
				start := i
				for i < n && path[i] != ']' {
					i++
				}
				keys = append(keys, path[start:i])
			}
			if i < n && path[i] == ']' {
				i++
			}
			if i < n && path[i] == '.' {
				i++
			}
		case c == '.':
			// a separator right after a separator: intentional empty key
			keys = append(keys, "")
			i++
		default:
			start := i
			for i < n && path[i] != '.' && path[i] != '[' {
				i++
			}
			keys = append(keys, path[start:i])
			if i < n && path[i] == '.' {
				i++
			}
		}
	}
	return keys
}

// indexKey reads a single key off a container. Maps index by (converted)
// string key, slices and arrays by numeric index. Anything else is not
// indexable.
func indexKey(container any, key string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[key]
		return v, ok
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}
