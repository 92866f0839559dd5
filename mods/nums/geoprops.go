package nums

import (
	"fmt"
	"sort"
	"strings"
)

type GeoProperties map[string]any

func (gp GeoProperties) Copy(other GeoProperties) {
	for k, v := range other {
		gp[k] = v
	}
}

func (gp GeoProperties) PopString(name string) (string, bool) {
	if v, ok := gp[name]; ok {
		delete(gp, name)
		if str, ok := v.(string); ok {
			return str, true
		}
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

// MarshalJS renders the properties as a javascript object literal,
// keys in lexical order so the output is reproducible.
func (gp GeoProperties) MarshalJS() (string, error) {
	keys := []string{}
	for k := range gp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := []string{}
	for _, k := range keys {
		var line string
		switch v := gp[k].(type) {
		case int:
			line = fmt.Sprintf("%s:%d", k, v)
		case float64:
			line = fmt.Sprintf("%s:%v", k, v)
		case bool:
			line = fmt.Sprintf("%s:%t", k, v)
		default:
			line = fmt.Sprintf("%s:%q", k, v)
		}
		fields = append(fields, line)
	}
	return "{" + strings.Join(fields, ",") + "}", nil
}
