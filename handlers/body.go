package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// body is a loosely typed JSON request object. A missing or malformed body
// reads as empty.
type body map[string]any

func readBody(c *gin.Context) body {
	b := body{}
	if c.Request.Body == nil {
		return b
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		return b
	}
	if err := json.Unmarshal(raw, &b); err != nil || b == nil {
		return body{}
	}
	return b
}

// present reports whether key holds a truthy value. null, false, 0, "" and
// empty arrays or objects all count as absent.
func (b body) present(key string) bool {
	switch v := b[key].(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func (b body) str(key string) string {
	switch v := b[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
}

// optStr is str for nullable columns.
func (b body) optStr(key string) *string {
	if _, ok := b[key]; !ok || b[key] == nil {
		return nil
	}
	s := b.str(key)
	return &s
}

// id reads key as a record id. Numbers and numeric strings are accepted;
// anything else reports ok=false and can never match a row.
func (b body) id(key string) (uint, bool) {
	switch v := b[key].(type) {
	case float64:
		if v < 1 || v != math.Trunc(v) || v > math.MaxUint32 {
			return 0, false
		}
		return uint(v), true
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil || n == 0 {
			return 0, false
		}
		return uint(n), true
	default:
		return 0, false
	}
}

// same compares two raw values the way a JSON equality would: numbers with
// numbers, strings with strings.
func (b body) same(a, c string) bool {
	switch x := b[a].(type) {
	case float64:
		y, ok := b[c].(float64)
		return ok && x == y
	case string:
		y, ok := b[c].(string)
		return ok && x == y
	case bool:
		y, ok := b[c].(bool)
		return ok && x == y
	default:
		return false
	}
}
