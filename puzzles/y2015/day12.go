package y2015

import (
	"encoding/json"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 12, solveDay12) }

func solveDay12(input string) (puzzle.Answer, error) {
	var doc any
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return puzzle.Answer{}, puzzle.Malformed("json: %v", err)
	}
	return puzzle.Answer{Part1: jsonSum(doc, false), Part2: jsonSum(doc, true)}, nil
}

// jsonSum adds every number in v. With skipRed, objects having any value
// "red" contribute nothing.
func jsonSum(v any, skipRed bool) int {
	switch v := v.(type) {
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case []any:
		total := 0
		for _, e := range v {
			total += jsonSum(e, skipRed)
		}
		return total
	case map[string]any:
		total := 0
		for _, e := range v {
			if s, ok := e.(string); ok && s == "red" && skipRed {
				return 0
			}
			total += jsonSum(e, skipRed)
		}
		return total
	}
	return 0
}
