package y2020

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2020, 19, solveDay19) }

// msgRule is either a literal or a list of alternative sequences of rule ids.
type msgRule struct {
	literal string
	alts    [][]int
}

type ruleBook map[int]msgRule

func parseRuleBook(block string) (ruleBook, error) {
	book := make(ruleBook)
	for _, line := range parse.Lines(block) {
		idStr, body, err := parse.Cut(line, ": ")
		if err != nil {
			return nil, err
		}
		id, err := parse.Int(idStr)
		if err != nil {
			return nil, err
		}
		book[id], err = parseMsgRule(body)
		if err != nil {
			return nil, err
		}
	}
	return book, nil
}

func parseMsgRule(body string) (msgRule, error) {
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, `"`) {
		lit, err := strconv.Unquote(body)
		if err != nil || lit == "" {
			return msgRule{}, puzzle.Malformed("bad literal %s", body)
		}
		return msgRule{literal: lit}, nil
	}
	var r msgRule
	for _, alt := range strings.Split(body, "|") {
		seq, err := parse.Fields(alt)
		if err != nil {
			return msgRule{}, err
		}
		r.alts = append(r.alts, seq)
	}
	return r, nil
}

// ends returns every position at which rule id, started at pos, can finish
// matching msg. Looping rules terminate because every rule consumes input.
func (b ruleBook) ends(id int, msg string, pos int) []int {
	r, ok := b[id]
	if !ok || pos >= len(msg) {
		return nil
	}
	if r.literal != "" {
		if strings.HasPrefix(msg[pos:], r.literal) {
			return []int{pos + len(r.literal)}
		}
		return nil
	}
	var out []int
	for _, seq := range r.alts {
		cur := []int{pos}
		for _, sub := range seq {
			var next []int
			for _, p := range cur {
				next = append(next, b.ends(sub, msg, p)...)
			}
			cur = next
			if len(cur) == 0 {
				break
			}
		}
		out = append(out, cur...)
	}
	return out
}

func (b ruleBook) matches(msg string) bool {
	for _, end := range b.ends(0, msg, 0) {
		if end == len(msg) {
			return true
		}
	}
	return false
}

func (b ruleBook) count(msgs []string) int {
	n := 0
	for _, m := range msgs {
		if b.matches(m) {
			n++
		}
	}
	return n
}

func solveDay19(input string) (puzzle.Answer, error) {
	blocks := parse.Blocks(input)
	if len(blocks) != 2 {
		return puzzle.Answer{}, puzzle.Malformed("want rules and messages")
	}
	book, err := parseRuleBook(blocks[0])
	if err != nil {
		return puzzle.Answer{}, err
	}
	if _, ok := book[0]; !ok {
		return puzzle.Answer{}, puzzle.Malformed("no rule 0")
	}
	msgs := parse.Lines(blocks[1])
	ans := puzzle.Answer{Part1: book.count(msgs)}

	_, has8 := book[8]
	_, has11 := book[11]
	if has8 && has11 {
		book[8] = msgRule{alts: [][]int{{42}, {42, 8}}}
		book[11] = msgRule{alts: [][]int{{42, 31}, {42, 11, 31}}}
		ans.Part2 = book.count(msgs)
	}
	return ans, nil
}
