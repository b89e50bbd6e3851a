package y2015

import (
	"github.com/katalvlaran/advent/dijkstra"
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 22, solveDay22) }

// wizard is the battle at the start of a player turn. won is the single
// absorbing state every victory leads to.
type wizard struct {
	hp, mana, bossHP         int
	shield, poison, recharge int
	won                      bool
}

type spell struct {
	cost   int
	apply  func(w *wizard)
	usable func(w wizard) bool
}

var spells = []spell{
	{53, func(w *wizard) { w.bossHP -= 4 }, nil},
	{73, func(w *wizard) {
		w.bossHP -= 2
		w.hp += 2
	}, nil},
	{113, func(w *wizard) { w.shield = 6 }, func(w wizard) bool { return w.shield == 0 }},
	{173, func(w *wizard) { w.poison = 6 }, func(w wizard) bool { return w.poison == 0 }},
	{229, func(w *wizard) { w.recharge = 5 }, func(w wizard) bool { return w.recharge == 0 }},
}

// tick applies active effects and returns the player's armor this turn.
func (w *wizard) tick() int {
	if w.poison > 0 {
		w.bossHP -= 3
		w.poison--
	}
	if w.recharge > 0 {
		w.mana += 101
		w.recharge--
	}
	if w.shield > 0 {
		w.shield--
	}
	if w.shield > 0 {
		return 7
	}
	return 0
}

// rounds returns the battles reachable after one player turn and one boss
// turn, weighted by the mana spent.
func rounds(bossDamage int, hard bool) func(wizard) []dijkstra.Edge[wizard] {
	win := dijkstra.Edge[wizard]{To: wizard{won: true}}
	return func(w wizard) []dijkstra.Edge[wizard] {
		if w.won {
			return nil
		}
		if hard {
			if w.hp--; w.hp <= 0 {
				return nil
			}
		}
		w.tick()
		if w.bossHP <= 0 {
			return []dijkstra.Edge[wizard]{win}
		}
		var out []dijkstra.Edge[wizard]
		for _, s := range spells {
			if s.cost > w.mana || (s.usable != nil && !s.usable(w)) {
				continue
			}
			next := w
			next.mana -= s.cost
			s.apply(&next)
			if next.bossHP <= 0 {
				out = append(out, dijkstra.Edge[wizard]{To: win.To, Cost: s.cost})
				continue
			}
			armor := next.tick()
			if next.bossHP <= 0 {
				out = append(out, dijkstra.Edge[wizard]{To: win.To, Cost: s.cost})
				continue
			}
			if next.hp -= max(1, bossDamage-armor); next.hp <= 0 {
				continue
			}
			out = append(out, dijkstra.Edge[wizard]{To: next, Cost: s.cost})
		}
		return out
	}
}

// leastMana returns the cheapest mana total that still wins.
func leastMana(start wizard, bossDamage int, hard bool) (int, error) {
	cost, _, ok, err := dijkstra.Search([]wizard{start}, rounds(bossDamage, hard), func(w wizard) bool { return w.won })
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, puzzle.ErrNoSolution
	}
	return cost, nil
}

func solveDay22(input string) (puzzle.Answer, error) {
	n, err := parse.Ints(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(n) != 2 {
		return puzzle.Answer{}, puzzle.Malformed("want boss hit points and damage")
	}
	start := wizard{hp: 50, mana: 500, bossHP: n[0]}
	easy, err := leastMana(start, n[1], false)
	if err != nil {
		return puzzle.Answer{}, err
	}
	hard, err := leastMana(start, n[1], true)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: easy, Part2: hard}, nil
}
