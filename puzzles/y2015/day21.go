package y2015

import (
	"github.com/katalvlaran/advent/parse"
	"github.com/katalvlaran/advent/puzzle"
)

func init() { puzzle.Register(2015, 21, solveDay21) }

type item struct {
	cost, damage, armor int
}

var (
	shopWeapons = []item{{8, 4, 0}, {10, 5, 0}, {25, 6, 0}, {40, 7, 0}, {74, 8, 0}}
	// the zero item stands for "no armor"
	shopArmor = []item{{0, 0, 0}, {13, 0, 1}, {31, 0, 2}, {53, 0, 3}, {75, 0, 4}, {102, 0, 5}}
	shopRings = []item{{25, 1, 0}, {50, 2, 0}, {100, 3, 0}, {20, 0, 1}, {40, 0, 2}, {80, 0, 3}}
)

type fighter struct {
	hp, damage, armor int
}

// wins reports whether the player, striking first, defeats the boss.
func wins(player, boss fighter) bool {
	hit := func(atk, def fighter) int { return max(1, atk.damage-def.armor) }
	turnsToKill := func(hp, dmg int) int { return (hp + dmg - 1) / dmg }
	return turnsToKill(boss.hp, hit(player, boss)) <= turnsToKill(player.hp, hit(boss, player))
}

// loadouts calls fn for every legal purchase: one weapon, at most one armor
// and at most two distinct rings.
func loadouts(fn func(item)) {
	ringSets := [][]item{{}}
	for i := range shopRings {
		ringSets = append(ringSets, []item{shopRings[i]})
		for j := i + 1; j < len(shopRings); j++ {
			ringSets = append(ringSets, []item{shopRings[i], shopRings[j]})
		}
	}
	for _, w := range shopWeapons {
		for _, a := range shopArmor {
			for _, rs := range ringSets {
				total := item{w.cost + a.cost, w.damage, a.armor}
				for _, r := range rs {
					total.cost += r.cost
					total.damage += r.damage
					total.armor += r.armor
				}
				fn(total)
			}
		}
	}
}

func solveDay21(input string) (puzzle.Answer, error) {
	n, err := parse.Ints(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(n) != 3 {
		return puzzle.Answer{}, puzzle.Malformed("want boss hit points, damage and armor")
	}
	boss := fighter{n[0], n[1], n[2]}
	cheapest, priciest := -1, 0
	loadouts(func(kit item) {
		if wins(fighter{100, kit.damage, kit.armor}, boss) {
			if cheapest < 0 || kit.cost < cheapest {
				cheapest = kit.cost
			}
		} else {
			priciest = max(priciest, kit.cost)
		}
	})
	return puzzle.Answer{Part1: cheapest, Part2: priciest}, nil
}
