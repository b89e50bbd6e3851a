package y2020

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day04Example = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in`

const day04Invalid = `eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007`

const day04Valid = `pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719`

func TestDay04(t *testing.T) {
	ans, err := solveDay04(day04Example)
	require.NoError(t, err)
	assert.Equal(t, 2, ans.Part1)

	ans, err = solveDay04(day04Invalid)
	require.NoError(t, err)
	assert.Equal(t, 4, ans.Part1)
	assert.Equal(t, 0, ans.Part2)

	ans, err = solveDay04(day04Valid)
	require.NoError(t, err)
	assert.Equal(t, 4, ans.Part2)
}

func TestPassportRules(t *testing.T) {
	tests := []struct {
		field, value string
		ok           bool
	}{
		{"byr", "2002", true}, {"byr", "2003", false},
		{"hgt", "60in", true}, {"hgt", "190cm", true}, {"hgt", "190in", false}, {"hgt", "190", false},
		{"hcl", "#123abc", true}, {"hcl", "#123abz", false}, {"hcl", "123abc", false},
		{"ecl", "brn", true}, {"ecl", "wat", false},
		{"pid", "000000001", true}, {"pid", "0123456789", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.ok, passportRules[tc.field](tc.value), "%s:%s", tc.field, tc.value)
	}
}
