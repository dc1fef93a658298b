package main

import (
	"errors"
	"slices"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("1", day1)
}

func day1(in *puzzle.Input) (puzzle.Result, error) {
	nums, err := in.Ints()
	if err != nil {
		return puzzle.Result{}, err
	}
	slices.Sort(nums)
	a, b, ok := twoSum(nums, 2020)
	if !ok {
		return puzzle.Result{}, errors.New("no two entries sum to 2020")
	}
	part1 := a * b
	for i, n := range nums {
		if a, b, ok := twoSum(nums[i+1:], 2020-n); ok {
			return puzzle.Answer(part1, n*a*b), nil
		}
	}
	return puzzle.Result{}, errors.New("no three entries sum to 2020")
}

// twoSum finds two entries of the sorted slice nums that add up to
// target.
func twoSum(nums []int, target int) (a, b int, ok bool) {
	i, j := 0, len(nums)-1
	for i < j {
		switch sum := nums[i] + nums[j]; {
		case sum == target:
			return nums[i], nums[j], true
		case sum < target:
			i++
		default:
			j--
		}
	}
	return 0, 0, false
}
