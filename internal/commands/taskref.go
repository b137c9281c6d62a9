package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"todo/internal/service"
)

// ErrTaskNumberRequired indicates no task number was provided.
var ErrTaskNumberRequired = errors.New("task number required")

// ParseTaskNumber parses a 1-based task number.
// Only ASCII digits are accepted; signs and spaces are not.
func ParseTaskNumber(s string) (int, error) {
	if !isAllDigits(s) {
		return 0, fmt.Errorf("invalid task number: %s", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", s)
	}
	return n, nil
}

// ParseTaskNumbers parses every arg as a task number.
func ParseTaskNumbers(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrTaskNumberRequired
	}
	nums := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := ParseTaskNumber(arg)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// taskAt returns the task with 1-based number num.
func taskAt(tasks []service.Task, num int) (service.Task, error) {
	if num < 1 || num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}

// tasksAt resolves task numbers against tasks, dropping repeats.
// Every number is checked before any task is returned.
func tasksAt(tasks []service.Task, nums []int) ([]service.Task, error) {
	seen := make(map[int]bool, len(nums))
	var out []service.Task
	for _, num := range nums {
		task, err := taskAt(tasks, num)
		if err != nil {
			return nil, err
		}
		if seen[num] {
			continue
		}
		seen[num] = true
		out = append(out, task)
	}
	return out, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
