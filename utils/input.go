package utils

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the console date format for check-in/check-out input.
const DateLayout = "2006-01-02"

// ErrInputClosed reports that the input stream ended mid-prompt, such
// as Ctrl-D or exhausted piped input. Callers treat it as "back/exit"
// instead of re-prompting a reader that will never produce more data.
var ErrInputClosed = errors.New("input closed")

// PromptString reads one trimmed line, re-prompting until non-empty
// unless allowEmpty is set. A closed input stream returns
// ErrInputClosed.
func PromptString(r *bufio.Reader, prompt string, allowEmpty bool) (string, error) {
	for {
		fmt.Print(prompt)
		line, err := r.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed, nil
		}
		if err != nil {
			return "", ErrInputClosed
		}
		if allowEmpty {
			return "", nil
		}
		fmt.Println("Input cannot be empty.")
	}
}

// PromptInt reads an integer in [min, max], re-prompting on bad input.
func PromptInt(r *bufio.Reader, prompt string, min, max int) (int, error) {
	for {
		raw, err := PromptString(r, prompt, false)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < min || n > max {
			fmt.Printf("Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// PromptFloat reads a decimal value no smaller than min.
func PromptFloat(r *bufio.Reader, prompt string, min float64) (float64, error) {
	for {
		raw, err := PromptString(r, prompt, false)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < min {
			fmt.Printf("Please enter a value of at least %.2f.\n", min)
			continue
		}
		return f, nil
	}
}

// PromptYesNo reads a y/n answer.
func PromptYesNo(r *bufio.Reader, prompt string) (bool, error) {
	for {
		raw, err := PromptString(r, prompt+" (y/n): ", false)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Println("Please answer y or n.")
	}
}

// PromptDate reads a YYYY-MM-DD date in the local time zone.
func PromptDate(r *bufio.Reader, prompt string) (time.Time, error) {
	for {
		raw, err := PromptString(r, prompt+" (YYYY-MM-DD): ", false)
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.ParseInLocation(DateLayout, raw, time.Local)
		if err != nil {
			fmt.Println("Invalid date, expected format YYYY-MM-DD.")
			continue
		}
		return t, nil
	}
}
