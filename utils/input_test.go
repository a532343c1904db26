package utils

import (
	"bufio"
	"errors"
	"strings"
	"testing"
	"time"
)

func reader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestPromptString(t *testing.T) {
	t.Run("trims and returns the line", func(t *testing.T) {
		got, err := PromptString(reader("  Ravi Kumar  \n"), "Name: ", false)
		if err != nil {
			t.Fatalf("PromptString: %v", err)
		}
		if got != "Ravi Kumar" {
			t.Errorf("got %q, want %q", got, "Ravi Kumar")
		}
	})
	t.Run("re-prompts past blank lines", func(t *testing.T) {
		got, err := PromptString(reader("\n\nSuite upgrade\n"), "Request: ", false)
		if err != nil {
			t.Fatalf("PromptString: %v", err)
		}
		if got != "Suite upgrade" {
			t.Errorf("got %q, want %q", got, "Suite upgrade")
		}
	})
	t.Run("allowEmpty returns blank", func(t *testing.T) {
		got, err := PromptString(reader("\n"), "Optional: ", true)
		if err != nil || got != "" {
			t.Errorf("got %q, %v, want empty and nil", got, err)
		}
	})
	t.Run("closed input reports ErrInputClosed", func(t *testing.T) {
		_, err := PromptString(reader(""), "Name: ", false)
		if !errors.Is(err, ErrInputClosed) {
			t.Errorf("error = %v, want ErrInputClosed", err)
		}
	})
	t.Run("closed input wins over allowEmpty", func(t *testing.T) {
		_, err := PromptString(reader(""), "Optional: ", true)
		if !errors.Is(err, ErrInputClosed) {
			t.Errorf("error = %v, want ErrInputClosed", err)
		}
	})
}

// A reader that runs dry must terminate the prompt loop instead of
// re-prompting forever, including when the last line was invalid.
func TestPromptsTerminateOnClosedInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		run   func(r *bufio.Reader) error
	}{
		{"int on empty input", "", func(r *bufio.Reader) error {
			_, err := PromptInt(r, "Choice: ", 0, 9)
			return err
		}},
		{"int after one bad line", "notanumber\n", func(r *bufio.Reader) error {
			_, err := PromptInt(r, "Choice: ", 0, 9)
			return err
		}},
		{"int after out-of-range line", "42\n", func(r *bufio.Reader) error {
			_, err := PromptInt(r, "Choice: ", 0, 9)
			return err
		}},
		{"float after one bad line", "abc\n", func(r *bufio.Reader) error {
			_, err := PromptFloat(r, "Amount: ", 0.01)
			return err
		}},
		{"yes-no after one bad line", "maybe\n", func(r *bufio.Reader) error {
			_, err := PromptYesNo(r, "Continue?")
			return err
		}},
		{"date after one bad line", "31-12-2026\n", func(r *bufio.Reader) error {
			_, err := PromptDate(r, "Check-in")
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			done := make(chan error, 1)
			go func() { done <- tc.run(reader(tc.input)) }()
			select {
			case err := <-done:
				if !errors.Is(err, ErrInputClosed) {
					t.Errorf("error = %v, want ErrInputClosed", err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("prompt kept looping on a closed reader")
			}
		})
	}
}

func TestPromptIntParsesAndRetries(t *testing.T) {
	n, err := PromptInt(reader("abc\n99\n7\n"), "Choice: ", 0, 9)
	if err != nil {
		t.Fatalf("PromptInt: %v", err)
	}
	if n != 7 {
		t.Errorf("got %d, want 7", n)
	}
}

func TestPromptDateParsesLocal(t *testing.T) {
	got, err := PromptDate(reader("2026-09-15\n"), "Check-in")
	if err != nil {
		t.Fatalf("PromptDate: %v", err)
	}
	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
