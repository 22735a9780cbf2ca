/* input_test.go
 * Contains unit tests for input.go and validators.go
 */

package input

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPrompter creates a ConsolePrompter fed with the given lines
func newTestPrompter(lines ...string) (*ConsolePrompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewConsolePrompter(strings.NewReader(strings.Join(lines, "\n")+"\n"), out), out
}

// region Prompt tests

func TestPrompt_ReturnsTrimmedValue(t *testing.T) {
	p, out := newTestPrompter("  Spring Open  ")

	value, err := p.Prompt(Field{Label: "Enter the name of the new tournament"})

	require.NoError(t, err)
	assert.Equal(t, "Spring Open", value)
	assert.Equal(t, "Enter the name of the new tournament? ", out.String())
}

func TestPrompt_UsesDefault(t *testing.T) {
	p, out := newTestPrompter("")

	value, err := p.Prompt(Field{Label: "Venue", Default: "Springfield"})

	require.NoError(t, err)
	assert.Equal(t, "Springfield", value)
	assert.Contains(t, out.String(), "[Springfield]")
}

func TestPrompt_RequiredRepromptsOnEmpty(t *testing.T) {
	p, out := newTestPrompter("", "Cornville")

	value, err := p.Prompt(Field{Label: "Venue", Required: true})

	require.NoError(t, err)
	assert.Equal(t, "Cornville", value)
	assert.Contains(t, out.String(), "A value is required!")
}

// TestPrompt_RepromptsUntilValid tests that invalid answers print the validator message and ask again
func TestPrompt_RepromptsUntilValid(t *testing.T) {
	p, out := newTestPrompter("abc", "3", "4")

	value, err := p.Prompt(Field{Label: "Number of players", Validate: EvenPositiveInt})

	require.NoError(t, err)
	assert.Equal(t, "4", value)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter an even number greater than zero!"))
}

func TestPrompt_EOF(t *testing.T) {
	p := NewConsolePrompter(strings.NewReader(""), io.Discard)

	_, err := p.Prompt(Field{Label: "Anything"})

	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompt_LastLineWithoutNewline(t *testing.T) {
	p := NewConsolePrompter(strings.NewReader("draw"), io.Discard)

	value, err := p.Prompt(Field{Label: "Result"})

	require.NoError(t, err)
	assert.Equal(t, "draw", value)
}

func TestPromptInt(t *testing.T) {
	p, _ := newTestPrompter("0", "5")

	n, err := PromptInt(p, Field{Label: "Rounds", Validate: PositiveInt})

	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestPromptInt_NotANumber(t *testing.T) {
	p, _ := newTestPrompter("five")

	_, err := PromptInt(p, Field{Label: "Rounds"})

	assert.Error(t, err)
}

// endregion

// region Validator tests

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("john.doe@example.com"))
	assert.NoError(t, Email("a+b@club.chess.org"))
	assert.Error(t, Email("john.doe"))
	assert.Error(t, Email("john@"))
	assert.Error(t, Email("@example.com"))
}

func TestChessID(t *testing.T) {
	assert.NoError(t, ChessID("AB12345"))
	assert.Error(t, ChessID("ab12345"))
	assert.Error(t, ChessID("AB1234"))
	assert.Error(t, ChessID("ABC12345"))
	assert.Error(t, ChessID("AB123456"))
}

func TestBirthday(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	validate := Birthday(now)

	assert.NoError(t, validate("31-12-1990"))
	assert.NoError(t, validate("01-06-2024"))
	assert.Error(t, validate("02-06-2024"), "future dates are rejected")
	assert.Error(t, validate("1990-12-31"))
	assert.Error(t, validate("31-02-1990"))
}

func TestPositiveInt(t *testing.T) {
	assert.NoError(t, PositiveInt("1"))
	assert.Error(t, PositiveInt("0"))
	assert.Error(t, PositiveInt("-3"))
	assert.Error(t, PositiveInt("x"))
}

func TestOneOf(t *testing.T) {
	validate := OneOf("1", "2", "0")

	assert.NoError(t, validate("2"))
	err := validate("3")
	require.Error(t, err)
	assert.Equal(t, "Invalid input. Please enter 1, 2, or 0.", err.Error())
}

// endregion
