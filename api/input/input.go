/* input.go
 * Contains the prompt and validation helpers used by the console. A Prompter asks for a value described by a Field
 * and only returns once the value passes the Field's validator
 */

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Validator checks a value entered by the user. The returned error message is shown before asking again
type Validator func(value string) error

// Field describes a single value to ask for
type Field struct {
	Label    string
	Default  string
	Required bool
	Validate Validator
}

// Prompter asks the user for a value
type Prompter interface {
	Prompt(field Field) (string, error)
}

// ConsolePrompter reads answers line by line from in and writes prompts and messages to out
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// Ensure ConsolePrompter implements Prompter
var _ Prompter = (*ConsolePrompter)(nil)

// NewConsolePrompter creates a prompter over the given reader and writer, usually os.Stdin and os.Stdout
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt asks for field until a valid value is entered.
// Preconditions: receives a Field with at least a label
// Postconditions: returns the trimmed value, the default if the answer was empty, or io.EOF once input runs out
func (c *ConsolePrompter) Prompt(field Field) (string, error) {
	prompt := field.Label + "? "
	if field.Default != "" {
		prompt += fmt.Sprintf("[%s] ", field.Default)
	}

	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", err
		}

		value := strings.TrimSpace(line)
		if value == "" {
			value = field.Default
		}
		if value == "" && field.Required {
			fmt.Fprintln(c.out, "A value is required!")
			continue
		}
		if value != "" && field.Validate != nil {
			if verr := field.Validate(value); verr != nil {
				fmt.Fprintln(c.out, verr.Error())
				continue
			}
		}
		return value, nil
	}
}

// PromptInt asks for field and converts the answer to an int. field.Validate should already reject non numbers
func PromptInt(p Prompter, field Field) (int, error) {
	value, err := p.Prompt(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number: %w", value, err)
	}
	return n, nil
}
