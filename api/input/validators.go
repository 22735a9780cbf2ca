/* validators.go
 * Contains the validators for the values entered when creating players and tournaments
 */

package input

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// BirthdayLayout is the dd-mm-yyyy date format used for birthdays
const BirthdayLayout = "02-01-2006"

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*+/=?^_{|}~-]+(\.[a-zA-Z0-9!#$%&'*+/=?^_{|}~-]+)*@([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
	chessIDPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{5}$`)
)

// Email accepts an address of the form local@domain.tld
func Email(value string) error {
	if !emailPattern.MatchString(value) {
		return errors.New("Please provide a valid email address!")
	}
	return nil
}

// ChessID accepts two upper case letters followed by five digits, e.g. AB12345
func ChessID(value string) error {
	if !chessIDPattern.MatchString(value) {
		return errors.New("Please provide a valid Chess ID (XXNNNNN)!")
	}
	return nil
}

// Birthday returns a validator for dd-mm-yyyy dates that are not after now()
func Birthday(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return func(value string) error {
		dt, err := time.Parse(BirthdayLayout, value)
		if err != nil || dt.After(now()) {
			return errors.New("Please provide a valid date (dd-mm-yyyy)!")
		}
		return nil
	}
}

// PositiveInt accepts whole numbers greater than zero
func PositiveInt(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return errors.New("Please enter a number greater than zero!")
	}
	return nil
}

// EvenPositiveInt accepts even whole numbers greater than zero, used for the number of players
func EvenPositiveInt(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 || n%2 != 0 {
		return errors.New("Please enter an even number greater than zero!")
	}
	return nil
}

// OneOf accepts only the listed options
func OneOf(options ...string) Validator {
	return func(value string) error {
		if !slices.Contains(options, value) {
			return fmt.Errorf("Invalid input. Please enter %s.", joinOptions(options))
		}
		return nil
	}
}

// joinOptions formats options as "1, 2, or 0"
func joinOptions(options []string) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	}
	return strings.Join(options[:len(options)-1], ", ") + ", or " + options[len(options)-1]
}
