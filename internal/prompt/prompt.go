package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zinrai/iracing-wheel-config/internal/logger"
	"github.com/zinrai/iracing-wheel-config/internal/utils"
)

// Printed whenever an index answer is rejected
const InvalidSelectionMessage = "Invalid selection. Please enter a valid option."

// ErrInputClosed is returned when input ends before a usable answer is read.
var ErrInputClosed = errors.New("input closed")

var (
	errNotNumber  = errors.New("not a number")
	errOutOfRange = errors.New("out of range")
)

// Reads line based answers from in, writing questions to out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Asks question and returns the answer with surrounding whitespace removed
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", utils.NewError(utils.ErrInput, "reading answer", ErrInputClosed)
		}
		return "", utils.NewError(utils.ErrInput, "reading answer", err)
	}
	return strings.TrimSpace(line), nil
}

// Asks question until the answer is an index in [0, n). Non-numeric and
// out-of-range answers print InvalidSelectionMessage and ask again.
func (p *Prompter) Index(question string, n int) (int, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return 0, err
		}

		index, err := parseIndex(answer, n)
		if err != nil {
			logger.Debug("Rejected selection", "answer", answer, "reason", err)
			fmt.Fprintln(p.out, InvalidSelectionMessage)
			continue
		}
		return index, nil
	}
}

// Asks a yes/no question. Only "y" in any case counts as yes; every other
// answer, typos included, is no.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// Reports whether answer is an affirmative "y"
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// Reports whether answer is a negative "n"
func IsNo(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "n")
}

func parseIndex(answer string, n int) (int, error) {
	index, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errNotNumber
	}
	if index < 0 || index >= n {
		return 0, errOutOfRange
	}
	return index, nil
}
