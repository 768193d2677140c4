package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks for database credentials on the console.
type Prompter struct {
	in  io.Reader
	out io.Writer
	rd  *bufio.Reader
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, rd: bufio.NewReader(in)}
}

// Credentials returns user and password, prompting only for the empty ones.
// The password is not echoed when input is a terminal.
func (p *Prompter) Credentials(user, password string) (string, string, error) {
	var err error

	if user == "" {
		user, err = p.readLine("Enter username: ")
		if err != nil {
			return "", "", fmt.Errorf("read username: %w", err)
		}
	}

	if password == "" {
		password, err = p.readPassword("Enter password: ")
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
	}

	return user, password, nil
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.rd.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) readPassword(prompt string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.readLine(prompt)
	}

	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
