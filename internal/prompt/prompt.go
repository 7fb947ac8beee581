// Package prompt runs the interactive command-line generator.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/namegen/pkg/validator"
	"github.com/dmitrymomot/namegen/svc/names"
)

// ExitInput ends the session when typed as the initial characters.
const ExitInput = "0"

// Prompt reads requests line by line and prints numbered names.
type Prompt struct {
	svc *names.Service
	in  *bufio.Scanner
	out io.Writer
}

// New creates a prompt reading from in and writing to out.
func New(svc *names.Service, in io.Reader, out io.Writer) *Prompt {
	if svc == nil {
		panic("prompt: service cannot be nil")
	}
	return &Prompt{svc: svc, in: bufio.NewScanner(in), out: out}
}

// Run loops until the exit input or the end of input. Generation failures
// are reported and the loop continues; a done ctx stops it.
func (p *Prompt) Run(ctx context.Context) error {
	p.println("\nWelcome to the name generator!")
	p.println("The names are made up by a model and are not found in its training corpus.")

	for {
		seed, ok, err := p.readSeed()
		if err != nil || !ok {
			p.println("\nSee you again")
			return err
		}

		count, err := p.readCount(seed)
		if err != nil {
			if errors.Is(err, io.EOF) {
				p.println("\nSee you again")
				return nil
			}
			return err
		}

		if err := p.Once(ctx, seed, count); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.printf("\nCould not generate names: %v\n", err)
		}
	}
}

// Once generates and prints one batch of names.
func (p *Prompt) Once(ctx context.Context, seed, count string) error {
	res, err := p.svc.Generate(ctx, names.Request{Seed: seed, Count: count})
	if err != nil {
		return err
	}
	p.println("\nYour names:\n")
	for i, name := range res.Names {
		p.printf("%d: %s\n", i+1, name)
	}
	return nil
}

// readSeed returns ok=false on the exit input or at the end of input.
func (p *Prompt) readSeed() (string, bool, error) {
	p.println("\nType initial characters of the name(s) to generate.")
	p.println("(Press Enter to start from nothing)")
	p.printf("(Type %q to exit)\n", ExitInput)

	for {
		line, err := p.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", false, nil
			}
			return "", false, err
		}
		if strings.TrimSpace(line) == ExitInput {
			return "", false, nil
		}

		seed, _, err := p.svc.Validate(names.Request{Seed: line})
		if verrs := validator.ExtractValidationErrors(err); verrs.Has("seed") {
			p.printf("\nPlease type alphabetical characters, at most %d: %s\n\n",
				p.svc.MaxSeedLength(), strings.Join(verrs.Get("seed"), ", "))
			continue
		}
		return seed, true, nil
	}
}

func (p *Prompt) readCount(seed string) (string, error) {
	p.println("\nType the number of names to generate.")
	p.printf("(Press Enter to generate 1 name, at most %d)\n", p.svc.MaxCount())

	for {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		_, _, err = p.svc.Validate(names.Request{Seed: seed, Count: line})
		if verrs := validator.ExtractValidationErrors(err); verrs.Has("count") {
			p.printf("\nPlease type a whole number: %s\n\n", strings.Join(verrs.Get("count"), ", "))
			continue
		}
		return line, nil
	}
}

func (p *Prompt) readLine() (string, error) {
	p.printf("Your input: ")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *Prompt) println(s string) { _, _ = fmt.Fprintln(p.out, s) }

func (p *Prompt) printf(format string, args ...any) { _, _ = fmt.Fprintf(p.out, format, args...) }
