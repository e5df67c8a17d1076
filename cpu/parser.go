// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

const directivePrefix = "#ip "

// Parser reads program text into a Program.
type Parser struct {
	Verbose bool // If set, verbosely logs the parser actions.
}

// ParseString parses a program from a string.
func ParseString(text string) (prog *Program, err error) {
	return (&Parser{}).Parse(strings.NewReader(text))
}

// parseDigits parses a non-empty run of decimal digits.
func parseDigits(word string) (value int64, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	for _, ch := range word {
		if ch < '0' || ch > '9' {
			err = ErrParseNumber(word)
			return
		}
	}

	value, err = strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parseDirective parses the '#ip N' line.
func (p *Parser) parseDirective(line string) (ipRegister int, err error) {
	digits, ok := strings.CutPrefix(line, directivePrefix)
	if !ok {
		err = ErrDirectiveSyntax
		return
	}

	value, err := parseDigits(digits)
	if err != nil {
		return
	}

	ipRegister = int(value)

	return
}

// parseInstruction parses an 'opcode A B C' line.
func (p *Parser) parseInstruction(line string) (ins Instruction, err error) {
	if len(line) == 0 {
		err = ErrInstructionSyntax
		return
	}

	words := strings.Split(line, " ")

	ins.Op, err = ParseOpcode(words[0])
	if err != nil {
		return
	}

	if len(words) != 4 {
		err = ErrInstructionSyntax
		return
	}

	args := [3](*int64){&ins.A, &ins.B, &ins.C}
	for n, word := range words[1:] {
		*args[n], err = parseDigits(word)
		if err != nil {
			return
		}
	}

	return
}

// Parse parses an input stream into a Program.
//
// The first line must be the '#ip' directive, followed by at least one
// instruction per line. A single trailing line ending is permitted.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	var ipRegister int
	var code []Instruction

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		if lineno == 1 {
			ipRegister, err = p.parseDirective(line)
			if err != nil {
				return
			}
			continue
		}

		var ins Instruction
		ins, err = p.parseInstruction(line)
		if err != nil {
			return
		}

		code = append(code, ins)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	switch {
	case lineno == 0:
		err = ErrDirectiveMissing
		return
	case len(code) == 0:
		lineno++
		line = ""
		err = ErrProgramEmpty
		return
	}

	prog = &Program{
		IpRegister:   ipRegister,
		Instructions: code,
	}

	return
}
