package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/bobappleyard/readline"
	"github.com/rread/scheval/log"
	"github.com/rread/scheval/scheme"
)

// validSexp reports whether s holds at least one token and its parens
// balance. Parens inside strings and comments do not count.
func validSexp(s string) bool {
	var parens int
	var notEmpty, inString, escaped, inComment bool
	for _, c := range s {
		switch {
		case inComment:
			inComment = c != '\n'
			continue
		case inString:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '(':
			parens++
		case ')':
			parens--
		case '"':
			inString = true
		case ';':
			inComment = true
			continue
		}
		if !unicode.IsSpace(c) {
			notEmpty = true
		}
	}
	return notEmpty && !inString && parens <= 0
}

// evalInput evaluates one chunk of REPL input and writes the result to out.
// It returns false when the session should end.
func evalInput(input string, env *scheme.Env, out io.Writer) bool {
	switch strings.TrimSpace(input) {
	case ":quit", "(quit)":
		return false
	case ":vars":
		for _, name := range env.Names() {
			v, _ := env.LookupVar(name)
			fmt.Fprintf(out, "%v: %v\n", name, scheme.Repr(v))
		}
		return true
	}
	result, err := scheme.EvalString(input, env)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return true
	}
	if result != scheme.Unspecified {
		fmt.Fprintln(out, scheme.Repr(result))
	}
	return true
}

func replCLI(env *scheme.Env) {
	defer fmt.Println("\nbye!")
	counter := readline.HistorySize()
	for {
		buf := bytes.Buffer{}
		prompt := fmt.Sprintf("[%d]-> ", counter)
		for {
			l, err := readline.String(prompt)
			if err == io.EOF {
				return
			}
			buf.WriteString(l)
			if validSexp(buf.String()) {
				break
			}
			buf.WriteString("\n")
			prompt = ": "
		}
		if !evalInput(buf.String(), env, os.Stdout) {
			return
		}
		readline.AddHistory(buf.String())
		counter++
	}
}

// replPlain serves the same loop over a non-interactive reader.
func replPlain(in io.Reader, env *scheme.Env, out io.Writer) {
	scanner := bufio.NewScanner(in)
	buf := bytes.Buffer{}
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteString("\n")
		if !validSexp(buf.String()) {
			continue
		}
		if !evalInput(buf.String(), env, out) {
			return
		}
		buf.Reset()
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("reading input: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "" {
		evalInput(buf.String(), env, out)
	}
}

func loadFile(path string, env *scheme.Env) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := scheme.EvalString(string(buf), env); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("loaded %s", path)
	return nil
}

func main() {
	debug := flag.Bool("debug", false, "Enable debugging")
	level := flag.String("level", "info", "Log level: fatal, error, info or debug")
	noPrompt := flag.Bool("noprompt", false, "Read stdin without line editing")
	flag.Parse()

	lv, err := log.ParseLevel(*level)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		lv = log.Debug
	}
	log.SetLevel(lv)

	env := scheme.Setup()
	for _, f := range flag.Args() {
		if err := loadFile(f, env); err != nil {
			log.Fatal(err)
		}
	}

	if *noPrompt {
		replPlain(os.Stdin, env, os.Stdout)
		return
	}
	replCLI(env)
}
