// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ooasm/computer"
	"github.com/ezrec/ooasm/internal"
)

const (
	MAX_EQUATE_DEPTH = 16 // Limit of equates expanding to other equates.
	MAX_MACRO_DEPTH  = 16 // Limit of macros expanding to other macros.
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":        "0",
	"MAX_ID_LENGTH": fmt.Sprintf("%v", computer.MAX_ID_LENGTH),
}

// Assembler is a single pass macro assembler for ooasm programs.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of assembled statements.

	predefine map[string]string   // Predefines
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.
	Variable  map[string]int      // Map of declared variables to line numbers.
}

// Predefine defines a new equate or redefines an existing equate, before
// any source is parsed.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// isIdentifier checks the variable name syntax.
func isIdentifier(word string) bool {
	return reIdentifier.MatchString(word)
}

// valueOf returns the value of a number.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	if len(word) == 0 {
		err = ErrOpcodeValueMissing
		return
	}
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	if len(word) > 0 && word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 int64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be variable
			// names or locations.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine parses a single line into words, after all substitutions.
func (asm *Assembler) parseLine(line string, lineno int, depth int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	line = reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "t":
				str = "\t"
			case "s":
				str = " "
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		if depth >= MAX_MACRO_DEPTH {
			err = ErrMacroDepth
			return
		}

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		// Local names are unique to each expansion.
		local := fmt.Sprintf("%v%v", strings.ToLower(name[:1]), lineno)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno, depth+1)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// Parse parses an input stream into a Listing of statements.
func (asm *Assembler) Parse(input io.Reader) (listing *Listing, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Statement = asm.Statement[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	if asm.Variable == nil {
		asm.Variable = make(map[string]int)
	}
	clear(asm.Variable)
	asm.Equate = maps.Collect(internal.IterSeq2Concat(
		maps.All(sysEquate),
		maps.All(asm.predefine),
	))

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("assembler: %v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno, 0)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	listing = &Listing{
		Statements: slices.Clone(asm.Statement),
	}

	return
}

// parseValue parses an operand word.
//   - [inner] is a Dereference of inner.
//   - An identifier is an equate, or else the AddressOf a variable.
//   - Anything else must be a number.
func (asm *Assembler) parseValue(word string, depth int) (value computer.Value, err error) {
	if depth > MAX_EQUATE_DEPTH {
		err = ErrEquateDepth
		return
	}

	switch {
	case len(word) == 0:
		err = ErrOpcodeValueMissing
	case word[0] == '[':
		if len(word) < 2 || word[len(word)-1] != ']' {
			err = ErrParseValue(word)
			return
		}
		var inner computer.Value
		inner, err = asm.parseValue(word[1:len(word)-1], depth)
		if err != nil {
			return
		}
		value = computer.Deref(inner)
	case isIdentifier(word):
		equate, ok := asm.Equate[word]
		if ok {
			return asm.parseValue(equate, depth+1)
		}
		value = computer.AddressOf(word)
	default:
		var number int64
		number, err = asm.valueOf(word)
		if err != nil {
			return
		}
		value = computer.Immediate(number)
	}

	return
}

// parseLocation parses a destination operand word.
func (asm *Assembler) parseLocation(word string) (location computer.Location, err error) {
	value, err := asm.parseValue(word, 0)
	if err != nil {
		return
	}

	location, ok := value.(computer.Location)
	if !ok {
		err = ErrTargetInvalid
		return
	}

	return
}

// binaryMap maps two operand mnemonics.
var binaryMap = map[string](func(computer.Location, computer.Value) computer.Instruction){
	"mov": computer.Move,
	"add": computer.Add,
	"sub": computer.Sub,
}

// unaryMap maps single operand mnemonics.
var unaryMap = map[string](func(computer.Location) computer.Instruction){
	"inc":  computer.Increment,
	"dec":  computer.Decrement,
	"one":  computer.SetOne,
	"ones": computer.SetOneIfSigned,
	"onez": computer.SetOneIfZero,
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	var in computer.Instruction

	mnemonic := words[0]
	args := words[1:]

	switch {
	case mnemonic == "data":
		if len(args) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		name := args[0]
		if !isIdentifier(name) {
			err = ErrVariableName
			return
		}
		if _, ok := asm.Variable[name]; ok {
			err = ErrVariableDuplicate
			return
		}
		var init computer.Value
		init, err = asm.parseValue(args[1], 0)
		if err != nil {
			return
		}
		asm.Variable[name] = lineno
		in = computer.Declare(name, init)
	case binaryMap[mnemonic] != nil:
		if len(args) < 1 {
			err = ErrTargetMissing
			return
		}
		if len(args) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var dst computer.Location
		dst, err = asm.parseLocation(args[0])
		if err != nil {
			return
		}
		var src computer.Value
		src, err = asm.parseValue(args[1], 0)
		if err != nil {
			return
		}
		in = binaryMap[mnemonic](dst, src)
	case unaryMap[mnemonic] != nil:
		if len(args) < 1 {
			err = ErrTargetMissing
			return
		}
		if len(args) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		var dst computer.Location
		dst, err = asm.parseLocation(args[0])
		if err != nil {
			return
		}
		in = unaryMap[mnemonic](dst)
	default:
		err = ErrInstructionInvalid
		return
	}

	asm.Statement = append(asm.Statement, Statement{
		LineNo:      lineno,
		Words:       words,
		Instruction: in,
	})

	return
}
