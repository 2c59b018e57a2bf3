package declfile

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/halcyon-lang/halcyon/internal/interner"
	"github.com/halcyon-lang/halcyon/internal/types"
)

// ParseTypeExpr parses a field type expression into a type value.
//
// The syntax covers what declaration files need: constructor and
// variable names (case decides which), juxtaposed application, arrows
// (right-associative), list sugar [T], tuples (A, B) and parentheses.
func ParseTypeExpr(src string) (types.Type, error) {
	p := &typeParser{tokens: tokenizeType(src), src: src}
	typ, err := p.parseArrow()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, fmt.Errorf("type %q: unexpected %q", src, p.tokens[p.pos])
	}
	return typ, nil
}

func tokenizeType(src string) []string {
	var tokens []string
	i := 0
	for i < len(src) {
		switch c := src[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '[' || c == ']' || c == '(' || c == ')' || c == ',':
			tokens = append(tokens, string(c))
			i++
		case c == '-' && i+1 < len(src) && src[i+1] == '>':
			tokens = append(tokens, "->")
			i += 2
		default:
			start := i
			for i < len(src) && !strings.ContainsRune(" \t[](),", rune(src[i])) &&
				!(src[i] == '-' && i+1 < len(src) && src[i+1] == '>') {
				i++
			}
			tokens = append(tokens, src[start:i])
		}
	}
	return tokens
}

type typeParser struct {
	tokens []string
	pos    int
	src    string
}

func (p *typeParser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

func (p *typeParser) next() string {
	tok := p.peek()
	p.pos++
	return tok
}

func (p *typeParser) expect(tok string) error {
	if got := p.next(); got != tok {
		return fmt.Errorf("type %q: expected %q, found %q", p.src, tok, got)
	}
	return nil
}

// parseArrow := parseApp ("->" parseArrow)?
func (p *typeParser) parseArrow() (types.Type, error) {
	left, err := p.parseApp()
	if err != nil {
		return nil, err
	}
	if p.peek() != "->" {
		return left, nil
	}
	p.next()
	right, err := p.parseArrow()
	if err != nil {
		return nil, err
	}
	return types.FunctionType(left, right), nil
}

// parseApp := atom atom*
func (p *typeParser) parseApp() (types.Type, error) {
	head, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	var args []types.Type
	for {
		tok := p.peek()
		if tok == "" || tok == "->" || tok == ")" || tok == "]" || tok == "," {
			break
		}
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return head, nil
	}

	// Rebuild the head with the kind arity the application demands.
	switch head := head.(type) {
	case types.TCon:
		return types.NewOp(head.Name, args...), nil
	case types.TVar:
		return types.NewVarArgs(head.ID, args...), nil
	default:
		return nil, fmt.Errorf("type %q: %s cannot be applied to arguments", p.src, head)
	}
}

func (p *typeParser) parseAtom() (types.Type, error) {
	switch tok := p.next(); tok {
	case "":
		return nil, fmt.Errorf("type %q: unexpected end of input", p.src)
	case "[":
		elem, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		return types.ListType(elem), nil
	case "(":
		if p.peek() == ")" {
			p.next()
			return types.Unit(), nil
		}
		first, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		elems := []types.Type{first}
		for p.peek() == "," {
			p.next()
			elem, err := p.parseArrow()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		if len(elems) == 1 {
			return elems[0], nil
		}
		return types.NewOp(interner.Intern(types.TupleName(len(elems))), elems...), nil
	case "]", ")", ",", "->":
		return nil, fmt.Errorf("type %q: unexpected %q", p.src, tok)
	default:
		r := []rune(tok)[0]
		if unicode.IsLower(r) || r == '_' {
			return types.TVar{ID: interner.Intern(tok), Kind: types.Star}, nil
		}
		return types.TCon{Name: interner.Intern(tok), Kind: types.Star}, nil
	}
}
