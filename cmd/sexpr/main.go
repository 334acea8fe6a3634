package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	sexpr "github.com/xiam/sexpr-calc"
	"github.com/xiam/sexpr-calc/ast"
	"github.com/xiam/sexpr-calc/lexer"
	"github.com/xiam/sexpr-calc/parser"
)

var (
	flagEval    = flag.String("e", "", "evaluate the given source instead of reading files")
	flagTokens  = flag.Bool("tokens", false, "print the tokens of the input and exit")
	flagTree    = flag.Bool("tree", false, "print the parse tree of the input and exit")
	flagVerbose = flag.Bool("v", false, "trace the evaluation on stderr")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file ...]\n", os.Args[0])
	flag.PrintDefaults()
}

type source struct {
	name string
	data []byte
}

func readSources(args []string) ([]source, error) {
	if *flagEval != "" {
		return []source{{name: "-e", data: []byte(*flagEval)}}, nil
	}

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []source{{name: "stdin", data: data}}, nil
	}

	sources := make([]source, 0, len(args))
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{name: name, data: data})
	}
	return sources, nil
}

func printTokens(src source) error {
	tokens, err := lexer.Tokenize(src.data)
	if err != nil {
		return err
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n", i, tok.Type(), line, col, tok.Text())
	}
	return nil
}

func printTree(src source) error {
	root, err := parser.Parse(src.data)
	if err != nil {
		return err
	}

	ast.Print(os.Stdout, root)
	return nil
}

func run(sources []source) (*sexpr.Value, error) {
	env := sexpr.NewEnv(nil)

	result := sexpr.Nil
	for _, src := range sources {
		value, err := sexpr.RunEnv(string(src.data), env)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.name, err)
		}
		result = value
	}
	return result, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sexpr: ")

	flag.Usage = usage
	flag.Parse()

	if *flagVerbose {
		sexpr.SetLogOutput(os.Stderr)
	}

	sources, err := readSources(flag.Args())
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *flagTokens:
		for _, src := range sources {
			if err := printTokens(src); err != nil {
				log.Fatalf("%s: %v", src.name, err)
			}
		}

	case *flagTree:
		for _, src := range sources {
			if err := printTree(src); err != nil {
				log.Fatalf("%s: %v", src.name, err)
			}
		}

	default:
		value, err := run(sources)
		if err != nil {
			log.Fatal(err)
		}
		if value.Type != sexpr.ValueTypeNil {
			fmt.Println(value)
		}
	}
}
