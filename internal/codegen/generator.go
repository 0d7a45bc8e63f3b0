package codegen

import (
	"fmt"
	"strings"

	"github.com/KromDaniel/reginfer/internal/logging"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern          string   // Merged pattern to embed
	Examples         []string // Inputs the pattern was inferred from
	Name             string   // Exported identifier prefix
	Package          string
	OutputFile       string
	GenerateTestFile bool // Also emit <output>_test.go asserting every example matches
}

// Generator renders a Go file exposing an inferred pattern.
type Generator struct {
	config Config
	logger *logging.Logger
}

// New creates a new generator. A nil logger disables logging.
func New(config Config, logger *logging.Logger) *Generator {
	return &Generator{config: config, logger: logger}
}

func (g *Generator) id(suffix string) string {
	return g.config.Name + suffix
}

// File builds the source file for the pattern.
func (g *Generator) File() *jen.File {
	name := g.config.Name
	f := jen.NewFile(g.config.Package)
	f.HeaderComment("Code generated by reginfer. DO NOT EDIT.")

	f.Comment(fmt.Sprintf("%s is the pattern inferred from %s.", g.id(PatternSuffix), g.id(ExamplesSuffix)))
	f.Const().Id(g.id(PatternSuffix)).Op("=").Lit(g.config.Pattern)
	f.Line()

	examples := make([]jen.Code, 0, len(g.config.Examples))
	for _, e := range g.config.Examples {
		examples = append(examples, jen.Lit(e))
	}
	f.Comment(fmt.Sprintf("%s lists the inputs %s was inferred from.", g.id(ExamplesSuffix), g.id(PatternSuffix)))
	f.Var().Id(g.id(ExamplesSuffix)).Op("=").Index().String().Values(examples...)
	f.Line()

	regexpName := LowerFirst(g.id(RegexpSuffix))
	f.Var().Id(regexpName).Op("=").Qual("regexp", "MustCompile").Call(jen.Id(g.id(PatternSuffix)))
	f.Line()

	f.Comment(fmt.Sprintf("%s reports whether %s matches %s.", g.id(MatchStringSuffix), InputName, g.id(PatternSuffix)))
	f.Func().Id(name+MatchStringSuffix).Params(jen.Id(InputName).String()).Bool().Block(
		jen.Return(jen.Id(regexpName).Dot("MatchString").Call(jen.Id(InputName))),
	)

	return f
}

// TestFile builds the companion test file asserting every example matches.
// The generated code uses the standard regexp package, where \d, \s and
// [a-z] are ASCII-only, so examples with non-ASCII letters or digits fail it.
func (g *Generator) TestFile() *jen.File {
	f := jen.NewFile(g.config.Package)
	f.HeaderComment("Code generated by reginfer. DO NOT EDIT.")

	f.Func().Id("Test"+g.id(ExamplesSuffix)).Params(jen.Id(TestingName).Op("*").Qual("testing", "T")).Block(
		jen.For(jen.List(jen.Id("_"), jen.Id(InputName)).Op(":=").Range().Id(g.id(ExamplesSuffix))).Block(
			jen.If(jen.Op("!").Id(g.id(MatchStringSuffix)).Call(jen.Id(InputName))).Block(
				jen.Id(TestingName).Dot("Errorf").Call(
					jen.Lit(g.id(MatchStringSuffix)+"(%q) = false, want true"),
					jen.Id(InputName),
				),
			),
		),
	)

	return f
}

// Generate writes the source file, and the test file when requested.
func (g *Generator) Generate() error {
	g.logger.Section("Code Generation")
	g.logger.Log("Pattern: %s", g.config.Pattern)
	g.logger.Log("Output: %s (package %s)", g.config.OutputFile, g.config.Package)

	if err := g.File().Save(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if !g.config.GenerateTestFile {
		return nil
	}

	testFile := TestFileName(g.config.OutputFile)
	g.logger.Log("Test file: %s", testFile)
	if err := g.TestFile().Save(testFile); err != nil {
		return fmt.Errorf("failed to save test file: %w", err)
	}
	return nil
}

// TestFileName returns the _test.go path paired with a generated file.
func TestFileName(outputFile string) string {
	return strings.TrimSuffix(outputFile, ".go") + "_test.go"
}
