// Command scscheck runs a vocabulary-filtering harness check against a
// schema-description source and prints which candidate tokens the current
// parse state would accept or reject.
//
// Usage:
//
//	scscheck -config check.yaml [-prefix '{"name":"'] [-verbose]
//
// Flags:
//
//	-config string   Path to a JSON or YAML harness config (required)
//	-prefix string   Characters to advance the constraint by before checking
//	-verbose         Verbose progress output
package main

import (
	"context"
	"flag"
	"log"

	"github.com/fatih/color"

	"github.com/groundwire/scs"
	"github.com/groundwire/scs/pkg/vocabload"
)

var (
	configPath = flag.String("config", "", "Path to a JSON or YAML harness config (required)")
	prefixFlag = flag.String("prefix", "", "Characters to advance the constraint by before checking (overrides the config's prefix)")
	verbose    = flag.Bool("verbose", false, "Verbose progress output")
)

func main() {
	flag.Parse()

	if *configPath == "" {
		log.Fatalf("❌ -config is required")
	}

	if *verbose {
		log.Printf("🚀 Loading harness config from %s", *configPath)
	}

	cfg, err := vocabload.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	prefix := cfg.Prefix
	if *prefixFlag != "" {
		prefix = *prefixFlag
	}

	if *verbose {
		log.Printf("📦 Vocabulary size: %d", len(cfg.Vocabulary))
		log.Printf("📋 Schema source: %s", cfg.Schema)
	}

	compiler := scs.NewSchemaCompiler()
	checkFactory := func() (*scs.SyntaxConstraint, error) {
		return scs.ForceJSONSchema(compiler, cfg.Schema)
	}
	constraint, err := checkFactory()
	if err != nil {
		log.Fatalf("❌ failed to compile schema: %v", err)
	}

	if prefix != "" {
		if *verbose {
			log.Printf("➡️  advancing constraint by %q", prefix)
		}
		if _, err := constraint.Advance(scs.Chars(prefix)); err != nil {
			log.Fatalf("❌ prefix %q rejected: %v", prefix, err)
		}
	}

	vocab := scs.NewVocabulary(cfg.Vocabulary)
	harness := scs.NewHarness(vocab, constraint, checkFactory)

	report := scs.ReportFromQuery(vocab, harness.InvalidNextTokens(context.Background()))

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	log.Printf("check %d: %s valid, %s rejected (of %d)",
		report.CheckIdx, green(report.ValidCount()), red(len(report.Invalid)), report.VocabSize)
	for _, inv := range report.Invalid {
		log.Printf("  %s %q", red("✗"), inv.Text)
	}
	if len(report.Invalid) == 0 {
		log.Printf("  %s every candidate token is a valid continuation", green("✓"))
	}
}
