package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	acfgen "github.com/goliatone/go-acfgen"
	"github.com/goliatone/go-acfgen/pkg/descriptor"
	"github.com/goliatone/go-acfgen/pkg/export"
	"github.com/goliatone/go-acfgen/pkg/keygen"
	"github.com/goliatone/go-acfgen/pkg/orchestrator"
	"github.com/goliatone/go-acfgen/pkg/report"
	"github.com/goliatone/go-acfgen/pkg/scaffold"
	"github.com/goliatone/go-acfgen/pkg/tui"
	"github.com/goliatone/go-acfgen/pkg/validate"
)

const usage = `usage: acfgen <command> [flags]

commands:
  validate   validate field group, field, and block descriptors
  keygen     generate unique group or field keys
  scaffold   generate block artifacts from a plan file
  extract    extract field plans from a PHP template
  export     export field groups as an OpenAPI document

run "acfgen <command> -h" for command flags
`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "validate":
		err = runValidate(ctx, os.Args[2:])
	case "keygen":
		err = runKeygen(os.Args[2:])
	case "scaffold":
		err = runScaffold(os.Args[2:])
	case "extract":
		err = runExtract(ctx, os.Args[2:])
	case "export":
		err = runExport(ctx, os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "acfgen: unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		if err == errInvalid {
			os.Exit(1)
		}
		log.Printf("acfgen: %v", err)
		os.Exit(2)
	}
}

// errInvalid marks a run that completed but found violations.
var errInvalid = fmt.Errorf("descriptors are invalid")

func runValidate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	source := fs.String("source", "", "descriptor path or URL")
	format := fs.String("format", "text", "report format: text or json")
	compact := fs.Bool("compact", false, "compact JSON output")
	knownKeys := fs.String("known-keys", "", "file of known keys, one per line")
	strict := fs.Bool("strict", false, "report attributes outside the field type schema")
	output := fs.String("output", "", "output file (stdout if empty)")
	fs.Parse(args)

	src := parseSource(*source)
	if src == nil {
		return fmt.Errorf("validate: invalid source %q", *source)
	}

	validatorOpts := []validate.Option{
		validate.WithStrictAttributes(*strict),
	}
	if *knownKeys != "" {
		file, err := os.Open(*knownKeys)
		if err != nil {
			return fmt.Errorf("validate: open known keys: %w", err)
		}
		index, err := validate.ReadKeyIndex(file)
		file.Close()
		if err != nil {
			return fmt.Errorf("validate: read known keys: %w", err)
		}
		validatorOpts = append(validatorOpts, validate.WithKeyIndex(index))
	}

	result, payload, err := acfgen.ValidateSource(ctx, src, *format,
		orchestrator.WithLoader(loaderFor(src)),
		orchestrator.WithValidator(validate.New(validatorOpts...)),
		orchestrator.WithReportOptions(report.Options{Compact: *compact}),
	)
	if err != nil {
		return err
	}

	if err := writeOutput(*output, payload); err != nil {
		return err
	}

	if !result.Valid {
		return errInvalid
	}
	return nil
}

func runKeygen(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	prefix := fs.String("prefix", "field", "key prefix: group or field")
	count := fs.Int("count", 1, "number of keys to generate")
	fs.Parse(args)

	if *count < 1 {
		return fmt.Errorf("keygen: count must be positive, got %d", *count)
	}

	gen := keygen.New()
	for i := 0; i < *count; i++ {
		var key string
		var err error
		switch *prefix {
		case "group":
			key, err = gen.NewGroupKey()
		case "field":
			key, err = gen.NewFieldKey()
		default:
			return fmt.Errorf("keygen: prefix must be group or field, got %q", *prefix)
		}
		if err != nil {
			return fmt.Errorf("keygen: %w", err)
		}
		fmt.Println(key)
	}
	return nil
}

func runScaffold(args []string) error {
	fs := flag.NewFlagSet("scaffold", flag.ExitOnError)
	planPath := fs.String("plan", "", "block plan JSON file")
	name := fs.String("name", "", "block name (used when no plan file is given)")
	title := fs.String("title", "", "block title override")
	out := fs.String("out", "output", "output directory root")
	fs.Parse(args)

	var plan scaffold.Plan
	switch {
	case *planPath != "":
		data, err := os.ReadFile(*planPath)
		if err != nil {
			return fmt.Errorf("scaffold: read plan: %w", err)
		}
		if err := json.Unmarshal(data, &plan); err != nil {
			return fmt.Errorf("scaffold: parse plan: %w", err)
		}
	case *name != "":
		plan = scaffold.Plan{Name: *name}
	default:
		return fmt.Errorf("scaffold: either -plan or -name is required")
	}

	if *title != "" {
		plan.Title = *title
	}

	gen, err := scaffold.New()
	if err != nil {
		return err
	}
	result, err := gen.Build(plan)
	if err != nil {
		return err
	}
	dir, err := gen.WriteArtifacts(*out, result)
	if err != nil {
		return err
	}

	fmt.Printf("Block %q written to %s\n", result.Block.Name, dir)
	return nil
}

func runExtract(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	phpPath := fs.String("php", "", "PHP template to scan for get_field calls")
	review := fs.Bool("review", false, "interactively review extracted fields")
	name := fs.String("name", "", "scaffold a block with the extracted fields")
	out := fs.String("out", "output", "output directory root when scaffolding")
	fs.Parse(args)

	if *phpPath == "" {
		return fmt.Errorf("extract: -php is required")
	}

	data, err := os.ReadFile(*phpPath)
	if err != nil {
		return fmt.Errorf("extract: read template: %w", err)
	}

	fields := scaffold.ExtractFields(string(data))
	if len(fields) == 0 {
		return fmt.Errorf("extract: no get_field calls found in %s", *phpPath)
	}

	if *review {
		reviewer := tui.NewReviewer()
		fields, err = reviewer.ReviewFields(ctx, fields)
		if err != nil {
			return fmt.Errorf("extract: review: %w", err)
		}
	}

	if *name != "" {
		gen, err := scaffold.New()
		if err != nil {
			return err
		}
		result, err := gen.Build(scaffold.Plan{Name: *name, Fields: fields})
		if err != nil {
			return err
		}
		dir, err := gen.WriteArtifacts(*out, result)
		if err != nil {
			return err
		}
		fmt.Printf("Block %q written to %s\n", result.Block.Name, dir)
		return nil
	}

	payload, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return fmt.Errorf("extract: encode fields: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	source := fs.String("source", "", "descriptor path or URL")
	title := fs.String("title", "", "document title override")
	validateDoc := fs.Bool("validate", false, "validate the generated OpenAPI document")
	output := fs.String("output", "", "output file (stdout if empty)")
	fs.Parse(args)

	src := parseSource(*source)
	if src == nil {
		return fmt.Errorf("export: invalid source %q", *source)
	}

	loader := loaderFor(src)
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return err
	}
	bundle, err := acfgen.NewParser().Parse(ctx, doc)
	if err != nil {
		return err
	}
	if len(bundle.Groups) == 0 {
		return fmt.Errorf("export: %s contains no field groups", doc.Location())
	}

	oas, err := export.Document(ctx, bundle.Groups,
		export.WithTitle(*title),
		export.WithValidation(*validateDoc),
	)
	if err != nil {
		return err
	}
	payload, err := export.MarshalDocument(oas)
	if err != nil {
		return err
	}
	return writeOutput(*output, payload)
}

// loaderFor builds a loader for the resolved source, enabling HTTP only
// when the source actually is a URL.
func loaderFor(src descriptor.Source) descriptor.Loader {
	if src.Kind() == descriptor.SourceKindURL {
		return acfgen.NewLoader(descriptor.WithHTTPFallback(30 * time.Second))
	}
	return acfgen.NewLoader()
}

func parseSource(raw string) descriptor.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return descriptor.SourceFromURL(path)
	}
	return descriptor.SourceFromFile(path)
}

func writeOutput(path string, payload []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(payload)
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
