package main

import (
	"context"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/hookparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outputKey     = "output"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate typed arity variants for hooks",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Number of typed dependency parameters to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Path of the generated file",
				Value: "hooks/memo_arity.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for hooks started!")
	defer func() {
		log.Printf("Codegen for hooks finished in %v", time.Since(start))
	}()

	arityCount := cmd.Uint(arityCountKey)
	output := cmd.String(outputKey)
	log.Printf("Arity count: %d", arityCount)

	contents := templates.MemoArityGen(int(arityCount))
	formatted, err := format.Source([]byte(contents))
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, formatted, 0644); err != nil {
		return err
	}

	return nil
}
