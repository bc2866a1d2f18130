package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"codeberg.org/swarmworks/server/internal/cli"
	"codeberg.org/swarmworks/server/internal/config"
)

const usage = `swarmctl talks to the Swarm Works analyzer and agents services

usage:
  swarmctl orchestrate [-file main.py] [-language python] [-agents code-review,security] [-context ".."] [-raw]
  swarmctl analyze [-file main.py] [-task review] [-raw]

source is read from stdin without -file
the service address is read from SWARM_API_ENDPOINT (default http://localhost:8000)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "orchestrate":
		err = orchestrate(os.Args[2:])
	case "analyze":
		err = analyze(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		err = fmt.Errorf("unknown command %q", os.Args[1])
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func orchestrate(args []string) error {
	flags, err := config.ParseOrchestrateFlags(args)
	if err != nil {
		return err
	}

	code, err := cli.ReadSource(flags.File, os.Stdin)
	if err != nil {
		return err
	}

	client := cli.NewClient("")
	label := fmt.Sprintf("running agents against %s", client.Endpoint())

	type reply struct {
		resp *cli.OrchestrateResponse
		raw  []byte
	}

	out, err := cli.Wait(label, func() (reply, error) {
		resp, raw, err := client.Orchestrate(context.Background(), cli.OrchestrateRequest{
			Code:     code,
			Language: flags.Language,
			Agents:   flags.Agents,
			Context:  flags.Context,
		})

		return reply{resp: resp, raw: raw}, err
	})
	if err != nil {
		return err
	}

	if flags.Raw {
		_, err := os.Stdout.Write(append(out.raw, '\n'))
		return err
	}

	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, renderer.RenderOrchestration(out.resp))

	return nil
}

func analyze(args []string) error {
	flags, err := config.ParseAnalyzeFlags(args)
	if err != nil {
		return err
	}

	code, err := cli.ReadSource(flags.File, os.Stdin)
	if err != nil {
		return err
	}

	client := cli.NewClient("")
	label := fmt.Sprintf("running %s against %s", flags.Task, client.Endpoint())

	type reply struct {
		resp *cli.AnalyzeResponse
		raw  []byte
	}

	out, err := cli.Wait(label, func() (reply, error) {
		resp, raw, err := client.Analyze(context.Background(), cli.AnalyzeRequest{
			Prompt: code,
			Task:   flags.Task,
		})

		return reply{resp: resp, raw: raw}, err
	})
	if err != nil {
		return err
	}

	if flags.Raw {
		_, err := os.Stdout.Write(append(out.raw, '\n'))
		return err
	}

	renderer, err := newRenderer()
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, renderer.RenderAnalysis(out.resp))

	return nil
}

func newRenderer() (*cli.Renderer, error) {
	styled := cli.IsTerminal(os.Stdout)

	width := 80
	if styled {
		width = cli.TerminalWidth(os.Stdout)
	}

	return cli.NewRenderer(width, styled)
}
