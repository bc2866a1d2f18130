package config

import (
	"flag"
	"strings"
)

// parses CLI flags for the orchestrate subcommand
func ParseOrchestrateFlags(args []string) (OrchestrateFlags, error) {
	fs := flag.NewFlagSet("orchestrate", flag.ContinueOnError)
	file := fs.String("file", "", "path to the source file to analyze (stdin when empty)")
	language := fs.String("language", "python", "language tag of the source")
	agents := fs.String("agents", "", "comma separated agent types, empty runs all six")
	contextFlag := fs.String("context", "", "free-text context passed to every agent")
	raw := fs.Bool("raw", false, "print the JSON response instead of rendering it")

	if err := fs.Parse(args); err != nil {
		return OrchestrateFlags{}, err
	}

	return OrchestrateFlags{
		File:     *file,
		Language: *language,
		Agents:   splitList(*agents),
		Context:  *contextFlag,
		Raw:      *raw,
	}, nil
}

// parses CLI flags for the analyze subcommand
func ParseAnalyzeFlags(args []string) (AnalyzeFlags, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	file := fs.String("file", "", "path to the source file to analyze (stdin when empty)")
	task := fs.String("task", "analyze", "review, explain, test, suggest or analyze")
	raw := fs.Bool("raw", false, "print the JSON response instead of rendering it")

	if err := fs.Parse(args); err != nil {
		return AnalyzeFlags{}, err
	}

	return AnalyzeFlags{File: *file, Task: *task, Raw: *raw}, nil
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
