package main

import (
	"fmt"
	"io"
	"strings"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: j2m <command> [flags] [paths...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w, "  config     Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without paths, input is read from stdin and written to stdout.")
	fmt.Fprintln(w, "Run 'j2m help <command>' for details on a specific command.")
}

// printCommandUsage prints usage for a conversion command.
func printCommandUsage(w io.Writer, cmd *command) {
	fmt.Fprintf(w, "Usage: j2m %s [paths...] [flags]\n", cmd.name)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s.\n", cmd.summary)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintf(w, "  paths    Files or directories (%s)\n", strings.Join(cmd.extensions(), ", "))
	if walked := cmd.walkExtensions(); len(walked) < len(cmd.extensions()) {
		fmt.Fprintf(w, "           Directories only pick up %s\n", strings.Join(walked, ", "))
	}
	fmt.Fprintln(w, "           Without paths, reads stdin and writes stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintf(w, "  -o, --output <path>        Output file (%s) or directory\n", cmd.outputExtension())
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto, max 8)")
	if cmd.forceable() {
		names := make([]string, 0, len(cmd.sources))
		for _, d := range cmd.sources {
			names = append(names, d.String())
		}
		fmt.Fprintf(w, "      --from <dialect>       Input dialect: %s (default: by extension)\n", strings.Join(names, ", "))
	}

	if cmd.target == DialectHTML {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Rendering:")
		fmt.Fprintln(w, "      --line-breaks          Render single newlines as <br> (default true)")
		fmt.Fprintln(w, "      --gfm                  GitHub Flavored Markdown (default true)")
		fmt.Fprintln(w, "      --escape-html          Escape raw HTML instead of passing it through")
		fmt.Fprintln(w, "      --smart                Smart quotes and dashes (default true)")
		fmt.Fprintln(w, "      --preserve-blank-lines Keep extra blank lines from wiki input")
		fmt.Fprintln(w, "      --highlight <style>    Chroma style for fenced code (e.g. monokai)")
		fmt.Fprintln(w, "      --standalone           Wrap output in a complete HTML document")
		fmt.Fprintln(w, "      --title <s>            Standalone document title (default: file name)")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Boolean flags accept =false, e.g. --gfm=false.")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: j2m config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
	fmt.Fprintln(w, "Environment variables (J2M_*) are applied on top of the config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	if cmd, ok := lookupCommand(args[0]); ok {
		printCommandUsage(env.Stdout, cmd)
		return ExitSuccess
	}

	switch args[0] {
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: j2m version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: j2m help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
