// Command id3tool prints and converts ID3v2 tags in place.
//
//	id3tool print <file>...
//	id3tool convert --to <2.2|2.3|2.4> <file>...
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	id3v2 "github.com/tagforge/id3v2"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("id3tool", pflag.ContinueOnError)
	verbose := flags.BoolP("verbose", "v", false, "log codec diagnostics")
	configPath := flags.String("config", "", "path to config file (default: user config dir)")
	target := flags.String("to", "2.4", "target version for convert")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}
	id3v2.SetLogger(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "id3tool:", err)
		return 1
	}

	rest := flags.Args()
	if len(rest) < 2 {
		fmt.Fprintln(os.Stderr, "usage: id3tool [flags] <print|convert> <file>...")
		return 2
	}

	switch rest[0] {
	case "print":
		return runPrint(rest[1:])
	case "convert":
		return runConvert(rest[1:], *target, cfg)
	default:
		fmt.Fprintf(os.Stderr, "id3tool: unknown command %q\n", rest[0])
		return 2
	}
}

func runPrint(files []string) int {
	code := 0
	for _, name := range files {
		if err := printFile(name); err != nil {
			fmt.Fprintf(os.Stderr, "id3tool: %s: %v\n", name, err)
			code = 1
		}
	}

	return code
}

func printFile(name string) error {
	buf, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	tag, err := id3v2.Decode(buf)
	if err != nil {
		return err
	}
	if tag == nil {
		fmt.Printf("%s: no readable tag\n", name)
		return nil
	}

	fmt.Printf("%s: %s, %d bytes declared\n", name, tag.Version, tag.DeclaredSize())
	if tag.InvalidFrames > 0 || tag.EmptyFrameBytes > 0 {
		fmt.Printf("  (%d invalid frames, %d empty frame bytes)\n",
			tag.InvalidFrames, tag.EmptyFrameBytes)
	}

	for _, id := range tag.FrameIDs() {
		var vals []string
		for _, frame := range tag.Frames(id) {
			vals = append(vals, frame.Body.Value())
		}
		fmt.Printf("  %s: %s\n", id3v2.FrameName(tag.Version, id), strings.Join(vals, ", "))
	}

	return nil
}

func runConvert(files []string, target string, cfg Config) int {
	version, ok := parseVersion(target)
	if !ok {
		fmt.Fprintf(os.Stderr, "id3tool: unknown target version %q\n", target)
		return 2
	}

	code := 0
	for _, name := range files {
		if err := convertFile(name, version, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "id3tool: %s: %v\n", name, err)
			code = 1
		}
	}

	return code
}

func parseVersion(s string) (id3v2.Version, bool) {
	switch s {
	case "2.2":
		return id3v2.V22, true
	case "2.3":
		return id3v2.V23, true
	case "2.4":
		return id3v2.V24, true
	default:
		return 0, false
	}
}

// convertFile rewrites name's tag region in the target version. The tag
// always sits at the start of the files this tool handles, so splicing is
// a matter of swapping the leading region and keeping the audio remainder
// byte-identical.
func convertFile(name string, target id3v2.Version, cfg Config) error {
	buf, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	tag, err := id3v2.Decode(buf)
	if err != nil {
		return err
	}
	if tag == nil {
		return fmt.Errorf("no readable tag")
	}
	if tag.Version == target {
		return nil
	}

	converted, err := id3v2.Convert(tag, target)
	if err != nil {
		return err
	}
	converted.Options = cfg.options()

	region, err := converted.Write()
	if err != nil {
		return err
	}

	oldEnd := 10 + tag.DeclaredSize()
	if oldEnd > len(buf) {
		oldEnd = len(buf)
	}

	out := make([]byte, 0, len(region)+len(buf)-oldEnd)
	out = append(out, region...)
	out = append(out, buf[oldEnd:]...)

	return atomic.WriteFile(name, bytes.NewReader(out))
}
