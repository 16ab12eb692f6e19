// Command aem-shell is an interactive REPL for exercising the AEM payload
// codec by hand: encode a command, decode a captured hex payload, or
// replay a YAML golden vector file, all without a live AVDECC network.
//
// Flags:
//
//	-script string   Path to a newline-delimited file of shell commands to
//	                  run before entering interactive mode.
//
// Examples:
//
//	# Start interactively
//	aem-shell
//
//	# Replay a saved session, then drop into the REPL
//	aem-shell -script session.txt
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/avdecc-go/aemcodec/internal/vectors"
	"github.com/avdecc-go/aemcodec/pkg/aem"
	"github.com/avdecc-go/aemcodec/pkg/codec"
	"github.com/avdecc-go/aemcodec/pkg/diag"
	"github.com/avdecc-go/aemcodec/pkg/inspect"
)

// traceSink prints diagnostic events to stderr tagged with a correlation
// ID, so a shell session can be grepped for one decode's trace.
type traceSink struct{ out io.Writer }

func (s traceSink) Observe(event diag.Event) {
	fmt.Fprintf(s.out, "[diag %s] %s descriptorType=%d consumed=%d/%d\n",
		event.CorrelationID, event.Kind, event.DescriptorType, event.ConsumedBytes, event.BufferLength)
}

func main() {
	scriptPath := flag.String("script", "", "path to a session script of newline-delimited shell commands to replay before entering interactive mode")
	flag.Parse()

	rl, err := readline.New("aem> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "aem-shell:", err)
		os.Exit(1)
	}
	defer rl.Close()

	sink := traceSink{out: os.Stderr}

	if *scriptPath != "" {
		if err := runScript(rl, sink, *scriptPath); err != nil {
			fmt.Fprintln(os.Stderr, "aem-shell:", err)
			os.Exit(1)
		}
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := dispatch(rl, sink, line); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

// runScript replays a newline-delimited file of shell commands, echoing
// each one the way an interactive session would before executing it.
// Blank lines and lines starting with '#' are skipped.
func runScript(rl *readline.Instance, sink diag.Sink, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fmt.Fprintf(rl.Stdout(), "aem> %s\n", line)
		if err := dispatch(rl, sink, line); err != nil {
			fmt.Fprintln(rl.Stderr(), "error:", err)
		}
	}
	return scanner.Err()
}

func dispatch(rl *readline.Instance, sink diag.Sink, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		os.Exit(0)
	case "help":
		fmt.Fprintln(rl.Stderr(), "commands: acquire <hex>, read-descriptor <status> <hex>, load <vectors.yaml>, quit")
	case "acquire":
		return doAcquire(rl, fields[1:])
	case "read-descriptor":
		return doReadDescriptor(rl, sink, fields[1:])
	case "load":
		return doLoad(rl, sink, fields[1:])
	default:
		fmt.Fprintf(rl.Stderr(), "unknown command %q; try 'help'\n", fields[0])
	}
	return nil
}

func doAcquire(rl *readline.Instance, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: acquire <hex>")
	}
	buf, err := hex.DecodeString(args[0])
	if err != nil {
		return err
	}
	v, err := codec.DeserializeAcquireEntityCommand(buf)
	if err != nil {
		return err
	}
	dump, err := inspect.Dump(v)
	if err != nil {
		return err
	}
	fmt.Fprintf(rl.Stdout(), "%+v\ncbor: %s\n", v, hex.EncodeToString(dump))
	return nil
}

func doReadDescriptor(rl *readline.Instance, sink diag.Sink, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: read-descriptor <status> <hex>")
	}
	statusVal, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return err
	}
	buf, err := hex.DecodeString(args[1])
	if err != nil {
		return err
	}
	correlationID := uuid.NewString()
	h, entity, err := codec.DeserializeReadDescriptorEntityResponse(buf, aem.AecpStatus(statusVal), correlationSink{sink, correlationID})
	if err != nil {
		return err
	}
	dump, err := inspect.Dump(entity)
	if err != nil {
		return err
	}
	fmt.Fprintf(rl.Stdout(), "header=%+v entity=%s\ncbor: %s\n", h, entity.EntityName.String(), hex.EncodeToString(dump))
	return nil
}

func doLoad(rl *readline.Instance, sink diag.Sink, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load <vectors.yaml>")
	}
	cases, err := vectors.LoadCases(args[0])
	if err != nil {
		return err
	}
	for _, c := range cases {
		fmt.Fprintf(rl.Stdout(), "%s: %s (%d bytes)\n", c.Name, c.Message, len(c.HexPayload)/2)
		replayLine, ok := replayCommand(c)
		if !ok {
			fmt.Fprintf(rl.Stderr(), "  (no shell command wired for message %q, listed only)\n", c.Message)
			continue
		}
		fmt.Fprintf(rl.Stdout(), "aem> %s\n", replayLine)
		if err := dispatch(rl, sink, replayLine); err != nil {
			fmt.Fprintln(rl.Stderr(), "  error:", err)
		}
	}
	return nil
}

// replayCommand maps a loaded golden vector to the shell command line that
// reproduces it, when one of the wired commands (acquire, read-descriptor)
// covers that vector's message type.
func replayCommand(c vectors.Case) (string, bool) {
	switch c.Message {
	case "ACQUIRE_ENTITY.command":
		return "acquire " + c.HexPayload, true
	case "READ_DESCRIPTOR.response[ENTITY]":
		status := c.Status
		if status == "" {
			status = "0"
		}
		return "read-descriptor " + status + " " + c.HexPayload, true
	default:
		return "", false
	}
}

// correlationSink tags every event forwarded to an underlying sink with a
// fixed correlation ID, letting one shell command's decode be traced as a
// unit.
type correlationSink struct {
	diag.Sink
	id string
}

func (s correlationSink) Observe(event diag.Event) {
	event.CorrelationID = s.id
	s.Sink.Observe(event)
}
