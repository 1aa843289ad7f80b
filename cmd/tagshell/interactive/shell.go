// Package interactive provides the interactive command shell for tagshell.
package interactive

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/basictag/basictag-go/pkg/tag"
	"github.com/basictag/basictag-go/pkg/tagdef"
	"github.com/basictag/basictag-go/pkg/value"
)

// Shell handles interactive mode for tagshell.
type Shell struct {
	reg  *tag.Registry
	bank *tagdef.Bank
	rl   *readline.Instance
}

// New creates a new interactive shell over a registry. The bank provides
// the backing cells for write display and may be nil.
func New(reg *tag.Registry, bank *tagdef.Bank) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tag> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{reg: reg, bank: bank, rl: rl}, nil
}

// Run starts the interactive command loop. All registry access happens on
// the calling goroutine.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "list", "l":
			s.cmdList()

		case "show", "s":
			s.cmdShow(args)

		case "read", "r":
			s.cmdRead()

		case "write", "w":
			s.cmdWrite(args)

		case "delete", "del":
			s.cmdDelete(args)

		case "watch":
			s.cmdWatch(args)

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
Tag Registry Commands:
  list                - List all tags (newest first)
  show <name>         - Show one tag in detail
  read                - Scan all tags once and print changes
  write <name> <val>  - Write a value through a tag ('null' clears)
  delete <name>       - Remove a tag from the registry
  watch [count]       - Scan repeatedly and print changes (default 10 scans)
  help                - Show this help
  exit                - Quit`)
}

func (s *Shell) cmdList() {
	if s.reg.Count() == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No tags.")
		return
	}
	s.reg.Each(func(t *tag.Tag) {
		fmt.Fprintf(s.rl.Stdout(), "  %-24s alias=%-4d %-9s %s\n",
			t.Name(), t.Alias(), t.DataType(), writability(t))
	})
}

func (s *Shell) cmdShow(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: show <name>")
		return
	}
	t := s.reg.TagByName(args[0])
	if t == nil {
		fmt.Fprintf(s.rl.Stdout(), "No such tag: %s\n", args[0])
		return
	}
	cur, prev := t.CurrentValue(), t.PreviousValue()
	fmt.Fprintf(s.rl.Stdout(), "Name:      %s\n", t.Name())
	fmt.Fprintf(s.rl.Stdout(), "Alias:     %d\n", t.Alias())
	fmt.Fprintf(s.rl.Stdout(), "Type:      %s\n", t.DataType())
	fmt.Fprintf(s.rl.Stdout(), "Writable:  %s\n", writability(t))
	if t.MaxLen() > 0 {
		fmt.Fprintf(s.rl.Stdout(), "MaxLen:    %d\n", t.MaxLen())
	}
	if s.bank != nil && s.bank.Cell(t.Name()) != nil {
		fmt.Fprintf(s.rl.Stdout(), "Cell:      bank-owned (%T)\n", s.bank.Cell(t.Name()))
	}
	fmt.Fprintf(s.rl.Stdout(), "Current:   %s\n", renderValue(cur))
	fmt.Fprintf(s.rl.Stdout(), "Previous:  %s\n", renderValue(prev))
	fmt.Fprintf(s.rl.Stdout(), "Changed:   %v\n", t.ValueChanged())
	fmt.Fprintf(s.rl.Stdout(), "LastRead:  %d\n", t.LastRead())
}

func (s *Shell) cmdRead() {
	changed, err := s.reg.ReadAll()
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Scan failed: %v\n", err)
		return
	}
	if !changed {
		fmt.Fprintln(s.rl.Stdout(), "No changes.")
		return
	}
	s.printChanges()
}

func (s *Shell) cmdWrite(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: write <name> <value>")
		return
	}
	t := s.reg.TagByName(args[0])
	if t == nil {
		fmt.Fprintf(s.rl.Stdout(), "No such tag: %s\n", args[0])
		return
	}

	raw := strings.Join(args[1:], " ")
	v, err := parseValue(t.DataType(), raw)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Bad value: %v\n", err)
		return
	}
	if err := t.Write(&v); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Write failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "Wrote %s = %s (visible on next read)\n", t.Name(), raw)
}

func (s *Shell) cmdDelete(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: delete <name>")
		return
	}
	t := s.reg.TagByName(args[0])
	if t == nil {
		fmt.Fprintf(s.rl.Stdout(), "No such tag: %s\n", args[0])
		return
	}
	if err := s.reg.DeleteTag(t); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Delete failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "Deleted %s (%d tags remain)\n", args[0], s.reg.Count())
}

func (s *Shell) cmdWatch(args []string) {
	scans := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(s.rl.Stdout(), "Usage: watch [count]")
			return
		}
		scans = n
	}

	for i := 0; i < scans; i++ {
		changed, err := s.reg.ReadAll()
		if err != nil {
			fmt.Fprintf(s.rl.Stdout(), "Scan failed: %v\n", err)
			return
		}
		if changed {
			s.printChanges()
		}
		time.Sleep(500 * time.Millisecond)
	}
	fmt.Fprintln(s.rl.Stdout(), "Watch done.")
}

func (s *Shell) printChanges() {
	s.reg.Each(func(t *tag.Tag) {
		if !t.ValueChanged() {
			return
		}
		cur := t.CurrentValue()
		fmt.Fprintf(s.rl.Stdout(), "  %d %s = %s\n",
			cur.Timestamp, t.Name(), renderValue(cur))
	})
}

func writability(t *tag.Tag) string {
	switch {
	case t.LocalWritable() && t.RemoteWritable():
		return "rw local+remote"
	case t.LocalWritable():
		return "rw local"
	case t.RemoteWritable():
		return "rw remote"
	default:
		return "ro"
	}
}

func renderValue(v *value.BasicValue) string {
	if v == nil || v.IsNull {
		return "null"
	}
	if v.Type == value.DataTypeBytes {
		return fmt.Sprintf("%x", v.BytesValue().Bytes())
	}
	return fmt.Sprintf("%v", v.Interface())
}

// parseValue converts shell input into a typed candidate value. The word
// "null" produces a null candidate for any type.
func parseValue(dt value.DataType, raw string) (value.BasicValue, error) {
	if raw == "null" {
		return value.NewNull(0, dt), nil
	}

	switch dt {
	case value.DataTypeInt8:
		n, err := strconv.ParseInt(raw, 10, 8)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewInt8(0, int8(n)), nil
	case value.DataTypeInt16:
		n, err := strconv.ParseInt(raw, 10, 16)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewInt16(0, int16(n)), nil
	case value.DataTypeInt32:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewInt32(0, int32(n)), nil
	case value.DataTypeInt64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewInt64(0, n), nil
	case value.DataTypeUInt8:
		n, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewUInt8(0, uint8(n)), nil
	case value.DataTypeUInt16:
		n, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewUInt16(0, uint16(n)), nil
	case value.DataTypeUInt32:
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewUInt32(0, uint32(n)), nil
	case value.DataTypeUInt64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewUInt64(0, n), nil
	case value.DataTypeDateTime:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewDateTime(0, n), nil
	case value.DataTypeFloat:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewFloat(0, float32(f)), nil
	case value.DataTypeDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewDouble(0, f), nil
	case value.DataTypeBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return value.BasicValue{}, err
		}
		return value.NewBool(0, b), nil
	case value.DataTypeString, value.DataTypeText, value.DataTypeUUID:
		return value.NewString(0, dt, raw), nil
	case value.DataTypeBytes:
		buf := value.NewBuffer(len(raw))
		if err := buf.SetBytes([]byte(raw)); err != nil {
			return value.BasicValue{}, err
		}
		return value.NewBytes(0, buf), nil
	default:
		return value.BasicValue{}, fmt.Errorf("unsupported data type: %s", dt)
	}
}
