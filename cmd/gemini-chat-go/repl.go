package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/minhyannv/gemini-chat-go/pkg/geminichat"
)

// replOptions configures REPL behavior.
type replOptions struct {
	Stream      bool
	Verbose     bool
	HistoryFile string
	Logger      geminichat.Logger
}

// runREPL starts an interactive chat session. It returns nil on user exit or
// end-of-input; per-turn failures are printed and the loop continues.
func runREPL(session *geminichat.Session, opts replOptions, in io.Reader, out io.Writer) error {
	if session == nil {
		return fmt.Errorf("session is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	scanner := bufio.NewScanner(in)
	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if isExitSentinel(input) {
			_, _ = fmt.Fprintln(out, "Goodbye!")
			break
		}

		if strings.HasPrefix(input, "/") {
			handled, shouldQuit := handleCommand(input, session, opts, out)
			if shouldQuit {
				break
			}
			if handled {
				continue
			}
		}

		result, err := session.SendTurn(input, geminichat.TurnOptions{
			Stream:       opts.Stream,
			StreamWriter: out,
		})
		if err != nil {
			_, _ = fmt.Fprintf(out, "Error: %v\n\n", err)
			continue
		}

		if result.Streamed {
			if !strings.HasSuffix(result.Content, "\n") {
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintln(out)
		} else {
			_, _ = fmt.Fprintf(out, "%s\n\n", result.Content)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// isExitSentinel matches the bare exit words, any letter case.
func isExitSentinel(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		return true
	}
	return false
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "=== Gemini Chat - Interactive Mode ===")
	_, _ = fmt.Fprintln(out, "Type your message and press Enter. Commands:")
	_, _ = fmt.Fprintln(out, "  /help    - Show this help message")
	_, _ = fmt.Fprintln(out, "  /history - Show the conversation so far")
	_, _ = fmt.Fprintln(out, "  /save    - Save history to a JSON file")
	_, _ = fmt.Fprintln(out, "  /load    - Load history from a JSON file")
	_, _ = fmt.Fprintln(out, "  /clear   - Clear conversation history")
	_, _ = fmt.Fprintln(out, "  exit     - Exit the program (also: quit, /quit, /exit)")
	_, _ = fmt.Fprintln(out)
}

func handleCommand(
	input string,
	session *geminichat.Session,
	opts replOptions,
	out io.Writer,
) (bool, bool) {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case "/help", "/h":
		printWelcome(out)
		return true, false
	case "/clear", "/c":
		session.Reset()
		_, _ = fmt.Fprintln(out, "Conversation history cleared.")
		_, _ = fmt.Fprintln(out)
		return true, false
	case "/history":
		printHistory(session.History(), out)
		return true, false
	case "/save":
		path := historyPath(arg, opts)
		if err := session.SaveHistory(path); err != nil {
			_, _ = fmt.Fprintf(out, "Error: %v\n\n", err)
			return true, false
		}
		_, _ = fmt.Fprintf(out, "History saved to %s.\n\n", path)
		return true, false
	case "/load":
		path := historyPath(arg, opts)
		if err := session.LoadHistory(path); err != nil {
			_, _ = fmt.Fprintf(out, "Error: %v\n\n", err)
			return true, false
		}
		_, _ = fmt.Fprintf(out, "History loaded from %s.\n\n", path)
		return true, false
	case "/quit", "/exit", "/q":
		_, _ = fmt.Fprintln(out, "Goodbye!")
		return true, true
	default:
		_, _ = fmt.Fprintf(out, "Unknown command: %s. Type /help for available commands.\n\n", input)
		return true, false
	}
}

func historyPath(arg string, opts replOptions) string {
	if arg != "" {
		return arg
	}
	if opts.HistoryFile != "" {
		return opts.HistoryFile
	}
	return "chat_history.json"
}

func printHistory(turns []geminichat.TurnRecord, out io.Writer) {
	if len(turns) == 0 {
		_, _ = fmt.Fprintln(out, "No conversation history yet.")
		_, _ = fmt.Fprintln(out)
		return
	}
	for _, turn := range turns {
		label := "You"
		if turn.Role == geminichat.RoleAssistant {
			label = "Model"
		}
		_, _ = fmt.Fprintf(out, "[%s] %s: %s\n", turn.Timestamp.Format("15:04:05"), label, turn.Content)
	}
	_, _ = fmt.Fprintln(out)
}
