package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/regexsoup-xyz/go-regexsoup/config"
	"github.com/regexsoup-xyz/go-regexsoup/quizgen"
	"github.com/regexsoup-xyz/go-regexsoup/regex"
	"github.com/regexsoup-xyz/go-regexsoup/session"
	"github.com/regexsoup-xyz/go-regexsoup/storage"
	"github.com/regexsoup-xyz/go-regexsoup/transcript"
)

const playChannel = "cli"

func play(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	difficulty := fs.Int("difficulty", 3, "Number of alphabet symbols in scope (1-10)")
	user := fs.String("user", "player", "Participant name")
	configPath := fs.String("config", "", "YAML configuration file")
	transcriptPath := fs.String("transcript", "", "Write the query history as JSONL on exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: regexsoup play [options]

Run an interactive quiz session. A hidden regular expression is generated
for the chosen difficulty; interrogate it with words, then guess it.

Commands at the prompt:
  query <word>    Ask whether a word matches ("" for the empty word)
  guess <regex>   Propose an answer
  summary         Show the query history
  join <name>     Register another participant
  giveup          Withdraw; the last one out reveals the answer
  quit            Abandon the session

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	var archive *storage.Store
	if cfg.DatabasePath != "" {
		archive, err = storage.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer archive.Close()
	}

	gen := quizgen.New().
		WithSampleSize(cfg.SampleSize).
		WithMaxAttempts(cfg.MaxAttempts)
	store := session.NewStore(gen, log).WithTimeout(cfg.GenerateTimeout.Std())

	fmt.Printf("Generating a difficulty-%d quiz...\n", *difficulty)
	quiz, err := store.Start(context.Background(), playChannel, *difficulty)
	if err != nil {
		return err
	}
	if err := registerUser(store, *user); err != nil {
		return err
	}
	fmt.Printf("Quiz ready. Alphabet: %v. Good luck, %s.\n", quiz.Domain(), *user)

	solved, winner := runLoop(store, *user)

	final, err := store.End(playChannel)
	if err != nil {
		return err
	}
	fmt.Printf("The answer was %s\n", regex.Render(final.Answer()))

	if archive != nil {
		if err := archive.SaveSession(final, playChannel, solved, winner); err != nil {
			log.Error().Err(err).Msg("archiving session failed")
		}
	}
	if *transcriptPath != "" {
		if err := writeTranscript(*transcriptPath, final); err != nil {
			return err
		}
	}
	return nil
}

func registerUser(store *session.Store, user string) error {
	return store.With(playChannel, func(q *session.Quiz) error {
		return q.Register(user)
	})
}

// runLoop reads commands until the quiz is solved or abandoned. It
// reports whether someone won and who.
func runLoop(store *session.Store, user string) (solved bool, winner string) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return false, ""
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		command, rest := fields[0], fields[1:]
		done := false
		err := store.With(playChannel, func(q *session.Quiz) error {
			switch command {
			case "query":
				if len(rest) != 1 {
					return fmt.Errorf("usage: query <word>")
				}
				record, err := q.Query(rest[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s => %s\n", record.DisplayInput(), yesNo(record.Matched))
			case "guess":
				if len(rest) != 1 {
					return fmt.Errorf("usage: guess <regex>")
				}
				result, err := q.Guess(rest[0])
				if err != nil {
					return err
				}
				if result.Accepted {
					fmt.Printf("%s => AC\n", result.Input)
					solved, winner = true, user
					done = true
				} else {
					fmt.Printf("%s => WA\n", result.Input)
				}
			case "summary":
				history := q.History()
				if len(history) == 0 {
					fmt.Println("Nothing to show")
				}
				for _, record := range history {
					fmt.Printf("%s => %s\n", record.DisplayInput(), yesNo(record.Matched))
				}
			case "join":
				if len(rest) != 1 {
					return fmt.Errorf("usage: join <name>")
				}
				if err := q.Register(rest[0]); err != nil {
					return err
				}
				fmt.Printf("%s joined\n", rest[0])
			case "giveup":
				remaining, err := q.Withdraw(user)
				if err != nil {
					return err
				}
				fmt.Printf("%s withdrew\n", user)
				if remaining == 0 {
					fmt.Println("There is no longer a challenger.")
					done = true
				}
			case "quit":
				done = true
			default:
				return fmt.Errorf("unknown command %q", command)
			}
			return nil
		})
		if err != nil {
			fmt.Println(err)
		}
		if done {
			return solved, winner
		}
	}
}

func writeTranscript(path string, quiz *session.Quiz) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating transcript: %w", err)
	}
	defer f.Close()
	return transcript.Write(f, transcript.FromQuiz(quiz))
}

func yesNo(matched bool) string {
	if matched {
		return "Yes"
	}
	return "No"
}
