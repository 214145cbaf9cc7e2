package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/regexsoup-xyz/go-regexsoup/storage"
)

func history(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dbPath := fs.String("db", "regexsoup.db", "SQLite session archive")
	limit := fs.Int("limit", 10, "Number of sessions to list")
	sessionID := fs.String("session", "", "Show the query log of one session")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: regexsoup history [options]

List archived quiz sessions, newest first, or dump the query log of a
single session.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	archive, err := storage.New(*dbPath)
	if err != nil {
		return err
	}
	defer archive.Close()

	if *sessionID != "" {
		queries, err := archive.SessionQueries(*sessionID)
		if err != nil {
			return err
		}
		if len(queries) == 0 {
			fmt.Println("No queries recorded")
			return nil
		}
		for _, q := range queries {
			fmt.Printf("%3d  %-20s %s\n", q.Seq, q.Input, yesNo(q.Matched))
		}
		return nil
	}

	sessions, err := archive.RecentSessions(*limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded")
		return nil
	}
	for _, s := range sessions {
		outcome := "gave up"
		if s.Solved {
			outcome = "solved by " + s.Winner
		}
		fmt.Printf("%s  d=%d  %-24s %s  (%s)\n",
			s.EndedAt.Format("2006-01-02 15:04"), s.Difficulty, s.Answer, outcome, s.ID)
	}
	return nil
}
