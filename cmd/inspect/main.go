package main

import (
	"flag"
	"fmt"
	"hangman-bot/domain"
	"hangman-bot/repositories"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	// INSPECT_LIMIT caps the rows of each table
	Limit int `envconfig:"INSPECT_LIMIT" default:"10"`
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Config error: ", err)
	}
	sender := flag.String("sender", "", "Only show the games of this sender")
	flag.Parse()

	// BypassLockGuard allows reading while the bot holds the lock
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromLevel(slog.LevelWarn)
	users := repositories.NewUserRepository(db, logger)
	games := repositories.NewGameRepository(db, logger)

	top, err := users.TopExp(config.Limit)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Leaderboard")
	printLeaderboard(os.Stdout, top)

	var recent []domain.GameRecord
	if *sender != "" {
		recent, err = games.GetGames(*sender, config.Limit)
	} else {
		recent, err = games.GetAllGames(config.Limit)
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("\nRecent games")
	printGames(os.Stdout, recent)
}

func printLeaderboard(w io.Writer, rows []repositories.UserExp) {
	table := newTable(w, []string{"Rank", "Sender", "Exp"})
	for i, row := range rows {
		table.Append([]string{strconv.Itoa(i + 1), row.SenderID, strconv.FormatInt(row.Exp, 10)})
	}
	table.Render()
}

func printGames(w io.Writer, games []domain.GameRecord) {
	table := newTable(w, []string{"Ended", "Sender", "Word", "Status", "Wrong", "Exp", "Duration"})
	for _, game := range games {
		table.Append([]string{
			game.EndedAt.Format("2006-01-02 15:04:05"),
			game.SenderID,
			game.Word,
			game.Status.String(),
			strconv.Itoa(game.WrongGuesses),
			strconv.FormatInt(game.Exp, 10),
			game.EndedAt.Sub(game.StartedAt).Round(time.Second).String(),
		})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
