package main

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"

	"github.com/siavashv/brokerage_intake_bot/internal/bot"
	"github.com/siavashv/brokerage_intake_bot/internal/config"
	"github.com/siavashv/brokerage_intake_bot/internal/db"
	"github.com/siavashv/brokerage_intake_bot/internal/flow"
	"github.com/siavashv/brokerage_intake_bot/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	var store flow.RecordStore

	switch cfg.StoreBackend {
	case config.BackendSheet:
		client, err := sheets.NewClient(context.Background(), cfg.CredentialsFile, cfg.SpreadsheetID, cfg.SheetName)
		if err != nil {
			log.Fatalf("Error creating sheets client: %v", err)
		}

		store = sheets.NewStore(client)
	case config.BackendPostgres:
		database, err := db.New(cfg)
		if err != nil {
			log.Fatalf("Error connecting to database: %v", err)
		}
		defer database.Close()

		if err := db.RunMigrations(database.Conn, "db_scripts/init.sql"); err != nil {
			log.Fatalf("Error running migrations: %v", err)
		}

		store = db.NewRecordRepository(database.Conn)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Error creating telegram bot: %v", err)
	}

	machine := flow.NewMachine(store)
	botService := bot.New(botAPI, machine, store, cfg.AdminChatID)

	log.Printf("Bot started as @%s", botAPI.Self.UserName)

	botService.Start()
}
