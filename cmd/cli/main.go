package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fairwaylabs/clubsite-api/config"
	"github.com/fairwaylabs/clubsite-api/internal/log"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "send-test":
		mailCfg := config.NewMailConfig()
		sender, err := mailCfg.NewSender(logger)
		if err != nil {
			logger.Error("Failed to configure mail sender", "error", err.Error())
			os.Exit(1)
		}

		addrs := mailCfg.Addresses()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := sender.Healthy(ctx); err != nil {
			logger.Error("Mail sender health check failed", "error", err.Error())
			os.Exit(1)
		}

		id, err := sender.Send(ctx, &mail.Message{
			From:    addrs.From,
			To:      addrs.To,
			Subject: "Clubsite API test message",
			HTML:    "<p>This is a test message from the clubsite-api CLI.</p>",
			Text:    "This is a test message from the clubsite-api CLI.",
		})
		if err != nil {
			logger.Error("Test message delivery failed", "error", err.Error())
			os.Exit(1)
		}

		logger.Info("Test message delivered", "message_id", id, "to", addrs.To)
		return

	case "generate-domain", "gendomain", "gen-domain":
		GenerateDomain()
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  send-test        Deliver a test email through the configured mail provider and exit")
	fmt.Println("  generate-domain  Interactively scaffolds a new domain/module (dto, service, controller, routes)")
}
