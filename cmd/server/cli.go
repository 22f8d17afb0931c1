package main

import (
	"fmt"
	"log"
	"os"

	"github.com/EmreNP/sendikaapp-sub000/internal/conf"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sendikaapp",
	Short: "SendikaApp Membership Service",
	Long:  `The main entry point for the SendikaApp membership service.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*conf.AppConfig, error) {
	confFile, _ := cmd.Flags().GetString("config")
	appConfig, err := conf.NewConfig(confFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	port, _ := cmd.Flags().GetInt("port")
	if port > 0 {
		appConfig.Port = port
	}

	return appConfig, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP server",
	Long:  `Starts the HTTP API server for the membership service.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Load configuration
		appConfig, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		// Initialize application using wire-generated function
		app, cleanup, err := InitializeApp(appConfig)
		if err != nil {
			log.Fatalf("failed to init app: %v", err)
		}
		defer cleanup()

		// Run application
		if err := app.Run(); err != nil {
			log.Fatalf("failed to run app: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.PersistentFlags().IntP("port", "p", 0, "Port for the server to listen on, overrides the value in the config file")
	rootCmd.PersistentFlags().StringP("config", "c", "internal/conf/config.yaml", "path to config file")
}
