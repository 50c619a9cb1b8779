package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/qdm12/smsglobal/internal/config"
	"github.com/qdm12/smsglobal/internal/health"
	"github.com/qdm12/smsglobal/internal/models"
	"github.com/qdm12/smsglobal/internal/server"
	"github.com/qdm12/smsglobal/internal/shoutrrr"
	"github.com/qdm12/smsglobal/internal/smsglobal"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, os.Stdout, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as a one shot command
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

var errCommandUnknown = errors.New("command is unknown")

func _main(ctx context.Context, reader *reader.Reader, args []string, stdout io.Writer,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	command := "serve"
	if len(args) > 1 {
		command = args[1]
	}

	switch command {
	case "version", "-version", "--version":
		fmt.Fprintln(stdout, buildInfo.String())
		return nil
	case "healthcheck":
		// Running the program in a separate instance through the Docker
		// built-in healthcheck, in an ephemeral fashion to query the
		// long running instance of the program about its status
		var serverSettings config.Server
		err = serverSettings.Read(reader, logger)
		if err != nil {
			return fmt.Errorf("reading server settings: %w", err)
		}
		serverSettings.SetDefaults()
		err = serverSettings.Validate()
		if err != nil {
			return fmt.Errorf("server settings: %w", err)
		}

		client := health.NewClient()
		url := health.MakeURL(serverSettings.ListeningAddress, serverSettings.RootURL)
		return client.Query(ctx, url)
	case "serve":
		printSplash(stdout, buildInfo)
	case "send", "balance", "invoke":
	default:
		return fmt.Errorf("%w: %s", errCommandUnknown, command)
	}

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()

	gatewayLogger := logger.New(log.SetComponent("smsglobal"))
	dialer := smsglobal.NewSOAPDialer(client, gatewayLogger)
	gateway := smsglobal.New(ctx, config.SMSGlobal, dialer, gatewayLogger)
	if err := gateway.Err(); err != nil {
		shoutrrrClient.Notify("SMSGlobal gateway is not ready: " + err.Error())
	}

	if command != "serve" {
		return runCommand(ctx, gateway, command, args[2:], stdout)
	}

	if !*config.Server.Enabled {
		logger.Warn("HTTP server is disabled, nothing to do")
		return nil
	}

	serverLogger := logger.New(log.SetComponent("http server"))
	server := server.New(config.Server.ListeningAddress, config.Server.RootURL,
		gateway, serverLogger)
	serverDone := make(chan struct{})
	go server.Run(ctx, serverDone)

	shoutrrrClient.Notify("Launched " + buildInfo.VersionString())

	<-ctx.Done()
	<-serverDone
	return nil
}

func printSplash(stdout io.Writer, buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "smsglobal",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(stdout, line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}
