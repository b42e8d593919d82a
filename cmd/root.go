package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	coreconfig "github.com/floatkit/floatkit/core/config"
	coreDB "github.com/floatkit/floatkit/core/database"
	domainEmbed "github.com/floatkit/floatkit/domains/embed"
	domainHealth "github.com/floatkit/floatkit/domains/health"
	domainWidget "github.com/floatkit/floatkit/domains/widget"
	"github.com/floatkit/floatkit/infrastructure/valkey"
	"github.com/floatkit/floatkit/pkg/utils"
	"github.com/floatkit/floatkit/repository"
	uiWebsocket "github.com/floatkit/floatkit/ui/websocket"
	"github.com/floatkit/floatkit/usecase"
	"github.com/floatkit/floatkit/widgetengine"
)

var (
	// Flag targets, copied into coreconfig.Global during initApp.
	flagPort           string
	flagDebug          bool
	flagBasicAuth      []string
	flagBasePath       string
	flagTrustedProxies []string
	flagDBDriver       string
	flagDBName         string
	flagValkeyEnabled  bool
	flagValkeyAddress  string

	// Usecases
	widgetUsecase domainWidget.IWidgetUsecase
	embedUsecase  domainEmbed.IEmbedUsecase
	healthUsecase domainHealth.IHealthUsecase

	vkClient *valkey.Client
	serverID string
)

var rootCmd = &cobra.Command{
	Use:   "floatkit",
	Short: "Floating contact widget platform",
	Long: `FloatKit serves embeddable floating contact widgets: a builder API
for configuring widgets and a public endpoint delivering each widget as a
single self-contained script.`,
}

func init() {
	utils.LoadConfig(".")

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initEnvConfig, initApp)
}

func initFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&flagPort,
		"port", "p",
		"",
		"change port number with --port <number> | example: --port=8080",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&flagDebug,
		"debug", "d",
		false,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().StringSliceVarP(
		&flagBasicAuth,
		"basic-auth", "b",
		nil,
		"basic auth credential | -b=yourUsername:yourPassword",
	)
	rootCmd.PersistentFlags().StringVarP(
		&flagBasePath,
		"base-path", "",
		"",
		`base path for subpath deployment --base-path <string> | example: --base-path="/floatkit"`,
	)
	rootCmd.PersistentFlags().StringSliceVarP(
		&flagTrustedProxies,
		"trusted-proxies", "",
		nil,
		`trusted proxy IP ranges for reverse proxy deployments --trusted-proxies <string> | example: --trusted-proxies="10.0.0.0/8,172.16.0.0/12"`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&flagDBDriver,
		"db-driver", "",
		"",
		`database driver, sqlite or postgres --db-driver <string> | example: --db-driver="postgres"`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&flagDBName,
		"db-name", "",
		"",
		`database name (file path for sqlite) --db-name <string> | example: --db-name="storages/floatkit.db"`,
	)
	rootCmd.PersistentFlags().BoolVarP(
		&flagValkeyEnabled,
		"valkey", "",
		false,
		`enable valkey-backed counters and render cache --valkey <true/false> | example: --valkey=true`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&flagValkeyAddress,
		"valkey-address", "",
		"",
		`valkey server address --valkey-address <string> | example: --valkey-address="localhost:6379"`,
	)
}

// initEnvConfig builds the global config from the environment, then applies
// any explicit flag overrides on top.
func initEnvConfig() {
	cfg, err := coreconfig.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if flagPort != "" {
		cfg.App.Port = flagPort
	}
	if flagDebug {
		cfg.App.Debug = true
	}
	if len(flagBasicAuth) > 0 {
		cfg.App.BasicAuth = flagBasicAuth
	}
	if flagBasePath != "" {
		cfg.App.BasePath = flagBasePath
	}
	if len(flagTrustedProxies) > 0 {
		cfg.App.TrustedProxies = flagTrustedProxies
	}
	if flagDBDriver != "" {
		cfg.Database.Driver = flagDBDriver
	}
	if flagDBName != "" {
		cfg.Database.Name = flagDBName
	}
	if flagValkeyEnabled {
		cfg.Valkey.Enabled = true
	}
	if flagValkeyAddress != "" {
		cfg.Valkey.Address = flagValkeyAddress
	}

	// Legacy single-var basic auth support, comma separated.
	if len(cfg.App.BasicAuth) == 0 {
		if v := strings.TrimSpace(viper.GetString("app_basic_auth")); v != "" {
			cfg.App.BasicAuth = strings.Split(v, ",")
		}
	}
}

func initApp() {
	cfg := coreconfig.Global

	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := utils.CreateFolder(cfg.Paths.Storages, cfg.Paths.Statics); err != nil {
		logrus.Errorln(err)
	}

	ctx := context.Background()

	db, err := coreDB.NewDatabase(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect database: %v", err)
	}

	widgetRepo := repository.NewWidgetGormRepository(db)
	if err := widgetRepo.Init(ctx); err != nil {
		logrus.Fatalf("Failed to init widget repository: %v", err)
	}
	viewRepo := repository.NewViewGormRepository(db)
	if err := viewRepo.Init(ctx); err != nil {
		logrus.Fatalf("Failed to init view repository: %v", err)
	}

	if cfg.Valkey.Enabled {
		client, err := valkey.NewClient(valkey.Config{
			Address:   cfg.Valkey.Address,
			Password:  cfg.Valkey.Password,
			DB:        cfg.Valkey.DB,
			KeyPrefix: cfg.Valkey.KeyPrefix,
		})
		if err != nil {
			logrus.Warnf("[VALKEY] Disabled, connection failed: %v", err)
		} else {
			vkClient = client
			logrus.Infof("[VALKEY] Connected to %s", cfg.Valkey.Address)
		}
	}
	serverID, _ = os.Hostname()

	widgetUsecase = usecase.NewWidgetService(widgetRepo, pushPreview)
	embedUsecase = usecase.NewEmbedService(widgetRepo, viewRepo, vkClient)
	healthUsecase = usecase.NewHealthService(db, vkClient)
}

// pushPreview re-renders a saved widget and hands the fresh script to the
// websocket hub, without ever blocking the save path.
func pushPreview(w domainWidget.Widget) {
	script := widgetengine.RenderByID(w.TemplateID, w.EngineConfig())
	msg := uiWebsocket.PreviewMessage{
		WidgetID:  w.ID,
		Script:    script,
		UpdatedAt: w.UpdatedAt.UTC().Format(time.RFC3339),
	}
	go func() {
		uiWebsocket.Push <- msg
	}()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// StopApp performs a clean shutdown of shared resources.
func StopApp() {
	logrus.Info("[APP] Stopping application...")

	if vkClient != nil {
		vkClient.Close()
	}

	logrus.Info("[APP] Application stopped cleanly.")
}
