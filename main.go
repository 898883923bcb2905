package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wlaninfo/config"
	"wlaninfo/logging"
	"wlaninfo/modules/wlan"
	"wlaninfo/tui"
)

var version = "1.0.0"

var (
	flagCompact  bool
	flagPrivacy  bool
	flagVersion  bool
	flagDebug    bool
	flagConfig   string
	flagInterval time.Duration
	flagGeo      bool
	flagAPIKey   string
)

// die reports a fatal error and exits 1.
func die(msg string) {
	fmt.Fprintln(os.Stderr, tui.RenderError(msg))
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("wlaninfo %s", version)
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				fmt.Printf(" (%s)", s.Value[:12])
			}
		}
		if bi.Main.Sum != "" {
			fmt.Printf(" checksum %s", bi.Main.Sum)
		}
	}
	fmt.Println()
}

func setup() (config.Config, *zap.Logger, *wlan.Collector) {
	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		die(fmt.Sprintf("config %s: %v", cfgPath, err))
	}
	logger := logging.New(flagDebug)
	return cfg, logger, wlan.NewCollector(logger)
}

// resolveIfaces validates named interfaces or enumerates all of them.
func resolveIfaces(c *wlan.Collector, args []string) []string {
	if len(args) > 0 {
		for _, name := range args {
			if err := wlan.ValidName(name); err != nil {
				die(err.Error())
			}
			if !c.IsWireless(name) {
				die(fmt.Sprintf("%s is not a wireless interface", name))
			}
		}
		return args
	}
	ifaces, err := c.Interfaces()
	if err != nil {
		die(fmt.Sprintf("enumerating wireless interfaces: %v", err))
	}
	if len(ifaces) == 0 {
		die("no wireless interfaces found")
	}
	return ifaces
}

func runReport(cmd *cobra.Command, args []string) {
	if flagVersion {
		printVersion()
		return
	}
	cfg, logger, collector := setup()
	defer logger.Sync()

	privacy := flagPrivacy || cfg.Privacy
	compact := flagCompact || cfg.Compact

	if err := collector.CheckTools(); err != nil {
		die(err.Error())
	}
	for _, iface := range resolveIfaces(collector, args) {
		r := collector.Collect(iface)
		if privacy {
			r = wlan.Redact(r)
		}
		if compact {
			fmt.Println(wlan.RenderCompact(r))
		} else {
			fmt.Println(wlan.Render(r))
		}
	}
}

func runScan(cmd *cobra.Command, args []string) {
	cfg, logger, collector := setup()
	defer logger.Sync()

	iface := args[0]
	if err := wlan.ValidName(iface); err != nil {
		die(err.Error())
	}
	if err := collector.CheckTools(); err != nil {
		die(err.Error())
	}
	if !collector.IsWireless(iface) {
		die(fmt.Sprintf("%s is not a wireless interface", iface))
	}
	aps, err := collector.Scan(iface)
	if err != nil {
		die(err.Error())
	}
	if len(aps) == 0 {
		fmt.Println("no access points found")
		return
	}

	if flagGeo {
		key := flagAPIKey
		if key == "" {
			key = cfg.GeoAPIKey
		}
		if key == "" {
			die("geolocation needs an API key (--api-key or geo_api_key in config)")
		}
		geo, err := wlan.Geolocate(aps, key)
		if err != nil {
			die(fmt.Sprintf("geolocate: %v", err))
		}
		fmt.Printf("position: %.6f, %.6f (accuracy %.0f m)\n",
			geo.Location.Lat, geo.Location.Lng, geo.Accuracy)
	}

	if flagPrivacy || cfg.Privacy {
		aps = wlan.RedactAPs(aps)
	}
	fmt.Println(wlan.RenderScan(aps))
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, logger, collector := setup()
	defer logger.Sync()

	interval := flagInterval
	if !cmd.Flags().Changed("interval") && cfg.WatchInterval != "" {
		if d, err := time.ParseDuration(cfg.WatchInterval); err == nil {
			interval = d
		}
	}
	if interval < time.Second {
		interval = time.Second
	}

	if err := collector.CheckTools(); err != nil {
		die(err.Error())
	}
	ifaces := resolveIfaces(collector, args)
	model := wlan.NewWatchModel(collector, ifaces, interval, flagPrivacy || cfg.Privacy)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		die(err.Error())
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "wlaninfo [INTERFACE...]",
		Short: "Report metadata of wireless LAN interfaces",
		Long: "wlaninfo enumerates wireless LAN interfaces and reports vendor, driver,\n" +
			"power management, addresses, SSID, signal, channel, bitrate, Wi-Fi\n" +
			"standard, throughput and connection time per interface.",
		Args: cobra.ArbitraryArgs,
		Run:  runReport,
	}
	rootCmd.Flags().BoolVarP(&flagCompact, "compact", "c", false, "one line per interface")
	rootCmd.Flags().BoolVarP(&flagVersion, "version", "v", false, "print version and exit")
	rootCmd.PersistentFlags().BoolVarP(&flagPrivacy, "privacy", "p", false, "redact MAC/IP addresses and SSIDs")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "verbose diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/wlaninfo/config.toml)")

	scanCmd := &cobra.Command{
		Use:   "scan <interface>",
		Short: "Survey nearby access points",
		Args:  cobra.ExactArgs(1),
		Run:   runScan,
	}
	scanCmd.Flags().BoolVar(&flagGeo, "geolocate", false, "estimate host position from surveyed APs")
	scanCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "geolocation API key")

	watchCmd := &cobra.Command{
		Use:   "watch [INTERFACE...]",
		Short: "Live view with signal and throughput updates",
		Args:  cobra.ArbitraryArgs,
		Run:   runWatch,
	}
	watchCmd.Flags().DurationVarP(&flagInterval, "interval", "i", 2*time.Second, "refresh interval")

	rootCmd.AddCommand(scanCmd, watchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
