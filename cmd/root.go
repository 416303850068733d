// Package cmd implements the command-line interface for storecheck.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/storecheck-cli/storecheck/checker"
	"github.com/storecheck-cli/storecheck/constant"
	"github.com/storecheck-cli/storecheck/icon"
	"github.com/storecheck-cli/storecheck/key"
	"github.com/storecheck-cli/storecheck/log"
	"github.com/storecheck-cli/storecheck/prompt"
	"github.com/storecheck-cli/storecheck/style"
	"github.com/storecheck-cli/storecheck/util"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("platform", "p", "", "Target store (apple or play); defaults to the host platform")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("platform", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(checker.Apple), string(checker.Play)}, cobra.ShellCompDirectiveDefault
	}))

	rootCmd.Flags().String("current", "", "Version string of the locally installed application")

	rootCmd.Flags().String("bundle-id", "", "App Store bundle identifier")
	lo.Must0(viper.BindPFlag(key.StoreAppleID, rootCmd.Flags().Lookup("bundle-id")))

	rootCmd.Flags().String("package-id", "", "Play Store package identifier")
	lo.Must0(viper.BindPFlag(key.StorePlayID, rootCmd.Flags().Lookup("package-id")))

	rootCmd.Flags().StringP("country", "c", "", "Two-letter App Store country code")
	lo.Must0(viper.BindPFlag(key.StoreCountry, rootCmd.Flags().Lookup("country")))

	rootCmd.Flags().StringP("locale", "l", "en", "Play Store page locale")
	lo.Must0(viper.BindPFlag(key.StoreLocale, rootCmd.Flags().Lookup("locale")))

	rootCmd.Flags().BoolP("changelog", "C", false, "Report an update even when the local version is newer or equal")
	lo.Must0(viper.BindPFlag(key.CheckPreferNewerLocal, rootCmd.Flags().Lookup("changelog")))

	rootCmd.Flags().String("force-version", "", "Bypass the fetched store version with this value")
	lo.Must0(viper.BindPFlag(key.CheckForceVersion, rootCmd.Flags().Lookup("force-version")))

	rootCmd.Flags().Bool("cache", false, "Memoize the fetched store listing on disk")
	lo.Must0(viper.BindPFlag(key.CheckCache, rootCmd.Flags().Lookup("cache")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., emoji, plain, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().BoolP("json", "j", false, "Print the resolved status as JSON")
	rootCmd.Flags().BoolP("prompt", "P", false, "Show an interactive update dialog when an update is available")
}

// rootCmd defines the entry point: a single update check against the selected store.
var rootCmd = &cobra.Command{
	Use:   constant.Storecheck,
	Short: "Check whether an app lags behind its store listing",
	Long: style.Bold(constant.Storecheck) + "\n" +
		style.Italic("    - Compares an installed application's version against its App Store or Play Store listing"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		platform := checker.DetectPlatform()
		if raw := lo.Must(cmd.Flags().GetString("platform")); raw != "" {
			var err error
			platform, err = checker.ParsePlatform(raw)
			handleErr(err)
		}
		if platform == checker.Unsupported {
			handleErr(fmt.Errorf("no app store matches this platform; pass --platform %s|%s", checker.Apple, checker.Play))
		}

		cfg := checker.Config{
			Platform: mo.Some(platform),
			Identity: checker.Identity{
				Version:       lo.Must(cmd.Flags().GetString("current")),
				AppleBundleID: viper.GetString(key.StoreAppleID),
				PlayPackageID: viper.GetString(key.StorePlayID),
			},
			Country:          optional(viper.GetString(key.StoreCountry)),
			Locale:           viper.GetString(key.StoreLocale),
			ForceVersion:     optional(viper.GetString(key.CheckForceVersion)),
			PreferNewerLocal: viper.GetBool(key.CheckPreferNewerLocal),
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Checking the %s store...", icon.Get(icon.Progress), util.Capitalize(string(platform))))
		resolved := checker.Resolve(context.Background(), cfg)
		erase()

		status, ok := resolved.Get()
		if !ok {
			handleErr(fmt.Errorf("could not determine update status"))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			out := lo.Must(json.MarshalIndent(status, "", "  "))
			fmt.Println(string(out))
			return
		}

		prompt.Notify(status)

		if lo.Must(cmd.Flags().GetBool("prompt")) && status.CanUpdate() {
			handleErr(prompt.Show(status, prompt.DefaultOptions()))
		}
	},
}

// optional maps an empty string to an absent value.
func optional(s string) mo.Option[string] {
	if s == "" {
		return mo.None[string]()
	}
	return mo.Some(s)
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
