package config

import (
	"strings"

	"github.com/storecheck-cli/storecheck/constant"
	"github.com/storecheck-cli/storecheck/key"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Storecheck + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.StoreAppleID, "", "App Store bundle identifier to check.\nOverrides the identifier supplied by the checked application itself")
	register(key.StorePlayID, "", "Play Store package identifier to check.\nOverrides the identifier supplied by the checked application itself")
	register(key.StoreCountry, "", "Two-letter App Store country code.\nEmpty means the store's default region")
	register(key.StoreLocale, "en", "Play Store page locale")
	register(key.CheckPreferNewerLocal, false, "Report an available update even when the local version is newer or equal.\nUseful to surface the changelog without a version bump")
	register(key.CheckForceVersion, "", "Bypass the fetched version field and use this value instead.\nIntended for deterministic testing")
	register(key.CheckCache, false, "Memoize the fetched store listing on disk")
	register(key.CheckCacheLifetime, 24, "Hours after which a memoized store listing expires")
	register(key.PromptTitle, "Update available", "Title of the interactive update dialog")
	register(key.PromptBody, "Version {{ .StoreVersion }} is available (you have {{ .LocalVersion }}).", "Body template of the update dialog.\nAvailable fields: LocalVersion, StoreVersion, StoreLink, Notes")
	register(key.PromptUpdateLabel, "Update", "Label of the update action")
	register(key.PromptDismissLabel, "Later", "Label of the dismiss action")
	register(key.PromptAllowDismiss, true, "Whether the update dialog can be dismissed")
	register(key.PromptLaunchApp, "", "Application used to open the store listing.\nEmpty means the system default handler")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, nerd (nerd-font required)")
}
