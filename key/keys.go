// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 19

// Store Targeting - these keys select which store listing is queried and under which region.
const (
	StoreAppleID = "store.apple_id"
	StorePlayID  = "store.play_id"
	StoreCountry = "store.country"
	StoreLocale  = "store.locale"
)

// Check Semantics - these keys control how the local and store versions are compared.
const (
	CheckPreferNewerLocal = "check.prefer_newer_local"
	CheckForceVersion     = "check.force_version"
	CheckCache            = "check.cache"
	CheckCacheLifetime    = "check.cache_lifetime"
)

// Update Prompt - these keys configure the interactive update dialog.
const (
	PromptTitle        = "prompt.title"
	PromptBody         = "prompt.body"
	PromptUpdateLabel  = "prompt.update_label"
	PromptDismissLabel = "prompt.dismiss_label"
	PromptAllowDismiss = "prompt.allow_dismiss"
	PromptLaunchApp    = "prompt.launch_app"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern general CLI behavior.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)
