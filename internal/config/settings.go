package config

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/Leonardo-Martella/youtube-dl-gui/internal/platform"
)

// GeoBypassMode controls when geographic restriction bypass is attempted
type GeoBypassMode string

const (
	GeoBypassAuto   GeoBypassMode = "auto"
	GeoBypassAsk    GeoBypassMode = "ask when needed"
	GeoBypassAlways GeoBypassMode = "always"
	GeoBypassNever  GeoBypassMode = "never"
)

// AgeLimitWarning controls when the user is warned about age-restricted content
type AgeLimitWarning string

const (
	AgeWarnNever      AgeLimitWarning = "never"
	AgeWarnRestricted AgeLimitWarning = "content marked as 18+"
	AgeWarnUnknown    AgeLimitWarning = "content marked as 18+ or no age limit found"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDirectory     = "output_directory"
	KeyNameTemplate        = "name_template"
	KeyTimeoutSeconds      = "timeout_seconds"
	KeyVerifySSL           = "verify_ssl"
	KeyVideoFormatSelector = "video_format_selector"
	KeyAudioFormatSelector = "audio_format_selector"
	KeyDownloadPlaylist    = "download_playlist"
	KeyGeoBypass           = "geo_bypass"
	KeyAgeLimitWarning     = "age_limit_warning"
	KeyCookieFile          = "cookie_file"
)

// Default values
const (
	DefaultNameTemplate        = "%(title)s – %(uploader)s.%(ext)s"
	DefaultTimeoutSeconds      = 5
	DefaultVerifySSL           = true
	DefaultVideoFormatSelector = "(bestvideo[ext=mp4][width=1920]/bestvideo[ext=mp4])+bestaudio[ext=m4a]/bestvideo+bestaudio/best[ext=mp4]/best"
	DefaultAudioFormatSelector = "bestaudio[ext=m4a]/bestaudio/best"
	DefaultDownloadPlaylist    = false
	DefaultGeoBypass           = GeoBypassAsk
	DefaultAgeLimitWarning     = AgeWarnUnknown
	DefaultCookieFile          = ""

	// Used when the platform Downloads directory cannot be resolved
	FallbackOutputDirectory = "/tmp/downloads"
)

// Settings is a snapshot of every user-configurable option. Exactly one
// record is persisted per installation; values travel between the store
// and the preferences dialog as plain copies.
type Settings struct {
	OutputDirectory     string
	NameTemplate        string
	TimeoutSeconds      int
	VerifySSL           bool
	VideoFormatSelector string
	AudioFormatSelector string
	DownloadPlaylist    bool
	GeoBypass           GeoBypassMode
	AgeLimitWarning     AgeLimitWarning
	CookieFile          string
}

// Store persists Settings through the application's preference storage
type Store struct {
	app fyne.App
}

// NewStore creates a new settings store
func NewStore(app fyne.App) *Store {
	return &Store{app: app}
}

// Defaults returns the fixed default Settings record
func Defaults() Settings {
	return Settings{
		OutputDirectory:     defaultOutputDirectory(),
		NameTemplate:        DefaultNameTemplate,
		TimeoutSeconds:      DefaultTimeoutSeconds,
		VerifySSL:           DefaultVerifySSL,
		VideoFormatSelector: DefaultVideoFormatSelector,
		AudioFormatSelector: DefaultAudioFormatSelector,
		DownloadPlaylist:    DefaultDownloadPlaylist,
		GeoBypass:           DefaultGeoBypass,
		AgeLimitWarning:     DefaultAgeLimitWarning,
		CookieFile:          DefaultCookieFile,
	}
}

func defaultOutputDirectory() string {
	dir, err := platform.DefaultOutputDir()
	if err != nil {
		log.Printf("failed to resolve default output directory: %v", err)
		return FallbackOutputDirectory
	}
	return dir
}

// Load returns the current Settings. It never fails the caller: every
// missing or malformed field is replaced by its default independently,
// so the returned record is always fully populated.
func (s *Store) Load() Settings {
	prefs := s.app.Preferences()
	defaults := Defaults()
	loaded := Settings{
		OutputDirectory:     prefs.StringWithFallback(KeyOutputDirectory, defaults.OutputDirectory),
		NameTemplate:        prefs.StringWithFallback(KeyNameTemplate, defaults.NameTemplate),
		TimeoutSeconds:      prefs.IntWithFallback(KeyTimeoutSeconds, defaults.TimeoutSeconds),
		VerifySSL:           prefs.BoolWithFallback(KeyVerifySSL, defaults.VerifySSL),
		VideoFormatSelector: prefs.StringWithFallback(KeyVideoFormatSelector, defaults.VideoFormatSelector),
		AudioFormatSelector: prefs.StringWithFallback(KeyAudioFormatSelector, defaults.AudioFormatSelector),
		DownloadPlaylist:    prefs.BoolWithFallback(KeyDownloadPlaylist, defaults.DownloadPlaylist),
		GeoBypass:           GeoBypassMode(prefs.StringWithFallback(KeyGeoBypass, string(defaults.GeoBypass))),
		AgeLimitWarning:     AgeLimitWarning(prefs.StringWithFallback(KeyAgeLimitWarning, string(defaults.AgeLimitWarning))),
		CookieFile:          prefs.StringWithFallback(KeyCookieFile, defaults.CookieFile),
	}

	// Stored values can still be malformed (edited by hand, written by an
	// older version). Each bad field falls back to its default on its own.
	if loaded.OutputDirectory == "" {
		loaded.OutputDirectory = defaults.OutputDirectory
	}
	if loaded.NameTemplate == "" {
		loaded.NameTemplate = defaults.NameTemplate
	}
	if loaded.TimeoutSeconds < 0 {
		loaded.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if !isValidChoice(string(loaded.GeoBypass), GeoBypassOptions()) {
		loaded.GeoBypass = defaults.GeoBypass
	}
	if !isValidChoice(string(loaded.AgeLimitWarning), AgeLimitWarningOptions()) {
		loaded.AgeLimitWarning = defaults.AgeLimitWarning
	}
	return loaded
}

// Commit validates the candidate and persists it. The write is
// all-or-nothing: validation runs over every field before the first key
// is written, so a failed commit leaves the persisted record untouched.
func (s *Store) Commit(candidate Settings) error {
	if err := Validate(candidate); err != nil {
		return err
	}
	s.write(candidate)
	return nil
}

// ResetToDefaults overwrites the persisted settings with the fixed
// default record. It always succeeds and is idempotent.
func (s *Store) ResetToDefaults() {
	s.write(Defaults())
}

// Validate checks field-level constraints on a candidate record. It
// returns a *ValidationError naming the first offending field, or nil.
func Validate(candidate Settings) error {
	if candidate.TimeoutSeconds < 0 {
		return &ValidationError{Field: KeyTimeoutSeconds, Reason: "must be a non-negative integer"}
	}
	if !isValidChoice(string(candidate.GeoBypass), GeoBypassOptions()) {
		return &ValidationError{Field: KeyGeoBypass, Reason: "unknown geo bypass mode"}
	}
	if !isValidChoice(string(candidate.AgeLimitWarning), AgeLimitWarningOptions()) {
		return &ValidationError{Field: KeyAgeLimitWarning, Reason: "unknown age limit warning mode"}
	}
	return nil
}

func (s *Store) write(settings Settings) {
	prefs := s.app.Preferences()
	prefs.SetString(KeyOutputDirectory, settings.OutputDirectory)
	prefs.SetString(KeyNameTemplate, settings.NameTemplate)
	prefs.SetInt(KeyTimeoutSeconds, settings.TimeoutSeconds)
	prefs.SetBool(KeyVerifySSL, settings.VerifySSL)
	prefs.SetString(KeyVideoFormatSelector, settings.VideoFormatSelector)
	prefs.SetString(KeyAudioFormatSelector, settings.AudioFormatSelector)
	prefs.SetBool(KeyDownloadPlaylist, settings.DownloadPlaylist)
	prefs.SetString(KeyGeoBypass, string(settings.GeoBypass))
	prefs.SetString(KeyAgeLimitWarning, string(settings.AgeLimitWarning))
	prefs.SetString(KeyCookieFile, settings.CookieFile)
}

// GeoBypassOptions returns available geo bypass modes in display order
func GeoBypassOptions() []string {
	return []string{
		string(GeoBypassAuto),
		string(GeoBypassAsk),
		string(GeoBypassAlways),
		string(GeoBypassNever),
	}
}

// AgeLimitWarningOptions returns available age limit warning modes in display order
func AgeLimitWarningOptions() []string {
	return []string{
		string(AgeWarnNever),
		string(AgeWarnRestricted),
		string(AgeWarnUnknown),
	}
}

func isValidChoice(value string, options []string) bool {
	for _, option := range options {
		if value == option {
			return true
		}
	}
	return false
}
