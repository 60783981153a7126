package download

import (
	"path/filepath"
	"strconv"

	"github.com/Leonardo-Martella/youtube-dl-gui/internal/config"
	"github.com/Leonardo-Martella/youtube-dl-gui/internal/model"
)

// youtube-dl flags
const (
	FlagOutput             = "--output"
	FlagFormat             = "--format"
	FlagSocketTimeout      = "--socket-timeout"
	FlagNoCheckCertificate = "--no-check-certificate"
	FlagYesPlaylist        = "--yes-playlist"
	FlagNoPlaylist         = "--no-playlist"
	FlagGeoBypass          = "--geo-bypass"
	FlagNoGeoBypass        = "--no-geo-bypass"
	FlagCookies            = "--cookies"
	FlagNewline            = "--newline"
)

// InvocationArgs maps a Settings record and the per-download options to
// the argument list for the external downloader. It is a pure function:
// no I/O, no side effects. The URL itself is appended by the service.
func InvocationArgs(cfg config.Settings, opts model.RequestOptions) []string {
	var args []string

	if cfg.OutputDirectory != "" || cfg.NameTemplate != "" {
		args = append(args, FlagOutput, filepath.Join(cfg.OutputDirectory, cfg.NameTemplate))
	}

	selector := cfg.VideoFormatSelector
	if opts.AudioOnly {
		selector = cfg.AudioFormatSelector
	}
	if selector != "" {
		args = append(args, FlagFormat, selector)
	}

	args = append(args, FlagSocketTimeout, strconv.Itoa(cfg.TimeoutSeconds))

	if !cfg.VerifySSL {
		args = append(args, FlagNoCheckCertificate)
	}

	if opts.DownloadPlaylist {
		args = append(args, FlagYesPlaylist)
	} else {
		args = append(args, FlagNoPlaylist)
	}

	switch cfg.GeoBypass {
	case config.GeoBypassAlways:
		args = append(args, FlagGeoBypass)
	case config.GeoBypassNever:
		args = append(args, FlagNoGeoBypass)
	}

	if cfg.CookieFile != "" {
		args = append(args, FlagCookies, cfg.CookieFile)
	}

	return args
}
