package config

const (
	defaultWorkDir              = "~/.local/share/mixcut/work"
	defaultOutputDir            = "~/music/mixcut"
	defaultLogDir               = "~/.local/share/mixcut/logs"
	defaultFFmpegBinary         = "ffmpeg"
	defaultToolTimeout          = 600
	defaultCoverFileName        = "cover_16x9.jpg"
	defaultAudioExtension       = ".mp3"
	defaultResolverResultLimit  = 5
	defaultResolverThreshold    = 0.6
	defaultResolverFetchTimeout = 300
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir:   defaultWorkDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Split: Split{
			FFmpegBinary:   defaultFFmpegBinary,
			ToolTimeout:    defaultToolTimeout,
			CoverFileName:  defaultCoverFileName,
			AudioExtension: defaultAudioExtension,
		},
		Resolver: Resolver{
			Enabled:         false,
			ResultLimit:     defaultResolverResultLimit,
			AcceptThreshold: defaultResolverThreshold,
			FetchTimeout:    defaultResolverFetchTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
