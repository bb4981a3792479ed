package model

// CLIOptions holds runtime options resolved from flags, environment and config file.
type CLIOptions struct {
	FFmpegPath  string // Optional explicit path to ffmpeg
	FFprobePath string // Optional explicit path to ffprobe
	Verbose     bool

	Jobs               int  // Max concurrent ffprobe calls while loading
	PreserveSelections bool // Keep enabled/default flags when the file list changes

	LogLevel string
	LogFile  string
}
