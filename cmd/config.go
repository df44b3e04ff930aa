package cmd

type Config struct {
	HTTPPort          string
	RefreshCronSpec   string
	TranscriptClearMs string
	FixturesPath      string
}
