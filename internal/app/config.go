package app

// Config holds runtime configuration for one ingestion run.
type Config struct {
	InputPath  string
	OutputPath string
	// Extension overrides the extension derived from InputPath when set.
	Extension string

	// ImageToPDF switches the run to wrapping the input image as a
	// single-page PDF instead of extracting text.
	ImageToPDF bool

	// MaxPDFPages is the locally enforced plan page limit; zero disables
	// the local cap and leaves gating to the economy collaborator.
	MaxPDFPages int

	// LLM (study aid generation)
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string
	// StudyAids enables generation of study aids from the extracted text.
	StudyAids bool

	Verbose bool
}
