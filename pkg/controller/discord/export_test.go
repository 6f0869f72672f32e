package discord

// Export internal helpers for testing

var (
	ParseCreateCTFOptions = parseCreateCTFOptions
	NormalizeAcademy      = normalizeAcademy
	BuildSummary          = buildSummary
	CreateCTFCommand      = createCTFCommand
)
