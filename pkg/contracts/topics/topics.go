package topics

const (
	// Importação de apostas
	BetImported   = "bet_imported"
	BetClassified = "bet_classified"

	// DLQs
	BetImportedDLQ = "bet_imported_dlq"
)
