package dto

const (
	// MaxBatchSize limita o número de descrições por chamada de lote
	MaxBatchSize = 500
	// MaxBatchBodyBytes limita o corpo de uma chamada de lote
	MaxBatchBodyBytes = 1 << 20
)

// Classification é o resultado de uma descrição de jogo
type Classification struct {
	Game   string `json:"game"`
	Sport  string `json:"sport"`
	Source string `json:"source"`         // "remote" | "local"
	Team   string `json:"team,omitempty"` // time que resolveu via provedor
	Pass   string `json:"pass,omitempty"` // passagem local que decidiu
	Term   string `json:"term,omitempty"` // termo que casou na passagem local
}

// BatchClassifyRequest corpo de POST /v1/classify/batch
type BatchClassifyRequest struct {
	Games []string `json:"games"`
}

// BatchClassifyResponse mantém a ordem da requisição
type BatchClassifyResponse struct {
	Results []Classification `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
