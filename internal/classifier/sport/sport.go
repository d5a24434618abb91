package sport

// Category é o esporte atribuído a uma aposta. O valor string é o mesmo
// gravado na coluna bets.sport do ledger.
type Category string

const (
	Football         Category = "Football"
	Basketball       Category = "Basketball"
	Tennis           Category = "Tennis"
	IceHockey        Category = "Ice Hockey"
	Baseball         Category = "Baseball"
	AmericanFootball Category = "American Football"
	Esports          Category = "Esports"
	Handball         Category = "Handball"
	Volleyball       Category = "Volleyball"
	Other            Category = "Other"
)

// All retorna todas as categorias na ordem de declaração
func All() []Category {
	return []Category{
		Football,
		Basketball,
		Tennis,
		IceHockey,
		Baseball,
		AmericanFootball,
		Esports,
		Handball,
		Volleyball,
		Other,
	}
}

func (c Category) String() string { return string(c) }

// IsValid indica se c pertence à enumeração fechada
func (c Category) IsValid() bool {
	switch c {
	case Football, Basketball, Tennis, IceHockey, Baseball, AmericanFootball, Esports, Handball, Volleyball, Other:
		return true
	default:
		return false
	}
}

// Confident indica um resultado diferente do default Other
func (c Category) Confident() bool { return c.IsValid() && c != Other }

// Parse converte uma string armazenada de volta para Category
func Parse(s string) (Category, bool) {
	c := Category(s)
	return c, c.IsValid()
}
