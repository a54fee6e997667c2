package payment

// Method is a way a sale was paid. The order of Methods is the order offered
// to the user.
type Method string

const (
	Pix    Method = "PIX"
	Credit Method = "Crédito"
	Debit  Method = "Débito"
	Cash   Method = "Dinheiro"
)

func Methods() []Method {
	return []Method{Pix, Credit, Debit, Cash}
}

func (m Method) Valid() bool {
	for _, v := range Methods() {
		if v == m {
			return true
		}
	}
	return false
}

// NextUnused returns the first method not in used, or Cash when all are taken.
func NextUnused(used []Method) Method {
	for _, m := range Methods() {
		taken := false
		for _, u := range used {
			if u == m {
				taken = true
				break
			}
		}
		if !taken {
			return m
		}
	}
	return Cash
}
