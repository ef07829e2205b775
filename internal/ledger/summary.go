package ledger

import (
	"github.com/shopspring/decimal"
)

// PartnerTotals are the revenues and expenses a partner is responsible for.
type PartnerTotals struct {
	Name    string          `json:"name" example:"Alice"`
	Expense decimal.Decimal `json:"expense" example:"120.5" swaggertype:"number"`
	Revenue decimal.Decimal `json:"revenue" example:"3000" swaggertype:"number"`
}

// Spender names who of the couple spent more.
type Spender string

const (
	SpenderPartner1 Spender = "partner1"
	SpenderPartner2 Spender = "partner2"
	SpenderTie      Spender = "tie"
	SpenderNone     Spender = "none"
)

// CoupleSummary compares what both partners spend and earn.
type CoupleSummary struct {
	Partner1       PartnerTotals `json:"partner1"`
	Partner2       PartnerTotals `json:"partner2"`
	BiggestSpender Spender       `json:"biggestSpender" example:"partner1"`
}

func (s State) partnerTotals(name string) PartnerTotals {
	return PartnerTotals{
		Name: name,
		Expense: sumMagnitudes(s.Transactions, func(t Transaction) bool {
			return t.Type == Expense && t.ResponsiblePartner == name
		}),
		Revenue: sumMagnitudes(s.Transactions, func(t Transaction) bool {
			return t.Type == Revenue && t.ResponsiblePartner == name
		}),
	}
}

// CoupleSummary computes the totals per partner.
func (s State) CoupleSummary() CoupleSummary {
	summary := CoupleSummary{
		Partner1: s.partnerTotals(s.CoupleNames.Partner1),
		Partner2: s.partnerTotals(s.CoupleNames.Partner2),
	}

	switch c := summary.Partner1.Expense.Cmp(summary.Partner2.Expense); {
	case summary.Partner1.Expense.IsZero() && summary.Partner2.Expense.IsZero():
		summary.BiggestSpender = SpenderNone
	case c > 0:
		summary.BiggestSpender = SpenderPartner1
	case c < 0:
		summary.BiggestSpender = SpenderPartner2
	default:
		summary.BiggestSpender = SpenderTie
	}

	return summary
}

// Dashboard is the overview of the couple's finances. Budgets count all expenses
// ever recorded, not only those of the current month.
type Dashboard struct {
	Balance            decimal.Decimal `json:"balance" example:"2950" swaggertype:"number"`
	Status             BalanceStatus   `json:"status"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue" example:"3000" swaggertype:"number"`
	TotalExpense       decimal.Decimal `json:"totalExpense" example:"50" swaggertype:"number"`
	Budgets            []BudgetStatus  `json:"budgets"`
	TotalRemaining     decimal.Decimal `json:"totalRemaining" example:"50" swaggertype:"number"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
}

// Dashboard computes the overview.
func (s State) Dashboard() Dashboard {
	budgets := s.BudgetStatuses(nil)

	return Dashboard{
		Balance:            s.Balance,
		Status:             StatusFor(s.Balance),
		TotalRevenue:       s.TotalRevenue(),
		TotalExpense:       s.TotalExpense(),
		Budgets:            budgets,
		TotalRemaining:     TotalRemaining(budgets),
		ExpensesByCategory: s.ExpensesByCategory(),
	}
}

// BalanceStatus is the "inner poverty meter" shown next to the balance.
type BalanceStatus struct {
	Level string `json:"level" example:"surviving"`
	Emoji string `json:"emoji" example:"😌"`
	Text  string `json:"text" example:"Sobrevivendo (ainda dá pra pagar o jantar, mas a gorjeta é opcional)"`
}

var (
	fiveHundred  = decimal.NewFromInt(500)
	twoThousand  = decimal.NewFromInt(2000)
	fiveThousand = decimal.NewFromInt(5000)
	tenThousand  = decimal.NewFromInt(10000)
)

// StatusFor rates a balance.
func StatusFor(balance decimal.Decimal) BalanceStatus {
	switch {
	case balance.GreaterThan(tenThousand):
		return BalanceStatus{"rich", "🤑", "Ricos em Espírito (e com uma bela poupança para a terapia de casal)"}
	case balance.GreaterThan(twoThousand):
		return BalanceStatus{"surviving", "😌", "Sobrevivendo (ainda dá pra pagar o jantar, mas a gorjeta é opcional)"}
	case balance.IsPositive():
		return BalanceStatus{"on-the-edge", "😬", "No Limite (um café a mais pode ser o fim do mundo)"}
	default:
		return BalanceStatus{"broke", "😭", "Pobres e Endividados (mas pelo menos têm um ao outro para culpar)"}
	}
}

type AdviceTier string

const (
	TierInTheRed    AdviceTier = "in-the-red"
	TierZero        AdviceTier = "zero"
	TierLow         AdviceTier = "low"
	TierReasonable  AdviceTier = "reasonable"
	TierGood        AdviceTier = "good"
	TierAlmostThere AdviceTier = "almost-there"
	TierRich        AdviceTier = "rich"
)

// Advice is questionable financial advice for the current state.
type Advice struct {
	Tier        AdviceTier     `json:"tier" example:"good"`
	Emoji       string         `json:"emoji" example:"🛣️"`
	Text        string         `json:"text" example:"Estão indo bem! Já podem sonhar com um fim de semana fora... no sítio da sogra."`
	TopCategory *CategoryTotal `json:"topCategory"` // The category with the most expenses, if there are any
	Vice        bool           `json:"vice" example:"false"`
}

// vice is a category that earns an extra remark once it is the top category
// and above its threshold.
type vice struct {
	threshold decimal.Decimal
	remark    string
}

var vices = map[string]vice{
	"Entretenimento":  {decimal.NewFromInt(500), " E parece que o entretenimento é o seu maior vício. Vão falir rindo!"},
	"Vícios":          {decimal.NewFromInt(300), " E os vícios, hein? Talvez um grupo de apoio, ou uma conta no banco."},
	"Capricho Inútil": {decimal.NewFromInt(200), " Tantos 'caprichos inúteis'... a conta bancária implora por piedade!"},
}

func tierFor(balance decimal.Decimal) Advice {
	switch {
	case balance.IsNegative():
		return Advice{Tier: TierInTheRed, Emoji: "💸", Text: "Parabéns, vocês estão oficialmente no vermelho! Que tal um banho gelado para economizar na conta de luz? Ou talvez comecem a vender seus órgãos... brincadeira (ou não)!"}
	case balance.IsZero():
		return Advice{Tier: TierZero, Emoji: "💨", Text: "Uau, saldo zero! Vocês são mestres em viver no limite. Próximo passo: tentar viver do ar."}
	case balance.LessThan(fiveHundred):
		return Advice{Tier: TierLow, Emoji: "🤏", Text: "Dinheiro é bom, mas o de vocês está voando baixo. Melhor economizar nas cervejas e investir em miçangas."}
	case balance.LessThan(twoThousand):
		return Advice{Tier: TierReasonable, Emoji: "😌", Text: "Saldo razoável! Mas não se empolguem, o próximo boleto é sempre o pior. Guardem para a terapia de casal."}
	case balance.LessThan(fiveThousand):
		return Advice{Tier: TierGood, Emoji: "🛣️", Text: "Estão indo bem! Já podem sonhar com um fim de semana fora... no sítio da sogra."}
	case balance.LessThan(tenThousand):
		return Advice{Tier: TierAlmostThere, Emoji: "🐈", Text: "Quase lá! Com essa quantia, vocês podem até pagar a faculdade dos seus futuros gatos."}
	default:
		return Advice{Tier: TierRich, Emoji: "🤑", Text: "Ricos! Ou pelo menos menos pobres que a maioria. Que tal doar para os necessitados... tipo, para vocês mesmos no futuro?"}
	}
}

// Advice picks advice based on the balance and the category with the most expenses.
func (s State) Advice() Advice {
	advice := tierFor(s.Balance)

	categories := s.ExpensesByCategory()
	if len(categories) == 0 {
		return advice
	}

	top := categories[0]
	advice.TopCategory = &top

	if v, ok := vices[top.Category]; ok && top.Amount.GreaterThan(v.threshold) {
		advice.Vice = true
		advice.Text += v.remark
	}

	return advice
}
